package handler

import (
	"net/http"
	"strconv"

	"github.com/nutvale/admin-gateway/internal/marketing"
	"github.com/nutvale/admin-gateway/internal/marketing/dto"
	"github.com/nutvale/admin-gateway/internal/model"
	"github.com/nutvale/admin-gateway/internal/server"
)

type MarketingHandler struct {
	uc       marketing.UseCase
	pageSize int
}

func NewMarketingHandler(uc marketing.UseCase, pageSize int) *MarketingHandler {
	return &MarketingHandler{uc: uc, pageSize: pageSize}
}

func (h *MarketingHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/coupons", h.listCoupons)
	mux.HandleFunc("POST /api/coupons", h.createCoupon)
	mux.HandleFunc("PUT /api/coupons/{id}", h.updateCoupon)
	mux.HandleFunc("DELETE /api/coupons/{id}", h.deleteCoupon)

	mux.HandleFunc("GET /api/referrals", h.listReferrals)
	mux.HandleFunc("POST /api/referrals", h.createReferral)
	mux.HandleFunc("PUT /api/referrals/{id}", h.updateReferral)
	mux.HandleFunc("DELETE /api/referrals/{id}", h.deleteReferral)
	mux.HandleFunc("GET /api/referrals/{id}/orders", h.referralOrders)
	mux.HandleFunc("POST /api/referrals/{id}/payout", h.recordPayout)
}

func (h *MarketingHandler) pageParams(r *http.Request) (int, int) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(q.Get("size"))
	if size < 1 {
		size = h.pageSize
	}
	return page, size
}

func (h *MarketingHandler) listCoupons(w http.ResponseWriter, r *http.Request) {
	page, size := h.pageParams(r)
	q := r.URL.Query()
	query := &dto.CouponQuery{
		Search:   q.Get("q"),
		Page:     page,
		PageSize: size,
	}
	if v := q.Get("active"); v != "" {
		active := v == "true"
		query.Active = &active
	}
	res, err := h.uc.ListCoupons(r.Context(), query)
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, res)
}

func (h *MarketingHandler) createCoupon(w http.ResponseWriter, r *http.Request) {
	var c model.Coupon
	if err := server.DecodeBody(r, &c); err != nil {
		server.WriteBadRequest(w, "invalid coupon body")
		return
	}
	created, err := h.uc.CreateCoupon(r.Context(), &c)
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusCreated, created)
}

func (h *MarketingHandler) updateCoupon(w http.ResponseWriter, r *http.Request) {
	var c model.Coupon
	if err := server.DecodeBody(r, &c); err != nil {
		server.WriteBadRequest(w, "invalid coupon body")
		return
	}
	c.ID = r.PathValue("id")
	updated, err := h.uc.UpdateCoupon(r.Context(), &c)
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, updated)
}

func (h *MarketingHandler) deleteCoupon(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteCoupon(r.Context(), r.PathValue("id")); err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *MarketingHandler) listReferrals(w http.ResponseWriter, r *http.Request) {
	page, size := h.pageParams(r)
	q := r.URL.Query()
	res, err := h.uc.ListReferrals(r.Context(), &dto.ReferralQuery{
		Search:   q.Get("q"),
		Platform: q.Get("platform"),
		Page:     page,
		PageSize: size,
	})
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, res)
}

func (h *MarketingHandler) createReferral(w http.ResponseWriter, r *http.Request) {
	var ref model.Referral
	if err := server.DecodeBody(r, &ref); err != nil {
		server.WriteBadRequest(w, "invalid referral body")
		return
	}
	created, err := h.uc.CreateReferral(r.Context(), &ref)
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusCreated, created)
}

func (h *MarketingHandler) updateReferral(w http.ResponseWriter, r *http.Request) {
	var ref model.Referral
	if err := server.DecodeBody(r, &ref); err != nil {
		server.WriteBadRequest(w, "invalid referral body")
		return
	}
	ref.ID = r.PathValue("id")
	updated, err := h.uc.UpdateReferral(r.Context(), &ref)
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, updated)
}

func (h *MarketingHandler) deleteReferral(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteReferral(r.Context(), r.PathValue("id")); err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *MarketingHandler) referralOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.uc.ReferralOrders(r.Context(), r.PathValue("id"))
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, map[string]any{"items": orders})
}

func (h *MarketingHandler) recordPayout(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Amount float64 `json:"amount"`
	}
	if err := server.DecodeBody(r, &body); err != nil {
		server.WriteBadRequest(w, "invalid payout body")
		return
	}
	updated, err := h.uc.RecordPayout(r.Context(), r.PathValue("id"), body.Amount)
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, updated)
}
