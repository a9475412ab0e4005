package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/nutvale/admin-gateway/internal/model"
	"github.com/nutvale/admin-gateway/internal/orders"
	"github.com/nutvale/admin-gateway/internal/orders/dto"
	ordersuc "github.com/nutvale/admin-gateway/internal/orders/usecase"
	"github.com/nutvale/admin-gateway/internal/server"
	"github.com/nutvale/admin-gateway/internal/upstream"
)

type OrdersHandler struct {
	uc       orders.UseCase
	pageSize int
}

func NewOrdersHandler(uc orders.UseCase, pageSize int) *OrdersHandler {
	return &OrdersHandler{uc: uc, pageSize: pageSize}
}

func (h *OrdersHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/orders", h.list)
	mux.HandleFunc("GET /api/orders/{id}", h.get)
	mux.HandleFunc("PUT /api/orders/{id}/status", h.updateStatus)
	mux.HandleFunc("POST /api/orders/{id}/cancel", h.cancel)
	mux.HandleFunc("POST /api/orders/{id}/tracking", h.tracking)

	mux.HandleFunc("GET /api/returns", h.listReturns)
	mux.HandleFunc("POST /api/returns/{id}/resolve", h.resolveReturn)

	mux.HandleFunc("GET /api/replacements", h.listReplacements)
	mux.HandleFunc("POST /api/replacements/{id}/resolve", h.resolveReplacement)
}

func (h *OrdersHandler) pageParams(r *http.Request) (int, int) {
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

func (h *OrdersHandler) list(w http.ResponseWriter, r *http.Request) {
	page, size := h.pageParams(r)
	q := r.URL.Query()
	res, err := h.uc.ListOrders(r.Context(), &dto.OrderQuery{
		Search:   q.Get("q"),
		Status:   q.Get("status"),
		Page:     page,
		PageSize: size,
	})
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, res)
}

func (h *OrdersHandler) get(w http.ResponseWriter, r *http.Request) {
	order, err := h.uc.GetOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		if upstream.NotFound(err) {
			server.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return
		}
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, order)
}

func (h *OrdersHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status model.OrderStatus `json:"status"`
	}
	if err := server.DecodeBody(r, &body); err != nil || body.Status == "" {
		server.WriteBadRequest(w, "status is required")
		return
	}
	order, err := h.uc.UpdateStatus(r.Context(), r.PathValue("id"), body.Status)
	if err != nil {
		if errors.Is(err, ordersuc.ErrInvalidTransition) {
			server.WriteJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
			return
		}
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, order)
}

func (h *OrdersHandler) cancel(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Reason string `json:"reason"`
	}
	_ = server.DecodeBody(r, &body)
	order, err := h.uc.CancelOrder(r.Context(), r.PathValue("id"), body.Reason)
	if err != nil {
		if errors.Is(err, ordersuc.ErrNotCancellable) {
			server.WriteJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
			return
		}
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, order)
}

func (h *OrdersHandler) tracking(w http.ResponseWriter, r *http.Request) {
	var input dto.TrackingInput
	if err := server.DecodeBody(r, &input); err != nil {
		server.WriteBadRequest(w, "invalid tracking body")
		return
	}
	order, err := h.uc.AttachTracking(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, order)
}

func (h *OrdersHandler) listReturns(w http.ResponseWriter, r *http.Request) {
	page, size := h.pageParams(r)
	q := r.URL.Query()
	res, err := h.uc.ListReturns(r.Context(), &dto.RequestQuery{
		Search:   q.Get("q"),
		Status:   q.Get("status"),
		Page:     page,
		PageSize: size,
	})
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, res)
}

func (h *OrdersHandler) resolveReturn(w http.ResponseWriter, r *http.Request) {
	var input dto.ResolveInput
	if err := server.DecodeBody(r, &input); err != nil || input.Status == "" {
		server.WriteBadRequest(w, "status is required")
		return
	}
	rr, err := h.uc.ResolveReturn(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		if errors.Is(err, ordersuc.ErrInvalidTransition) {
			server.WriteJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
			return
		}
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, rr)
}

func (h *OrdersHandler) listReplacements(w http.ResponseWriter, r *http.Request) {
	page, size := h.pageParams(r)
	q := r.URL.Query()
	res, err := h.uc.ListReplacements(r.Context(), &dto.RequestQuery{
		Search:   q.Get("q"),
		Status:   q.Get("status"),
		Page:     page,
		PageSize: size,
	})
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, res)
}

func (h *OrdersHandler) resolveReplacement(w http.ResponseWriter, r *http.Request) {
	var input dto.ResolveInput
	if err := server.DecodeBody(r, &input); err != nil || input.Status == "" {
		server.WriteBadRequest(w, "status is required")
		return
	}
	rr, err := h.uc.ResolveReplacement(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		if errors.Is(err, ordersuc.ErrInvalidTransition) {
			server.WriteJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
			return
		}
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, rr)
}
