package handler

import (
	"net/http"
	"strconv"

	"github.com/nutvale/admin-gateway/internal/model"
	"github.com/nutvale/admin-gateway/internal/reviews"
	"github.com/nutvale/admin-gateway/internal/reviews/dto"
	"github.com/nutvale/admin-gateway/internal/server"
)

type ReviewsHandler struct {
	uc       reviews.UseCase
	pageSize int
}

func NewReviewsHandler(uc reviews.UseCase, pageSize int) *ReviewsHandler {
	return &ReviewsHandler{uc: uc, pageSize: pageSize}
}

func (h *ReviewsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/reviews", h.list)
	mux.HandleFunc("PUT /api/reviews/{id}/status", h.moderate)
	mux.HandleFunc("POST /api/reviews", h.createTestimonial)
	mux.HandleFunc("PUT /api/reviews/{id}", h.updateTestimonial)
	mux.HandleFunc("DELETE /api/reviews/{id}", h.delete)
}

func (h *ReviewsHandler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(q.Get("size"))
	if size < 1 {
		size = h.pageSize
	}
	rating, _ := strconv.Atoi(q.Get("rating"))

	res, err := h.uc.List(r.Context(), &dto.ReviewQuery{
		Search:   q.Get("q"),
		Source:   q.Get("source"),
		Status:   q.Get("status"),
		Rating:   rating,
		Page:     page,
		PageSize: size,
	})
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, res)
}

func (h *ReviewsHandler) moderate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := server.DecodeBody(r, &body); err != nil || body.Status == "" {
		server.WriteBadRequest(w, "status is required")
		return
	}
	updated, err := h.uc.Moderate(r.Context(), r.PathValue("id"), body.Status)
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, updated)
}

func (h *ReviewsHandler) createTestimonial(w http.ResponseWriter, r *http.Request) {
	var rv model.Review
	if err := server.DecodeBody(r, &rv); err != nil {
		server.WriteBadRequest(w, "invalid review body")
		return
	}
	created, err := h.uc.CreateTestimonial(r.Context(), &rv)
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusCreated, created)
}

func (h *ReviewsHandler) updateTestimonial(w http.ResponseWriter, r *http.Request) {
	var rv model.Review
	if err := server.DecodeBody(r, &rv); err != nil {
		server.WriteBadRequest(w, "invalid review body")
		return
	}
	rv.ID = r.PathValue("id")
	updated, err := h.uc.UpdateTestimonial(r.Context(), &rv)
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, updated)
}

func (h *ReviewsHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Delete(r.Context(), r.PathValue("id")); err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
