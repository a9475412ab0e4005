package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/nutvale/admin-gateway/internal/catalog"
	"github.com/nutvale/admin-gateway/internal/catalog/dto"
	catuc "github.com/nutvale/admin-gateway/internal/catalog/usecase"
	"github.com/nutvale/admin-gateway/internal/forms"
	"github.com/nutvale/admin-gateway/internal/model"
	"github.com/nutvale/admin-gateway/internal/server"
	"github.com/nutvale/admin-gateway/internal/upload"
	"github.com/nutvale/admin-gateway/pkg/logger"
)

type CatalogHandler struct {
	uc       catalog.UseCase
	uploader upload.Uploader
	pageSize int
	logger   logger.ZapLogger
}

func NewCatalogHandler(uc catalog.UseCase, uploader upload.Uploader, pageSize int, log logger.ZapLogger) *CatalogHandler {
	return &CatalogHandler{
		uc:       uc,
		uploader: uploader,
		pageSize: pageSize,
		logger:   log,
	}
}

func (h *CatalogHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/products", h.listProducts)
	mux.HandleFunc("GET /api/products/{id}", h.getProduct)
	mux.HandleFunc("POST /api/products", h.createProduct)
	mux.HandleFunc("PUT /api/products/{id}", h.updateProduct)
	mux.HandleFunc("DELETE /api/products/{id}", h.deleteProduct)

	mux.HandleFunc("GET /api/categories", h.listCategories)
	mux.HandleFunc("POST /api/categories", h.submitCategory)
	mux.HandleFunc("PUT /api/categories/{id}", h.submitCategory)
	mux.HandleFunc("DELETE /api/categories/{id}", h.deleteCategory)

	mux.HandleFunc("GET /api/subcategories", h.listSubCategories)
	mux.HandleFunc("POST /api/subcategories", h.submitSubCategory)
	mux.HandleFunc("PUT /api/subcategories/{id}", h.submitSubCategory)
	mux.HandleFunc("DELETE /api/subcategories/{id}", h.deleteSubCategory)

	mux.HandleFunc("GET /api/combos", h.listCombos)
	mux.HandleFunc("POST /api/combos", h.createCombo)
	mux.HandleFunc("PUT /api/combos/{id}", h.updateCombo)
	mux.HandleFunc("DELETE /api/combos/{id}", h.deleteCombo)

	mux.HandleFunc("GET /api/offers", h.listOffers)
	mux.HandleFunc("POST /api/offers", h.createOffer)
	mux.HandleFunc("PUT /api/offers/{id}", h.updateOffer)
	mux.HandleFunc("DELETE /api/offers/{id}", h.deleteOffer)
}

func (h *CatalogHandler) pageParams(r *http.Request) (int, int) {
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

// --- Products ---

func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	page, size := h.pageParams(r)
	q := r.URL.Query()
	res, err := h.uc.ListProducts(r.Context(), &dto.ProductQuery{
		Search:   q.Get("q"),
		Category: q.Get("category"),
		Status:   q.Get("status"),
		StockTab: q.Get("stock"),
		Page:     page,
		PageSize: size,
	})
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, res)
}

func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.uc.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, p)
}

func (h *CatalogHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var p model.Product
	if err := server.DecodeBody(r, &p); err != nil {
		server.WriteBadRequest(w, "invalid product body")
		return
	}
	created, err := h.uc.CreateProduct(r.Context(), &p)
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusCreated, created)
}

func (h *CatalogHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var p model.Product
	if err := server.DecodeBody(r, &p); err != nil {
		server.WriteBadRequest(w, "invalid product body")
		return
	}
	p.ID = r.PathValue("id")
	updated, err := h.uc.UpdateProduct(r.Context(), &p)
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, updated)
}

func (h *CatalogHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteProduct(r.Context(), r.PathValue("id")); err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// --- Categories ---

func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	page, size := h.pageParams(r)
	q := r.URL.Query()
	res, err := h.uc.ListCategories(r.Context(), &dto.CategoryQuery{
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

// submitCategory serves both create and edit through the shared draft flow:
// multipart form fields become the draft, an attached image is uploaded first
// and its hosted URL folded in, then the draft is submitted.
func (h *CatalogHandler) submitCategory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		server.WriteBadRequest(w, "invalid multipart form")
		return
	}
	if strings.TrimSpace(r.FormValue("name")) == "" {
		server.WriteBadRequest(w, "name is required")
		return
	}

	var saved *model.Category
	controller := forms.New(model.Category{Status: model.VisibilityActive}, forms.Hooks[model.Category]{
		Prepare: func(ctx context.Context, draft *model.Category) error {
			file, header, err := r.FormFile("image")
			if err != nil {
				return nil // image optional; keep existing URL
			}
			defer file.Close()
			if h.uploader == nil {
				return nil
			}
			url, uerr := h.uploader.Upload(ctx, file, header.Filename)
			if uerr != nil {
				return uerr
			}
			draft.Image = url
			return nil
		},
		Create: func(ctx context.Context, draft model.Category) error {
			result, err := h.uc.CreateCategory(ctx, &draft)
			saved = result
			return err
		},
		Update: func(ctx context.Context, draft model.Category) error {
			result, err := h.uc.UpdateCategory(ctx, &draft)
			saved = result
			return err
		},
	})

	if id := r.PathValue("id"); id != "" {
		// Seed the draft from the stored entity so fields the form leaves out
		// (like a previously uploaded image) survive the edit.
		existing, err := h.uc.GetCategory(r.Context(), id)
		if err != nil {
			if errors.Is(err, catuc.ErrNotFound) {
				server.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "category not found"})
				return
			}
			server.WriteError(w, err)
			return
		}
		controller.Edit(*existing)
	} else {
		controller.Begin()
	}

	controller.Apply(func(d *model.Category) {
		d.Name = r.FormValue("name")
		d.Status = formValueOr(r, "status", d.Status)
		if v := r.FormValue("show_in_navbar"); v != "" {
			d.ShowInNavbar = v == "true"
		}
		if v := r.FormValue("show_in_shop_strip"); v != "" {
			d.ShowInShopStrip = v == "true"
		}
		if order, err := strconv.Atoi(r.FormValue("display_order")); err == nil {
			d.DisplayOrder = order
		}
		if img := r.FormValue("image_url"); img != "" {
			d.Image = img
		}
	})

	if err := controller.Submit(r.Context()); err != nil {
		server.WriteError(w, err)
		return
	}
	status := http.StatusOK
	if r.Method == http.MethodPost {
		status = http.StatusCreated
	}
	server.WriteJSON(w, status, saved)
}

func (h *CatalogHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteCategory(r.Context(), r.PathValue("id")); err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// --- SubCategories ---

func (h *CatalogHandler) listSubCategories(w http.ResponseWriter, r *http.Request) {
	page, size := h.pageParams(r)
	q := r.URL.Query()
	res, err := h.uc.ListSubCategories(r.Context(), &dto.CategoryQuery{
		Search:   q.Get("q"),
		Status:   q.Get("status"),
		ParentID: q.Get("parent"),
		Page:     page,
		PageSize: size,
	})
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, res)
}

func (h *CatalogHandler) submitSubCategory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		server.WriteBadRequest(w, "invalid multipart form")
		return
	}
	if strings.TrimSpace(r.FormValue("name")) == "" {
		server.WriteBadRequest(w, "name is required")
		return
	}

	var saved *model.SubCategory
	controller := forms.New(model.SubCategory{Status: model.VisibilityActive}, forms.Hooks[model.SubCategory]{
		Prepare: func(ctx context.Context, draft *model.SubCategory) error {
			file, header, err := r.FormFile("image")
			if err != nil {
				return nil
			}
			defer file.Close()
			if h.uploader == nil {
				return nil
			}
			url, uerr := h.uploader.Upload(ctx, file, header.Filename)
			if uerr != nil {
				return uerr
			}
			draft.Image = url
			return nil
		},
		Create: func(ctx context.Context, draft model.SubCategory) error {
			result, err := h.uc.CreateSubCategory(ctx, &draft)
			saved = result
			return err
		},
		Update: func(ctx context.Context, draft model.SubCategory) error {
			result, err := h.uc.UpdateSubCategory(ctx, &draft)
			saved = result
			return err
		},
	})

	if id := r.PathValue("id"); id != "" {
		existing, err := h.uc.GetSubCategory(r.Context(), id)
		if err != nil {
			if errors.Is(err, catuc.ErrNotFound) {
				server.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "subcategory not found"})
				return
			}
			server.WriteError(w, err)
			return
		}
		controller.Edit(*existing)
	} else {
		controller.Begin()
	}

	controller.Apply(func(d *model.SubCategory) {
		d.Name = r.FormValue("name")
		d.ParentID = formValueOr(r, "parent_id", d.ParentID)
		d.Status = formValueOr(r, "status", d.Status)
		if order, err := strconv.Atoi(r.FormValue("display_order")); err == nil {
			d.DisplayOrder = order
		}
		if img := r.FormValue("image_url"); img != "" {
			d.Image = img
		}
	})

	if err := controller.Submit(r.Context()); err != nil {
		server.WriteError(w, err)
		return
	}
	status := http.StatusOK
	if r.Method == http.MethodPost {
		status = http.StatusCreated
	}
	server.WriteJSON(w, status, saved)
}

func (h *CatalogHandler) deleteSubCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteSubCategory(r.Context(), r.PathValue("id")); err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// --- Combos ---

func (h *CatalogHandler) listCombos(w http.ResponseWriter, r *http.Request) {
	page, size := h.pageParams(r)
	q := r.URL.Query()
	res, err := h.uc.ListCombos(r.Context(), &dto.ComboQuery{
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

func (h *CatalogHandler) createCombo(w http.ResponseWriter, r *http.Request) {
	var cb model.Combo
	if err := server.DecodeBody(r, &cb); err != nil {
		server.WriteBadRequest(w, "invalid combo body")
		return
	}
	created, err := h.uc.CreateCombo(r.Context(), &cb)
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusCreated, created)
}

func (h *CatalogHandler) updateCombo(w http.ResponseWriter, r *http.Request) {
	var cb model.Combo
	if err := server.DecodeBody(r, &cb); err != nil {
		server.WriteBadRequest(w, "invalid combo body")
		return
	}
	cb.ID = r.PathValue("id")
	updated, err := h.uc.UpdateCombo(r.Context(), &cb)
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, updated)
}

func (h *CatalogHandler) deleteCombo(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteCombo(r.Context(), r.PathValue("id")); err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// --- Offers ---

func (h *CatalogHandler) listOffers(w http.ResponseWriter, r *http.Request) {
	page, size := h.pageParams(r)
	q := r.URL.Query()
	query := &dto.OfferQuery{
		Search:   q.Get("q"),
		Page:     page,
		PageSize: size,
	}
	if v := q.Get("active"); v != "" {
		active := v == "true"
		query.Active = &active
	}
	res, err := h.uc.ListOffers(r.Context(), query)
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, res)
}

func (h *CatalogHandler) createOffer(w http.ResponseWriter, r *http.Request) {
	var o model.Offer
	if err := server.DecodeBody(r, &o); err != nil {
		server.WriteBadRequest(w, "invalid offer body")
		return
	}
	created, err := h.uc.CreateOffer(r.Context(), &o)
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusCreated, created)
}

func (h *CatalogHandler) updateOffer(w http.ResponseWriter, r *http.Request) {
	var o model.Offer
	if err := server.DecodeBody(r, &o); err != nil {
		server.WriteBadRequest(w, "invalid offer body")
		return
	}
	o.ID = r.PathValue("id")
	updated, err := h.uc.UpdateOffer(r.Context(), &o)
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, updated)
}

func (h *CatalogHandler) deleteOffer(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteOffer(r.Context(), r.PathValue("id")); err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func formValueOr(r *http.Request, key, fallback string) string {
	if v := r.FormValue(key); v != "" {
		return v
	}
	return fallback
}
