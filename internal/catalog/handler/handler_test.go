package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nutvale/admin-gateway/internal/catalog"
	catuc "github.com/nutvale/admin-gateway/internal/catalog/usecase"
	"github.com/nutvale/admin-gateway/internal/model"
	"github.com/nutvale/admin-gateway/pkg/logger"
)

// fakeUseCase covers only the category and subcategory edit flow; anything
// else panics through the embedded nil interface.
type fakeUseCase struct {
	catalog.UseCase
	category   *model.Category
	sub        *model.SubCategory
	updatedCat *model.Category
	updatedSub *model.SubCategory
}

func (f *fakeUseCase) GetCategory(_ context.Context, id string) (*model.Category, error) {
	if f.category != nil && f.category.ID == id {
		c := *f.category
		return &c, nil
	}
	return nil, catuc.ErrNotFound
}

func (f *fakeUseCase) UpdateCategory(_ context.Context, c *model.Category) (*model.Category, error) {
	f.updatedCat = c
	return c, nil
}

func (f *fakeUseCase) GetSubCategory(_ context.Context, id string) (*model.SubCategory, error) {
	if f.sub != nil && f.sub.ID == id {
		sc := *f.sub
		return &sc, nil
	}
	return nil, catuc.ErrNotFound
}

func (f *fakeUseCase) UpdateSubCategory(_ context.Context, sc *model.SubCategory) (*model.SubCategory, error) {
	f.updatedSub = sc
	return sc, nil
}

func multipartForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField(%s): %v", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return &body, mw.FormDataContentType()
}

func newTestMux(uc catalog.UseCase) *http.ServeMux {
	mux := http.NewServeMux()
	NewCatalogHandler(uc, nil, 10, logger.NewNop()).Register(mux)
	return mux
}

func TestEditCategoryKeepsOmittedFields(t *testing.T) {
	uc := &fakeUseCase{
		category: &model.Category{
			Meta:         model.Meta{ID: "c1"},
			Name:         "Nuts",
			Image:        "https://cdn.example/nuts.png",
			Status:       model.VisibilityActive,
			ShowInNavbar: true,
			DisplayOrder: 3,
		},
	}
	mux := newTestMux(uc)

	body, contentType := multipartForm(t, map[string]string{"name": "Premium Nuts"})
	req := httptest.NewRequest(http.MethodPut, "/api/categories/c1", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	got := uc.updatedCat
	if got == nil {
		t.Fatal("UpdateCategory was not called")
	}
	if got.ID != "c1" {
		t.Errorf("ID = %q, want c1", got.ID)
	}
	if got.Name != "Premium Nuts" {
		t.Errorf("Name = %q, want the submitted name", got.Name)
	}
	// Fields the form left out keep their stored values.
	if got.Image != "https://cdn.example/nuts.png" {
		t.Errorf("Image = %q, want the existing image", got.Image)
	}
	if got.Status != model.VisibilityActive {
		t.Errorf("Status = %q, want %q", got.Status, model.VisibilityActive)
	}
	if !got.ShowInNavbar {
		t.Error("ShowInNavbar was reset")
	}
	if got.DisplayOrder != 3 {
		t.Errorf("DisplayOrder = %d, want 3", got.DisplayOrder)
	}
}

func TestEditCategoryUnknownID(t *testing.T) {
	mux := newTestMux(&fakeUseCase{})

	body, contentType := multipartForm(t, map[string]string{"name": "Premium Nuts"})
	req := httptest.NewRequest(http.MethodPut, "/api/categories/ghost", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["error"] == "" {
		t.Error("missing error message")
	}
}

func TestEditSubCategoryKeepsOmittedFields(t *testing.T) {
	uc := &fakeUseCase{
		sub: &model.SubCategory{
			Meta:     model.Meta{ID: "s1"},
			Name:     "Almonds",
			Image:    "https://cdn.example/almonds.png",
			Status:   model.VisibilityActive,
			ParentID: "c1",
		},
	}
	mux := newTestMux(uc)

	body, contentType := multipartForm(t, map[string]string{"name": "California Almonds"})
	req := httptest.NewRequest(http.MethodPut, "/api/subcategories/s1", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	got := uc.updatedSub
	if got == nil {
		t.Fatal("UpdateSubCategory was not called")
	}
	if got.Name != "California Almonds" {
		t.Errorf("Name = %q, want the submitted name", got.Name)
	}
	if got.Image != "https://cdn.example/almonds.png" {
		t.Errorf("Image = %q, want the existing image", got.Image)
	}
	if got.ParentID != "c1" {
		t.Errorf("ParentID = %q, want the existing parent", got.ParentID)
	}
}
