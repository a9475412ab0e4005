package repository

import (
	"context"
	"net/http"

	"github.com/nutvale/admin-gateway/internal/model"
	"github.com/nutvale/admin-gateway/internal/upstream"
)

type RESTRepository struct {
	client *upstream.Client
}

func NewRESTRepository(client *upstream.Client) *RESTRepository {
	return &RESTRepository{client: client}
}

func (r *RESTRepository) FetchProducts(ctx context.Context) ([]model.Product, error) {
	return upstream.GetList[model.Product](ctx, r.client, "/products")
}

func (r *RESTRepository) FetchProduct(ctx context.Context, id string) (*model.Product, error) {
	return upstream.GetOne[model.Product](ctx, r.client, "/products/"+id)
}

func (r *RESTRepository) CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	return upstream.PostOne[model.Product](ctx, r.client, http.MethodPost, "/products", p)
}

func (r *RESTRepository) UpdateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	return upstream.PostOne[model.Product](ctx, r.client, http.MethodPut, "/products/"+p.ID, p)
}

func (r *RESTRepository) DeleteProduct(ctx context.Context, id string) error {
	return r.client.Delete(ctx, "/products/"+id)
}

func (r *RESTRepository) FetchCategories(ctx context.Context) ([]model.Category, error) {
	return upstream.GetList[model.Category](ctx, r.client, "/categories")
}

func (r *RESTRepository) CreateCategory(ctx context.Context, c *model.Category) (*model.Category, error) {
	return upstream.PostOne[model.Category](ctx, r.client, http.MethodPost, "/categories", c)
}

func (r *RESTRepository) UpdateCategory(ctx context.Context, c *model.Category) (*model.Category, error) {
	return upstream.PostOne[model.Category](ctx, r.client, http.MethodPut, "/categories/"+c.ID, c)
}

func (r *RESTRepository) DeleteCategory(ctx context.Context, id string) error {
	return r.client.Delete(ctx, "/categories/"+id)
}

func (r *RESTRepository) FetchSubCategories(ctx context.Context) ([]model.SubCategory, error) {
	return upstream.GetList[model.SubCategory](ctx, r.client, "/subcategories")
}

func (r *RESTRepository) CreateSubCategory(ctx context.Context, sc *model.SubCategory) (*model.SubCategory, error) {
	return upstream.PostOne[model.SubCategory](ctx, r.client, http.MethodPost, "/subcategories", sc)
}

func (r *RESTRepository) UpdateSubCategory(ctx context.Context, sc *model.SubCategory) (*model.SubCategory, error) {
	return upstream.PostOne[model.SubCategory](ctx, r.client, http.MethodPut, "/subcategories/"+sc.ID, sc)
}

func (r *RESTRepository) DeleteSubCategory(ctx context.Context, id string) error {
	return r.client.Delete(ctx, "/subcategories/"+id)
}

func (r *RESTRepository) FetchCombos(ctx context.Context) ([]model.Combo, error) {
	return upstream.GetList[model.Combo](ctx, r.client, "/combos")
}

func (r *RESTRepository) CreateCombo(ctx context.Context, cb *model.Combo) (*model.Combo, error) {
	return upstream.PostOne[model.Combo](ctx, r.client, http.MethodPost, "/combos", cb)
}

func (r *RESTRepository) UpdateCombo(ctx context.Context, cb *model.Combo) (*model.Combo, error) {
	return upstream.PostOne[model.Combo](ctx, r.client, http.MethodPut, "/combos/"+cb.ID, cb)
}

func (r *RESTRepository) DeleteCombo(ctx context.Context, id string) error {
	return r.client.Delete(ctx, "/combos/"+id)
}

func (r *RESTRepository) FetchOffers(ctx context.Context) ([]model.Offer, error) {
	return upstream.GetList[model.Offer](ctx, r.client, "/offers")
}

func (r *RESTRepository) CreateOffer(ctx context.Context, o *model.Offer) (*model.Offer, error) {
	return upstream.PostOne[model.Offer](ctx, r.client, http.MethodPost, "/offers", o)
}

func (r *RESTRepository) UpdateOffer(ctx context.Context, o *model.Offer) (*model.Offer, error) {
	return upstream.PostOne[model.Offer](ctx, r.client, http.MethodPut, "/offers/"+o.ID, o)
}

func (r *RESTRepository) DeleteOffer(ctx context.Context, id string) error {
	return r.client.Delete(ctx, "/offers/"+id)
}
