package catalog

import (
	"context"

	"github.com/nutvale/admin-gateway/internal/model"
)

// Repository is the upstream-facing side of the catalog: whole collections in,
// mutations out. The upstream API owns all state.
type Repository interface {
	FetchProducts(ctx context.Context) ([]model.Product, error)
	FetchProduct(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, p *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	FetchCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, c *model.Category) (*model.Category, error)
	UpdateCategory(ctx context.Context, c *model.Category) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	FetchSubCategories(ctx context.Context) ([]model.SubCategory, error)
	CreateSubCategory(ctx context.Context, sc *model.SubCategory) (*model.SubCategory, error)
	UpdateSubCategory(ctx context.Context, sc *model.SubCategory) (*model.SubCategory, error)
	DeleteSubCategory(ctx context.Context, id string) error

	FetchCombos(ctx context.Context) ([]model.Combo, error)
	CreateCombo(ctx context.Context, cb *model.Combo) (*model.Combo, error)
	UpdateCombo(ctx context.Context, cb *model.Combo) (*model.Combo, error)
	DeleteCombo(ctx context.Context, id string) error

	FetchOffers(ctx context.Context) ([]model.Offer, error)
	CreateOffer(ctx context.Context, o *model.Offer) (*model.Offer, error)
	UpdateOffer(ctx context.Context, o *model.Offer) (*model.Offer, error)
	DeleteOffer(ctx context.Context, id string) error
}
