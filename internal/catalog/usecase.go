package catalog

import (
	"context"

	"github.com/nutvale/admin-gateway/internal/catalog/dto"
	"github.com/nutvale/admin-gateway/internal/model"
)

type UseCase interface {
	ListProducts(ctx context.Context, q *dto.ProductQuery) (*dto.ProductPage, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, p *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListCategories(ctx context.Context, q *dto.CategoryQuery) (*dto.CategoryPage, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	CreateCategory(ctx context.Context, c *model.Category) (*model.Category, error)
	UpdateCategory(ctx context.Context, c *model.Category) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListSubCategories(ctx context.Context, q *dto.CategoryQuery) (*dto.SubCategoryPage, error)
	GetSubCategory(ctx context.Context, id string) (*model.SubCategory, error)
	CreateSubCategory(ctx context.Context, sc *model.SubCategory) (*model.SubCategory, error)
	UpdateSubCategory(ctx context.Context, sc *model.SubCategory) (*model.SubCategory, error)
	DeleteSubCategory(ctx context.Context, id string) error

	ListCombos(ctx context.Context, q *dto.ComboQuery) (*dto.ComboPage, error)
	CreateCombo(ctx context.Context, cb *model.Combo) (*model.Combo, error)
	UpdateCombo(ctx context.Context, cb *model.Combo) (*model.Combo, error)
	DeleteCombo(ctx context.Context, id string) error

	ListOffers(ctx context.Context, q *dto.OfferQuery) (*dto.OfferPage, error)
	CreateOffer(ctx context.Context, o *model.Offer) (*model.Offer, error)
	UpdateOffer(ctx context.Context, o *model.Offer) (*model.Offer, error)
	DeleteOffer(ctx context.Context, id string) error
}
