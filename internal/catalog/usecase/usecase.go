package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/nutvale/admin-gateway/internal/auth"
	"github.com/nutvale/admin-gateway/internal/cache"
	"github.com/nutvale/admin-gateway/internal/catalog"
	"github.com/nutvale/admin-gateway/internal/catalog/dto"
	"github.com/nutvale/admin-gateway/internal/listquery"
	"github.com/nutvale/admin-gateway/internal/model"
	"github.com/nutvale/admin-gateway/pkg/logger"
)

var ErrNotFound = errors.New("not found")

type catalogUseCase struct {
	repo   catalog.Repository
	cache  *cache.Store
	logger logger.ZapLogger
}

func NewCatalogUseCase(repo catalog.Repository, store *cache.Store, log logger.ZapLogger) catalog.UseCase {
	return &catalogUseCase{
		repo:   repo,
		cache:  store,
		logger: log,
	}
}

func enabled(ctx context.Context) bool {
	return auth.Token(ctx) != ""
}

// --- Products ---

func (uc *catalogUseCase) ListProducts(ctx context.Context, q *dto.ProductQuery) (*dto.ProductPage, error) {
	products, err := cache.Query(ctx, uc.cache, cache.KeyProducts, enabled(ctx), uc.repo.FetchProducts)
	if err != nil {
		return nil, err
	}

	opts := []listquery.Option[model.Product]{
		listquery.WithSearchFields(func(p model.Product) []string {
			return []string{p.Name, p.Brand, p.ID, p.CategoryName, p.SubCategoryName}
		}),
		listquery.WithSort(func(a, b model.Product) bool { return a.CreatedAt.After(b.CreatedAt) }),
	}
	if q.Category != "" && !strings.EqualFold(q.Category, "all") {
		opts = append(opts, listquery.WithFilter(func(p model.Product) bool {
			return p.CategoryID == q.Category || strings.EqualFold(p.CategoryName, q.Category)
		}))
	}
	if q.Status != "" && !strings.EqualFold(q.Status, "all") {
		opts = append(opts, listquery.WithFilter(func(p model.Product) bool {
			return strings.EqualFold(p.Status, q.Status)
		}))
	}
	if q.StockTab != "" && !strings.EqualFold(q.StockTab, "all") {
		want := stockStatusForTab(q.StockTab)
		opts = append(opts, listquery.WithFilter(func(p model.Product) bool {
			return p.StockStatus() == want
		}))
	}

	res := listquery.Run(products, listquery.Params{Search: q.Search, Page: q.Page, PageSize: q.PageSize}, opts...)

	rows := make([]dto.ProductRow, len(res.Items))
	for i, p := range res.Items {
		rows[i] = dto.ProductRow{
			Product:     p,
			PriceRange:  p.PriceRange(),
			StockStatus: p.StockStatus(),
			TotalStock:  p.TotalStock(),
		}
	}
	return &dto.ProductPage{
		Items:        rows,
		TotalMatches: res.TotalMatches,
		TotalPages:   res.TotalPages,
		Page:         res.Page,
	}, nil
}

func stockStatusForTab(tab string) string {
	switch strings.ToLower(tab) {
	case "out":
		return model.StockStatusOut
	case "partial", "low":
		return model.StockStatusPartial
	default:
		return model.StockStatusIn
	}
}

func (uc *catalogUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return uc.repo.FetchProduct(ctx, id)
}

func (uc *catalogUseCase) CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	created, err := uc.repo.CreateProduct(ctx, p)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.KeyProducts)
	return created, nil
}

func (uc *catalogUseCase) UpdateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	if p.ID == "" {
		return nil, ErrNotFound
	}
	updated, err := uc.repo.UpdateProduct(ctx, p)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.KeyProducts)
	return updated, nil
}

func (uc *catalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	if err := uc.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, cache.KeyProducts)
	return nil
}

// --- Categories ---

func (uc *catalogUseCase) ListCategories(ctx context.Context, q *dto.CategoryQuery) (*dto.CategoryPage, error) {
	categories, err := cache.Query(ctx, uc.cache, cache.KeyCategories, enabled(ctx), uc.repo.FetchCategories)
	if err != nil {
		return nil, err
	}

	opts := []listquery.Option[model.Category]{
		listquery.WithSearchFields(func(c model.Category) []string { return []string{c.Name, c.ID} }),
		listquery.WithSort(func(a, b model.Category) bool { return a.DisplayOrder < b.DisplayOrder }),
	}
	if q.Status != "" && !strings.EqualFold(q.Status, "all") {
		opts = append(opts, listquery.WithFilter(func(c model.Category) bool {
			return strings.EqualFold(c.Status, q.Status)
		}))
	}

	res := listquery.Run(categories, listquery.Params{Search: q.Search, Page: q.Page, PageSize: q.PageSize}, opts...)
	return &dto.CategoryPage{
		Items:        res.Items,
		TotalMatches: res.TotalMatches,
		TotalPages:   res.TotalPages,
		Page:         res.Page,
	}, nil
}

func (uc *catalogUseCase) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	categories, err := cache.Query(ctx, uc.cache, cache.KeyCategories, true, uc.repo.FetchCategories)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (uc *catalogUseCase) CreateCategory(ctx context.Context, c *model.Category) (*model.Category, error) {
	created, err := uc.repo.CreateCategory(ctx, c)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.KeyCategories, cache.KeySubCategories)
	return created, nil
}

func (uc *catalogUseCase) UpdateCategory(ctx context.Context, c *model.Category) (*model.Category, error) {
	updated, err := uc.repo.UpdateCategory(ctx, c)
	if err != nil {
		return nil, err
	}
	// Subcategory rows denormalize their parent's name, so both collections
	// go stale together.
	uc.cache.Invalidate(ctx, cache.KeyCategories, cache.KeySubCategories)
	return updated, nil
}

func (uc *catalogUseCase) DeleteCategory(ctx context.Context, id string) error {
	if err := uc.repo.DeleteCategory(ctx, id); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, cache.KeyCategories, cache.KeySubCategories)
	return nil
}

// --- SubCategories ---

func (uc *catalogUseCase) ListSubCategories(ctx context.Context, q *dto.CategoryQuery) (*dto.SubCategoryPage, error) {
	subs, err := cache.Query(ctx, uc.cache, cache.KeySubCategories, enabled(ctx), uc.repo.FetchSubCategories)
	if err != nil {
		return nil, err
	}

	opts := []listquery.Option[model.SubCategory]{
		listquery.WithSearchFields(func(sc model.SubCategory) []string { return []string{sc.Name, sc.ID} }),
		listquery.WithSort(func(a, b model.SubCategory) bool { return a.DisplayOrder < b.DisplayOrder }),
	}
	if q.ParentID != "" && !strings.EqualFold(q.ParentID, "all") {
		opts = append(opts, listquery.WithFilter(func(sc model.SubCategory) bool {
			return sc.ParentID == q.ParentID
		}))
	}
	if q.Status != "" && !strings.EqualFold(q.Status, "all") {
		opts = append(opts, listquery.WithFilter(func(sc model.SubCategory) bool {
			return strings.EqualFold(sc.Status, q.Status)
		}))
	}

	res := listquery.Run(subs, listquery.Params{Search: q.Search, Page: q.Page, PageSize: q.PageSize}, opts...)
	return &dto.SubCategoryPage{
		Items:        res.Items,
		TotalMatches: res.TotalMatches,
		TotalPages:   res.TotalPages,
		Page:         res.Page,
	}, nil
}

// validateParent enforces that a subcategory always points at an existing
// parent category.
func (uc *catalogUseCase) validateParent(ctx context.Context, parentID string) error {
	if parentID == "" {
		return errors.New("subcategory requires a parent category")
	}
	categories, err := cache.Query(ctx, uc.cache, cache.KeyCategories, true, uc.repo.FetchCategories)
	if err != nil {
		return err
	}
	for _, c := range categories {
		if c.ID == parentID {
			return nil
		}
	}
	return errors.New("parent category not found")
}

func (uc *catalogUseCase) GetSubCategory(ctx context.Context, id string) (*model.SubCategory, error) {
	subs, err := cache.Query(ctx, uc.cache, cache.KeySubCategories, true, uc.repo.FetchSubCategories)
	if err != nil {
		return nil, err
	}
	for _, sc := range subs {
		if sc.ID == id {
			return &sc, nil
		}
	}
	return nil, ErrNotFound
}

func (uc *catalogUseCase) CreateSubCategory(ctx context.Context, sc *model.SubCategory) (*model.SubCategory, error) {
	if err := uc.validateParent(ctx, sc.ParentID); err != nil {
		return nil, err
	}
	created, err := uc.repo.CreateSubCategory(ctx, sc)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.KeySubCategories)
	return created, nil
}

func (uc *catalogUseCase) UpdateSubCategory(ctx context.Context, sc *model.SubCategory) (*model.SubCategory, error) {
	if err := uc.validateParent(ctx, sc.ParentID); err != nil {
		return nil, err
	}
	updated, err := uc.repo.UpdateSubCategory(ctx, sc)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.KeySubCategories)
	return updated, nil
}

func (uc *catalogUseCase) DeleteSubCategory(ctx context.Context, id string) error {
	if err := uc.repo.DeleteSubCategory(ctx, id); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, cache.KeySubCategories)
	return nil
}

// --- Combos ---

func (uc *catalogUseCase) ListCombos(ctx context.Context, q *dto.ComboQuery) (*dto.ComboPage, error) {
	combos, err := cache.Query(ctx, uc.cache, cache.KeyCombos, enabled(ctx), uc.repo.FetchCombos)
	if err != nil {
		return nil, err
	}

	opts := []listquery.Option[model.Combo]{
		listquery.WithSearchFields(func(cb model.Combo) []string { return []string{cb.Name, cb.ID} }),
		listquery.WithSort(func(a, b model.Combo) bool { return a.CreatedAt.After(b.CreatedAt) }),
	}
	if q.Status != "" && !strings.EqualFold(q.Status, "all") {
		opts = append(opts, listquery.WithFilter(func(cb model.Combo) bool {
			return strings.EqualFold(cb.Status, q.Status)
		}))
	}

	res := listquery.Run(combos, listquery.Params{Search: q.Search, Page: q.Page, PageSize: q.PageSize}, opts...)
	return &dto.ComboPage{
		Items:        res.Items,
		TotalMatches: res.TotalMatches,
		TotalPages:   res.TotalPages,
		Page:         res.Page,
	}, nil
}

func (uc *catalogUseCase) CreateCombo(ctx context.Context, cb *model.Combo) (*model.Combo, error) {
	created, err := uc.repo.CreateCombo(ctx, cb)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.KeyCombos)
	return created, nil
}

func (uc *catalogUseCase) UpdateCombo(ctx context.Context, cb *model.Combo) (*model.Combo, error) {
	updated, err := uc.repo.UpdateCombo(ctx, cb)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.KeyCombos)
	return updated, nil
}

func (uc *catalogUseCase) DeleteCombo(ctx context.Context, id string) error {
	if err := uc.repo.DeleteCombo(ctx, id); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, cache.KeyCombos)
	return nil
}

// --- Offers ---

func (uc *catalogUseCase) ListOffers(ctx context.Context, q *dto.OfferQuery) (*dto.OfferPage, error) {
	offers, err := cache.Query(ctx, uc.cache, cache.KeyOffers, enabled(ctx), uc.repo.FetchOffers)
	if err != nil {
		return nil, err
	}

	opts := []listquery.Option[model.Offer]{
		listquery.WithSearchFields(func(o model.Offer) []string { return []string{o.Title, o.ID} }),
		listquery.WithSort(func(a, b model.Offer) bool { return a.CreatedAt.After(b.CreatedAt) }),
	}
	if q.Active != nil {
		opts = append(opts, listquery.WithFilter(func(o model.Offer) bool {
			return o.Active == *q.Active
		}))
	}

	res := listquery.Run(offers, listquery.Params{Search: q.Search, Page: q.Page, PageSize: q.PageSize}, opts...)
	return &dto.OfferPage{
		Items:        res.Items,
		TotalMatches: res.TotalMatches,
		TotalPages:   res.TotalPages,
		Page:         res.Page,
	}, nil
}

func (uc *catalogUseCase) CreateOffer(ctx context.Context, o *model.Offer) (*model.Offer, error) {
	created, err := uc.repo.CreateOffer(ctx, o)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.KeyOffers)
	return created, nil
}

func (uc *catalogUseCase) UpdateOffer(ctx context.Context, o *model.Offer) (*model.Offer, error) {
	updated, err := uc.repo.UpdateOffer(ctx, o)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.KeyOffers)
	return updated, nil
}

func (uc *catalogUseCase) DeleteOffer(ctx context.Context, id string) error {
	if err := uc.repo.DeleteOffer(ctx, id); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, cache.KeyOffers)
	return nil
}
