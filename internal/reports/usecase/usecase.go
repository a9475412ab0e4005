package usecase

import (
	"context"

	"github.com/nutvale/admin-gateway/internal/auth"
	"github.com/nutvale/admin-gateway/internal/cache"
	"github.com/nutvale/admin-gateway/internal/model"
	"github.com/nutvale/admin-gateway/internal/reports"
	"github.com/nutvale/admin-gateway/pkg/logger"
)

type reportsUseCase struct {
	products reports.ProductSource
	orders   reports.OrderSource
	cache    *cache.Store
	lowStock int
	logger   logger.ZapLogger
}

func NewReportsUseCase(products reports.ProductSource, orders reports.OrderSource, store *cache.Store, lowStockThreshold int, log logger.ZapLogger) reports.UseCase {
	return &reportsUseCase{
		products: products,
		orders:   orders,
		cache:    store,
		lowStock: lowStockThreshold,
		logger:   log,
	}
}

func (uc *reportsUseCase) fetchProducts(ctx context.Context) ([]model.Product, error) {
	return cache.Query(ctx, uc.cache, cache.KeyProducts, auth.Token(ctx) != "", uc.products.FetchProducts)
}

func (uc *reportsUseCase) fetchOrders(ctx context.Context) ([]model.Order, error) {
	return cache.Query(ctx, uc.cache, cache.KeyOrders, auth.Token(ctx) != "", uc.orders.FetchOrders)
}

func (uc *reportsUseCase) Valuation(ctx context.Context) ([]reports.CategoryValuation, error) {
	products, err := uc.fetchProducts(ctx)
	if err != nil {
		return nil, err
	}
	return reports.StockValuation(products), nil
}

func (uc *reportsUseCase) Sales(ctx context.Context) ([]reports.ProductSales, error) {
	orders, err := uc.fetchOrders(ctx)
	if err != nil {
		return nil, err
	}
	return reports.SalesByProduct(orders), nil
}

func (uc *reportsUseCase) LowStockReport(ctx context.Context) ([]reports.LowStockItem, error) {
	products, err := uc.fetchProducts(ctx)
	if err != nil {
		return nil, err
	}
	return reports.LowStock(products, uc.lowStock), nil
}

func (uc *reportsUseCase) Orders(ctx context.Context) ([]model.Order, error) {
	return uc.fetchOrders(ctx)
}
