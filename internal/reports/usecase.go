package reports

import (
	"context"

	"github.com/nutvale/admin-gateway/internal/model"
)

// ProductSource and OrderSource are satisfied by the catalog and orders REST
// repositories; reports only ever read.
type ProductSource interface {
	FetchProducts(ctx context.Context) ([]model.Product, error)
}

type OrderSource interface {
	FetchOrders(ctx context.Context) ([]model.Order, error)
}

type UseCase interface {
	Valuation(ctx context.Context) ([]CategoryValuation, error)
	Sales(ctx context.Context) ([]ProductSales, error)
	LowStockReport(ctx context.Context) ([]LowStockItem, error)
	Orders(ctx context.Context) ([]model.Order, error)
}
