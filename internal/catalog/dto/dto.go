package dto

import "github.com/nutvale/admin-gateway/internal/model"

type ProductQuery struct {
	Search   string
	Category string
	Status   string
	StockTab string // "", "in", "partial", "out"
	Page     int
	PageSize int
}

// ProductRow is a product enriched with the derived columns the dashboard
// table shows.
type ProductRow struct {
	model.Product
	PriceRange  string `json:"price_range"`
	StockStatus string `json:"stock_status"`
	TotalStock  int    `json:"total_stock"`
}

type ProductPage struct {
	Items        []ProductRow `json:"items"`
	TotalMatches int          `json:"total_matches"`
	TotalPages   int          `json:"total_pages"`
	Page         int          `json:"page"`
}

type CategoryQuery struct {
	Search   string
	Status   string
	ParentID string // subcategory listing only
	Page     int
	PageSize int
}

type CategoryPage struct {
	Items        []model.Category `json:"items"`
	TotalMatches int              `json:"total_matches"`
	TotalPages   int              `json:"total_pages"`
	Page         int              `json:"page"`
}

type SubCategoryPage struct {
	Items        []model.SubCategory `json:"items"`
	TotalMatches int                 `json:"total_matches"`
	TotalPages   int                 `json:"total_pages"`
	Page         int                 `json:"page"`
}

type ComboQuery struct {
	Search   string
	Status   string
	Page     int
	PageSize int
}

type ComboPage struct {
	Items        []model.Combo `json:"items"`
	TotalMatches int           `json:"total_matches"`
	TotalPages   int           `json:"total_pages"`
	Page         int           `json:"page"`
}

type OfferQuery struct {
	Search   string
	Active   *bool
	Page     int
	PageSize int
}

type OfferPage struct {
	Items        []model.Offer `json:"items"`
	TotalMatches int           `json:"total_matches"`
	TotalPages   int           `json:"total_pages"`
	Page         int           `json:"page"`
}
