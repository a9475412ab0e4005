package dto

import "github.com/nutvale/admin-gateway/internal/model"

type OrderQuery struct {
	Search   string
	Status   string
	Page     int
	PageSize int
}

type OrderPage struct {
	Items        []model.Order `json:"items"`
	TotalMatches int           `json:"total_matches"`
	TotalPages   int           `json:"total_pages"`
	Page         int           `json:"page"`
}

type TrackingInput struct {
	AWBCode string `json:"awb_code"`
	Courier string `json:"courier"`
}

type RequestQuery struct {
	Search   string
	Status   string
	Page     int
	PageSize int
}

// ResolveInput moves a return/replacement request along its lifecycle; the
// pickup AWB rides along when the resolution books a courier.
type ResolveInput struct {
	Status    model.ReturnStatus `json:"status"`
	PickupAWB string             `json:"pickup_awb,omitempty"`
}

type ReturnPage struct {
	Items        []model.ReturnRequest `json:"items"`
	TotalMatches int                   `json:"total_matches"`
	TotalPages   int                   `json:"total_pages"`
	Page         int                   `json:"page"`
}

type ReplacementPage struct {
	Items        []model.ReplacementRequest `json:"items"`
	TotalMatches int                        `json:"total_matches"`
	TotalPages   int                        `json:"total_pages"`
	Page         int                        `json:"page"`
}
