package dto

import "github.com/nutvale/admin-gateway/internal/model"

type ReviewQuery struct {
	Search   string
	Source   string
	Status   string
	Rating   int
	Page     int
	PageSize int
}

type ReviewPage struct {
	Items        []model.Review `json:"items"`
	TotalMatches int            `json:"total_matches"`
	TotalPages   int            `json:"total_pages"`
	Page         int            `json:"page"`
}
