package dto

import (
	"github.com/nutvale/admin-gateway/internal/model"
	"github.com/shopspring/decimal"
)

type CouponQuery struct {
	Search   string
	Active   *bool
	Page     int
	PageSize int
}

type CouponPage struct {
	Items        []model.Coupon `json:"items"`
	TotalMatches int            `json:"total_matches"`
	TotalPages   int            `json:"total_pages"`
	Page         int            `json:"page"`
}

type ReferralQuery struct {
	Search   string
	Platform string
	Page     int
	PageSize int
}

// ReferralRow joins the raw referral with its computed payout position.
type ReferralRow struct {
	model.Referral
	NetSales   decimal.Decimal `json:"net_sales"`
	Earned     decimal.Decimal `json:"earned"`
	PendingDue decimal.Decimal `json:"pending_due"`
}

type ReferralPage struct {
	Items        []ReferralRow `json:"items"`
	TotalMatches int           `json:"total_matches"`
	TotalPages   int           `json:"total_pages"`
	Page         int           `json:"page"`
}
