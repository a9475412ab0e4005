package model

import "time"

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

type Coupon struct {
	Meta
	Code         string    `json:"code"`
	Description  string    `json:"description"`
	DiscountType string    `json:"discount_type"`
	Value        float64   `json:"value"`
	UsageCount   int       `json:"usage_count"`
	UsageLimit   int       `json:"usage_limit"`
	ValidFrom    time.Time `json:"valid_from"`
	ValidUntil   time.Time `json:"valid_until"`
	Active       bool      `json:"active"`
}

// Referral is an influencer code: the discount side affects the end customer,
// the commission side drives the influencer payout.
type Referral struct {
	Meta
	Name           string  `json:"name"`
	Platform       string  `json:"platform"`
	Code           string  `json:"code"`
	DiscountType   string  `json:"discount_type"`
	DiscountValue  float64 `json:"discount_value"`
	CommissionRate float64 `json:"commission_rate"`
	UsageCount     int     `json:"usage_count"`
	TotalSales     float64 `json:"total_sales"`
	TotalPaid      float64 `json:"total_paid"`
}
