package marketing

import (
	"github.com/shopspring/decimal"

	"github.com/nutvale/admin-gateway/internal/model"
)

// Earnings is the payout view of a referral code.
type Earnings struct {
	NetSales   decimal.Decimal `json:"net_sales"`
	Earned     decimal.Decimal `json:"earned"`
	PendingDue decimal.Decimal `json:"pending_due"`
}

var hundred = decimal.NewFromInt(100)

// ComputeEarnings derives an influencer's payout position. Net sales subtract
// the customer-facing discount from gross sales; earnings floor to whole
// rupees; pending dues are earnings minus what has already been paid out.
func ComputeEarnings(r *model.Referral) Earnings {
	total := decimal.NewFromFloat(r.TotalSales)

	var net decimal.Decimal
	switch r.DiscountType {
	case model.DiscountFixed:
		given := decimal.NewFromFloat(r.DiscountValue).Mul(decimal.NewFromInt(int64(r.UsageCount)))
		net = total.Sub(given)
		if net.IsNegative() {
			net = decimal.Zero
		}
	default: // percentage
		net = total.Mul(hundred.Sub(decimal.NewFromFloat(r.DiscountValue))).Div(hundred)
	}

	earned := net.Mul(decimal.NewFromFloat(r.CommissionRate)).Div(hundred).Floor()
	pending := earned.Sub(decimal.NewFromFloat(r.TotalPaid))

	return Earnings{NetSales: net, Earned: earned, PendingDue: pending}
}
