package marketing

import (
	"context"

	"github.com/nutvale/admin-gateway/internal/model"
)

type Repository interface {
	FetchCoupons(ctx context.Context) ([]model.Coupon, error)
	CreateCoupon(ctx context.Context, c *model.Coupon) (*model.Coupon, error)
	UpdateCoupon(ctx context.Context, c *model.Coupon) (*model.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error

	FetchReferrals(ctx context.Context) ([]model.Referral, error)
	CreateReferral(ctx context.Context, r *model.Referral) (*model.Referral, error)
	UpdateReferral(ctx context.Context, r *model.Referral) (*model.Referral, error)
	DeleteReferral(ctx context.Context, id string) error
	FetchReferralOrders(ctx context.Context, id string) ([]model.Order, error)
	RecordPayout(ctx context.Context, id string, amount float64) (*model.Referral, error)
}
