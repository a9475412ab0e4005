package marketing

import (
	"context"

	"github.com/nutvale/admin-gateway/internal/marketing/dto"
	"github.com/nutvale/admin-gateway/internal/model"
)

type UseCase interface {
	ListCoupons(ctx context.Context, q *dto.CouponQuery) (*dto.CouponPage, error)
	CreateCoupon(ctx context.Context, c *model.Coupon) (*model.Coupon, error)
	UpdateCoupon(ctx context.Context, c *model.Coupon) (*model.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error

	ListReferrals(ctx context.Context, q *dto.ReferralQuery) (*dto.ReferralPage, error)
	CreateReferral(ctx context.Context, r *model.Referral) (*model.Referral, error)
	UpdateReferral(ctx context.Context, r *model.Referral) (*model.Referral, error)
	DeleteReferral(ctx context.Context, id string) error
	ReferralOrders(ctx context.Context, id string) ([]model.Order, error)
	RecordPayout(ctx context.Context, id string, amount float64) (*model.Referral, error)
}
