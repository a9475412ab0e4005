package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nutvale/admin-gateway/internal/auth"
	"github.com/nutvale/admin-gateway/internal/cache"
	"github.com/nutvale/admin-gateway/internal/marketing/dto"
	"github.com/nutvale/admin-gateway/internal/model"
	"github.com/nutvale/admin-gateway/pkg/logger"
)

type fakeRepo struct {
	coupons   []model.Coupon
	referrals []model.Referral

	referralFetches      int
	referralOrderFetches int
	payouts              []float64
}

func (f *fakeRepo) FetchCoupons(context.Context) ([]model.Coupon, error) { return f.coupons, nil }

func (f *fakeRepo) CreateCoupon(_ context.Context, c *model.Coupon) (*model.Coupon, error) {
	return c, nil
}

func (f *fakeRepo) UpdateCoupon(_ context.Context, c *model.Coupon) (*model.Coupon, error) {
	return c, nil
}

func (f *fakeRepo) DeleteCoupon(context.Context, string) error { return nil }

func (f *fakeRepo) FetchReferrals(context.Context) ([]model.Referral, error) {
	f.referralFetches++
	return f.referrals, nil
}

func (f *fakeRepo) CreateReferral(_ context.Context, r *model.Referral) (*model.Referral, error) {
	return r, nil
}

func (f *fakeRepo) UpdateReferral(_ context.Context, r *model.Referral) (*model.Referral, error) {
	return r, nil
}

func (f *fakeRepo) DeleteReferral(context.Context, string) error { return nil }

func (f *fakeRepo) FetchReferralOrders(context.Context, string) ([]model.Order, error) {
	f.referralOrderFetches++
	return nil, nil
}

func (f *fakeRepo) RecordPayout(_ context.Context, id string, amount float64) (*model.Referral, error) {
	f.payouts = append(f.payouts, amount)
	for i := range f.referrals {
		if f.referrals[i].ID == id {
			updated := f.referrals[i]
			updated.TotalPaid += amount
			return &updated, nil
		}
	}
	return &model.Referral{Meta: model.Meta{ID: id}, TotalPaid: amount}, nil
}

func authedCtx() context.Context {
	return auth.WithToken(context.Background(), "admin-jwt")
}

func TestListReferralsComputesEarnings(t *testing.T) {
	repo := &fakeRepo{referrals: []model.Referral{{
		Meta:           model.Meta{ID: "r1"},
		Name:           "Anita",
		Code:           "ANITA20",
		DiscountType:   model.DiscountPercentage,
		DiscountValue:  20,
		CommissionRate: 10,
		TotalSales:     1000,
	}}}
	uc := NewMarketingUseCase(repo, cache.NewStore(nil, logger.NewNop()), logger.NewNop())

	page, err := uc.ListReferrals(authedCtx(), &dto.ReferralQuery{})
	if err != nil {
		t.Fatalf("ListReferrals: %v", err)
	}
	if len(page.Items) != 1 {
		t.Fatalf("got %d rows", len(page.Items))
	}

	row := page.Items[0]
	if !row.NetSales.Equal(decimal.NewFromInt(800)) {
		t.Errorf("NetSales = %s, want 800", row.NetSales)
	}
	if !row.Earned.Equal(decimal.NewFromInt(80)) {
		t.Errorf("Earned = %s, want 80", row.Earned)
	}
	if !row.PendingDue.Equal(decimal.NewFromInt(80)) {
		t.Errorf("PendingDue = %s, want 80", row.PendingDue)
	}
}

func TestRecordPayoutValidatesAndInvalidates(t *testing.T) {
	repo := &fakeRepo{referrals: []model.Referral{{Meta: model.Meta{ID: "r1"}, Code: "X"}}}
	store := cache.NewStore(nil, logger.NewNop())
	uc := NewMarketingUseCase(repo, store, logger.NewNop())
	ctx := authedCtx()

	if _, err := uc.RecordPayout(ctx, "r1", 0); err == nil {
		t.Error("expected error for a zero payout")
	}
	if _, err := uc.RecordPayout(ctx, "r1", -10); err == nil {
		t.Error("expected error for a negative payout")
	}
	if len(repo.payouts) != 0 {
		t.Fatalf("invalid payouts reached upstream: %v", repo.payouts)
	}

	// Warm both caches the payout must invalidate.
	if _, err := uc.ListReferrals(ctx, &dto.ReferralQuery{}); err != nil {
		t.Fatalf("ListReferrals: %v", err)
	}
	if _, err := uc.ReferralOrders(ctx, "r1"); err != nil {
		t.Fatalf("ReferralOrders: %v", err)
	}

	if _, err := uc.RecordPayout(ctx, "r1", 50); err != nil {
		t.Fatalf("RecordPayout: %v", err)
	}

	if _, err := uc.ListReferrals(ctx, &dto.ReferralQuery{}); err != nil {
		t.Fatalf("ListReferrals: %v", err)
	}
	if _, err := uc.ReferralOrders(ctx, "r1"); err != nil {
		t.Fatalf("ReferralOrders: %v", err)
	}
	if repo.referralFetches != 2 {
		t.Errorf("referralFetches = %d, want refetch after payout", repo.referralFetches)
	}
	if repo.referralOrderFetches != 2 {
		t.Errorf("referralOrderFetches = %d, want refetch after payout", repo.referralOrderFetches)
	}
}

func TestCreateCouponRequiresCode(t *testing.T) {
	uc := NewMarketingUseCase(&fakeRepo{}, cache.NewStore(nil, logger.NewNop()), logger.NewNop())

	if _, err := uc.CreateCoupon(authedCtx(), &model.Coupon{}); err == nil {
		t.Error("expected error for a blank coupon code")
	}
	if _, err := uc.CreateCoupon(authedCtx(), &model.Coupon{Code: "FESTIVE10"}); err != nil {
		t.Errorf("CreateCoupon: %v", err)
	}
}
