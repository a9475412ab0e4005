package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/nutvale/admin-gateway/internal/auth"
	"github.com/nutvale/admin-gateway/internal/cache"
	"github.com/nutvale/admin-gateway/internal/listquery"
	"github.com/nutvale/admin-gateway/internal/marketing"
	"github.com/nutvale/admin-gateway/internal/marketing/dto"
	"github.com/nutvale/admin-gateway/internal/model"
	"github.com/nutvale/admin-gateway/pkg/logger"
)

type marketingUseCase struct {
	repo   marketing.Repository
	cache  *cache.Store
	logger logger.ZapLogger
}

func NewMarketingUseCase(repo marketing.Repository, store *cache.Store, log logger.ZapLogger) marketing.UseCase {
	return &marketingUseCase{
		repo:   repo,
		cache:  store,
		logger: log,
	}
}

func enabled(ctx context.Context) bool {
	return auth.Token(ctx) != ""
}

// --- Coupons ---

func (uc *marketingUseCase) ListCoupons(ctx context.Context, q *dto.CouponQuery) (*dto.CouponPage, error) {
	coupons, err := cache.Query(ctx, uc.cache, cache.KeyCoupons, enabled(ctx), uc.repo.FetchCoupons)
	if err != nil {
		return nil, err
	}

	opts := []listquery.Option[model.Coupon]{
		listquery.WithSearchFields(func(c model.Coupon) []string {
			return []string{c.Code, c.Description}
		}),
		listquery.WithSort(func(a, b model.Coupon) bool { return a.CreatedAt.After(b.CreatedAt) }),
	}
	if q.Active != nil {
		opts = append(opts, listquery.WithFilter(func(c model.Coupon) bool {
			return c.Active == *q.Active
		}))
	}

	res := listquery.Run(coupons, listquery.Params{Search: q.Search, Page: q.Page, PageSize: q.PageSize}, opts...)
	return &dto.CouponPage{
		Items:        res.Items,
		TotalMatches: res.TotalMatches,
		TotalPages:   res.TotalPages,
		Page:         res.Page,
	}, nil
}

func (uc *marketingUseCase) CreateCoupon(ctx context.Context, c *model.Coupon) (*model.Coupon, error) {
	if c.Code == "" {
		return nil, errors.New("coupon code is required")
	}
	created, err := uc.repo.CreateCoupon(ctx, c)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.KeyCoupons)
	return created, nil
}

func (uc *marketingUseCase) UpdateCoupon(ctx context.Context, c *model.Coupon) (*model.Coupon, error) {
	updated, err := uc.repo.UpdateCoupon(ctx, c)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.KeyCoupons)
	return updated, nil
}

func (uc *marketingUseCase) DeleteCoupon(ctx context.Context, id string) error {
	if err := uc.repo.DeleteCoupon(ctx, id); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, cache.KeyCoupons)
	return nil
}

// --- Referrals ---

func (uc *marketingUseCase) ListReferrals(ctx context.Context, q *dto.ReferralQuery) (*dto.ReferralPage, error) {
	referrals, err := cache.Query(ctx, uc.cache, cache.KeyReferrals, enabled(ctx), uc.repo.FetchReferrals)
	if err != nil {
		return nil, err
	}

	opts := []listquery.Option[model.Referral]{
		listquery.WithSearchFields(func(r model.Referral) []string {
			return []string{r.Name, r.Code, r.Platform}
		}),
		listquery.WithSort(func(a, b model.Referral) bool { return a.CreatedAt.After(b.CreatedAt) }),
	}
	if q.Platform != "" && !strings.EqualFold(q.Platform, "all") {
		opts = append(opts, listquery.WithFilter(func(r model.Referral) bool {
			return strings.EqualFold(r.Platform, q.Platform)
		}))
	}

	res := listquery.Run(referrals, listquery.Params{Search: q.Search, Page: q.Page, PageSize: q.PageSize}, opts...)

	rows := make([]dto.ReferralRow, len(res.Items))
	for i, r := range res.Items {
		e := marketing.ComputeEarnings(&r)
		rows[i] = dto.ReferralRow{
			Referral:   r,
			NetSales:   e.NetSales,
			Earned:     e.Earned,
			PendingDue: e.PendingDue,
		}
	}
	return &dto.ReferralPage{
		Items:        rows,
		TotalMatches: res.TotalMatches,
		TotalPages:   res.TotalPages,
		Page:         res.Page,
	}, nil
}

func (uc *marketingUseCase) CreateReferral(ctx context.Context, r *model.Referral) (*model.Referral, error) {
	if r.Code == "" {
		return nil, errors.New("referral code is required")
	}
	created, err := uc.repo.CreateReferral(ctx, r)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.KeyReferrals)
	return created, nil
}

func (uc *marketingUseCase) UpdateReferral(ctx context.Context, r *model.Referral) (*model.Referral, error) {
	updated, err := uc.repo.UpdateReferral(ctx, r)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.KeyReferrals)
	return updated, nil
}

func (uc *marketingUseCase) DeleteReferral(ctx context.Context, id string) error {
	if err := uc.repo.DeleteReferral(ctx, id); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, cache.KeyReferrals, cache.KeyReferralOrders(id))
	return nil
}

func (uc *marketingUseCase) ReferralOrders(ctx context.Context, id string) ([]model.Order, error) {
	return cache.Query(ctx, uc.cache, cache.KeyReferralOrders(id), enabled(ctx), func(ctx context.Context) ([]model.Order, error) {
		return uc.repo.FetchReferralOrders(ctx, id)
	})
}

func (uc *marketingUseCase) RecordPayout(ctx context.Context, id string, amount float64) (*model.Referral, error) {
	if amount <= 0 {
		return nil, errors.New("payout amount must be positive")
	}
	updated, err := uc.repo.RecordPayout(ctx, id, amount)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.KeyReferrals, cache.KeyReferralOrders(id))
	return updated, nil
}
