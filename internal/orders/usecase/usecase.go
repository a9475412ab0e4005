package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nutvale/admin-gateway/internal/auth"
	"github.com/nutvale/admin-gateway/internal/cache"
	"github.com/nutvale/admin-gateway/internal/listquery"
	"github.com/nutvale/admin-gateway/internal/model"
	"github.com/nutvale/admin-gateway/internal/orders"
	"github.com/nutvale/admin-gateway/internal/orders/dto"
	"github.com/nutvale/admin-gateway/pkg/logger"
)

var (
	ErrNotCancellable    = errors.New("order can no longer be cancelled")
	ErrInvalidTransition = errors.New("status transition not permitted")
)

type ordersUseCase struct {
	repo   orders.Repository
	cache  *cache.Store
	logger logger.ZapLogger
}

func NewOrdersUseCase(repo orders.Repository, store *cache.Store, log logger.ZapLogger) orders.UseCase {
	return &ordersUseCase{
		repo:   repo,
		cache:  store,
		logger: log,
	}
}

func enabled(ctx context.Context) bool {
	return auth.Token(ctx) != ""
}

func (uc *ordersUseCase) ListOrders(ctx context.Context, q *dto.OrderQuery) (*dto.OrderPage, error) {
	all, err := cache.Query(ctx, uc.cache, cache.KeyOrders, enabled(ctx), uc.repo.FetchOrders)
	if err != nil {
		return nil, err
	}

	opts := []listquery.Option[model.Order]{
		listquery.WithSearchFields(func(o model.Order) []string {
			return []string{o.ID, o.CustomerName}
		}),
		listquery.WithSort(func(a, b model.Order) bool { return a.CreatedAt.After(b.CreatedAt) }),
	}
	if q.Status != "" && !strings.EqualFold(q.Status, "all") {
		opts = append(opts, listquery.WithFilter(func(o model.Order) bool {
			return strings.EqualFold(string(o.Status), q.Status)
		}))
	}

	res := listquery.Run(all, listquery.Params{Search: q.Search, Page: q.Page, PageSize: q.PageSize}, opts...)
	return &dto.OrderPage{
		Items:        res.Items,
		TotalMatches: res.TotalMatches,
		TotalPages:   res.TotalPages,
		Page:         res.Page,
	}, nil
}

func (uc *ordersUseCase) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	return uc.repo.FetchOrder(ctx, id)
}

func (uc *ordersUseCase) UpdateStatus(ctx context.Context, id string, to model.OrderStatus) (*model.Order, error) {
	order, err := uc.repo.FetchOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, to)
	}

	updated, err := uc.repo.UpdateStatus(ctx, id, to)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.KeyOrders)
	return updated, nil
}

// CancelOrder cancels a pre-shipment order. Online payments get a refund
// record seeded in pending; cash-on-delivery has nothing to refund.
func (uc *ordersUseCase) CancelOrder(ctx context.Context, id, reason string) (*model.Order, error) {
	order, err := uc.repo.FetchOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.Cancellable() {
		return nil, fmt.Errorf("%w: status %s", ErrNotCancellable, order.Status)
	}

	refund := model.RefundNotApplicable
	if order.PaymentMethod == model.PaymentOnline {
		refund = model.RefundPending
	}
	cancelled, err := uc.repo.Cancel(ctx, id, &model.Cancellation{
		Reason:       reason,
		RefundStatus: refund,
		CancelledAt:  time.Now(),
	})
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.KeyOrders)
	return cancelled, nil
}

func (uc *ordersUseCase) AttachTracking(ctx context.Context, id string, input *dto.TrackingInput) (*model.Order, error) {
	if input.AWBCode == "" {
		return nil, errors.New("awb code is required")
	}
	updated, err := uc.repo.AttachTracking(ctx, id, input)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.KeyOrders)
	return updated, nil
}

// --- Returns ---

func (uc *ordersUseCase) ListReturns(ctx context.Context, q *dto.RequestQuery) (*dto.ReturnPage, error) {
	all, err := cache.Query(ctx, uc.cache, cache.KeyReturns, enabled(ctx), uc.repo.FetchReturns)
	if err != nil {
		return nil, err
	}

	opts := []listquery.Option[model.ReturnRequest]{
		listquery.WithSearchFields(func(rr model.ReturnRequest) []string {
			return []string{rr.ID, rr.OrderID}
		}),
		listquery.WithSort(func(a, b model.ReturnRequest) bool { return a.CreatedAt.After(b.CreatedAt) }),
	}
	if q.Status != "" && !strings.EqualFold(q.Status, "all") {
		opts = append(opts, listquery.WithFilter(func(rr model.ReturnRequest) bool {
			return strings.EqualFold(string(rr.Status), q.Status)
		}))
	}

	res := listquery.Run(all, listquery.Params{Search: q.Search, Page: q.Page, PageSize: q.PageSize}, opts...)
	return &dto.ReturnPage{
		Items:        res.Items,
		TotalMatches: res.TotalMatches,
		TotalPages:   res.TotalPages,
		Page:         res.Page,
	}, nil
}

func (uc *ordersUseCase) ResolveReturn(ctx context.Context, id string, input *dto.ResolveInput) (*model.ReturnRequest, error) {
	current, err := uc.findReturn(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(input.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, input.Status)
	}

	resolved, err := uc.repo.ResolveReturn(ctx, id, input)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.KeyReturns, cache.KeyOrders)
	return resolved, nil
}

func (uc *ordersUseCase) findReturn(ctx context.Context, id string) (*model.ReturnRequest, error) {
	all, err := cache.Query(ctx, uc.cache, cache.KeyReturns, true, uc.repo.FetchReturns)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, errors.New("return request not found")
}

// --- Replacements ---

func (uc *ordersUseCase) ListReplacements(ctx context.Context, q *dto.RequestQuery) (*dto.ReplacementPage, error) {
	all, err := cache.Query(ctx, uc.cache, cache.KeyReplacements, enabled(ctx), uc.repo.FetchReplacements)
	if err != nil {
		return nil, err
	}

	opts := []listquery.Option[model.ReplacementRequest]{
		listquery.WithSearchFields(func(rr model.ReplacementRequest) []string {
			return []string{rr.ID, rr.OrderID}
		}),
		listquery.WithSort(func(a, b model.ReplacementRequest) bool { return a.CreatedAt.After(b.CreatedAt) }),
	}
	if q.Status != "" && !strings.EqualFold(q.Status, "all") {
		opts = append(opts, listquery.WithFilter(func(rr model.ReplacementRequest) bool {
			return strings.EqualFold(string(rr.Status), q.Status)
		}))
	}

	res := listquery.Run(all, listquery.Params{Search: q.Search, Page: q.Page, PageSize: q.PageSize}, opts...)
	return &dto.ReplacementPage{
		Items:        res.Items,
		TotalMatches: res.TotalMatches,
		TotalPages:   res.TotalPages,
		Page:         res.Page,
	}, nil
}

func (uc *ordersUseCase) ResolveReplacement(ctx context.Context, id string, input *dto.ResolveInput) (*model.ReplacementRequest, error) {
	all, err := cache.Query(ctx, uc.cache, cache.KeyReplacements, true, uc.repo.FetchReplacements)
	if err != nil {
		return nil, err
	}
	var current *model.ReplacementRequest
	for i := range all {
		if all[i].ID == id {
			current = &all[i]
			break
		}
	}
	if current == nil {
		return nil, errors.New("replacement request not found")
	}
	if !current.Status.CanTransitionTo(input.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, input.Status)
	}

	resolved, err := uc.repo.ResolveReplacement(ctx, id, input)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.KeyReplacements, cache.KeyOrders)
	return resolved, nil
}
