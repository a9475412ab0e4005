package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/nutvale/admin-gateway/internal/auth"
	"github.com/nutvale/admin-gateway/internal/cache"
	"github.com/nutvale/admin-gateway/internal/model"
	"github.com/nutvale/admin-gateway/internal/orders/dto"
	"github.com/nutvale/admin-gateway/pkg/logger"
)

type fakeRepo struct {
	orders       []model.Order
	returns      []model.ReturnRequest
	replacements []model.ReplacementRequest

	fetchCalls    int
	statusUpdates []model.OrderStatus
	cancellations []*model.Cancellation
}

func (f *fakeRepo) FetchOrders(context.Context) ([]model.Order, error) {
	f.fetchCalls++
	return f.orders, nil
}

func (f *fakeRepo) FetchOrder(_ context.Context, id string) (*model.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			return &f.orders[i], nil
		}
	}
	return nil, errors.New("order not found")
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id string, to model.OrderStatus) (*model.Order, error) {
	f.statusUpdates = append(f.statusUpdates, to)
	o, err := f.FetchOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := *o
	updated.Status = to
	return &updated, nil
}

func (f *fakeRepo) Cancel(ctx context.Context, id string, c *model.Cancellation) (*model.Order, error) {
	f.cancellations = append(f.cancellations, c)
	o, err := f.FetchOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	cancelled := *o
	cancelled.Status = model.OrderCancelled
	cancelled.Cancellation = c
	return &cancelled, nil
}

func (f *fakeRepo) AttachTracking(ctx context.Context, id string, input *dto.TrackingInput) (*model.Order, error) {
	o, err := f.FetchOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := *o
	updated.Shipment = &model.Shipment{AWBCode: input.AWBCode, Courier: input.Courier}
	return &updated, nil
}

func (f *fakeRepo) FetchReturns(context.Context) ([]model.ReturnRequest, error) {
	return f.returns, nil
}

func (f *fakeRepo) ResolveReturn(_ context.Context, id string, input *dto.ResolveInput) (*model.ReturnRequest, error) {
	for i := range f.returns {
		if f.returns[i].ID == id {
			resolved := f.returns[i]
			resolved.Status = input.Status
			resolved.PickupAWB = input.PickupAWB
			return &resolved, nil
		}
	}
	return nil, errors.New("return not found")
}

func (f *fakeRepo) FetchReplacements(context.Context) ([]model.ReplacementRequest, error) {
	return f.replacements, nil
}

func (f *fakeRepo) ResolveReplacement(_ context.Context, id string, input *dto.ResolveInput) (*model.ReplacementRequest, error) {
	for i := range f.replacements {
		if f.replacements[i].ID == id {
			resolved := f.replacements[i]
			resolved.Status = input.Status
			return &resolved, nil
		}
	}
	return nil, errors.New("replacement not found")
}

func order(id string, status model.OrderStatus, payment string) model.Order {
	return model.Order{
		Meta:          model.Meta{ID: id},
		Status:        status,
		PaymentMethod: payment,
	}
}

func authedCtx() context.Context {
	return auth.WithToken(context.Background(), "admin-jwt")
}

func TestCancelOrderOnlineSeedsPendingRefund(t *testing.T) {
	repo := &fakeRepo{orders: []model.Order{order("o1", model.OrderProcessing, model.PaymentOnline)}}
	uc := NewOrdersUseCase(repo, cache.NewStore(nil, logger.NewNop()), logger.NewNop())

	cancelled, err := uc.CancelOrder(authedCtx(), "o1", "customer request")
	if err != nil {
		t.Fatalf("CancelOrder: %v", err)
	}
	if cancelled.Status != model.OrderCancelled {
		t.Errorf("Status = %s, want Cancelled", cancelled.Status)
	}
	if cancelled.Cancellation == nil {
		t.Fatal("no cancellation record")
	}
	if cancelled.Cancellation.RefundStatus != model.RefundPending {
		t.Errorf("RefundStatus = %s, want pending for an online payment", cancelled.Cancellation.RefundStatus)
	}
	if cancelled.Cancellation.Reason != "customer request" {
		t.Errorf("Reason = %q", cancelled.Cancellation.Reason)
	}
	if cancelled.Cancellation.CancelledAt.IsZero() {
		t.Error("CancelledAt not set")
	}
}

func TestCancelOrderCODSkipsRefund(t *testing.T) {
	repo := &fakeRepo{orders: []model.Order{order("o1", model.OrderPending, model.PaymentCOD)}}
	uc := NewOrdersUseCase(repo, cache.NewStore(nil, logger.NewNop()), logger.NewNop())

	cancelled, err := uc.CancelOrder(authedCtx(), "o1", "out of stock")
	if err != nil {
		t.Fatalf("CancelOrder: %v", err)
	}
	if cancelled.Cancellation.RefundStatus != model.RefundNotApplicable {
		t.Errorf("RefundStatus = %s, want not_applicable for COD", cancelled.Cancellation.RefundStatus)
	}
}

func TestCancelOrderRejectsShippedAndLater(t *testing.T) {
	for _, status := range []model.OrderStatus{model.OrderShipped, model.OrderDelivered, model.OrderCancelled} {
		repo := &fakeRepo{orders: []model.Order{order("o1", status, model.PaymentOnline)}}
		uc := NewOrdersUseCase(repo, cache.NewStore(nil, logger.NewNop()), logger.NewNop())

		if _, err := uc.CancelOrder(authedCtx(), "o1", "too late"); !errors.Is(err, ErrNotCancellable) {
			t.Errorf("status %s: err = %v, want ErrNotCancellable", status, err)
		}
		if len(repo.cancellations) != 0 {
			t.Errorf("status %s: cancel reached upstream", status)
		}
	}
}

func TestUpdateStatusGuardsTransitions(t *testing.T) {
	repo := &fakeRepo{orders: []model.Order{order("o1", model.OrderDelivered, model.PaymentOnline)}}
	uc := NewOrdersUseCase(repo, cache.NewStore(nil, logger.NewNop()), logger.NewNop())

	if _, err := uc.UpdateStatus(authedCtx(), "o1", model.OrderShipped); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
	if len(repo.statusUpdates) != 0 {
		t.Error("invalid transition reached upstream")
	}

	updated, err := uc.UpdateStatus(authedCtx(), "o1", model.OrderReturnInit)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != model.OrderReturnInit {
		t.Errorf("Status = %s", updated.Status)
	}
}

func TestUpdateStatusInvalidatesOrderCache(t *testing.T) {
	repo := &fakeRepo{orders: []model.Order{order("o1", model.OrderPending, model.PaymentCOD)}}
	store := cache.NewStore(nil, logger.NewNop())
	uc := NewOrdersUseCase(repo, store, logger.NewNop())
	ctx := authedCtx()

	if _, err := uc.ListOrders(ctx, &dto.OrderQuery{}); err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if _, err := uc.ListOrders(ctx, &dto.OrderQuery{}); err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if repo.fetchCalls != 1 {
		t.Fatalf("fetchCalls = %d, want 1 before mutation", repo.fetchCalls)
	}

	if _, err := uc.UpdateStatus(ctx, "o1", model.OrderProcessing); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if _, err := uc.ListOrders(ctx, &dto.OrderQuery{}); err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if repo.fetchCalls != 2 {
		t.Errorf("fetchCalls = %d, want refetch after mutation", repo.fetchCalls)
	}
}

func TestListOrdersFiltersByStatus(t *testing.T) {
	repo := &fakeRepo{orders: []model.Order{
		order("o1", model.OrderPending, model.PaymentCOD),
		order("o2", model.OrderShipped, model.PaymentOnline),
		order("o3", model.OrderPending, model.PaymentOnline),
	}}
	uc := NewOrdersUseCase(repo, cache.NewStore(nil, logger.NewNop()), logger.NewNop())

	page, err := uc.ListOrders(authedCtx(), &dto.OrderQuery{Status: "pending"})
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if page.TotalMatches != 2 {
		t.Errorf("TotalMatches = %d, want 2", page.TotalMatches)
	}

	all, err := uc.ListOrders(authedCtx(), &dto.OrderQuery{Status: "all"})
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if all.TotalMatches != 3 {
		t.Errorf("TotalMatches = %d, want 3 for the All tab", all.TotalMatches)
	}
}

func TestListOrdersUnauthenticatedReturnsEmpty(t *testing.T) {
	repo := &fakeRepo{orders: []model.Order{order("o1", model.OrderPending, model.PaymentCOD)}}
	uc := NewOrdersUseCase(repo, cache.NewStore(nil, logger.NewNop()), logger.NewNop())

	page, err := uc.ListOrders(context.Background(), &dto.OrderQuery{})
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if page.TotalMatches != 0 {
		t.Errorf("TotalMatches = %d, want 0 without a token", page.TotalMatches)
	}
	if repo.fetchCalls != 0 {
		t.Errorf("fetchCalls = %d, want 0 without a token", repo.fetchCalls)
	}
}

func TestResolveReturnGuardsTransitions(t *testing.T) {
	repo := &fakeRepo{returns: []model.ReturnRequest{
		{Meta: model.Meta{ID: "r1"}, OrderID: "o1", Status: model.ReturnPending},
	}}
	uc := NewOrdersUseCase(repo, cache.NewStore(nil, logger.NewNop()), logger.NewNop())

	if _, err := uc.ResolveReturn(authedCtx(), "r1", &dto.ResolveInput{Status: model.ReturnRefunded}); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}

	resolved, err := uc.ResolveReturn(authedCtx(), "r1", &dto.ResolveInput{Status: model.ReturnApproved, PickupAWB: "AWB42"})
	if err != nil {
		t.Fatalf("ResolveReturn: %v", err)
	}
	if resolved.Status != model.ReturnApproved || resolved.PickupAWB != "AWB42" {
		t.Errorf("resolved = %+v", resolved)
	}
}
