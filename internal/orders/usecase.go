package orders

import (
	"context"

	"github.com/nutvale/admin-gateway/internal/model"
	"github.com/nutvale/admin-gateway/internal/orders/dto"
)

type UseCase interface {
	ListOrders(ctx context.Context, q *dto.OrderQuery) (*dto.OrderPage, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	UpdateStatus(ctx context.Context, id string, to model.OrderStatus) (*model.Order, error)
	CancelOrder(ctx context.Context, id, reason string) (*model.Order, error)
	AttachTracking(ctx context.Context, id string, input *dto.TrackingInput) (*model.Order, error)

	ListReturns(ctx context.Context, q *dto.RequestQuery) (*dto.ReturnPage, error)
	ResolveReturn(ctx context.Context, id string, input *dto.ResolveInput) (*model.ReturnRequest, error)

	ListReplacements(ctx context.Context, q *dto.RequestQuery) (*dto.ReplacementPage, error)
	ResolveReplacement(ctx context.Context, id string, input *dto.ResolveInput) (*model.ReplacementRequest, error)
}
