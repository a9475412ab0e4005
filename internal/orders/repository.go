package orders

import (
	"context"

	"github.com/nutvale/admin-gateway/internal/model"
	"github.com/nutvale/admin-gateway/internal/orders/dto"
)

type Repository interface {
	FetchOrders(ctx context.Context) ([]model.Order, error)
	FetchOrder(ctx context.Context, id string) (*model.Order, error)
	UpdateStatus(ctx context.Context, id string, to model.OrderStatus) (*model.Order, error)
	Cancel(ctx context.Context, id string, c *model.Cancellation) (*model.Order, error)
	AttachTracking(ctx context.Context, id string, input *dto.TrackingInput) (*model.Order, error)

	FetchReturns(ctx context.Context) ([]model.ReturnRequest, error)
	ResolveReturn(ctx context.Context, id string, input *dto.ResolveInput) (*model.ReturnRequest, error)

	FetchReplacements(ctx context.Context) ([]model.ReplacementRequest, error)
	ResolveReplacement(ctx context.Context, id string, input *dto.ResolveInput) (*model.ReplacementRequest, error)
}
