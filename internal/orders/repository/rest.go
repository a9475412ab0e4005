package repository

import (
	"context"
	"net/http"

	"github.com/nutvale/admin-gateway/internal/model"
	"github.com/nutvale/admin-gateway/internal/orders/dto"
	"github.com/nutvale/admin-gateway/internal/upstream"
)

type RESTRepository struct {
	client *upstream.Client
}

func NewRESTRepository(client *upstream.Client) *RESTRepository {
	return &RESTRepository{client: client}
}

func (r *RESTRepository) FetchOrders(ctx context.Context) ([]model.Order, error) {
	return upstream.GetList[model.Order](ctx, r.client, "/orders")
}

func (r *RESTRepository) FetchOrder(ctx context.Context, id string) (*model.Order, error) {
	return upstream.GetOne[model.Order](ctx, r.client, "/orders/"+id)
}

func (r *RESTRepository) UpdateStatus(ctx context.Context, id string, to model.OrderStatus) (*model.Order, error) {
	body := map[string]string{"status": string(to)}
	return upstream.PostOne[model.Order](ctx, r.client, http.MethodPut, "/orders/"+id+"/status", body)
}

func (r *RESTRepository) Cancel(ctx context.Context, id string, c *model.Cancellation) (*model.Order, error) {
	return upstream.PostOne[model.Order](ctx, r.client, http.MethodPost, "/orders/"+id+"/cancel", c)
}

func (r *RESTRepository) AttachTracking(ctx context.Context, id string, input *dto.TrackingInput) (*model.Order, error) {
	return upstream.PostOne[model.Order](ctx, r.client, http.MethodPost, "/orders/"+id+"/tracking", input)
}

func (r *RESTRepository) FetchReturns(ctx context.Context) ([]model.ReturnRequest, error) {
	return upstream.GetList[model.ReturnRequest](ctx, r.client, "/returns")
}

func (r *RESTRepository) ResolveReturn(ctx context.Context, id string, input *dto.ResolveInput) (*model.ReturnRequest, error) {
	path := "/returns/" + id + "/approve"
	if input.Status == model.ReturnRejected {
		path = "/returns/" + id + "/reject"
	}
	return upstream.PostOne[model.ReturnRequest](ctx, r.client, http.MethodPost, path, input)
}

func (r *RESTRepository) FetchReplacements(ctx context.Context) ([]model.ReplacementRequest, error) {
	return upstream.GetList[model.ReplacementRequest](ctx, r.client, "/replacements")
}

func (r *RESTRepository) ResolveReplacement(ctx context.Context, id string, input *dto.ResolveInput) (*model.ReplacementRequest, error) {
	path := "/replacements/" + id + "/approve"
	if input.Status == model.ReturnRejected {
		path = "/replacements/" + id + "/reject"
	}
	return upstream.PostOne[model.ReplacementRequest](ctx, r.client, http.MethodPost, path, input)
}
