package repository

import (
	"context"
	"net/http"

	"github.com/nutvale/admin-gateway/internal/model"
	"github.com/nutvale/admin-gateway/internal/upstream"
)

type RESTRepository struct {
	client *upstream.Client
}

func NewRESTRepository(client *upstream.Client) *RESTRepository {
	return &RESTRepository{client: client}
}

func (r *RESTRepository) FetchReviews(ctx context.Context) ([]model.Review, error) {
	return upstream.GetList[model.Review](ctx, r.client, "/reviews")
}

func (r *RESTRepository) UpdateStatus(ctx context.Context, id, status string) (*model.Review, error) {
	body := map[string]string{"status": status}
	return upstream.PostOne[model.Review](ctx, r.client, http.MethodPut, "/reviews/"+id+"/status", body)
}

func (r *RESTRepository) Create(ctx context.Context, rv *model.Review) (*model.Review, error) {
	return upstream.PostOne[model.Review](ctx, r.client, http.MethodPost, "/reviews", rv)
}

func (r *RESTRepository) Update(ctx context.Context, rv *model.Review) (*model.Review, error) {
	return upstream.PostOne[model.Review](ctx, r.client, http.MethodPut, "/reviews/"+rv.ID, rv)
}

func (r *RESTRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, "/reviews/"+id)
}
