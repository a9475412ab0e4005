package reviews

import (
	"context"

	"github.com/nutvale/admin-gateway/internal/model"
)

type Repository interface {
	FetchReviews(ctx context.Context) ([]model.Review, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.Review, error)
	Create(ctx context.Context, rv *model.Review) (*model.Review, error)
	Update(ctx context.Context, rv *model.Review) (*model.Review, error)
	Delete(ctx context.Context, id string) error
}
