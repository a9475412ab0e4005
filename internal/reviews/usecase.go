package reviews

import (
	"context"

	"github.com/nutvale/admin-gateway/internal/model"
	"github.com/nutvale/admin-gateway/internal/reviews/dto"
)

type UseCase interface {
	List(ctx context.Context, q *dto.ReviewQuery) (*dto.ReviewPage, error)
	Moderate(ctx context.Context, id, status string) (*model.Review, error)
	CreateTestimonial(ctx context.Context, rv *model.Review) (*model.Review, error)
	UpdateTestimonial(ctx context.Context, rv *model.Review) (*model.Review, error)
	Delete(ctx context.Context, id string) error
}
