package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/nutvale/admin-gateway/internal/auth"
	"github.com/nutvale/admin-gateway/internal/cache"
	"github.com/nutvale/admin-gateway/internal/listquery"
	"github.com/nutvale/admin-gateway/internal/model"
	"github.com/nutvale/admin-gateway/internal/reviews"
	"github.com/nutvale/admin-gateway/internal/reviews/dto"
	"github.com/nutvale/admin-gateway/pkg/logger"
)

type reviewsUseCase struct {
	repo   reviews.Repository
	cache  *cache.Store
	logger logger.ZapLogger
}

func NewReviewsUseCase(repo reviews.Repository, store *cache.Store, log logger.ZapLogger) reviews.UseCase {
	return &reviewsUseCase{
		repo:   repo,
		cache:  store,
		logger: log,
	}
}

func (uc *reviewsUseCase) List(ctx context.Context, q *dto.ReviewQuery) (*dto.ReviewPage, error) {
	all, err := cache.Query(ctx, uc.cache, cache.KeyReviews, auth.Token(ctx) != "", uc.repo.FetchReviews)
	if err != nil {
		return nil, err
	}

	opts := []listquery.Option[model.Review]{
		listquery.WithSearchFields(func(rv model.Review) []string {
			return []string{rv.Author, rv.Text, rv.ProductID}
		}),
		listquery.WithSort(func(a, b model.Review) bool { return a.CreatedAt.After(b.CreatedAt) }),
	}
	if q.Source != "" && !strings.EqualFold(q.Source, "all") {
		opts = append(opts, listquery.WithFilter(func(rv model.Review) bool {
			return strings.EqualFold(rv.Source, q.Source)
		}))
	}
	if q.Status != "" && !strings.EqualFold(q.Status, "all") {
		opts = append(opts, listquery.WithFilter(func(rv model.Review) bool {
			return strings.EqualFold(rv.Status, q.Status)
		}))
	}
	if q.Rating > 0 {
		opts = append(opts, listquery.WithFilter(func(rv model.Review) bool {
			return rv.Rating == q.Rating
		}))
	}

	res := listquery.Run(all, listquery.Params{Search: q.Search, Page: q.Page, PageSize: q.PageSize}, opts...)
	return &dto.ReviewPage{
		Items:        res.Items,
		TotalMatches: res.TotalMatches,
		TotalPages:   res.TotalPages,
		Page:         res.Page,
	}, nil
}

// Moderate moves a user review between Pending/Approved/Rejected, or toggles
// an admin testimonial between Active/Inactive.
func (uc *reviewsUseCase) Moderate(ctx context.Context, id, status string) (*model.Review, error) {
	switch status {
	case model.ReviewPending, model.ReviewApproved, model.ReviewRejected,
		model.TestimonialActive, model.TestimonialInactive:
	default:
		return nil, errors.New("unknown review status")
	}

	updated, err := uc.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.KeyReviews)
	return updated, nil
}

func (uc *reviewsUseCase) CreateTestimonial(ctx context.Context, rv *model.Review) (*model.Review, error) {
	if rv.Rating < 1 || rv.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}
	rv.Source = model.ReviewSourceAdmin
	if rv.Status == "" {
		rv.Status = model.TestimonialActive
	}
	created, err := uc.repo.Create(ctx, rv)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.KeyReviews)
	return created, nil
}

func (uc *reviewsUseCase) UpdateTestimonial(ctx context.Context, rv *model.Review) (*model.Review, error) {
	if rv.Rating < 1 || rv.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}
	updated, err := uc.repo.Update(ctx, rv)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, cache.KeyReviews)
	return updated, nil
}

func (uc *reviewsUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx, cache.KeyReviews)
	return nil
}
