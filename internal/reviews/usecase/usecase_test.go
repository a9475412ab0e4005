package usecase

import (
	"context"
	"testing"

	"github.com/nutvale/admin-gateway/internal/auth"
	"github.com/nutvale/admin-gateway/internal/cache"
	"github.com/nutvale/admin-gateway/internal/model"
	"github.com/nutvale/admin-gateway/internal/reviews/dto"
	"github.com/nutvale/admin-gateway/pkg/logger"
)

type fakeRepo struct {
	reviews       []model.Review
	statusUpdates []string
	created       []*model.Review
}

func (f *fakeRepo) FetchReviews(context.Context) ([]model.Review, error) { return f.reviews, nil }

func (f *fakeRepo) UpdateStatus(_ context.Context, id, status string) (*model.Review, error) {
	f.statusUpdates = append(f.statusUpdates, status)
	return &model.Review{Meta: model.Meta{ID: id}, Status: status}, nil
}

func (f *fakeRepo) Create(_ context.Context, rv *model.Review) (*model.Review, error) {
	f.created = append(f.created, rv)
	return rv, nil
}

func (f *fakeRepo) Update(_ context.Context, rv *model.Review) (*model.Review, error) {
	return rv, nil
}

func (f *fakeRepo) Delete(context.Context, string) error { return nil }

func authedCtx() context.Context {
	return auth.WithToken(context.Background(), "admin-jwt")
}

func TestModerateAcceptsBothVocabularies(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewReviewsUseCase(repo, cache.NewStore(nil, logger.NewNop()), logger.NewNop())

	for _, status := range []string{
		model.ReviewPending, model.ReviewApproved, model.ReviewRejected,
		model.TestimonialActive, model.TestimonialInactive,
	} {
		if _, err := uc.Moderate(authedCtx(), "rv1", status); err != nil {
			t.Errorf("Moderate(%q): %v", status, err)
		}
	}

	if _, err := uc.Moderate(authedCtx(), "rv1", "Archived"); err == nil {
		t.Error("expected error for an unknown status")
	}
	if len(repo.statusUpdates) != 5 {
		t.Errorf("statusUpdates = %v", repo.statusUpdates)
	}
}

func TestCreateTestimonialForcesAdminSource(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewReviewsUseCase(repo, cache.NewStore(nil, logger.NewNop()), logger.NewNop())

	created, err := uc.CreateTestimonial(authedCtx(), &model.Review{
		Author: "Priya",
		Rating: 5,
		Text:   "Best mamra almonds I have found online.",
		Source: model.ReviewSourceUser, // spoofed; must be overridden
	})
	if err != nil {
		t.Fatalf("CreateTestimonial: %v", err)
	}
	if created.Source != model.ReviewSourceAdmin {
		t.Errorf("Source = %q, want admin", created.Source)
	}
	if created.Status != model.TestimonialActive {
		t.Errorf("Status = %q, want default Active", created.Status)
	}
}

func TestCreateTestimonialValidatesRating(t *testing.T) {
	uc := NewReviewsUseCase(&fakeRepo{}, cache.NewStore(nil, logger.NewNop()), logger.NewNop())

	for _, rating := range []int{0, -1, 6} {
		if _, err := uc.CreateTestimonial(authedCtx(), &model.Review{Rating: rating}); err == nil {
			t.Errorf("rating %d accepted", rating)
		}
	}
}

func TestListFiltersBySourceAndStatus(t *testing.T) {
	repo := &fakeRepo{reviews: []model.Review{
		{Meta: model.Meta{ID: "rv1"}, Source: model.ReviewSourceUser, Status: model.ReviewPending, Rating: 4},
		{Meta: model.Meta{ID: "rv2"}, Source: model.ReviewSourceUser, Status: model.ReviewApproved, Rating: 5},
		{Meta: model.Meta{ID: "rv3"}, Source: model.ReviewSourceAdmin, Status: model.TestimonialActive, Rating: 5},
	}}
	uc := NewReviewsUseCase(repo, cache.NewStore(nil, logger.NewNop()), logger.NewNop())

	pending, err := uc.List(authedCtx(), &dto.ReviewQuery{Source: "user", Status: "Pending"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if pending.TotalMatches != 1 || pending.Items[0].ID != "rv1" {
		t.Errorf("got %+v, want only rv1", pending.Items)
	}

	fiveStar, err := uc.List(authedCtx(), &dto.ReviewQuery{Rating: 5})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if fiveStar.TotalMatches != 2 {
		t.Errorf("TotalMatches = %d, want 2", fiveStar.TotalMatches)
	}
}
