// Package review implements scholarship reviews: create, list, edit, delete.
// Edits and deletes are allowed for the author and for admins.
package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scholarstream/scholarstream-backend/internal/domain"
)

// reviewRepo defines the review repository interface needed by the service.
//
//go:generate moq -rm -out review_repo_mock_test.go . reviewRepo
type reviewRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	ListByScholarship(ctx context.Context, scholarshipID uuid.UUID) ([]domain.Review, error)
	ListByUser(ctx context.Context, email string) ([]domain.Review, error)
	ListAll(ctx context.Context) ([]domain.Review, error)
	Create(ctx context.Context, rv *domain.Review) (*domain.Review, error)
	Update(ctx context.Context, id uuid.UUID, comment string, rating int, reviewDate time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// userRoles resolves the persisted role of a principal.
//
//go:generate moq -rm -out user_roles_mock_test.go . userRoles
type userRoles interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Service implements review operations.
type Service struct {
	log     *slog.Logger
	reviews reviewRepo
	users   userRoles
}

// NewService creates a new review service instance.
func NewService(logger *slog.Logger, reviews reviewRepo, users userRoles) *Service {
	return &Service{
		log:     logger.With("service", "review"),
		reviews: reviews,
		users:   users,
	}
}

// Create publishes a review. The review date is server-assigned.
func (s *Service) Create(ctx context.Context, authorEmail string, input CreateInput) (*domain.Review, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rv := &domain.Review{
		ID:            uuid.New(),
		ScholarshipID: input.ScholarshipID,
		UserEmail:     authorEmail,
		ReviewComment: input.Comment,
		RatingPoint:   input.Rating,
		ReviewDate:    time.Now(),
	}

	created, err := s.reviews.Create(ctx, rv)
	if err != nil {
		return nil, fmt.Errorf("review.Create: %w", err)
	}

	s.log.InfoContext(ctx, "review created",
		slog.String("review_id", created.ID.String()),
		slog.String("scholarship_id", created.ScholarshipID.String()),
	)
	return created, nil
}

// ListByScholarship returns a scholarship's reviews, newest first.
func (s *Service) ListByScholarship(ctx context.Context, scholarshipID uuid.UUID) ([]domain.Review, error) {
	reviews, err := s.reviews.ListByScholarship(ctx, scholarshipID)
	if err != nil {
		return nil, fmt.Errorf("review.ListByScholarship: %w", err)
	}
	return reviews, nil
}

// ListByUser returns the reviews authored by one user, newest first.
func (s *Service) ListByUser(ctx context.Context, email string) ([]domain.Review, error) {
	reviews, err := s.reviews.ListByUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("review.ListByUser: %w", err)
	}
	return reviews, nil
}

// ListAll returns every review, newest first.
func (s *Service) ListAll(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.reviews.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("review.ListAll: %w", err)
	}
	return reviews, nil
}

// Update replaces the comment and rating of a review and refreshes its date.
// Allowed for the author and for admins.
func (s *Service) Update(ctx context.Context, actorEmail string, id uuid.UUID, input UpdateInput) error {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return err
	}

	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("review.Update: %w", err)
	}
	if err := s.authorize(ctx, actorEmail, rv); err != nil {
		return err
	}

	if err := s.reviews.Update(ctx, id, input.Comment, input.Rating, time.Now()); err != nil {
		return fmt.Errorf("review.Update: %w", err)
	}

	s.log.InfoContext(ctx, "review updated", slog.String("review_id", id.String()))
	return nil
}

// Delete removes a review. Allowed for the author and for admins.
func (s *Service) Delete(ctx context.Context, actorEmail string, id uuid.UUID) error {
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("review.Delete: %w", err)
	}
	if err := s.authorize(ctx, actorEmail, rv); err != nil {
		return err
	}

	if err := s.reviews.Delete(ctx, id); err != nil {
		return fmt.Errorf("review.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "review deleted", slog.String("review_id", id.String()))
	return nil
}

// authorize allows the author through directly and everyone else only with an
// Admin role on record.
func (s *Service) authorize(ctx context.Context, actorEmail string, rv *domain.Review) error {
	if rv.IsOwnedBy(actorEmail) {
		return nil
	}

	actor, err := s.users.GetByEmail(ctx, actorEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrForbidden
		}
		return fmt.Errorf("review: resolve actor role: %w", err)
	}
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}
