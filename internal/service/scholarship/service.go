// Package scholarship implements the scholarship catalog operations.
package scholarship

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scholarstream/scholarstream-backend/internal/domain"
)

// scholarshipRepo defines the scholarship repository interface needed by the service.
//
//go:generate moq -rm -out scholarship_repo_mock_test.go . scholarshipRepo
type scholarshipRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Scholarship, error)
	List(ctx context.Context, limit int) ([]domain.Scholarship, error)
	Create(ctx context.Context, s *domain.Scholarship) (*domain.Scholarship, error)
	Update(ctx context.Context, id uuid.UUID, fields domain.ScholarshipUpdate) (*domain.Scholarship, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements scholarship operations.
type Service struct {
	log          *slog.Logger
	scholarships scholarshipRepo
}

// NewService creates a new scholarship service instance.
func NewService(logger *slog.Logger, scholarships scholarshipRepo) *Service {
	return &Service{
		log:          logger.With("service", "scholarship"),
		scholarships: scholarships,
	}
}

// Get returns a scholarship by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Scholarship, error) {
	sch, err := s.scholarships.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("scholarship.Get: %w", err)
	}
	return sch, nil
}

// List returns up to limit scholarships, newest first. A limit of 0 returns
// the full catalog.
func (s *Service) List(ctx context.Context, limit int) ([]domain.Scholarship, error) {
	if limit < 0 {
		return nil, domain.NewValidationError("limit", "must not be negative")
	}

	scholarships, err := s.scholarships.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("scholarship.List: %w", err)
	}
	return scholarships, nil
}

// Create publishes a new scholarship. The post date is server-assigned.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Scholarship, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sch := &domain.Scholarship{
		ID:                  uuid.New(),
		UniversityName:      input.UniversityName,
		ScholarshipName:     input.ScholarshipName,
		Category:            input.Category,
		Degree:              input.Degree,
		ApplicationFees:     input.ApplicationFees,
		Description:         input.Description,
		ScholarshipPostDate: time.Now(),
	}

	created, err := s.scholarships.Create(ctx, sch)
	if err != nil {
		return nil, fmt.Errorf("scholarship.Create: %w", err)
	}

	s.log.InfoContext(ctx, "scholarship created",
		slog.String("scholarship_id", created.ID.String()),
		slog.String("scholarship_name", created.ScholarshipName),
	)
	return created, nil
}

// Update applies a partial update and returns the updated record. The post
// date is immutable.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Scholarship, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	fields := input.Fields()
	if fields.IsEmpty() {
		return s.Get(ctx, id)
	}

	updated, err := s.scholarships.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("scholarship.Update: %w", err)
	}

	s.log.InfoContext(ctx, "scholarship updated", slog.String("scholarship_id", id.String()))
	return updated, nil
}

// Delete removes a scholarship.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.scholarships.Delete(ctx, id); err != nil {
		return fmt.Errorf("scholarship.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "scholarship deleted", slog.String("scholarship_id", id.String()))
	return nil
}
