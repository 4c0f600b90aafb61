// Package application implements the application lifecycle: submission,
// listing, contact edits, moderation and removal. Payment state is owned by
// the payment service and is never written here.
package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scholarstream/scholarstream-backend/internal/domain"
)

// appRepo defines the application repository interface needed by the service.
//
//go:generate moq -rm -out app_repo_mock_test.go . appRepo
type appRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	ListByUserEmail(ctx context.Context, email string) ([]domain.Application, error)
	ListAll(ctx context.Context) ([]domain.Application, error)
	Create(ctx context.Context, a *domain.Application) (*domain.Application, error)
	UpdateContact(ctx context.Context, id uuid.UUID, phone, address string) error
	UpdateModeration(ctx context.Context, id uuid.UUID, status *domain.ApplicationStatus, feedback *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// userRoles resolves the persisted role of a principal.
//
//go:generate moq -rm -out user_roles_mock_test.go . userRoles
type userRoles interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// txRunner executes a function within a storage transaction.
//
//go:generate moq -rm -out tx_runner_mock_test.go . txRunner
type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements application operations.
type Service struct {
	log   *slog.Logger
	apps  appRepo
	users userRoles
	tx    txRunner
}

// NewService creates a new application service instance.
func NewService(logger *slog.Logger, apps appRepo, users userRoles, tx txRunner) *Service {
	return &Service{
		log:   logger.With("service", "application"),
		apps:  apps,
		users: users,
		tx:    tx,
	}
}

// Submit creates an application for the given principal. The lifecycle fields
// start at their fixed defaults regardless of the request payload.
func (s *Service) Submit(ctx context.Context, actorEmail string, input SubmitInput) (*domain.Application, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	app := &domain.Application{
		ID:              uuid.New(),
		UserEmail:       actorEmail,
		ScholarshipID:   input.ScholarshipID,
		Phone:           input.Phone,
		Address:         input.Address,
		Status:          domain.ApplicationStatusPending,
		PaymentStatus:   domain.PaymentStatusUnpaid,
		Feedback:        "",
		ApplicationDate: time.Now(),
	}

	created, err := s.apps.Create(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("application.Submit: %w", err)
	}

	s.log.InfoContext(ctx, "application submitted",
		slog.String("application_id", created.ID.String()),
		slog.String("scholarship_id", created.ScholarshipID.String()),
	)
	return created, nil
}

// Get returns an application, visible to its owner and to moderators.
func (s *Service) Get(ctx context.Context, actorEmail string, id uuid.UUID) (*domain.Application, error) {
	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("application.Get: %w", err)
	}

	if err := s.authorize(ctx, actorEmail, app); err != nil {
		return nil, err
	}
	return app, nil
}

// ListMine returns the principal's own applications, newest first.
func (s *Service) ListMine(ctx context.Context, actorEmail string) ([]domain.Application, error) {
	apps, err := s.apps.ListByUserEmail(ctx, actorEmail)
	if err != nil {
		return nil, fmt.Errorf("application.ListMine: %w", err)
	}
	return apps, nil
}

// ListAll returns every application. The moderator guard sits in transport.
func (s *Service) ListAll(ctx context.Context) ([]domain.Application, error) {
	apps, err := s.apps.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("application.ListAll: %w", err)
	}
	return apps, nil
}

// UpdateContact edits the contact fields of an application. Allowed for the
// owner and for moderators; lifecycle fields are untouched.
func (s *Service) UpdateContact(ctx context.Context, actorEmail string, id uuid.UUID, input ContactInput) error {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return err
	}

	// Ownership check and write share a transaction so a concurrent delete
	// cannot slip between them.
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		app, err := s.apps.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.authorize(ctx, actorEmail, app); err != nil {
			return err
		}
		return s.apps.UpdateContact(ctx, id, input.Phone, input.Address)
	})
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return err
		}
		return fmt.Errorf("application.UpdateContact: %w", err)
	}

	s.log.InfoContext(ctx, "application contact updated", slog.String("application_id", id.String()))
	return nil
}

// Moderate applies a partial moderator update: absent fields are left
// untouched. The moderator guard sits in transport; the service validates the
// values.
func (s *Service) Moderate(ctx context.Context, id uuid.UUID, input ModerationInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	if input.IsEmpty() {
		return nil
	}

	if err := s.apps.UpdateModeration(ctx, id, input.Status, input.Feedback); err != nil {
		return fmt.Errorf("application.Moderate: %w", err)
	}

	attrs := []any{slog.String("application_id", id.String())}
	if input.Status != nil {
		attrs = append(attrs, slog.String("status", input.Status.String()))
	}
	s.log.InfoContext(ctx, "application moderated", attrs...)
	return nil
}

// Delete removes an application. Allowed for the owner and for moderators.
func (s *Service) Delete(ctx context.Context, actorEmail string, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		app, err := s.apps.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.authorize(ctx, actorEmail, app); err != nil {
			return err
		}
		return s.apps.Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return err
		}
		return fmt.Errorf("application.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "application deleted", slog.String("application_id", id.String()))
	return nil
}

// authorize allows the owner through directly and everyone else only with a
// Moderator or Admin role on record.
func (s *Service) authorize(ctx context.Context, actorEmail string, app *domain.Application) error {
	if app.IsOwnedBy(actorEmail) {
		return nil
	}

	actor, err := s.users.GetByEmail(ctx, actorEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrForbidden
		}
		return fmt.Errorf("application: resolve actor role: %w", err)
	}
	if actor.Role != domain.RoleModerator && actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}
