// Package user implements account registration and administration.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scholarstream/scholarstream-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the service.
//
//go:generate moq -rm -out user_repo_mock_test.go . userRepo
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements user operations.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}

// RegisterResult reports the outcome of a registration call.
// Created is false when the email was already registered.
type RegisterResult struct {
	User    *domain.User
	Created bool
}

// Register creates an account on first registration. Repeat registration for
// the same email is a no-op that returns the existing record. The role is
// always forced to Student; callers cannot choose their own role.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByEmail(ctx, input.Email)
	if err == nil {
		return &RegisterResult{User: existing, Created: false}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("user.Register lookup: %w", err)
	}

	newUser := &domain.User{
		ID:               uuid.New(),
		Email:            input.Email,
		Name:             input.Name,
		Role:             domain.RoleStudent,
		RegistrationDate: time.Now(),
	}

	created, err := s.users.Create(ctx, newUser)
	if err != nil {
		// Two concurrent first registrations can race past the lookup; the
		// unique constraint resolves the loser, which then reads the winner.
		if errors.Is(err, domain.ErrAlreadyExists) {
			existing, getErr := s.users.GetByEmail(ctx, input.Email)
			if getErr != nil {
				return nil, fmt.Errorf("user.Register re-read after conflict: %w", getErr)
			}
			return &RegisterResult{User: existing, Created: false}, nil
		}
		return nil, fmt.Errorf("user.Register create: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("email", created.Email))
	return &RegisterResult{User: created, Created: true}, nil
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}
	return users, nil
}

// RoleByEmail returns the persisted role for the given email.
// Returns domain.ErrNotFound when no account exists.
func (s *Service) RoleByEmail(ctx context.Context, email string) (domain.Role, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("user.RoleByEmail: %w", err)
	}
	return u.Role, nil
}

// ChangeRole sets a user's role. Admin-only; the transport layer enforces the
// guard, the service enforces the value.
func (s *Service) ChangeRole(ctx context.Context, id uuid.UUID, role domain.Role) error {
	if role == "" {
		return domain.NewValidationError("role", "is required")
	}
	if !role.IsValid() {
		return domain.NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}

	if err := s.users.UpdateRole(ctx, id, role); err != nil {
		return fmt.Errorf("user.ChangeRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role changed",
		slog.String("user_id", id.String()),
		slog.String("role", role.String()),
	)
	return nil
}

// Delete removes a user account.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("user.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted", slog.String("user_id", id.String()))
	return nil
}
