// Package payment creates hosted checkout sessions and reconciles their
// outcome onto applications. Reconciliation is the only writer of an
// application's payment status.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/scholarstream/scholarstream-backend/internal/adapter/provider/checkout"
	"github.com/scholarstream/scholarstream-backend/internal/config"
	"github.com/scholarstream/scholarstream-backend/internal/domain"
)

// Metadata keys attached to every checkout session. The processor echoes
// them back on retrieval, which is how a session finds its application.
const (
	metaApplicationID = "applicationId"
	metaUserEmail     = "userEmail"
	metaUserName      = "userName"
)

// processor defines the checkout operations needed by the service.
//
//go:generate moq -rm -out processor_mock_test.go . processor
type processor interface {
	CreateSession(ctx context.Context, in checkout.CreateSessionInput) (*checkout.Session, error)
	GetSession(ctx context.Context, sessionID string) (*checkout.Session, error)
}

// appRepo defines the application writes needed for reconciliation.
//
//go:generate moq -rm -out app_repo_mock_test.go . appRepo
type appRepo interface {
	MarkPaid(ctx context.Context, id uuid.UUID) (int64, error)
}

// Service implements payment operations.
type Service struct {
	log          *slog.Logger
	processor    processor
	apps         appRepo
	currency     string
	clientDomain string
}

// NewService creates a new payment service instance.
func NewService(logger *slog.Logger, proc processor, apps appRepo, cfg config.PaymentConfig) *Service {
	return &Service{
		log:          logger.With("service", "payment"),
		processor:    proc,
		apps:         apps,
		currency:     cfg.Currency,
		clientDomain: strings.TrimRight(cfg.ClientDomain, "/"),
	}
}

// SessionResult is the outcome of creating a checkout session.
type SessionResult struct {
	SessionID string
	URL       string
}

// CreateSession creates a hosted checkout session for an application fee and
// returns the redirect URL. The application reference travels in the session
// metadata and comes back on confirmation.
func (s *Service) CreateSession(ctx context.Context, input CreateSessionInput) (*SessionResult, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	amountMinor, err := parseAmountMinor(input.Amount)
	if err != nil {
		return nil, err
	}

	productName := input.ScholarshipName
	if input.UniversityName != "" {
		productName = input.UniversityName + " - " + input.ScholarshipName
	}

	session, err := s.processor.CreateSession(ctx, checkout.CreateSessionInput{
		AmountMinor:        amountMinor,
		Currency:           s.currency,
		ProductName:        productName,
		ProductDescription: "Scholarship application fee",
		CustomerEmail:      input.UserEmail,
		Metadata: map[string]string{
			metaApplicationID: input.ApplicationID.String(),
			metaUserEmail:     input.UserEmail,
			metaUserName:      input.UserName,
		},
		SuccessURL: s.clientDomain + "/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  s.clientDomain + "/payment-cancelled",
	})
	if err != nil {
		return nil, fmt.Errorf("payment.CreateSession: %w", err)
	}

	s.log.InfoContext(ctx, "checkout session created",
		slog.String("session_id", session.ID),
		slog.String("application_id", input.ApplicationID.String()),
		slog.Int64("amount_minor", amountMinor),
	)
	return &SessionResult{SessionID: session.ID, URL: session.URL}, nil
}

// ConfirmResult is the outcome of a confirmation attempt.
// ModifiedCount is 0 when the application had already been reconciled.
type ConfirmResult struct {
	Paid          bool
	ApplicationID uuid.UUID
	ModifiedCount int64
}

// ConfirmSession retrieves a session from the processor and, if it settled,
// marks its application paid. Safe to call repeatedly and concurrently for
// the same session: only the first confirmation modifies a row.
func (s *Service) ConfirmSession(ctx context.Context, sessionID string) (*ConfirmResult, error) {
	session, err := s.processor.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("payment.ConfirmSession: %w", err)
	}

	if !session.IsPaid() {
		s.log.InfoContext(ctx, "session not settled yet",
			slog.String("session_id", session.ID),
			slog.String("payment_status", session.PaymentStatus),
		)
		return &ConfirmResult{Paid: false}, nil
	}

	appID, err := uuid.Parse(session.Metadata[metaApplicationID])
	if err != nil {
		// A paid session without its application reference cannot be
		// reconciled. Loud log so operators can chase the money.
		s.log.ErrorContext(ctx, "paid session missing application metadata",
			slog.String("session_id", session.ID),
		)
		return nil, fmt.Errorf("payment.ConfirmSession: session %s: %w", session.ID, domain.ErrMalformedSession)
	}

	modified, err := s.apps.MarkPaid(ctx, appID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.ErrorContext(ctx, "paid session references unknown application",
				slog.String("session_id", session.ID),
				slog.String("application_id", appID.String()),
			)
		}
		return nil, fmt.Errorf("payment.ConfirmSession: %w", err)
	}

	s.log.InfoContext(ctx, "payment reconciled",
		slog.String("session_id", session.ID),
		slog.String("application_id", appID.String()),
		slog.Int64("modified", modified),
	)
	return &ConfirmResult{Paid: true, ApplicationID: appID, ModifiedCount: modified}, nil
}
