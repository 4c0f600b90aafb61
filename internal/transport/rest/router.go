package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/scholarstream/scholarstream-backend/internal/auth"
	"github.com/scholarstream/scholarstream-backend/internal/config"
	"github.com/scholarstream/scholarstream-backend/internal/domain"
	"github.com/scholarstream/scholarstream-backend/internal/transport/middleware"
)

// TokenVerifier checks a raw bearer token and returns the verified principal.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*auth.Principal, error)
}

// RoleSource resolves the persisted role of a principal.
type RoleSource interface {
	RoleByEmail(ctx context.Context, email string) (domain.Role, error)
}

// Handlers aggregates the endpoint handlers wired into the router.
type Handlers struct {
	Health       *HealthHandler
	Users        *UserHandler
	Scholarships *ScholarshipHandler
	Applications *ApplicationHandler
	Reviews      *ReviewHandler
	Payments     *PaymentHandler
}

// NewRouter builds the HTTP routing table with per-route guards and the
// global middleware stack.
func NewRouter(log *slog.Logger, corsCfg config.CORSConfig, verifier TokenVerifier, roles RoleSource, h Handlers) http.Handler {
	authMW := middleware.Auth(verifier, log)
	adminMW := middleware.RequireRole(roles, log, domain.RoleAdmin)
	moderatorMW := middleware.RequireRole(roles, log, domain.RoleModerator, domain.RoleAdmin)

	authed := func(hf http.HandlerFunc) http.Handler {
		return middleware.Chain(hf, authMW)
	}
	admin := func(hf http.HandlerFunc) http.Handler {
		return middleware.Chain(hf, authMW, adminMW)
	}
	moderator := func(hf http.HandlerFunc) http.Handler {
		return middleware.Chain(hf, authMW, moderatorMW)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Live)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	mux.HandleFunc("POST /users", h.Users.Register)
	mux.Handle("GET /users", authed(h.Users.List))
	mux.Handle("GET /users/{email}/role", authed(h.Users.Role))
	mux.Handle("PATCH /users/{id}/role", admin(h.Users.ChangeRole))
	mux.Handle("DELETE /users/{id}", admin(h.Users.Delete))

	mux.Handle("POST /scholarships", admin(h.Scholarships.Create))
	mux.Handle("GET /scholarships", authed(h.Scholarships.ListFeatured))
	mux.Handle("GET /all-scholarships", authed(h.Scholarships.ListAll))
	mux.Handle("GET /scholarships/{id}", authed(h.Scholarships.Get))
	mux.Handle("PATCH /scholarships/{id}", admin(h.Scholarships.Update))
	mux.Handle("DELETE /scholarships/{id}", admin(h.Scholarships.Delete))

	mux.HandleFunc("POST /applications", h.Applications.Submit)
	mux.Handle("GET /applications", authed(h.Applications.ListMine))
	mux.Handle("GET /all-applications", authed(h.Applications.ListAll))
	mux.Handle("GET /applications/{id}", authed(h.Applications.Get))
	mux.Handle("PATCH /applications/{id}", authed(h.Applications.UpdateContact))
	mux.Handle("DELETE /applications/{id}", authed(h.Applications.Delete))
	mux.Handle("PATCH /applications/moderator/{id}", moderator(h.Applications.Moderate))

	mux.HandleFunc("POST /reviews", h.Reviews.Create)
	mux.HandleFunc("GET /reviews", h.Reviews.ListByScholarship)
	mux.Handle("GET /user-reviews", authed(h.Reviews.ListMine))
	mux.Handle("GET /all-reviews", authed(h.Reviews.ListAll))
	mux.Handle("PATCH /reviews/{id}", authed(h.Reviews.Update))
	mux.Handle("DELETE /reviews/{id}", authed(h.Reviews.Delete))

	mux.HandleFunc("POST /create-checkout-session", h.Payments.CreateSession)
	mux.HandleFunc("PATCH /payment-success", h.Payments.ConfirmSession)

	return middleware.Chain(mux,
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.CORS(corsCfg),
	)
}
