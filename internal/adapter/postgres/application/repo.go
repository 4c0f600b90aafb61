// Package application implements the Application repository using PostgreSQL.
package application

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/scholarstream/scholarstream-backend/internal/adapter/postgres"
	"github.com/scholarstream/scholarstream-backend/internal/domain"
)

const table = "applications"

var columns = []string{
	"id", "user_email", "scholarship_id", "phone", "address",
	"application_status", "payment_status", "feedback", "application_date",
}

// Repo provides application persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new application repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type applicationRow struct {
	ID              uuid.UUID `db:"id"`
	UserEmail       string    `db:"user_email"`
	ScholarshipID   uuid.UUID `db:"scholarship_id"`
	Phone           string    `db:"phone"`
	Address         string    `db:"address"`
	Status          string    `db:"application_status"`
	PaymentStatus   string    `db:"payment_status"`
	Feedback        string    `db:"feedback"`
	ApplicationDate time.Time `db:"application_date"`
}

func toDomain(r applicationRow) domain.Application {
	return domain.Application{
		ID:              r.ID,
		UserEmail:       r.UserEmail,
		ScholarshipID:   r.ScholarshipID,
		Phone:           r.Phone,
		Address:         r.Address,
		Status:          domain.ApplicationStatus(r.Status),
		PaymentStatus:   domain.PaymentStatus(r.PaymentStatus),
		Feedback:        r.Feedback,
		ApplicationDate: r.ApplicationDate,
	}
}

// GetByID returns an application by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "application", id)
	}

	var row applicationRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "application", id)
	}

	a := toDomain(row)
	return &a, nil
}

// ListByUserEmail returns a user's applications, newest first.
func (r *Repo) ListByUserEmail(ctx context.Context, email string) ([]domain.Application, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_email": email}).
		OrderBy("application_date DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "application", uuid.Nil)
	}

	return r.selectMany(ctx, q, sql, args)
}

// ListAll returns every application, newest first.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Application, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("application_date DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "application", uuid.Nil)
	}

	return r.selectMany(ctx, q, sql, args)
}

func (r *Repo) selectMany(ctx context.Context, q postgres.Querier, sql string, args []any) ([]domain.Application, error) {
	var rows []applicationRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "application", uuid.Nil)
	}

	apps := make([]domain.Application, len(rows))
	for i, row := range rows {
		apps[i] = toDomain(row)
	}
	return apps, nil
}

// Create inserts a new application and returns the persisted record.
func (r *Repo) Create(ctx context.Context, a *domain.Application) (*domain.Application, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(a.ID, a.UserEmail, a.ScholarshipID, a.Phone, a.Address,
			a.Status.String(), a.PaymentStatus.String(), a.Feedback, a.ApplicationDate).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "application", a.ID)
	}

	var row applicationRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "application", a.ID)
	}

	created := toDomain(row)
	return &created, nil
}

// UpdateContact sets the contact fields. Status fields are never touched here.
// Returns domain.ErrNotFound if the id does not exist.
func (r *Repo) UpdateContact(ctx context.Context, id uuid.UUID, phone, address string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("phone", phone).
		Set("address", address).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "application", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "application", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "application", id)
	}
	return nil
}

// UpdateModeration applies a partial moderator update: each field is written
// only when non-nil. Returns domain.ErrNotFound if the id does not exist.
func (r *Repo) UpdateModeration(ctx context.Context, id uuid.UUID, status *domain.ApplicationStatus, feedback *string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update := postgres.Builder().Update(table)
	if status != nil {
		update = update.Set("application_status", status.String())
	}
	if feedback != nil {
		update = update.Set("feedback", *feedback)
	}

	sql, args, err := update.
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "application", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "application", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "application", id)
	}
	return nil
}

// MarkPaid transitions payment_status to paid if it is not already.
// Returns the number of rows modified: 1 on transition, 0 when the
// application was already paid. The WHERE clause makes racing confirmations
// converge without application-level locking.
func (r *Repo) MarkPaid(ctx context.Context, id uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("payment_status", domain.PaymentStatusPaid.String()).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"payment_status": domain.PaymentStatusPaid.String()}).
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "application", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "application", id)
	}
	return tag.RowsAffected(), nil
}

// Delete removes an application by id.
// Returns domain.ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "application", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "application", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "application", id)
	}
	return nil
}
