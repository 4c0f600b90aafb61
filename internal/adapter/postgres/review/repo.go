// Package review implements the Review repository using PostgreSQL.
package review

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

const table = "reviews"

var columns = []string{
	"id", "scholarship_id", "user_email", "review_comment", "rating_point", "review_date",
}

// Repo provides review persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type reviewRow struct {
	ID            uuid.UUID `db:"id"`
	ScholarshipID uuid.UUID `db:"scholarship_id"`
	UserEmail     string    `db:"user_email"`
	ReviewComment string    `db:"review_comment"`
	RatingPoint   int       `db:"rating_point"`
	ReviewDate    time.Time `db:"review_date"`
}

func toDomain(r reviewRow) domain.Review {
	return domain.Review{
		ID:            r.ID,
		ScholarshipID: r.ScholarshipID,
		UserEmail:     r.UserEmail,
		ReviewComment: r.ReviewComment,
		RatingPoint:   r.RatingPoint,
		ReviewDate:    r.ReviewDate,
	}
}

// GetByID returns a review by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "review", id)
	}

	var row reviewRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "review", id)
	}

	rv := toDomain(row)
	return &rv, nil
}

// ListByScholarship returns the reviews of one scholarship, newest first.
func (r *Repo) ListByScholarship(ctx context.Context, scholarshipID uuid.UUID) ([]domain.Review, error) {
	return r.list(ctx, squirrel.Eq{"scholarship_id": scholarshipID})
}

// ListByUser returns the reviews authored by one user, newest first.
func (r *Repo) ListByUser(ctx context.Context, email string) ([]domain.Review, error) {
	return r.list(ctx, squirrel.Eq{"user_email": email})
}

// ListAll returns all reviews, newest first.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Review, error) {
	return r.list(ctx, nil)
}

func (r *Repo) list(ctx context.Context, where any) ([]domain.Review, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("review_date DESC")
	if where != nil {
		query = query.Where(where)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "review", uuid.Nil)
	}

	var rows []reviewRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "review", uuid.Nil)
	}

	reviews := make([]domain.Review, len(rows))
	for i, row := range rows {
		reviews[i] = toDomain(row)
	}
	return reviews, nil
}

// Create inserts a new review and returns the persisted record.
func (r *Repo) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(rv.ID, rv.ScholarshipID, rv.UserEmail, rv.ReviewComment, rv.RatingPoint, rv.ReviewDate).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "review", rv.ID)
	}

	var row reviewRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "review", rv.ID)
	}

	created := toDomain(row)
	return &created, nil
}

// Update replaces comment and rating and refreshes the review date.
// Returns domain.ErrNotFound if the id does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, comment string, rating int, reviewDate time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("review_comment", comment).
		Set("rating_point", rating).
		Set("review_date", reviewDate).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "review", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "review", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "review", id)
	}
	return nil
}

// Delete removes a review by id.
// Returns domain.ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "review", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "review", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "review", id)
	}
	return nil
}
