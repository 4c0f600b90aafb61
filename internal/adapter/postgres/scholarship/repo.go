// Package scholarship implements the Scholarship repository using PostgreSQL.
package scholarship

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

const table = "scholarships"

var columns = []string{
	"id", "university_name", "scholarship_name", "category", "degree",
	"application_fees", "description", "scholarship_post_date",
}

// Repo provides scholarship persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new scholarship repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type scholarshipRow struct {
	ID                  uuid.UUID `db:"id"`
	UniversityName      string    `db:"university_name"`
	ScholarshipName     string    `db:"scholarship_name"`
	Category            string    `db:"category"`
	Degree              string    `db:"degree"`
	ApplicationFees     int64     `db:"application_fees"`
	Description         string    `db:"description"`
	ScholarshipPostDate time.Time `db:"scholarship_post_date"`
}

func toDomain(r scholarshipRow) domain.Scholarship {
	return domain.Scholarship{
		ID:                  r.ID,
		UniversityName:      r.UniversityName,
		ScholarshipName:     r.ScholarshipName,
		Category:            r.Category,
		Degree:              r.Degree,
		ApplicationFees:     r.ApplicationFees,
		Description:         r.Description,
		ScholarshipPostDate: r.ScholarshipPostDate,
	}
}

// GetByID returns a scholarship by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Scholarship, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "scholarship", id)
	}

	var row scholarshipRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "scholarship", id)
	}

	s := toDomain(row)
	return &s, nil
}

// List returns scholarships ordered by post date, newest first.
// A limit of 0 returns all rows.
func (r *Repo) List(ctx context.Context, limit int) ([]domain.Scholarship, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("scholarship_post_date DESC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "scholarship", uuid.Nil)
	}

	var rows []scholarshipRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "scholarship", uuid.Nil)
	}

	scholarships := make([]domain.Scholarship, len(rows))
	for i, row := range rows {
		scholarships[i] = toDomain(row)
	}
	return scholarships, nil
}

// Create inserts a new scholarship and returns the persisted record.
func (r *Repo) Create(ctx context.Context, s *domain.Scholarship) (*domain.Scholarship, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(s.ID, s.UniversityName, s.ScholarshipName, s.Category, s.Degree,
			s.ApplicationFees, s.Description, s.ScholarshipPostDate).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "scholarship", s.ID)
	}

	var row scholarshipRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "scholarship", s.ID)
	}

	created := toDomain(row)
	return &created, nil
}

// Update applies the set fields to the given scholarship and returns the
// updated record. Returns domain.ErrNotFound if the id does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, fields domain.ScholarshipUpdate) (*domain.Scholarship, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update := postgres.Builder().Update(table)
	if fields.UniversityName != nil {
		update = update.Set("university_name", *fields.UniversityName)
	}
	if fields.ScholarshipName != nil {
		update = update.Set("scholarship_name", *fields.ScholarshipName)
	}
	if fields.Category != nil {
		update = update.Set("category", *fields.Category)
	}
	if fields.Degree != nil {
		update = update.Set("degree", *fields.Degree)
	}
	if fields.ApplicationFees != nil {
		update = update.Set("application_fees", *fields.ApplicationFees)
	}
	if fields.Description != nil {
		update = update.Set("description", *fields.Description)
	}

	sql, args, err := update.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "scholarship", id)
	}

	var row scholarshipRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "scholarship", id)
	}

	updated := toDomain(row)
	return &updated, nil
}

// Delete removes a scholarship by id.
// Returns domain.ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "scholarship", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "scholarship", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "scholarship", id)
	}
	return nil
}
