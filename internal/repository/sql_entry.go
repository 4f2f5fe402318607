package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/selenkov/portfolio/internal/db"
	"github.com/selenkov/portfolio/internal/domain"
)

// SQLEntryRepo implements EntryRepo on top of a relational store.
type SQLEntryRepo struct {
	db db.DBTX
}

// NewSQLEntryRepo creates a new SQLEntryRepo.
func NewSQLEntryRepo(conn db.DBTX) *SQLEntryRepo {
	return &SQLEntryRepo{db: conn}
}

type entryRow struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Type        string         `db:"type"`
	EntryDate   string         `db:"entry_date"`
	Description sql.NullString `db:"description"`
	Coauthors   sql.NullString `db:"coauthors"`
	CreatedAt   string         `db:"created_at"`
	UpdatedAt   string         `db:"updated_at"`
}

const entryColumns = `id, title, type, entry_date, description, coauthors, created_at, updated_at`

func (r *SQLEntryRepo) Create(ctx context.Context, e *domain.Entry) error {
	query := `INSERT INTO entries (` + entryColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		e.ID,
		e.Title,
		string(e.Type),
		e.Date.Format(dateLayout),
		e.Description,
		e.Coauthors,
		formatTimestamp(e.CreatedAt),
		formatTimestamp(e.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting entry: %w", err)
	}
	return nil
}

func (r *SQLEntryRepo) GetByID(ctx context.Context, id string) (*domain.Entry, error) {
	var row entryRow
	query := `SELECT ` + entryColumns + ` FROM entries WHERE id = ?`
	if err := sqlx.GetContext(ctx, r.db, &row, r.db.Rebind(query), id); err != nil {
		return nil, notFound(err, "entry", "loading entry")
	}
	return row.toDomain()
}

// List returns entries newest first.
func (r *SQLEntryRepo) List(ctx context.Context) ([]*domain.Entry, error) {
	var rows []entryRow
	query := `SELECT ` + entryColumns + ` FROM entries ORDER BY entry_date DESC, created_at DESC`
	if err := sqlx.SelectContext(ctx, r.db, &rows, query); err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	entries := make([]*domain.Entry, 0, len(rows))
	for _, row := range rows {
		e, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Delete removes an entry; keyword and grade links go with it via cascade.
func (r *SQLEntryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM entries WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("entry %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLEntryRepo) Count(ctx context.Context) (int, error) {
	return r.scalar(ctx, "counting entries", `SELECT COUNT(*) FROM entries`)
}

// CountCoauthored counts entries whose coauthors field is neither null nor blank.
func (r *SQLEntryRepo) CountCoauthored(ctx context.Context) (int, error) {
	return r.scalar(ctx, "counting coauthored entries",
		`SELECT COUNT(*) FROM entries WHERE coauthors IS NOT NULL AND TRIM(coauthors) <> ''`)
}

func (r *SQLEntryRepo) CountDistinctTypes(ctx context.Context) (int, error) {
	return r.scalar(ctx, "counting entry types", `SELECT COUNT(DISTINCT type) FROM entries`)
}

func (r *SQLEntryRepo) CountInYear(ctx context.Context, year int) (int, error) {
	from, to := yearBounds(year)
	return r.scalar(ctx, "counting entries in year",
		`SELECT COUNT(*) FROM entries WHERE entry_date >= ? AND entry_date < ?`, from, to)
}

// SumDescriptionLength sums description lengths in characters; null
// descriptions count as zero.
func (r *SQLEntryRepo) SumDescriptionLength(ctx context.Context) (int, error) {
	return r.scalar(ctx, "summing description length",
		`SELECT COALESCE(SUM(LENGTH(description)), 0) FROM entries WHERE description IS NOT NULL`)
}

// ListCoauthors returns the raw coauthors field of every coauthored entry.
func (r *SQLEntryRepo) ListCoauthors(ctx context.Context) ([]string, error) {
	var out []string
	query := `SELECT coauthors FROM entries
		WHERE coauthors IS NOT NULL AND TRIM(coauthors) <> ''
		ORDER BY created_at`
	if err := sqlx.SelectContext(ctx, r.db, &out, query); err != nil {
		return nil, fmt.Errorf("listing coauthors: %w", err)
	}
	return out, nil
}

func (r *SQLEntryRepo) scalar(ctx context.Context, op, query string, args ...any) (int, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, r.db.Rebind(query), args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(n), nil
}

func (row entryRow) toDomain() (*domain.Entry, error) {
	e := &domain.Entry{
		ID:          row.ID,
		Title:       row.Title,
		Type:        domain.EntryType(row.Type),
		Description: row.Description.String,
		Coauthors:   row.Coauthors.String,
	}

	var err error
	if e.Date, err = time.Parse(dateLayout, row.EntryDate); err != nil {
		return nil, fmt.Errorf("parsing entry_date: %w", err)
	}
	if e.CreatedAt, err = parseTimestamp(row.CreatedAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if e.UpdatedAt, err = parseTimestamp(row.UpdatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return e, nil
}
