package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/selenkov/portfolio/internal/db"
	"github.com/selenkov/portfolio/internal/domain"
)

// SQLCompetencyRepo implements CompetencyRepo.
type SQLCompetencyRepo struct {
	db db.DBTX
}

func NewSQLCompetencyRepo(conn db.DBTX) *SQLCompetencyRepo {
	return &SQLCompetencyRepo{db: conn}
}

type competencyRow struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Category  string `db:"category"`
	Specialty string `db:"specialty"`
	CreatedAt string `db:"created_at"`
}

const competencyColumns = `id, name, category, specialty, created_at`

// ReplaceAll deletes the whole competency set and inserts comps in its place.
// Grades on the old competencies are removed by cascade. Run it inside a
// transaction so the store never holds two sets.
func (r *SQLCompetencyRepo) ReplaceAll(ctx context.Context, specialty string, comps []*domain.Competency) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM competencies`); err != nil {
		return fmt.Errorf("clearing competencies: %w", err)
	}

	query := r.db.Rebind(`INSERT INTO competencies (` + competencyColumns + `) VALUES (?, ?, ?, ?, ?)`)
	for _, c := range comps {
		c.Specialty = specialty
		if _, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Category, specialty, formatTimestamp(c.CreatedAt)); err != nil {
			return fmt.Errorf("inserting competency %q: %w", c.Name, err)
		}
	}
	return nil
}

// List returns the active competency set ordered by category then name.
func (r *SQLCompetencyRepo) List(ctx context.Context) ([]*domain.Competency, error) {
	var rows []competencyRow
	query := `SELECT ` + competencyColumns + ` FROM competencies ORDER BY category, name`
	if err := sqlx.SelectContext(ctx, r.db, &rows, query); err != nil {
		return nil, fmt.Errorf("listing competencies: %w", err)
	}

	out := make([]*domain.Competency, 0, len(rows))
	for _, row := range rows {
		c, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *SQLCompetencyRepo) GetByID(ctx context.Context, id string) (*domain.Competency, error) {
	return r.getOne(ctx, `SELECT `+competencyColumns+` FROM competencies WHERE id = ?`, id)
}

// GetByName matches the competency name case-insensitively.
func (r *SQLCompetencyRepo) GetByName(ctx context.Context, name string) (*domain.Competency, error) {
	return r.getOne(ctx, `SELECT `+competencyColumns+` FROM competencies WHERE LOWER(name) = LOWER(?) ORDER BY name LIMIT 1`, name)
}

func (r *SQLCompetencyRepo) getOne(ctx context.Context, query string, arg string) (*domain.Competency, error) {
	var row competencyRow
	if err := sqlx.GetContext(ctx, r.db, &row, r.db.Rebind(query), arg); err != nil {
		return nil, notFound(err, "competency", "loading competency")
	}
	return row.toDomain()
}

func (row competencyRow) toDomain() (*domain.Competency, error) {
	created, err := parseTimestamp(row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing competency created_at: %w", err)
	}
	return &domain.Competency{
		ID:        row.ID,
		Name:      row.Name,
		Category:  row.Category,
		Specialty: row.Specialty,
		CreatedAt: created,
	}, nil
}
