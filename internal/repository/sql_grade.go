package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/selenkov/portfolio/internal/db"
	"github.com/selenkov/portfolio/internal/domain"
)

// SQLGradeRepo implements GradeRepo over entry_competencies.
type SQLGradeRepo struct {
	db db.DBTX
}

func NewSQLGradeRepo(conn db.DBTX) *SQLGradeRepo {
	return &SQLGradeRepo{db: conn}
}

type gradeRow struct {
	EntryID      string `db:"entry_id"`
	CompetencyID string `db:"competency_id"`
	Level        int    `db:"level"`
}

func (r *SQLGradeRepo) Create(ctx context.Context, g domain.Grade) error {
	query := `INSERT INTO entry_competencies (entry_id, competency_id, level) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), g.EntryID, g.CompetencyID, g.Level); err != nil {
		return fmt.Errorf("inserting grade: %w", err)
	}
	return nil
}

func (r *SQLGradeRepo) ListByEntry(ctx context.Context, entryID string) ([]domain.Grade, error) {
	return r.list(ctx, `SELECT entry_id, competency_id, level FROM entry_competencies WHERE entry_id = ? ORDER BY competency_id`, entryID)
}

func (r *SQLGradeRepo) ListAll(ctx context.Context) ([]domain.Grade, error) {
	return r.list(ctx, `SELECT entry_id, competency_id, level FROM entry_competencies ORDER BY entry_id, competency_id`)
}

// MeanLevelByCompetencyName averages every grade of the named competency.
// graded is false when the competency has no grades (or does not exist).
func (r *SQLGradeRepo) MeanLevelByCompetencyName(ctx context.Context, name string) (float64, bool, error) {
	query := `SELECT AVG(ec.level)
		FROM competencies c
		JOIN entry_competencies ec ON c.id = ec.competency_id
		WHERE c.name = ?`
	var mean sql.NullFloat64
	if err := r.db.QueryRowContext(ctx, r.db.Rebind(query), name).Scan(&mean); err != nil {
		return 0, false, fmt.Errorf("averaging grades for %q: %w", name, err)
	}
	return mean.Float64, mean.Valid, nil
}

func (r *SQLGradeRepo) list(ctx context.Context, query string, args ...any) ([]domain.Grade, error) {
	var rows []gradeRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("listing grades: %w", err)
	}
	out := make([]domain.Grade, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Grade{EntryID: row.EntryID, CompetencyID: row.CompetencyID, Level: row.Level})
	}
	return out, nil
}
