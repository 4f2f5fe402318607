package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/selenkov/portfolio/internal/db"
	"github.com/selenkov/portfolio/internal/domain"
)

// SQLGoalRepo implements GoalRepo.
type SQLGoalRepo struct {
	db db.DBTX
}

func NewSQLGoalRepo(conn db.DBTX) *SQLGoalRepo {
	return &SQLGoalRepo{db: conn}
}

type goalRow struct {
	ID           string  `db:"id"`
	Description  string  `db:"description"`
	Kind         string  `db:"kind"`
	Competency   string  `db:"competency"`
	Target       int     `db:"target"`
	CurrentValue float64 `db:"current_value"`
	Completed    int     `db:"completed"`
	CreatedAt    string  `db:"created_at"`
	UpdatedAt    string  `db:"updated_at"`
}

const goalColumns = `id, description, kind, competency, target, current_value, completed, created_at, updated_at`

func (r *SQLGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	query := `INSERT INTO goals (` + goalColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		g.ID,
		g.Description,
		string(g.Kind),
		g.Competency,
		g.Target,
		g.Current,
		boolToInt(g.Completed),
		formatTimestamp(g.CreatedAt),
		formatTimestamp(g.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	var row goalRow
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = ?`
	if err := sqlx.GetContext(ctx, r.db, &row, r.db.Rebind(query), id); err != nil {
		return nil, notFound(err, "goal", "loading goal")
	}
	return row.toDomain()
}

// List returns goals in creation order.
func (r *SQLGoalRepo) List(ctx context.Context) ([]*domain.Goal, error) {
	var rows []goalRow
	query := `SELECT ` + goalColumns + ` FROM goals ORDER BY created_at, id`
	if err := sqlx.SelectContext(ctx, r.db, &rows, query); err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}

	goals := make([]*domain.Goal, 0, len(rows))
	for _, row := range rows {
		g, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, nil
}

// UpdateProgress writes back the cached current value and completion flag.
func (r *SQLGoalRepo) UpdateProgress(ctx context.Context, g *domain.Goal) error {
	query := `UPDATE goals SET current_value = ?, completed = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		g.Current,
		boolToInt(g.Completed),
		formatTimestamp(g.UpdatedAt),
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal progress: %w", err)
	}
	return nil
}

func (r *SQLGoalRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM goals WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("goal %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteAll removes every goal and reports how many were deleted.
func (r *SQLGoalRepo) DeleteAll(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals`)
	if err != nil {
		return 0, fmt.Errorf("deleting goals: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("deleting goals: %w", err)
	}
	return int(n), nil
}

func (row goalRow) toDomain() (*domain.Goal, error) {
	g := &domain.Goal{
		ID:          row.ID,
		Description: row.Description,
		Kind:        domain.GoalKind(row.Kind),
		Competency:  row.Competency,
		Target:      row.Target,
		Current:     row.CurrentValue,
		Completed:   intToBool(row.Completed),
	}

	var err error
	if g.CreatedAt, err = parseTimestamp(row.CreatedAt); err != nil {
		return nil, fmt.Errorf("parsing goal created_at: %w", err)
	}
	if g.UpdatedAt, err = parseTimestamp(row.UpdatedAt); err != nil {
		return nil, fmt.Errorf("parsing goal updated_at: %w", err)
	}
	return g, nil
}
