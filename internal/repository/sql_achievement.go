package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/selenkov/portfolio/internal/db"
	"github.com/selenkov/portfolio/internal/domain"
)

// SQLAchievementRepo implements AchievementRepo over the achievement catalog
// and the per-user unlock records.
type SQLAchievementRepo struct {
	db db.DBTX
}

func NewSQLAchievementRepo(conn db.DBTX) *SQLAchievementRepo {
	return &SQLAchievementRepo{db: conn}
}

// Seed inserts catalog achievements that are not stored yet. Existing names
// are left untouched, so seeding never duplicates.
func (r *SQLAchievementRepo) Seed(ctx context.Context, catalog []domain.Achievement) error {
	query := r.db.Rebind(`INSERT INTO achievements (id, name, description, position) VALUES (?, ?, ?, ?) ON CONFLICT (name) DO NOTHING`)
	for _, a := range catalog {
		if _, err := r.db.ExecContext(ctx, query, a.ID, a.Name, a.Description, a.Position); err != nil {
			return fmt.Errorf("seeding achievement %q: %w", a.Name, err)
		}
	}
	return nil
}

func (r *SQLAchievementRepo) IDByName(ctx context.Context, name string) (string, error) {
	var id string
	err := r.db.QueryRowContext(ctx, r.db.Rebind(`SELECT id FROM achievements WHERE name = ?`), name).Scan(&id)
	if err != nil {
		return "", notFound(err, fmt.Sprintf("achievement %q", name), "looking up achievement")
	}
	return id, nil
}

func (r *SQLAchievementRepo) IsUnlocked(ctx context.Context, userID int64, achievementID string) (bool, error) {
	var one int
	query := `SELECT 1 FROM user_achievements WHERE user_id = ? AND achievement_id = ?`
	err := r.db.QueryRowContext(ctx, r.db.Rebind(query), userID, achievementID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking unlock: %w", err)
	}
	return true, nil
}

// InsertUnlock records the unlock unless one already exists for the pair.
// It reports whether a row was inserted.
func (r *SQLAchievementRepo) InsertUnlock(ctx context.Context, u domain.UnlockedAchievement) (bool, error) {
	query := `INSERT INTO user_achievements (user_id, achievement_id, unlocked_at) VALUES (?, ?, ?)
		ON CONFLICT (user_id, achievement_id) DO NOTHING`
	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), u.UserID, u.AchievementID, formatTimestamp(u.UnlockedAt))
	if err != nil {
		return false, fmt.Errorf("inserting unlock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("inserting unlock: %w", err)
	}
	return n > 0, nil
}

// ListStatus returns every catalog achievement with the user's unlock time,
// in catalog order.
func (r *SQLAchievementRepo) ListStatus(ctx context.Context, userID int64) ([]domain.AchievementStatus, error) {
	var rows []struct {
		ID          string         `db:"id"`
		Name        string         `db:"name"`
		Description string         `db:"description"`
		Position    int            `db:"position"`
		UnlockedAt  sql.NullString `db:"unlocked_at"`
	}
	query := `SELECT a.id, a.name, a.description, a.position, ua.unlocked_at
		FROM achievements a
		LEFT JOIN user_achievements ua ON a.id = ua.achievement_id AND ua.user_id = ?
		ORDER BY a.position, a.name`
	if err := sqlx.SelectContext(ctx, r.db, &rows, r.db.Rebind(query), userID); err != nil {
		return nil, fmt.Errorf("listing achievements: %w", err)
	}

	out := make([]domain.AchievementStatus, 0, len(rows))
	for _, row := range rows {
		st := domain.AchievementStatus{
			Achievement: domain.Achievement{ID: row.ID, Name: row.Name, Description: row.Description, Position: row.Position},
		}
		if row.UnlockedAt.Valid && row.UnlockedAt.String != "" {
			t, err := parseTimestamp(row.UnlockedAt.String)
			if err != nil {
				return nil, fmt.Errorf("parsing unlocked_at: %w", err)
			}
			st.UnlockedAt = &t
		}
		out = append(out, st)
	}
	return out, nil
}
