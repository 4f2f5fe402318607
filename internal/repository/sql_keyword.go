package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/selenkov/portfolio/internal/db"
)

// SQLKeywordRepo implements KeywordRepo.
type SQLKeywordRepo struct {
	db db.DBTX
}

func NewSQLKeywordRepo(conn db.DBTX) *SQLKeywordRepo {
	return &SQLKeywordRepo{db: conn}
}

// Upsert inserts the keyword if absent and returns its id.
func (r *SQLKeywordRepo) Upsert(ctx context.Context, keyword string) (string, error) {
	insert := `INSERT INTO keywords (id, keyword) VALUES (?, ?) ON CONFLICT (keyword) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(insert), uuid.New().String(), keyword); err != nil {
		return "", fmt.Errorf("upserting keyword: %w", err)
	}

	var id string
	if err := r.db.QueryRowContext(ctx, r.db.Rebind(`SELECT id FROM keywords WHERE keyword = ?`), keyword).Scan(&id); err != nil {
		return "", notFound(err, "keyword", "loading keyword id")
	}
	return id, nil
}

func (r *SQLKeywordRepo) Attach(ctx context.Context, entryID, keywordID string) error {
	query := `INSERT INTO entry_keywords (entry_id, keyword_id) VALUES (?, ?) ON CONFLICT DO NOTHING`
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), entryID, keywordID); err != nil {
		return fmt.Errorf("attaching keyword: %w", err)
	}
	return nil
}

func (r *SQLKeywordRepo) ListByEntry(ctx context.Context, entryID string) ([]string, error) {
	var out []string
	query := `SELECT k.keyword FROM keywords k
		JOIN entry_keywords ek ON ek.keyword_id = k.id
		WHERE ek.entry_id = ?
		ORDER BY k.keyword`
	if err := sqlx.SelectContext(ctx, r.db, &out, r.db.Rebind(query), entryID); err != nil {
		return nil, fmt.Errorf("listing entry keywords: %w", err)
	}
	return out, nil
}

// Frequencies counts tagged entries per keyword, most used first. Keywords
// no longer attached to any entry are omitted.
func (r *SQLKeywordRepo) Frequencies(ctx context.Context) ([]KeywordCount, error) {
	var rows []struct {
		Keyword string `db:"keyword"`
		Count   int64  `db:"entry_count"`
	}
	query := `SELECT k.keyword AS keyword, COUNT(ek.entry_id) AS entry_count
		FROM keywords k
		JOIN entry_keywords ek ON k.id = ek.keyword_id
		GROUP BY k.keyword
		ORDER BY entry_count DESC, k.keyword`
	if err := sqlx.SelectContext(ctx, r.db, &rows, query); err != nil {
		return nil, fmt.Errorf("counting keywords: %w", err)
	}

	out := make([]KeywordCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, KeywordCount{Keyword: row.Keyword, Count: int(row.Count)})
	}
	return out, nil
}
