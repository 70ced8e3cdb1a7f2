package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kambel/internal/content"
)

// LegalPage returns the active legal page of a kind.
func (s *Store) LegalPage(ctx context.Context, kind content.LegalKind) (content.LegalPage, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT title, subtitle, content, last_updated
        FROM legal_pages WHERE kind = ? AND is_active = 1
        ORDER BY id DESC LIMIT 1`, string(kind))

	var (
		page    content.LegalPage
		updated sql.NullString
	)
	err := row.Scan(&page.Title, &page.Subtitle, &page.Content, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return page, ErrNotFound
	}
	if err != nil {
		return page, fmt.Errorf("get legal page: %w", err)
	}
	if updated.Valid {
		page.LastUpdated = &updated.String
	}
	return page, nil
}

// PublishLegalPage inserts a new active legal page of the given kind and
// deactivates every other page of that kind, so at most one is active.
func (s *Store) PublishLegalPage(ctx context.Context, kind content.LegalKind, page content.LegalPage) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin legal tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := nowStamp()
	if _, err := tx.ExecContext(ctx,
		`UPDATE legal_pages SET is_active = 0, updated_at = ? WHERE kind = ?`,
		now, string(kind)); err != nil {
		return 0, fmt.Errorf("deactivate legal pages: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
        INSERT INTO legal_pages (kind, title, subtitle, content, last_updated, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(kind), page.Title, page.Subtitle, page.Content,
		stringOrNil(page.LastUpdated), now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert legal page: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit legal page: %w", err)
	}
	return id, nil
}
