package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kambel/internal/content"
)

// PublicationParams carries the fields accepted when creating a publication.
type PublicationParams struct {
	Title         string
	Author        string
	Description   string
	CategoryID    *int64
	Pages         int
	Price         float64
	CoverImageURL string
	PurchaseLink  string
}

// PublicationUpdate carries partial updates; nil fields keep current values.
type PublicationUpdate struct {
	Title         *string
	Author        *string
	Description   *string
	CategoryID    *int64
	Pages         *int
	Price         *float64
	CoverImageURL *string
	PurchaseLink  *string
}

// ListPublications returns all active publications with their category names.
func (s *Store) ListPublications(ctx context.Context) ([]content.Publication, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT p.id, p.title, p.author, p.description, p.pages, p.price,
               p.cover_image_url, p.purchase_link, c.name
        FROM publications p
        LEFT JOIN categories c ON c.id = p.category_id
        WHERE p.is_active = 1
        ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("query publications: %w", err)
	}
	defer rows.Close()

	publications := []content.Publication{}
	for rows.Next() {
		var (
			pub      content.Publication
			cover    sql.NullString
			category sql.NullString
		)
		if err := rows.Scan(
			&pub.ID, &pub.Title, &pub.Author, &pub.Description, &pub.Pages,
			&pub.Price, &cover, &pub.PurchaseLink, &category,
		); err != nil {
			return nil, fmt.Errorf("scan publication: %w", err)
		}
		if cover.Valid {
			pub.CoverImageURL = &cover.String
		}
		if category.Valid {
			pub.Category = &category.String
		}
		publications = append(publications, pub)
	}
	return publications, rows.Err()
}

// CreatePublication inserts a publication and returns its id.
func (s *Store) CreatePublication(ctx context.Context, params PublicationParams) (int64, error) {
	now := nowStamp()
	res, err := s.db.ExecContext(ctx, `
        INSERT INTO publications (
            title, author, description, category_id, pages, price,
            cover_image_url, purchase_link, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		params.Title,
		params.Author,
		params.Description,
		params.CategoryID,
		params.Pages,
		params.Price,
		nullableString(params.CoverImageURL),
		params.PurchaseLink,
		now,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert publication: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// UpdatePublication applies a partial update to an active publication.
func (s *Store) UpdatePublication(ctx context.Context, id int64, update PublicationUpdate) error {
	res, err := s.db.ExecContext(ctx, `
        UPDATE publications SET
            title = COALESCE(?, title),
            author = COALESCE(?, author),
            description = COALESCE(?, description),
            category_id = COALESCE(?, category_id),
            pages = COALESCE(?, pages),
            price = COALESCE(?, price),
            cover_image_url = COALESCE(?, cover_image_url),
            purchase_link = COALESCE(?, purchase_link),
            updated_at = ?
        WHERE id = ? AND is_active = 1`,
		update.Title,
		update.Author,
		update.Description,
		update.CategoryID,
		update.Pages,
		update.Price,
		stringOrNil(update.CoverImageURL),
		update.PurchaseLink,
		nowStamp(),
		id,
	)
	if err != nil {
		return fmt.Errorf("update publication: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePublication soft-deletes a publication; the row stays for auditing.
func (s *Store) DeletePublication(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE publications SET is_active = 0, updated_at = ? WHERE id = ? AND is_active = 1`,
		nowStamp(), id,
	)
	if err != nil {
		return fmt.Errorf("delete publication: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListCategories returns all active categories.
func (s *Store) ListCategories(ctx context.Context) ([]content.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description FROM categories WHERE is_active = 1 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := []content.Category{}
	for rows.Next() {
		var cat content.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

// CreateCategory inserts a category and returns its id.
func (s *Store) CreateCategory(ctx context.Context, name, description string) (int64, error) {
	now := nowStamp()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (name, description, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		name, description, now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert category: %w", err)
	}
	return res.LastInsertId()
}

// GetPublication returns one active publication by id.
func (s *Store) GetPublication(ctx context.Context, id int64) (*content.Publication, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT p.id, p.title, p.author, p.description, p.pages, p.price,
               p.cover_image_url, p.purchase_link, c.name
        FROM publications p
        LEFT JOIN categories c ON c.id = p.category_id
        WHERE p.id = ? AND p.is_active = 1`, id)

	var (
		pub      content.Publication
		cover    sql.NullString
		category sql.NullString
	)
	err := row.Scan(
		&pub.ID, &pub.Title, &pub.Author, &pub.Description, &pub.Pages,
		&pub.Price, &cover, &pub.PurchaseLink, &category,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get publication: %w", err)
	}
	if cover.Valid {
		pub.CoverImageURL = &cover.String
	}
	if category.Valid {
		pub.Category = &category.String
	}
	return &pub, nil
}
