package store

import (
	"context"
	"database/sql"
	"fmt"

	"kambel/internal/content"
)

// BlogPostParams carries the fields accepted when creating a blog post.
type BlogPostParams struct {
	Title         string
	Content       string
	Excerpt       string
	Author        string
	CoverImageURL string
	Published     bool
}

// ListBlogPosts returns published posts, newest first, with display dates.
func (s *Store) ListBlogPosts(ctx context.Context) ([]content.BlogPost, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, title, content, excerpt, author, cover_image_url, created_at
        FROM blog_posts
        WHERE is_published = 1
        ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query blog posts: %w", err)
	}
	defer rows.Close()

	posts := []content.BlogPost{}
	for rows.Next() {
		var (
			post    content.BlogPost
			cover   sql.NullString
			created string
		)
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.Excerpt, &post.Author, &cover, &created); err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		if cover.Valid {
			post.CoverImageURL = &cover.String
		}
		if t, err := parseTimeString(created); err == nil {
			post.Date = t.Format(content.BlogDateLayout)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// CreateBlogPost inserts a blog post and returns its id. An empty author
// falls back to the team byline.
func (s *Store) CreateBlogPost(ctx context.Context, params BlogPostParams) (int64, error) {
	author := params.Author
	if author == "" {
		author = content.BlogTeamAuthor
	}
	now := nowStamp()
	res, err := s.db.ExecContext(ctx, `
        INSERT INTO blog_posts (
            title, content, excerpt, author, cover_image_url,
            is_published, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		params.Title,
		params.Content,
		params.Excerpt,
		author,
		nullableString(params.CoverImageURL),
		boolToInt(params.Published),
		now,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert blog post: %w", err)
	}
	return res.LastInsertId()
}
