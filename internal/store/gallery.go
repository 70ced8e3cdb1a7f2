package store

import (
	"context"
	"database/sql"
	"fmt"

	"kambel/internal/content"
)

// GalleryParams carries the fields accepted when creating a gallery item.
type GalleryParams struct {
	Title        string
	Caption      string
	Description  string
	MediaType    string
	ImageURL     string
	VideoURL     string
	ThumbnailURL string
	SortOrder    int
	Featured     bool
}

// ListGallery returns active gallery items in display order. Video items
// without an explicit thumbnail get one derived from the video URL.
func (s *Store) ListGallery(ctx context.Context, featuredOnly bool) ([]content.GalleryItem, error) {
	query := `
        SELECT id, title, caption, description, media_type, image_url,
               video_url, thumbnail_url, is_featured, sort_order, created_at
        FROM gallery_items WHERE is_active = 1`
	if featuredOnly {
		query += ` AND is_featured = 1`
	}
	query += ` ORDER BY sort_order, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query gallery: %w", err)
	}
	defer rows.Close()

	items := []content.GalleryItem{}
	for rows.Next() {
		var (
			item    content.GalleryItem
			image   sql.NullString
			video   sql.NullString
			thumb   sql.NullString
			created string
		)
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Caption, &item.Description,
			&item.MediaType, &image, &video, &thumb, &item.IsFeatured,
			&item.Order, &created,
		); err != nil {
			return nil, fmt.Errorf("scan gallery item: %w", err)
		}

		switch item.MediaType {
		case "image":
			if image.Valid {
				item.MediaURL = &image.String
				item.ThumbnailURL = &image.String
			}
		case "video":
			if video.Valid {
				item.MediaURL = &video.String
			}
			switch {
			case thumb.Valid:
				item.ThumbnailURL = &thumb.String
			case video.Valid:
				if derived := content.VideoThumbnail(video.String); derived != "" {
					item.ThumbnailURL = &derived
				}
			}
		}

		if t, err := parseTimeString(created); err == nil {
			stamp := t.Format("2006-01-02")
			item.CreatedAt = &stamp
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// CreateGalleryItem inserts a gallery item and returns its id.
func (s *Store) CreateGalleryItem(ctx context.Context, params GalleryParams) (int64, error) {
	now := nowStamp()
	res, err := s.db.ExecContext(ctx, `
        INSERT INTO gallery_items (
            title, caption, description, media_type, image_url, video_url,
            thumbnail_url, sort_order, is_featured, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		params.Title,
		params.Caption,
		params.Description,
		params.MediaType,
		nullableString(params.ImageURL),
		nullableString(params.VideoURL),
		nullableString(params.ThumbnailURL),
		params.SortOrder,
		boolToInt(params.Featured),
		now,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert gallery item: %w", err)
	}
	return res.LastInsertId()
}
