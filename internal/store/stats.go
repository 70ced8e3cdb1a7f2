package store

import (
	"context"
	"fmt"
)

// StatRow is one content-type count for diagnostics output.
type StatRow struct {
	Name   string
	Active int
	Total  int
}

// ContentStats counts rows per content type, active and total, in a fixed
// display order.
func (s *Store) ContentStats(ctx context.Context) ([]StatRow, error) {
	tables := []struct {
		name   string
		table  string
		active string
	}{
		{"categories", "categories", "is_active = 1"},
		{"publications", "publications", "is_active = 1"},
		{"consultancy services", "consultancy_services", "is_active = 1"},
		{"blog posts", "blog_posts", "is_published = 1"},
		{"masterclasses", "masterclasses", "is_active = 1"},
		{"registrations", "masterclass_registrations", "status != 'cancelled'"},
		{"contact messages", "contact_messages", "is_read = 0"},
		{"newsletter subscribers", "newsletter_subscriptions", "is_active = 1"},
		{"social links", "social_links", "is_active = 1"},
		{"gallery items", "gallery_items", "is_active = 1"},
	}

	stats := make([]StatRow, 0, len(tables))
	for _, entry := range tables {
		row := StatRow{Name: entry.name}
		query := fmt.Sprintf(
			"SELECT COUNT(1), COALESCE(SUM(CASE WHEN %s THEN 1 ELSE 0 END), 0) FROM %s",
			entry.active, entry.table,
		)
		if err := s.db.QueryRowContext(ctx, query).Scan(&row.Total, &row.Active); err != nil {
			return nil, fmt.Errorf("count %s: %w", entry.table, err)
		}
		stats = append(stats, row)
	}
	return stats, nil
}
