package store

import (
	"context"
	"database/sql"
	"fmt"

	"kambel/internal/content"
)

// ServiceParams carries the fields accepted when creating a consultancy service.
type ServiceParams struct {
	Name          string
	ServiceType   string
	Description   string
	Icon          string
	CoverImageURL string
	SortOrder     int
}

// FeatureParams carries the fields accepted when creating a service feature.
type FeatureParams struct {
	ServiceID   int64
	Title       string
	Description string
	Icon        string
	SortOrder   int
}

// ListServices returns active consultancy services with their active
// features, both ordered by sort order.
func (s *Store) ListServices(ctx context.Context) ([]content.Service, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, name, service_type, description, icon, cover_image_url
        FROM consultancy_services
        WHERE is_active = 1
        ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("query services: %w", err)
	}
	defer rows.Close()

	services := []content.Service{}
	for rows.Next() {
		var (
			svc   content.Service
			cover sql.NullString
		)
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.ServiceType, &svc.Description, &svc.Icon, &cover); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		if cover.Valid {
			svc.CoverImageURL = &cover.String
		}
		svc.Features = []content.ServiceFeature{}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range services {
		features, err := s.serviceFeatures(ctx, services[i].ID)
		if err != nil {
			return nil, err
		}
		services[i].Features = features
	}
	return services, nil
}

func (s *Store) serviceFeatures(ctx context.Context, serviceID int64) ([]content.ServiceFeature, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, title, description, icon
        FROM service_features
        WHERE service_id = ? AND is_active = 1
        ORDER BY sort_order, id`, serviceID)
	if err != nil {
		return nil, fmt.Errorf("query service features: %w", err)
	}
	defer rows.Close()

	features := []content.ServiceFeature{}
	for rows.Next() {
		var feature content.ServiceFeature
		if err := rows.Scan(&feature.ID, &feature.Title, &feature.Description, &feature.Icon); err != nil {
			return nil, fmt.Errorf("scan feature: %w", err)
		}
		features = append(features, feature)
	}
	return features, rows.Err()
}

// CreateService inserts a consultancy service and returns its id.
func (s *Store) CreateService(ctx context.Context, params ServiceParams) (int64, error) {
	now := nowStamp()
	res, err := s.db.ExecContext(ctx, `
        INSERT INTO consultancy_services (
            name, service_type, description, icon, cover_image_url,
            sort_order, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		params.Name,
		params.ServiceType,
		params.Description,
		params.Icon,
		nullableString(params.CoverImageURL),
		params.SortOrder,
		now,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert service: %w", err)
	}
	return res.LastInsertId()
}

// CreateServiceFeature inserts a feature under a service and returns its id.
func (s *Store) CreateServiceFeature(ctx context.Context, params FeatureParams) (int64, error) {
	now := nowStamp()
	res, err := s.db.ExecContext(ctx, `
        INSERT INTO service_features (
            service_id, title, description, icon, sort_order, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		params.ServiceID,
		params.Title,
		params.Description,
		params.Icon,
		params.SortOrder,
		now,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert service feature: %w", err)
	}
	return res.LastInsertId()
}
