package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"kambel/internal/content"
)

// MasterclassParams carries the fields accepted when creating a masterclass.
type MasterclassParams struct {
	Title          string
	Description    string
	Instructor     string
	Date           string
	Duration       string
	Price          float64
	TotalSeats     int
	SeatsAvailable int
	CoverImageURL  string
	VideoURL       string
	Upcoming       bool
}

// RegistrationOutcome reports what RegisterForMasterclass persisted.
type RegistrationOutcome struct {
	RegistrationID int64
	Reference      string
	SeatReserved   bool
}

const masterclassColumns = `id, title, description, instructor, date, duration,
    price, total_seats, seats_available, cover_image_url, video_url`

// ListMasterclasses returns active masterclasses split into upcoming (date
// ascending) and previous (date descending). A missing cover image is
// derived from a recognized video URL.
func (s *Store) ListMasterclasses(ctx context.Context) (content.MasterclassList, error) {
	list := content.NewMasterclassList()

	upcoming, err := s.queryMasterclasses(ctx,
		`SELECT `+masterclassColumns+` FROM masterclasses
         WHERE is_upcoming = 1 AND is_active = 1 ORDER BY date, id`)
	if err != nil {
		return list, err
	}
	previous, err := s.queryMasterclasses(ctx,
		`SELECT `+masterclassColumns+` FROM masterclasses
         WHERE is_upcoming = 0 AND is_active = 1 ORDER BY date DESC, id DESC`)
	if err != nil {
		return list, err
	}

	list.Upcoming = upcoming
	list.Previous = previous
	return list, nil
}

// GetMasterclass returns one active masterclass by id.
func (s *Store) GetMasterclass(ctx context.Context, id int64) (*content.Masterclass, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+masterclassColumns+` FROM masterclasses WHERE id = ? AND is_active = 1`, id)
	mc, err := scanMasterclass(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get masterclass: %w", err)
	}
	return mc, nil
}

func (s *Store) queryMasterclasses(ctx context.Context, query string) ([]content.Masterclass, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query masterclasses: %w", err)
	}
	defer rows.Close()

	classes := []content.Masterclass{}
	for rows.Next() {
		mc, err := scanMasterclass(rows)
		if err != nil {
			return nil, fmt.Errorf("scan masterclass: %w", err)
		}
		classes = append(classes, *mc)
	}
	return classes, rows.Err()
}

func scanMasterclass(scanner interface{ Scan(dest ...any) error }) (*content.Masterclass, error) {
	var (
		mc    content.Masterclass
		cover sql.NullString
		video sql.NullString
	)
	if err := scanner.Scan(
		&mc.ID, &mc.Title, &mc.Description, &mc.Instructor, &mc.Date,
		&mc.Duration, &mc.Price, &mc.TotalSeats, &mc.SeatsAvailable,
		&cover, &video,
	); err != nil {
		return nil, err
	}
	if video.Valid {
		mc.VideoURL = &video.String
	}
	switch {
	case cover.Valid:
		mc.CoverImageURL = &cover.String
	case video.Valid:
		if thumb := content.VideoThumbnail(video.String); thumb != "" {
			mc.CoverImageURL = &thumb
		}
	}
	return &mc, nil
}

// CreateMasterclass inserts a masterclass and returns its id. An empty
// instructor falls back to the site principal.
func (s *Store) CreateMasterclass(ctx context.Context, params MasterclassParams) (int64, error) {
	instructor := params.Instructor
	if instructor == "" {
		instructor = content.DefaultAuthor
	}
	now := nowStamp()
	res, err := s.db.ExecContext(ctx, `
        INSERT INTO masterclasses (
            title, description, instructor, date, duration, price,
            total_seats, seats_available, cover_image_url, video_url,
            is_upcoming, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		params.Title,
		params.Description,
		instructor,
		params.Date,
		params.Duration,
		params.Price,
		params.TotalSeats,
		params.SeatsAvailable,
		nullableString(params.CoverImageURL),
		nullableString(params.VideoURL),
		boolToInt(params.Upcoming),
		now,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert masterclass: %w", err)
	}
	return res.LastInsertId()
}

// RegisterForMasterclass persists a registration with a fresh reference.
// When the request names an active masterclass, one seat is reserved with a
// conditional decrement that cannot push the counter below zero. A newsletter
// opt-in subscribes the registrant's email in the same transaction.
func (s *Store) RegisterForMasterclass(ctx context.Context, req content.RegistrationRequest) (RegistrationOutcome, error) {
	outcome := RegistrationOutcome{Reference: uuid.NewString()}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return outcome, fmt.Errorf("begin registration tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var masterclassID any
	title := req.MasterclassTitle
	if req.MasterclassID != 0 {
		var storedTitle string
		row := tx.QueryRowContext(ctx,
			`SELECT title FROM masterclasses WHERE id = ? AND is_active = 1`, req.MasterclassID)
		switch err := row.Scan(&storedTitle); {
		case err == nil:
			masterclassID = req.MasterclassID
			title = storedTitle
		case errors.Is(err, sql.ErrNoRows):
			// Unknown id: keep the registration but leave it unlinked.
		default:
			return outcome, fmt.Errorf("lookup masterclass: %w", err)
		}
	}

	now := nowStamp()
	res, err := tx.ExecContext(ctx, `
        INSERT INTO masterclass_registrations (
            masterclass_id, masterclass_title, reference, first_name, last_name,
            email, phone, company, experience_years, motivation,
            subscribe_newsletter, status, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 'pending', ?, ?)`,
		masterclassID,
		title,
		outcome.Reference,
		req.FirstName,
		req.LastName,
		req.Email,
		req.Phone,
		req.Company,
		req.ExperienceYears,
		req.Motivation,
		boolToInt(req.SubscribeNewsletter),
		now,
		now,
	)
	if err != nil {
		return outcome, fmt.Errorf("insert registration: %w", err)
	}
	if outcome.RegistrationID, err = res.LastInsertId(); err != nil {
		return outcome, fmt.Errorf("last insert id: %w", err)
	}

	if masterclassID != nil {
		seatRes, err := tx.ExecContext(ctx, `
            UPDATE masterclasses
            SET seats_available = seats_available - 1, updated_at = ?
            WHERE id = ? AND seats_available > 0`,
			now, masterclassID,
		)
		if err != nil {
			return outcome, fmt.Errorf("reserve seat: %w", err)
		}
		affected, err := seatRes.RowsAffected()
		if err != nil {
			return outcome, fmt.Errorf("rows affected: %w", err)
		}
		outcome.SeatReserved = affected > 0
	}

	if req.SubscribeNewsletter && req.Email != "" {
		if _, err := subscribeNewsletter(ctx, tx, req.Email); err != nil {
			return outcome, err
		}
	}

	if err := tx.Commit(); err != nil {
		return outcome, fmt.Errorf("commit registration: %w", err)
	}
	return outcome, nil
}
