package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kambel/internal/content"
)

// NewsletterStatus describes the outcome of a subscription attempt.
type NewsletterStatus int

const (
	// NewsletterSubscribed means a new subscription row was created.
	NewsletterSubscribed NewsletterStatus = iota
	// NewsletterAlreadySubscribed means the email was already active.
	NewsletterAlreadySubscribed
	// NewsletterResubscribed means an inactive subscription was reactivated.
	NewsletterResubscribed
)

// Message returns the confirmation text the original API replies with.
func (ns NewsletterStatus) Message() string {
	switch ns {
	case NewsletterAlreadySubscribed:
		return "Email is already subscribed"
	case NewsletterResubscribed:
		return "Email resubscribed successfully"
	default:
		return "Successfully subscribed to newsletter"
	}
}

// CreateContactMessage stores a contact form submission and returns its id.
func (s *Store) CreateContactMessage(ctx context.Context, req content.ContactRequest) (int64, error) {
	now := nowStamp()
	res, err := s.db.ExecContext(ctx, `
        INSERT INTO contact_messages (name, email, subject, message, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?)`,
		req.Name, req.Email, req.Subject, req.Message, now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert contact message: %w", err)
	}
	return res.LastInsertId()
}

// SubscribeNewsletter subscribes an email address. Subscribing twice is
// harmless: an active duplicate is reported as such, an inactive one is
// reactivated.
func (s *Store) SubscribeNewsletter(ctx context.Context, email string) (NewsletterStatus, error) {
	return subscribeNewsletter(ctx, s.db, email)
}

// UnsubscribeNewsletter deactivates a subscription. The row is kept so a
// later subscribe reactivates it instead of creating a duplicate.
func (s *Store) UnsubscribeNewsletter(ctx context.Context, email string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE newsletter_subscriptions SET is_active = 0, updated_at = ? WHERE email = ?`,
		nowStamp(), email,
	)
	if err != nil {
		return fmt.Errorf("deactivate subscription: %w", err)
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

type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func subscribeNewsletter(ctx context.Context, q execQuerier, email string) (NewsletterStatus, error) {
	var (
		id     int64
		active int
	)
	row := q.QueryRowContext(ctx,
		`SELECT id, is_active FROM newsletter_subscriptions WHERE email = ?`, email)
	err := row.Scan(&id, &active)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		now := nowStamp()
		if _, err := q.ExecContext(ctx, `
            INSERT INTO newsletter_subscriptions (email, created_at, updated_at)
            VALUES (?, ?, ?)`, email, now, now); err != nil {
			return NewsletterSubscribed, fmt.Errorf("insert subscription: %w", err)
		}
		return NewsletterSubscribed, nil
	case err != nil:
		return NewsletterSubscribed, fmt.Errorf("lookup subscription: %w", err)
	case active != 0:
		return NewsletterAlreadySubscribed, nil
	default:
		if _, err := q.ExecContext(ctx,
			`UPDATE newsletter_subscriptions SET is_active = 1, updated_at = ? WHERE id = ?`,
			nowStamp(), id); err != nil {
			return NewsletterResubscribed, fmt.Errorf("reactivate subscription: %w", err)
		}
		return NewsletterResubscribed, nil
	}
}
