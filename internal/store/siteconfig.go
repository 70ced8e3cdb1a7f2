package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"kambel/internal/content"
)

// SiteConfig returns the active site configuration singleton.
func (s *Store) SiteConfig(ctx context.Context) (content.SiteConfig, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT site_name, tagline, contact_email, contact_phone, address,
               location, logo_url, favicon_url
        FROM site_config WHERE is_active = 1 ORDER BY id LIMIT 1`)

	var (
		cfg     content.SiteConfig
		logo    sql.NullString
		favicon sql.NullString
	)
	err := row.Scan(
		&cfg.SiteName, &cfg.Tagline, &cfg.ContactEmail, &cfg.ContactPhone,
		&cfg.Address, &cfg.Location, &logo, &favicon,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return cfg, ErrNotFound
	}
	if err != nil {
		return cfg, fmt.Errorf("get site config: %w", err)
	}
	if logo.Valid {
		cfg.LogoURL = &logo.String
	}
	if favicon.Valid {
		cfg.FaviconURL = &favicon.String
	}
	return cfg, nil
}

// CreateSiteConfig inserts the site configuration singleton. Creation is
// refused while an active row exists.
func (s *Store) CreateSiteConfig(ctx context.Context, cfg content.SiteConfig) (int64, error) {
	if err := s.ensureSingletonFree(ctx, "site_config"); err != nil {
		return 0, err
	}
	now := nowStamp()
	res, err := s.db.ExecContext(ctx, `
        INSERT INTO site_config (
            site_name, tagline, contact_email, contact_phone, address,
            location, logo_url, favicon_url, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		cfg.SiteName, cfg.Tagline, cfg.ContactEmail, cfg.ContactPhone,
		cfg.Address, cfg.Location, stringOrNil(cfg.LogoURL), stringOrNil(cfg.FaviconURL),
		now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert site config: %w", err)
	}
	return res.LastInsertId()
}

// HeroConfig returns the active hero configuration singleton.
func (s *Store) HeroConfig(ctx context.Context) (content.HeroConfig, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT hero_title, hero_subtitle, profile_name, profile_title,
               profile_picture_url, years_experience, years_label,
               years_description, clients_count, clients_label,
               clients_description, publications_count, publications_label,
               publications_description
        FROM hero_config WHERE is_active = 1 ORDER BY id LIMIT 1`)

	var (
		hero    content.HeroConfig
		picture sql.NullString
	)
	err := row.Scan(
		&hero.HeroTitle, &hero.HeroSubtitle, &hero.ProfileName, &hero.ProfileTitle,
		&picture, &hero.YearsExperience, &hero.YearsLabel, &hero.YearsDescription,
		&hero.ClientsCount, &hero.ClientsLabel, &hero.ClientsDescription,
		&hero.PublicationsCount, &hero.PublicationsLabel, &hero.PublicationsDescription,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return hero, ErrNotFound
	}
	if err != nil {
		return hero, fmt.Errorf("get hero config: %w", err)
	}
	if picture.Valid {
		hero.ProfilePictureURL = &picture.String
	}
	return hero, nil
}

// CreateHeroConfig inserts the hero singleton; refused while one is active.
func (s *Store) CreateHeroConfig(ctx context.Context, hero content.HeroConfig) (int64, error) {
	if err := s.ensureSingletonFree(ctx, "hero_config"); err != nil {
		return 0, err
	}
	now := nowStamp()
	res, err := s.db.ExecContext(ctx, `
        INSERT INTO hero_config (
            hero_title, hero_subtitle, profile_name, profile_title,
            profile_picture_url, years_experience, years_label,
            years_description, clients_count, clients_label,
            clients_description, publications_count, publications_label,
            publications_description, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		hero.HeroTitle, hero.HeroSubtitle, hero.ProfileName, hero.ProfileTitle,
		stringOrNil(hero.ProfilePictureURL), hero.YearsExperience, hero.YearsLabel,
		hero.YearsDescription, hero.ClientsCount, hero.ClientsLabel,
		hero.ClientsDescription, hero.PublicationsCount, hero.PublicationsLabel,
		hero.PublicationsDescription, now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert hero config: %w", err)
	}
	return res.LastInsertId()
}

// AboutConfig returns the active about-page singleton with its nested lists.
func (s *Store) AboutConfig(ctx context.Context) (content.AboutConfig, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT id, hero_years, hero_clients, hero_publications, hero_speaking,
               profile_name, profile_title, profile_picture_url, bio_summary,
               tags, philosophy_quote, cta_title, cta_description
        FROM about_config WHERE is_active = 1 ORDER BY id LIMIT 1`)

	var (
		about   content.AboutConfig
		aboutID int64
		picture sql.NullString
		rawTags string
	)
	err := row.Scan(
		&aboutID, &about.HeroYears, &about.HeroClients, &about.HeroPublications,
		&about.HeroSpeaking, &about.ProfileName, &about.ProfileTitle, &picture,
		&about.BioSummary, &rawTags, &about.PhilosophyQuote, &about.CTATitle,
		&about.CTADescription,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return about, ErrNotFound
	}
	if err != nil {
		return about, fmt.Errorf("get about config: %w", err)
	}
	if picture.Valid {
		about.ProfilePictureURL = &picture.String
	}
	about.Tags = splitTags(rawTags)

	if about.Journey, err = s.journeyItems(ctx, aboutID); err != nil {
		return about, err
	}
	if about.Education, err = s.educationItems(ctx, aboutID); err != nil {
		return about, err
	}
	if about.Achievements, err = s.achievementItems(ctx, aboutID); err != nil {
		return about, err
	}
	if about.Speaking, err = s.speakingItems(ctx, aboutID); err != nil {
		return about, err
	}
	return about, nil
}

func splitTags(raw string) []string {
	tags := []string{}
	for _, tag := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

func (s *Store) journeyItems(ctx context.Context, aboutID int64) ([]content.JourneyItem, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT title, organization, period, description, icon
        FROM journey_items WHERE about_id = ? AND is_active = 1
        ORDER BY sort_order, id`, aboutID)
	if err != nil {
		return nil, fmt.Errorf("query journey items: %w", err)
	}
	defer rows.Close()

	items := []content.JourneyItem{}
	for rows.Next() {
		var item content.JourneyItem
		if err := rows.Scan(&item.Title, &item.Organization, &item.Period, &item.Description, &item.Icon); err != nil {
			return nil, fmt.Errorf("scan journey item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *Store) educationItems(ctx context.Context, aboutID int64) ([]content.EducationItem, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT qualification, institution, year, icon
        FROM education_items WHERE about_id = ? AND is_active = 1
        ORDER BY sort_order, id`, aboutID)
	if err != nil {
		return nil, fmt.Errorf("query education items: %w", err)
	}
	defer rows.Close()

	items := []content.EducationItem{}
	for rows.Next() {
		var item content.EducationItem
		if err := rows.Scan(&item.Qualification, &item.Institution, &item.Year, &item.Icon); err != nil {
			return nil, fmt.Errorf("scan education item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *Store) achievementItems(ctx context.Context, aboutID int64) ([]content.Achievement, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT title, description, year, icon
        FROM achievements WHERE about_id = ? AND is_active = 1
        ORDER BY sort_order, id`, aboutID)
	if err != nil {
		return nil, fmt.Errorf("query achievements: %w", err)
	}
	defer rows.Close()

	items := []content.Achievement{}
	for rows.Next() {
		var item content.Achievement
		if err := rows.Scan(&item.Title, &item.Description, &item.Year, &item.Icon); err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *Store) speakingItems(ctx context.Context, aboutID int64) ([]content.SpeakingEngagement, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT title, event, date, location
        FROM speaking_engagements WHERE about_id = ? AND is_active = 1
        ORDER BY sort_order, id`, aboutID)
	if err != nil {
		return nil, fmt.Errorf("query speaking engagements: %w", err)
	}
	defer rows.Close()

	items := []content.SpeakingEngagement{}
	for rows.Next() {
		var item content.SpeakingEngagement
		if err := rows.Scan(&item.Title, &item.Event, &item.Date, &item.Location); err != nil {
			return nil, fmt.Errorf("scan speaking engagement: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// AboutChildParams seeds one nested about-page entry.
type AboutChildParams struct {
	AboutID   int64
	SortOrder int
}

// CreateAboutConfig inserts the about singleton; refused while one is active.
func (s *Store) CreateAboutConfig(ctx context.Context, about content.AboutConfig) (int64, error) {
	if err := s.ensureSingletonFree(ctx, "about_config"); err != nil {
		return 0, err
	}
	now := nowStamp()
	res, err := s.db.ExecContext(ctx, `
        INSERT INTO about_config (
            hero_years, hero_clients, hero_publications, hero_speaking,
            profile_name, profile_title, profile_picture_url, bio_summary,
            tags, philosophy_quote, cta_title, cta_description,
            created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		about.HeroYears, about.HeroClients, about.HeroPublications,
		about.HeroSpeaking, about.ProfileName, about.ProfileTitle,
		stringOrNil(about.ProfilePictureURL), about.BioSummary,
		strings.Join(about.Tags, ", "), about.PhilosophyQuote,
		about.CTATitle, about.CTADescription, now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert about config: %w", err)
	}
	return res.LastInsertId()
}

// AddJourneyItem appends a journey entry to an about config.
func (s *Store) AddJourneyItem(ctx context.Context, p AboutChildParams, item content.JourneyItem) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO journey_items (about_id, title, organization, period, description, icon, sort_order)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.AboutID, item.Title, item.Organization, item.Period, item.Description, item.Icon, p.SortOrder)
	if err != nil {
		return fmt.Errorf("insert journey item: %w", err)
	}
	return nil
}

// AddEducationItem appends an education entry to an about config.
func (s *Store) AddEducationItem(ctx context.Context, p AboutChildParams, item content.EducationItem) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO education_items (about_id, qualification, institution, year, icon, sort_order)
        VALUES (?, ?, ?, ?, ?, ?)`,
		p.AboutID, item.Qualification, item.Institution, item.Year, item.Icon, p.SortOrder)
	if err != nil {
		return fmt.Errorf("insert education item: %w", err)
	}
	return nil
}

// AddAchievement appends an achievement entry to an about config.
func (s *Store) AddAchievement(ctx context.Context, p AboutChildParams, item content.Achievement) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO achievements (about_id, title, description, year, icon, sort_order)
        VALUES (?, ?, ?, ?, ?, ?)`,
		p.AboutID, item.Title, item.Description, item.Year, item.Icon, p.SortOrder)
	if err != nil {
		return fmt.Errorf("insert achievement: %w", err)
	}
	return nil
}

// AddSpeakingEngagement appends a speaking entry to an about config.
func (s *Store) AddSpeakingEngagement(ctx context.Context, p AboutChildParams, item content.SpeakingEngagement) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO speaking_engagements (about_id, title, event, date, location, sort_order)
        VALUES (?, ?, ?, ?, ?, ?)`,
		p.AboutID, item.Title, item.Event, item.Date, item.Location, p.SortOrder)
	if err != nil {
		return fmt.Errorf("insert speaking engagement: %w", err)
	}
	return nil
}

func (s *Store) ensureSingletonFree(ctx context.Context, table string) error {
	var count int
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM `+table+` WHERE is_active = 1`)
	if err := row.Scan(&count); err != nil {
		return fmt.Errorf("count %s rows: %w", table, err)
	}
	if count > 0 {
		return ErrSingletonExists
	}
	return nil
}

// SocialLinks returns active links ordered for display, with the icon class
// defaulted per platform when unset.
func (s *Store) SocialLinks(ctx context.Context) ([]content.SocialLink, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT platform, url, icon_class, sort_order
        FROM social_links WHERE is_active = 1
        ORDER BY sort_order, platform`)
	if err != nil {
		return nil, fmt.Errorf("query social links: %w", err)
	}
	defer rows.Close()

	links := []content.SocialLink{}
	for rows.Next() {
		var (
			link content.SocialLink
			icon string
		)
		if err := rows.Scan(&link.Platform, &link.URL, &icon, &link.Order); err != nil {
			return nil, fmt.Errorf("scan social link: %w", err)
		}
		link.IconClass = content.SocialIcon(link.Platform, icon)
		links = append(links, link)
	}
	return links, rows.Err()
}

// CreateSocialLink inserts a social link and returns its id.
func (s *Store) CreateSocialLink(ctx context.Context, platform, url, iconClass string, order int) (int64, error) {
	now := nowStamp()
	res, err := s.db.ExecContext(ctx, `
        INSERT INTO social_links (platform, url, icon_class, sort_order, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?)`,
		platform, url, iconClass, order, now, now)
	if err != nil {
		return 0, fmt.Errorf("insert social link: %w", err)
	}
	return res.LastInsertId()
}
