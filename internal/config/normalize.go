package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeAuthority(); err != nil {
		return err
	}
	if err := c.normalizeWeb(); err != nil {
		return err
	}
	c.normalizeSite()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeAuthority() error {
	c.Authority.Bind = strings.TrimSpace(c.Authority.Bind)
	if value, ok := os.LookupEnv("KAMBEL_AUTHORITY_BIND"); ok && strings.TrimSpace(value) != "" {
		c.Authority.Bind = strings.TrimSpace(value)
	}
	if c.Authority.Bind == "" {
		c.Authority.Bind = defaultAuthorityBind
	}

	if value, ok := os.LookupEnv("KAMBEL_DATA_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Authority.DataDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Authority.DataDir) == "" {
		c.Authority.DataDir = defaultDataDir
	}
	var err error
	if c.Authority.DataDir, err = expandPath(c.Authority.DataDir); err != nil {
		return fmt.Errorf("authority.data_dir: %w", err)
	}
	c.Authority.CORSOrigins = normalizeOrigins(c.Authority.CORSOrigins)
	return nil
}

func (c *Config) normalizeWeb() error {
	c.Web.Bind = strings.TrimSpace(c.Web.Bind)
	if value, ok := os.LookupEnv("KAMBEL_WEB_BIND"); ok && strings.TrimSpace(value) != "" {
		c.Web.Bind = strings.TrimSpace(value)
	}
	if c.Web.Bind == "" {
		c.Web.Bind = defaultWebBind
	}

	c.Web.AuthorityURL = strings.TrimSpace(c.Web.AuthorityURL)
	if value, ok := os.LookupEnv("KAMBEL_AUTHORITY_URL"); ok && strings.TrimSpace(value) != "" {
		c.Web.AuthorityURL = strings.TrimSpace(value)
	}
	if c.Web.AuthorityURL == "" {
		c.Web.AuthorityURL = defaultAuthorityURL
	}
	c.Web.AuthorityURL = strings.TrimRight(c.Web.AuthorityURL, "/")

	if c.Web.RequestTimeout <= 0 {
		c.Web.RequestTimeout = defaultRequestTimeout
	}

	if strings.TrimSpace(c.Web.FallbackDir) == "" {
		c.Web.FallbackDir = defaultFallbackDir
	}
	var err error
	if c.Web.FallbackDir, err = expandPath(c.Web.FallbackDir); err != nil {
		return fmt.Errorf("web.fallback_dir: %w", err)
	}
	c.Web.CORSOrigins = normalizeOrigins(c.Web.CORSOrigins)
	return nil
}

func (c *Config) normalizeSite() {
	c.Site.Name = strings.TrimSpace(c.Site.Name)
	if c.Site.Name == "" {
		c.Site.Name = defaultSiteName
	}
	c.Site.Tagline = strings.TrimSpace(c.Site.Tagline)
	if c.Site.Tagline == "" {
		c.Site.Tagline = defaultSiteTagline
	}
	c.Site.Principal = strings.TrimSpace(c.Site.Principal)
	if c.Site.Principal == "" {
		c.Site.Principal = defaultSitePrincipal
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Dir) == "" {
		c.Logging.Dir = defaultLogDir
	}
	if expanded, err := expandPath(c.Logging.Dir); err == nil {
		c.Logging.Dir = expanded
	}
}

func normalizeOrigins(origins []string) []string {
	if len(origins) == 0 {
		return nil
	}
	out := make([]string, 0, len(origins))
	seen := make(map[string]struct{}, len(origins))
	for _, origin := range origins {
		trimmed := strings.TrimRight(strings.TrimSpace(origin), "/")
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
