package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAuthority(); err != nil {
		return err
	}
	if err := c.validateWeb(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAuthority() error {
	if strings.TrimSpace(c.Authority.Bind) == "" {
		return errors.New("authority.bind must be set")
	}
	if strings.TrimSpace(c.Authority.DataDir) == "" {
		return errors.New("authority.data_dir must be set")
	}
	return nil
}

func (c *Config) validateWeb() error {
	if strings.TrimSpace(c.Web.Bind) == "" {
		return errors.New("web.bind must be set")
	}
	parsed, err := url.Parse(c.Web.AuthorityURL)
	if err != nil {
		return fmt.Errorf("web.authority_url is not a valid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("web.authority_url must use http or https, got %q", c.Web.AuthorityURL)
	}
	if parsed.Host == "" {
		return errors.New("web.authority_url must include a host")
	}
	if c.Web.RequestTimeout <= 0 {
		return errors.New("web.request_timeout must be positive (seconds)")
	}
	return nil
}
