package testsupport

import (
	"path/filepath"
	"testing"

	"kambel/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Authority.Bind = "127.0.0.1:0"
	cfg.Authority.DataDir = filepath.Join(base, "data")
	cfg.Web.Bind = "127.0.0.1:0"
	cfg.Web.FallbackDir = filepath.Join(base, "fallback")
	cfg.Logging.Dir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithAuthorityURL points the web config at an explicit upstream, usually an
// httptest server.
func WithAuthorityURL(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Web.AuthorityURL = url
	}
}

// WithRequestTimeout overrides the upstream timeout in seconds.
func WithRequestTimeout(seconds int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Web.RequestTimeout = seconds
	}
}
