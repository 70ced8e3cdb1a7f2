package config

const (
	defaultAuthorityBind  = "127.0.0.1:8000"
	defaultWebBind        = "127.0.0.1:5001"
	defaultAuthorityURL   = "http://127.0.0.1:8000"
	defaultRequestTimeout = 5
	defaultDataDir        = "~/.local/share/kambel"
	defaultFallbackDir    = "~/.local/share/kambel/fallback"
	defaultLogDir         = "~/.local/share/kambel/logs"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultSiteName       = "Kambel Consult"
	defaultSiteTagline    = "Professional Consulting and Training Services"
	defaultSitePrincipal  = "Moses Agbesi Katamani"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Authority: Authority{
			Bind:    defaultAuthorityBind,
			DataDir: defaultDataDir,
		},
		Web: Web{
			Bind:           defaultWebBind,
			AuthorityURL:   defaultAuthorityURL,
			RequestTimeout: defaultRequestTimeout,
			FallbackDir:    defaultFallbackDir,
		},
		Site: Site{
			Name:      defaultSiteName,
			Tagline:   defaultSiteTagline,
			Principal: defaultSitePrincipal,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Dir:    defaultLogDir,
		},
	}
}
