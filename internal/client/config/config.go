package config

import "time"

// Config holds runtime settings for the Tastebook CLI.
//
// The backend is split across three HTTP servers; each gets its own base URL.
// Free-text search (/mongo/search) is served by the recipe server.
type Config struct {
	MemberServerURL string
	RecipeServerURL string
	ChatServerURL   string

	// RequestTimeout bounds every single HTTP call.
	RequestTimeout time.Duration

	// SearchDebounce is the quiet period before a typed query is dispatched.
	SearchDebounce time.Duration

	// Page sizes are fixed per screen, mirroring the mobile client.
	FeedPageSize    int
	CommentPageSize int
	FollowPageSize  int

	// CredentialsDSN locates the local sqlite database holding the
	// access/refresh token pair and member id.
	CredentialsDSN string

	LogLevel  string
	LogFormat string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.MemberServerURL = "http://127.0.0.1:8081"
	c.RecipeServerURL = "http://127.0.0.1:8082"
	c.ChatServerURL = "http://127.0.0.1:8083"
	c.RequestTimeout = 10 * time.Second
	c.SearchDebounce = 300 * time.Millisecond
	c.FeedPageSize = 10
	c.CommentPageSize = 5
	c.FollowPageSize = 7
	c.CredentialsDSN = "tastebook.db"
	c.LogLevel = "info"
	c.LogFormat = "console"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
