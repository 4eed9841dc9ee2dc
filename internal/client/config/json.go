package config

import (
	"encoding/json"
	"os"

	"github.com/mkornilov/tastebook/internal/flagx"
	"github.com/mkornilov/tastebook/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "10s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	MemberServerURL string         `json:"member_server_url"`
	RecipeServerURL string         `json:"recipe_server_url"`
	ChatServerURL   string         `json:"chat_server_url"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
	SearchDebounce  timex.Duration `json:"search_debounce"`
	FeedPageSize    int            `json:"feed_page_size"`
	CommentPageSize int            `json:"comment_page_size"`
	FollowPageSize  int            `json:"follow_page_size"`
	CredentialsDSN  string         `json:"credentials_dsn"`
	LogLevel        string         `json:"log_level"`
	LogFormat       string         `json:"log_format"`
}

// parseJson overlays Config with values loaded from a JSON file located via
// the -c / -config flags. Absent file path means no overlay. Fields left at
// their zero value in the JSON do not override existing settings.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.MemberServerURL != "" {
		cfg.MemberServerURL = jc.MemberServerURL
	}
	if jc.RecipeServerURL != "" {
		cfg.RecipeServerURL = jc.RecipeServerURL
	}
	if jc.ChatServerURL != "" {
		cfg.ChatServerURL = jc.ChatServerURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SearchDebounce.Duration > 0 {
		cfg.SearchDebounce = jc.SearchDebounce.Duration
	}
	if jc.FeedPageSize > 0 {
		cfg.FeedPageSize = jc.FeedPageSize
	}
	if jc.CommentPageSize > 0 {
		cfg.CommentPageSize = jc.CommentPageSize
	}
	if jc.FollowPageSize > 0 {
		cfg.FollowPageSize = jc.FollowPageSize
	}
	if jc.CredentialsDSN != "" {
		cfg.CredentialsDSN = jc.CredentialsDSN
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
}
