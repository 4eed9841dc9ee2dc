package config

import (
	"flag"
	"os"
	"time"

	"github.com/mkornilov/tastebook/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-m string      member server base URL
//	-r string      recipe server base URL
//	-chat string   chat server base URL
//	-t int         request timeout in seconds
//	-d string      credentials database path
//	-l string      log level (debug|info|warn|error)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.Filter, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.Filter(os.Args[1:], "-m", "-r", "-chat", "-t", "-d", "-l")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.MemberServerURL, "m", cfg.MemberServerURL, "member server base URL")
	fs.StringVar(&cfg.RecipeServerURL, "r", cfg.RecipeServerURL, "recipe server base URL")
	fs.StringVar(&cfg.ChatServerURL, "chat", cfg.ChatServerURL, "chat server base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.CredentialsDSN, "d", cfg.CredentialsDSN, "credentials database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
