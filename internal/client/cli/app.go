// Package cli is the interactive Tastebook client: a REPL over the member,
// recipe and chat servers.
package cli

import (
	"bufio"
	"context"
	"net/http"
	"os"

	"github.com/mkornilov/tastebook/internal/client/api"
	"github.com/mkornilov/tastebook/internal/client/config"
	"github.com/mkornilov/tastebook/internal/client/credentials"
	"github.com/mkornilov/tastebook/internal/client/models"
	"github.com/mkornilov/tastebook/internal/client/search"
	"github.com/mkornilov/tastebook/internal/client/services"
	"github.com/mkornilov/tastebook/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	log    logging.Logger

	auth    services.AuthService
	feed    *services.FeedService
	asks    *services.AskService
	chat    *services.ChatService
	members *api.MemberService
	recipes *api.RecipeService
	search  *api.SearchService

	// comments and follows hold the state of the recipe / member the user
	// opened last; nil until the first open.
	comments *services.CommentService
	follows  *services.FollowService

	store  credentials.Store
	closer func() error
	reader *bufio.Reader
}

// NewApp wires the full client: credential store, authenticated HTTP client
// with transparent token renewal, per-server API clients, and the feature
// services on top of them.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, db, err := credentials.Open(ctx, c.CredentialsDSN)
	if err != nil {
		return nil, err
	}

	// The renewer gets a plain client: renewal traffic must not pass
	// through the renewal transport.
	plain := &http.Client{Timeout: c.RequestTimeout}
	renewer := api.NewRenewer(c.MemberServerURL, plain, store, log)

	hc := &http.Client{
		Timeout: c.RequestTimeout,
		Transport: &api.RenewTransport{
			Base:    &api.BearerTransport{Store: store, Log: log},
			Renewer: renewer,
			Log:     log,
		},
	}

	members := api.NewMemberService(c.MemberServerURL, hc, log)
	recipes := api.NewRecipeService(c.RecipeServerURL, hc, log)
	chatAPI := api.NewChatService(c.ChatServerURL, hc, store, log)
	searchAPI := api.NewSearchService(c.RecipeServerURL, hc, log)

	return &App{
		config:  c,
		log:     log,
		auth:    services.NewAuthService(members, store, log),
		feed:    services.NewFeedService(recipes, c.FeedPageSize, "new", log),
		asks:    services.NewAskService(members, c.FollowPageSize, log),
		chat:    services.NewChatService(chatAPI, store, log),
		members: members,
		recipes: recipes,
		search:  searchAPI,
		store:   store,
		closer:  db.Close,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsLoggedIn(context.Background())
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return "online"
	}
	return "anonymous"
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.closer()

	printlnFn("Tastebook CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// searcher builds the debounced search pipeline, publishing suggestion rows
// through print.
func (a *App) searcher(condition string, print func([]string)) *search.Debouncer {
	fn := func(ctx context.Context, query string) ([]models.SearchHit, error) {
		return a.search.Search(ctx, condition, query, 10)
	}
	return search.New(fn, a.config.SearchDebounce, func(hits []models.SearchHit) {
		lines := make([]string, 0, len(hits))
		for _, h := range hits {
			lines = append(lines, formatHit(h))
		}
		print(lines)
	}, a.log)
}
