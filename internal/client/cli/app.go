package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/mbelyaev/eventmap-client/internal/client/api"
	"github.com/mbelyaev/eventmap-client/internal/client/config"
	"github.com/mbelyaev/eventmap-client/internal/client/services"
	"github.com/mbelyaev/eventmap-client/internal/client/session"
	"github.com/mbelyaev/eventmap-client/internal/client/storage"
	"github.com/mbelyaev/eventmap-client/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the client together and runs the screen loop: the login screen
// until a session is established, then the authenticated area until sign-out
// or exit.
type App struct {
	config    *config.Config
	db        *sql.DB
	client    api.Client
	store     *session.Store
	bootstrap *services.SessionBootstrap
	login     *services.LoginService
	log       logging.Logger

	reader *bufio.Reader
	out    io.Writer

	// per-field invalid flags, kept in sync with the latest input
	emailIsInvalid    bool
	passwordIsInvalid bool
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.CachePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerEndpointURL, c.RequestTimeout)
	store := session.NewStore(log)

	return &App{
		config:    c,
		db:        db,
		client:    apiClient,
		store:     store,
		bootstrap: services.NewSessionBootstrap(db, store, log),
		login:     services.NewLoginService(apiClient, db, store, log),
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// StartSessionWatcher subscribes to session changes and mirrors every
// transition into the log, until ctx is cancelled. It is the long-lived
// consumer of the store's broadcast; screens read the store directly.
func (a *App) StartSessionWatcher(ctx context.Context) {
	ch := a.store.Subscribe()

	go func() {
		for {
			select {
			case u, ok := <-ch:
				if !ok {
					return
				}
				if u == nil {
					a.log.Info(ctx, "session cleared")
				} else {
					a.log.Info(ctx, "session established", "user_id", u.ID)
				}
			case <-ctx.Done():
				a.store.Unsubscribe(ch)
				return
			}
		}
	}()
}

// Run drives the screen loop until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.client.Close()
		_ = a.db.Close()
	}()

	a.StartSessionWatcher(ctx)

	for {
		// bootstrap runs on every login-screen activation
		if res := a.bootstrap.Run(ctx); res.Navigate {
			if !a.AuthenticatedArea(ctx) {
				return
			}
			continue
		}

		if !a.LoginScreen(ctx) {
			return
		}
		if !a.AuthenticatedArea(ctx) {
			return
		}
	}
}
