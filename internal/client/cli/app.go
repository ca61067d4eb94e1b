package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dberezin/bankcli/internal/client/config"
	"github.com/dberezin/bankcli/internal/client/credentials"
	"github.com/dberezin/bankcli/internal/client/gateway"
	"github.com/dberezin/bankcli/internal/client/localdb"
	"github.com/dberezin/bankcli/internal/client/session"
	"github.com/dberezin/bankcli/internal/logging"
)

// App wires the session manager, the gateway and the screens together.
// The REPL is single-threaded; App fields are only touched from it.
type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Manager
	gw      gateway.Client
	db      *sql.DB
	reader  *bufio.Reader

	// runCtx is the context the REPL runs under, used by subscription
	// handlers that fire outside a command.
	runCtx context.Context

	// last observed snapshot, updated by the session subscription.
	state session.State

	unsubscribe func()
}

// NewApp opens the local database, builds the gateway and session manager,
// and registers the session subscription that reacts to the transition into
// the authenticated phase by loading the dashboard.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := localdb.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing local database: %w", err)
	}

	creds := credentials.NewSQLiteRepository(db)
	gw := gateway.NewHTTPClient(cfg.ServerBaseURL, creds, log)
	mgr := session.NewManager(gw, creds, log)

	app := &App{
		config:  cfg,
		log:     log,
		session: mgr,
		gw:      gw,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		state:   mgr.State(),
	}

	// Explicit transition handler, not an implicit re-render effect: entering
	// the authenticated phase triggers the dashboard data load.
	app.unsubscribe = mgr.Subscribe(func(st session.State) {
		prev := app.state
		app.state = st
		if st.Phase() == session.PhaseAuthenticated && prev.Phase() != session.PhaseAuthenticated {
			_ = app.Dashboard(app.ctx())
		}
	})

	return app, nil
}

func (a *App) ctx() context.Context {
	if a.runCtx != nil {
		return a.runCtx
	}
	return context.Background()
}

// Run restores the persisted session and hands control to the REPL.
func (a *App) Run(ctx context.Context) error {
	a.runCtx = ctx
	defer a.Close()

	printlnFn("Welcome to the banking CLI (type 'help' for commands)")

	if err := a.session.Restore(ctx); err != nil {
		return err
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
	return nil
}

// Close releases the app's resources.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.State().Authenticated
}

// status renders the prompt suffix: the user's name when known, otherwise
// a bare marker of the session phase.
func (a *App) status() string {
	st := a.session.State()
	switch st.Phase() {
	case session.PhaseAuthenticated:
		return fmt.Sprintf("(%s)", st.User.FullName())
	case session.PhasePendingProfile:
		return "(logged in)"
	default:
		return ""
	}
}
