package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/xJoaG/cpphub-cli/internal/client/api"
	"github.com/xJoaG/cpphub-cli/internal/client/auth"
	"github.com/xJoaG/cpphub-cli/internal/client/config"
	"github.com/xJoaG/cpphub-cli/internal/client/throttle"
	"github.com/xJoaG/cpphub-cli/internal/client/token"
	"github.com/xJoaG/cpphub-cli/internal/logging"
)

// App hosts the interactive views of the CPP Hub CLI. Per-flow transient
// state (the unverified email, the resend cooldown) lives here; all session
// and credential state belongs to the auth manager.
type App struct {
	config   *config.Config
	manager  *auth.Manager
	api      api.Client
	log      logging.Logger
	reader   *bufio.Reader
	cooldown *throttle.Cooldown
	db       *sql.DB

	// unverifiedEmail is remembered by the register flow so the verification
	// view can resend without re-prompting.
	unverifiedEmail string
	resendInFlight  bool
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := token.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := token.NewSQLiteStore(db)
	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, store, log)

	app := &App{
		config:   c,
		api:      apiClient,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		cooldown: throttle.New(nil),
		db:       db,
	}

	manager, err := auth.New(ctx, apiClient, store, auth.NavigatorFunc(app.navigate), log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	app.manager = manager

	return app, nil
}

// navigate renders post-operation view changes in the REPL.
func (a *App) navigate(route auth.Route) {
	printlnFn(fmt.Sprintf("-> %s", route))
}

func (a *App) isLoggedIn() bool {
	return a.manager.IsAuthenticated()
}

func (a *App) status() string {
	s := a.manager.Session()
	if s == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", s.Email)
}

// Run starts the REPL and blocks until the user exits. The resend cooldown
// is torn down with the view so no timer outlives it.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()
	defer a.cooldown.Stop()

	printlnFn("CPP Hub CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
