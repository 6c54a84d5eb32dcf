package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/devlearn/internal/config"
	"github.com/dmitrijs2005/devlearn/internal/filex"
	"github.com/dmitrijs2005/devlearn/internal/identity"
	"github.com/dmitrijs2005/devlearn/internal/logging"
	"github.com/dmitrijs2005/devlearn/internal/repositories/activities"
	"github.com/dmitrijs2005/devlearn/internal/repositories/catalog"
	"github.com/dmitrijs2005/devlearn/internal/repositories/contacts"
	"github.com/dmitrijs2005/devlearn/internal/repositories/users"
	"github.com/dmitrijs2005/devlearn/internal/services"
	"github.com/dmitrijs2005/devlearn/internal/session"
	"github.com/dmitrijs2005/devlearn/internal/storage/kv"
	"github.com/dmitrijs2005/devlearn/internal/timex"
)

type App struct {
	config *config.Config
	log    logging.Logger

	durable  *kv.SQLiteStore
	tab      *kv.SQLiteStore
	sessions   *session.Manager
	activities activities.Logger
	saver      *contacts.DraftSaver

	authService      services.AuthService
	dashboardService *services.DashboardService
	contentService   *services.ContentService
	contactService   *services.ContactService

	presenter Presenter
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp opens the durable store at c.DataFile and a fresh session scope
// and wires the services over them. Input is read from stdin.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	return newApp(ctx, c, log, os.Stdin, os.Stdout)
}

func newApp(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	if _, err := filex.EnsureParentDir(c.DataFile); err != nil {
		log.Error(ctx, "error preparing data directory", "path", c.DataFile, "err", err)
		return nil, err
	}
	durable, err := kv.OpenDurable(ctx, c.DataFile)
	if err != nil {
		log.Error(ctx, "error opening data file", "path", c.DataFile, "err", err)
		return nil, err
	}
	tab, err := kv.OpenSession(ctx)
	if err != nil {
		_ = durable.Close()
		log.Error(ctx, "error opening session scope", "err", err)
		return nil, err
	}
	log.Debug(ctx, "stores opened", "durable", durable.Scope(), "session", tab.Scope(), "path", c.DataFile)

	items, err := catalog.New()
	if err != nil {
		_ = durable.Close()
		_ = tab.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	clock := timex.SystemClock()
	userRepo := users.NewRepository(durable, clock)
	activityRepo := activities.NewRepository(durable, clock, log, c.ActivityLogCapacity)
	contactRepo := contacts.NewRepository(durable, clock, c.ContactCapacity, c.DraftTTL)
	saver := contacts.NewDraftSaver(contactRepo, c.DraftDebounce, log)

	sessions := session.NewManager(tab, clock, log)
	provider := identity.NewSimulatedProvider(c.ProviderDelay)

	return &App{
		config:           c,
		log:              log,
		durable:          durable,
		tab:              tab,
		sessions:         sessions,
		activities:       activityRepo,
		saver:            saver,
		authService:      services.NewAuthService(userRepo, sessions, provider, log),
		dashboardService: services.NewDashboardService(sessions, activityRepo),
		contentService:   services.NewContentService(items, sessions, activityRepo),
		contactService:   services.NewContactService(contactRepo, saver),
		presenter:        newConsolePresenter(out),
		reader:           bufio.NewReader(in),
		out:              out,
	}, nil
}

// Run starts the REPL and returns when the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to DevLearn. Type 'help' for commands.")
	runREPL(ctx, a, func() string { return a.status(ctx) }, a.reader)
}

// Close writes any pending contact draft and releases both stores.
func (a *App) Close(ctx context.Context) error {
	flushErr := a.contactService.Leave(ctx)
	a.saver.Stop()
	return errors.Join(flushErr, a.tab.Close(), a.durable.Close())
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	state, err := a.sessions.State(ctx)
	if err != nil {
		a.log.Error(ctx, "error reading session", "err", err)
		return false
	}
	return state == session.StateAuthenticated
}

func (a *App) status(ctx context.Context) string {
	cur, err := a.sessions.Current(ctx)
	if err != nil || cur == nil {
		return "guest"
	}
	return cur.Email
}
