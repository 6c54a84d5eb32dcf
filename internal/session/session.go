// Package session tracks the signed-in user in the session scope and gates
// page access on it.
//
// The manager has two states. Anonymous means no record is stored under
// "devlearn_current_user"; Authenticated means one is. A record that does
// not decode counts as Anonymous.
package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devlearn/internal/common"
	"github.com/dmitrijs2005/devlearn/internal/logging"
	"github.com/dmitrijs2005/devlearn/internal/models"
	"github.com/dmitrijs2005/devlearn/internal/storage/kv"
	"github.com/dmitrijs2005/devlearn/internal/timex"
)

// Key is the session-scope key holding the current Session.
const Key = "devlearn_current_user"

type State string

const (
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// Page identifies a navigable view.
type Page string

const (
	PageLogin     Page = "login"
	PageSignup    Page = "signup"
	PageDashboard Page = "dashboard"
	PageContact   Page = "contact"
	PageHome      Page = "home"
)

// Navigator moves the presentation layer to another page.
type Navigator interface {
	Redirect(ctx context.Context, target Page)
}

type Manager struct {
	store kv.Repository
	clock timex.Clock
	log   logging.Logger
}

// NewManager returns a Manager over a session-scope store.
func NewManager(store kv.Repository, clock timex.Clock, log logging.Logger) *Manager {
	return &Manager{store: store, clock: clock, log: log}
}

// Current returns the live Session, or nil when anonymous.
func (m *Manager) Current(ctx context.Context) (*models.Session, error) {
	s, found, err := kv.GetJSON[models.Session](ctx, m.store, Key)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !found || s.ID == "" {
		return nil, nil
	}
	return &s, nil
}

func (m *Manager) State(ctx context.Context) (State, error) {
	s, err := m.Current(ctx)
	if err != nil {
		return StateAnonymous, err
	}
	if s == nil {
		return StateAnonymous, nil
	}
	return StateAuthenticated, nil
}

// Begin authenticates u, replacing any existing session.
func (m *Manager) Begin(ctx context.Context, u models.User) (*models.Session, error) {
	s := models.NewSession(u, m.clock.Now())
	if err := kv.SetJSON(ctx, m.store, Key, s); err != nil {
		return nil, fmt.Errorf("write session: %w", err)
	}
	m.log.Debug(ctx, "session started", "user_id", u.ID)
	return &s, nil
}

// End logs out. Ending an anonymous session is a no-op.
func (m *Manager) End(ctx context.Context) error {
	if err := m.store.Delete(ctx, Key); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// UpdateProfile rewrites the name and email of the live session. It does
// not consult the users collection.
func (m *Manager) UpdateProfile(ctx context.Context, fullName, email string) (*models.Session, error) {
	s, err := m.Current(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, common.ErrNotAuthenticated
	}

	s.FullName = fullName
	s.Email = email
	if err := kv.SetJSON(ctx, m.store, Key, s); err != nil {
		return nil, fmt.Errorf("write session: %w", err)
	}
	return s, nil
}

// Guard decides whether page may load. An anonymous visit to the
// dashboard goes to login; an authenticated visit to login or signup goes
// to the dashboard. When it redirects, Guard returns false and the caller
// must stop loading the page.
func (m *Manager) Guard(ctx context.Context, page Page, nav Navigator) (bool, error) {
	state, err := m.State(ctx)
	if err != nil {
		return false, err
	}

	switch {
	case page == PageDashboard && state == StateAnonymous:
		nav.Redirect(ctx, PageLogin)
		return false, nil
	case (page == PageLogin || page == PageSignup) && state == StateAuthenticated:
		nav.Redirect(ctx, PageDashboard)
		return false, nil
	}
	return true, nil
}
