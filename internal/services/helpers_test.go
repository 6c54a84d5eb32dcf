package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/devlearn/internal/identity"
	"github.com/dmitrijs2005/devlearn/internal/logging"
	"github.com/dmitrijs2005/devlearn/internal/models"
	"github.com/dmitrijs2005/devlearn/internal/repositories/activities"
	"github.com/dmitrijs2005/devlearn/internal/repositories/catalog"
	"github.com/dmitrijs2005/devlearn/internal/repositories/contacts"
	"github.com/dmitrijs2005/devlearn/internal/repositories/users"
	"github.com/dmitrijs2005/devlearn/internal/session"
	"github.com/dmitrijs2005/devlearn/internal/storage/kv"
	"github.com/dmitrijs2005/devlearn/internal/timex"
	"github.com/stretchr/testify/require"
)

// fakeProvider answers immediately.
type fakeProvider struct {
	n   int
	err error
}

func (p *fakeProvider) Name() models.AuthProvider { return models.ProviderGoogle }

func (p *fakeProvider) Authenticate(ctx context.Context) (identity.Identity, error) {
	if p.err != nil {
		return identity.Identity{}, p.err
	}
	p.n++
	return identity.Identity{
		Subject:  "g",
		FullName: "Google User",
		Email:    "google.user." + string(rune('a'+p.n)) + "@gmail.com",
		Provider: models.ProviderGoogle,
	}, nil
}

type recordingNav struct{ redirects []session.Page }

func (n *recordingNav) Redirect(_ context.Context, p session.Page) { n.redirects = append(n.redirects, p) }

type harness struct {
	durable    *kv.SQLiteStore
	sessionKV  *kv.SQLiteStore
	clock      *timex.FixedClock
	users      users.Repository
	sessions   *session.Manager
	activities *activities.Repository
	contacts   *contacts.Repository
	catalog    *catalog.Catalog
	provider   *fakeProvider

	auth      AuthService
	dashboard *DashboardService
	content   *ContentService
	contact   *ContactService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctx := context.Background()

	durable, err := kv.OpenDurable(ctx, filepath.Join(t.TempDir(), "devlearn.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = durable.Close() })
	sessionKV, err := kv.OpenSession(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sessionKV.Close() })

	log := logging.Discard()
	h := &harness{
		durable:   durable,
		sessionKV: sessionKV,
		clock:     timex.NewFixedClock(time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)),
		provider:  &fakeProvider{},
	}
	h.users = users.NewRepository(durable, h.clock)
	h.sessions = session.NewManager(sessionKV, h.clock, log)
	h.activities = activities.NewRepository(durable, h.clock, log, 0)
	h.contacts = contacts.NewRepository(durable, h.clock, 0, 0)
	h.catalog, err = catalog.New()
	require.NoError(t, err)

	saver := contacts.NewDraftSaver(h.contacts, time.Hour, log)
	t.Cleanup(saver.Stop)

	h.auth = NewAuthService(h.users, h.sessions, h.provider, log)
	h.dashboard = NewDashboardService(h.sessions, h.activities)
	h.content = NewContentService(h.catalog, h.sessions, h.activities)
	h.contact = NewContactService(h.contacts, saver)
	return h
}
