package users

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/devlearn/internal/common"
	"github.com/dmitrijs2005/devlearn/internal/models"
	"github.com/dmitrijs2005/devlearn/internal/storage/kv"
	"github.com/dmitrijs2005/devlearn/internal/timex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) (Repository, *kv.SQLiteStore, *timex.FixedClock) {
	t.Helper()
	store, err := kv.OpenSession(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	clock := timex.NewFixedClock(t0)
	return NewRepository(store, clock), store, clock
}

func strptr(s string) *string { return &s }

func TestCreate_ThenFindByEmail(t *testing.T) {
	repo, _, _ := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Alice Smith", "alice@x.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := repo.FindByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Alice Smith", got.FullName)
	assert.Equal(t, "alice@x.com", got.Email)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, t0, got.CreatedAt)
	assert.Nil(t, got.UpdatedAt)
	assert.Empty(t, got.AuthProvider)
}

func TestFindByEmail_IsExactAndCaseSensitive(t *testing.T) {
	repo, _, _ := newRepo(t)
	ctx := context.Background()
	_, err := repo.Create(ctx, "Alice", "alice@x.com", "secret1")
	require.NoError(t, err)

	got, err := repo.FindByEmail(ctx, "Alice@x.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreate_DuplicateEmail_LeavesCollectionUnchanged(t *testing.T) {
	repo, _, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, "Alice", "alice@x.com", "secret1")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "Other Alice", "alice@x.com", "another")
	require.ErrorIs(t, err, common.ErrDuplicateEmail)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, "Alice", all[0].FullName)
}

func TestCreate_IDsAreUnique(t *testing.T) {
	repo, _, _ := newRepo(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		u, err := repo.Create(ctx, "User", fmt.Sprintf("u%d@x.com", i), "secret1")
		require.NoError(t, err)
		require.False(t, seen[u.ID], "duplicate id %s", u.ID)
		seen[u.ID] = true
	}
}

func TestVerifyCredentials(t *testing.T) {
	repo, _, _ := newRepo(t)
	ctx := context.Background()
	created, err := repo.Create(ctx, "Alice", "alice@x.com", "secret1")
	require.NoError(t, err)

	got, err := repo.VerifyCredentials(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	got, err = repo.VerifyCredentials(ctx, "alice@x.com", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Nil(t, got)

	_, errUnknown := repo.VerifyCredentials(ctx, "nobody@x.com", "secret1")
	assert.Equal(t, err, errUnknown, "unknown email and wrong password must be indistinguishable")
}

func TestUpdate_MergesPatch(t *testing.T) {
	repo, _, clock := newRepo(t)
	ctx := context.Background()
	u, err := repo.Create(ctx, "Alice", "alice@x.com", "secret1")
	require.NoError(t, err)

	clock.Advance(time.Hour)
	updated, err := repo.Update(ctx, u.ID, models.UserPatch{
		FullName: strptr("Alice Smith"),
		Email:    strptr("alice.smith@x.com"),
		Password: strptr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", updated.FullName)
	assert.Equal(t, "alice.smith@x.com", updated.Email)
	assert.Equal(t, "secret1", updated.Password)
	require.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, t0.Add(time.Hour), *updated.UpdatedAt)

	stored, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)

	_, err = repo.Update(ctx, u.ID, models.UserPatch{Password: strptr("newpass")})
	require.NoError(t, err)
	_, err = repo.VerifyCredentials(ctx, "alice.smith@x.com", "newpass")
	require.NoError(t, err)
}

func TestUpdate_UnknownID(t *testing.T) {
	repo, _, _ := newRepo(t)

	_, err := repo.Update(context.Background(), "missing", models.UserPatch{FullName: strptr("X")})
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdate_EmailTakenByAnotherUser(t *testing.T) {
	repo, _, _ := newRepo(t)
	ctx := context.Background()
	a, err := repo.Create(ctx, "Alice", "alice@x.com", "secret1")
	require.NoError(t, err)
	_, err = repo.Create(ctx, "Bob", "bob@x.com", "secret1")
	require.NoError(t, err)

	_, err = repo.Update(ctx, a.ID, models.UserPatch{Email: strptr("bob@x.com")})
	require.ErrorIs(t, err, common.ErrDuplicateEmail)

	// keeping one's own email is fine
	_, err = repo.Update(ctx, a.ID, models.UserPatch{Email: strptr("alice@x.com")})
	require.NoError(t, err)
}

func TestFirstByProvider(t *testing.T) {
	repo, _, clock := newRepo(t)
	ctx := context.Background()

	got, err := repo.FirstByProvider(ctx, models.ProviderGoogle)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = repo.Create(ctx, "Local", "local@x.com", "secret1")
	require.NoError(t, err)
	first, err := repo.CreateWithProvider(ctx, "Google User", "g1@gmail.com", "x", models.ProviderGoogle)
	require.NoError(t, err)
	clock.Advance(time.Minute)
	_, err = repo.CreateWithProvider(ctx, "Google User", "g2@gmail.com", "x", models.ProviderGoogle)
	require.NoError(t, err)

	got, err = repo.FirstByProvider(ctx, models.ProviderGoogle)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, models.ProviderGoogle, got.AuthProvider)
}

func TestCorruptCollection_ReadsAsEmptyAndHeals(t *testing.T) {
	repo, store, _ := newRepo(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, Key, []byte(`{"oops":`)))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = repo.Create(ctx, "Alice", "alice@x.com", "secret1")
	require.NoError(t, err)
	all, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStorageFailure_IsReturned(t *testing.T) {
	repo, store, _ := newRepo(t)
	require.NoError(t, store.Close())

	_, err := repo.Create(context.Background(), "Alice", "alice@x.com", "secret1")
	require.Error(t, err)

	_, err = repo.FindByEmail(context.Background(), "alice@x.com")
	require.ErrorContains(t, err, "load users")
}

// Two handles on one durable file stand in for two browser tabs signing up
// at the same moment. No user may be lost.
func TestCreate_ConcurrentWritersKeepEveryUser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devlearn.db")
	ctx := context.Background()
	clock := timex.NewFixedClock(t0)

	var repos []Repository
	for i := 0; i < 2; i++ {
		store, err := kv.OpenDurable(ctx, path)
		require.NoError(t, err)
		t.Cleanup(func() { _ = store.Close() })
		repos = append(repos, NewRepository(store, clock))
	}

	const perTab = 10
	var wg sync.WaitGroup
	errs := make(chan error, 2*perTab)
	for tab, repo := range repos {
		wg.Add(1)
		go func(tab int, repo Repository) {
			defer wg.Done()
			for i := 0; i < perTab; i++ {
				if _, err := repo.Create(ctx, "User", fmt.Sprintf("tab%d-%d@x.com", tab, i), "secret1"); err != nil {
					errs <- err
				}
			}
		}(tab, repo)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	all, err := repos[0].List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2*perTab)
}
