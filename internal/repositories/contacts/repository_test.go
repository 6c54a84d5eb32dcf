package contacts

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/devlearn/internal/common"
	"github.com/dmitrijs2005/devlearn/internal/models"
	"github.com/dmitrijs2005/devlearn/internal/storage/kv"
	"github.com/dmitrijs2005/devlearn/internal/timex"
	"github.com/dmitrijs2005/devlearn/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 5, 10, 8, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) (*Repository, *kv.SQLiteStore, *timex.FixedClock) {
	t.Helper()
	store, err := kv.OpenSession(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	clock := timex.NewFixedClock(t0)
	return NewRepository(store, clock, 0, 0), store, clock
}

func form(i int) validation.ContactForm {
	return validation.ContactForm{
		Name:    "Bob",
		Email:   "bob@x.io",
		Subject: "general",
		Message: fmt.Sprintf("message number %d", i),
	}
}

func TestSubmit_BuildsRecord(t *testing.T) {
	repo, _, _ := newRepo(t)

	sub, err := repo.Submit(context.Background(), validation.ContactForm{
		Name: "  Bob ", Email: "bob@x.io", Subject: "support", Message: "  Please help me out  ",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, "Bob", sub.Name)
	assert.Equal(t, "Please help me out", sub.Message)
	assert.Equal(t, models.ContactStatusNew, sub.Status)
	assert.Equal(t, t0, sub.Timestamp)
}

func TestSubmit_InvalidFormIsRejectedAndNothingStored(t *testing.T) {
	repo, _, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.Submit(ctx, validation.ContactForm{Name: "B", Email: "bob", Message: "short"})
	require.ErrorIs(t, err, common.ErrValidation)

	subs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestSubmit_CapsAtHundredNewestFirst(t *testing.T) {
	repo, _, clock := newRepo(t)
	ctx := context.Background()

	for i := 1; i <= 101; i++ {
		_, err := repo.Submit(ctx, form(i))
		require.NoError(t, err)
		clock.Advance(time.Second)
	}

	subs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, DefaultCapacity)
	assert.Equal(t, "message number 101", subs[0].Message)
	assert.Equal(t, "message number 2", subs[len(subs)-1].Message, "the oldest submission is evicted")
}

func TestSubmit_ClearsDraft(t *testing.T) {
	repo, _, _ := newRepo(t)
	ctx := context.Background()

	saved, err := repo.SaveDraft(ctx, models.ContactDraft{Name: "Bob"})
	require.NoError(t, err)
	require.True(t, saved)

	_, err = repo.Submit(ctx, form(1))
	require.NoError(t, err)

	d, err := repo.LoadDraft(ctx)
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestSaveDraft_SkipsEmptyDrafts(t *testing.T) {
	repo, store, _ := newRepo(t)
	ctx := context.Background()

	saved, err := repo.SaveDraft(ctx, models.ContactDraft{Subject: "general"})
	require.NoError(t, err)
	assert.False(t, saved)

	raw, err := store.Get(ctx, DraftKey)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestLoadDraft_FreshDraftReturnedUnchanged(t *testing.T) {
	repo, _, clock := newRepo(t)
	ctx := context.Background()

	_, err := repo.SaveDraft(ctx, models.ContactDraft{Name: "Bob", Email: "bob@x.io", Subject: "general", Message: "Hi"})
	require.NoError(t, err)

	clock.Advance(time.Hour)
	d, err := repo.LoadDraft(ctx)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, models.ContactDraft{Name: "Bob", Email: "bob@x.io", Subject: "general", Message: "Hi", Timestamp: t0}, *d)
}

func TestLoadDraft_ExpiredDraftIsPurged(t *testing.T) {
	repo, store, clock := newRepo(t)
	ctx := context.Background()

	_, err := repo.SaveDraft(ctx, models.ContactDraft{Message: "half written"})
	require.NoError(t, err)

	clock.Advance(25 * time.Hour)
	d, err := repo.LoadDraft(ctx)
	require.NoError(t, err)
	assert.Nil(t, d)

	raw, err := store.Get(ctx, DraftKey)
	require.NoError(t, err)
	assert.Nil(t, raw, "expired draft must be deleted on read")
}

func TestLoadDraft_CorruptDraftReadsAsAbsent(t *testing.T) {
	repo, store, _ := newRepo(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, DraftKey, []byte("{")))

	d, err := repo.LoadDraft(ctx)
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestClearDraft(t *testing.T) {
	repo, _, _ := newRepo(t)
	ctx := context.Background()
	_, err := repo.SaveDraft(ctx, models.ContactDraft{Name: "Bob"})
	require.NoError(t, err)

	require.NoError(t, repo.ClearDraft(ctx))
	d, err := repo.LoadDraft(ctx)
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestStorageFailuresAreWrapped(t *testing.T) {
	repo, store, _ := newRepo(t)
	require.NoError(t, store.Close())
	ctx := context.Background()

	_, err := repo.Submit(ctx, form(1))
	require.ErrorContains(t, err, "submit contact")
	_, err = repo.SaveDraft(ctx, models.ContactDraft{Name: "x"})
	require.ErrorContains(t, err, "save draft")
	_, err = repo.LoadDraft(ctx)
	require.ErrorContains(t, err, "load draft")
	require.ErrorContains(t, repo.ClearDraft(ctx), "clear draft")
	_, err = repo.List(ctx)
	require.ErrorContains(t, err, "load contacts")
}
