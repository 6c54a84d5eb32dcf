// Package activities keeps a bounded, newest-first activity log per user
// under the durable key "devlearn_activities_<userId>".
package activities

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devlearn/internal/logging"
	"github.com/dmitrijs2005/devlearn/internal/models"
	"github.com/dmitrijs2005/devlearn/internal/storage/kv"
	"github.com/dmitrijs2005/devlearn/internal/timex"
)

// DefaultCapacity is the number of entries kept per user.
const DefaultCapacity = 50

const keyPrefix = "devlearn_activities_"

// Key returns the durable key of userID's log.
func Key(userID string) string { return keyPrefix + userID }

// Logger records what a user did.
type Logger interface {
	// Log prepends text to the user's log. It never fails: storage errors
	// are logged and dropped.
	Log(ctx context.Context, userID, text string)
	// List returns the log newest first.
	List(ctx context.Context, userID string) ([]models.ActivityLogEntry, error)
}

type Repository struct {
	store    kv.Store
	clock    timex.Clock
	log      logging.Logger
	capacity int
}

// NewRepository returns a log bounded to capacity entries per user;
// capacity <= 0 means DefaultCapacity.
func NewRepository(store kv.Store, clock timex.Clock, log logging.Logger, capacity int) *Repository {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Repository{store: store, clock: clock, log: log, capacity: capacity}
}

var _ Logger = (*Repository)(nil)

func (r *Repository) Log(ctx context.Context, userID, text string) {
	if err := r.prepend(ctx, userID, text); err != nil {
		r.log.Warn(ctx, "activity not recorded", "user_id", userID, "activity", text, "error", err)
	}
}

func (r *Repository) prepend(ctx context.Context, userID, text string) error {
	key := Key(userID)
	return r.store.Update(ctx, func(ctx context.Context, tx kv.Repository) error {
		entries, _, err := kv.GetJSON[[]models.ActivityLogEntry](ctx, tx, key)
		if err != nil {
			return err
		}

		next := make([]models.ActivityLogEntry, 0, min(len(entries)+1, r.capacity))
		next = append(next, models.ActivityLogEntry{Activity: text, Timestamp: r.clock.Now()})
		for _, e := range entries {
			if len(next) == r.capacity {
				break
			}
			next = append(next, e)
		}
		return kv.SetJSON(ctx, tx, key, next)
	})
}

func (r *Repository) List(ctx context.Context, userID string) ([]models.ActivityLogEntry, error) {
	entries, _, err := kv.GetJSON[[]models.ActivityLogEntry](ctx, r.store, Key(userID))
	if err != nil {
		return nil, fmt.Errorf("load activities: %w", err)
	}
	return entries, nil
}
