package contacts

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/devlearn/internal/models"
	"github.com/dmitrijs2005/devlearn/internal/storage/kv"
	"github.com/dmitrijs2005/devlearn/internal/timex"
	"github.com/dmitrijs2005/devlearn/internal/validation"
	"github.com/google/uuid"
)

const (
	Key      = "devlearn_contacts"
	DraftKey = "devlearn_contact_draft"

	DefaultCapacity = 100
	DefaultDraftTTL = 24 * time.Hour
)

type Repository struct {
	store    kv.Store
	clock    timex.Clock
	capacity int
	draftTTL time.Duration
	newID    func() string
}

// NewRepository returns a contact store. Zero capacity or ttl selects the
// defaults.
func NewRepository(store kv.Store, clock timex.Clock, capacity int, draftTTL time.Duration) *Repository {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if draftTTL <= 0 {
		draftTTL = DefaultDraftTTL
	}
	return &Repository{store: store, clock: clock, capacity: capacity, draftTTL: draftTTL, newID: uuid.NewString}
}

// Submit validates the form, prepends a new submission, trims the log to
// capacity and clears the draft, all in one transaction.
func (r *Repository) Submit(ctx context.Context, form validation.ContactForm) (*models.ContactSubmission, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	form = form.Clean()

	sub := models.ContactSubmission{
		ID:        r.newID(),
		Name:      form.Name,
		Email:     form.Email,
		Subject:   form.Subject,
		Message:   form.Message,
		Timestamp: r.clock.Now(),
		Status:    models.ContactStatusNew,
	}

	err := r.store.Update(ctx, func(ctx context.Context, tx kv.Repository) error {
		subs, _, err := kv.GetJSON[[]models.ContactSubmission](ctx, tx, Key)
		if err != nil {
			return err
		}

		subs = append([]models.ContactSubmission{sub}, subs...)
		if len(subs) > r.capacity {
			subs = subs[:r.capacity]
		}
		if err := kv.SetJSON(ctx, tx, Key, subs); err != nil {
			return err
		}
		return tx.Delete(ctx, DraftKey)
	})
	if err != nil {
		return nil, fmt.Errorf("submit contact: %w", err)
	}
	return &sub, nil
}

// List returns submissions newest first.
func (r *Repository) List(ctx context.Context) ([]models.ContactSubmission, error) {
	subs, _, err := kv.GetJSON[[]models.ContactSubmission](ctx, r.store, Key)
	if err != nil {
		return nil, fmt.Errorf("load contacts: %w", err)
	}
	return subs, nil
}

// SaveDraft stamps and stores d when it has content. It reports whether
// anything was written.
func (r *Repository) SaveDraft(ctx context.Context, d models.ContactDraft) (bool, error) {
	if !d.HasContent() {
		return false, nil
	}
	d.Timestamp = r.clock.Now()
	if err := kv.SetJSON(ctx, r.store, DraftKey, d); err != nil {
		return false, fmt.Errorf("save draft: %w", err)
	}
	return true, nil
}

// LoadDraft returns the stored draft, or nil when there is none. An
// expired draft is deleted and reported as nil.
func (r *Repository) LoadDraft(ctx context.Context) (*models.ContactDraft, error) {
	var draft *models.ContactDraft
	err := r.store.Update(ctx, func(ctx context.Context, tx kv.Repository) error {
		d, found, err := kv.GetJSON[models.ContactDraft](ctx, tx, DraftKey)
		if err != nil || !found {
			return err
		}
		if d.Expired(r.clock.Now(), r.draftTTL) {
			return tx.Delete(ctx, DraftKey)
		}
		draft = &d
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	return draft, nil
}

func (r *Repository) ClearDraft(ctx context.Context) error {
	if err := r.store.Delete(ctx, DraftKey); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}
