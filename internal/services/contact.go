package services

import (
	"context"

	"github.com/dmitrijs2005/devlearn/internal/models"
	"github.com/dmitrijs2005/devlearn/internal/repositories/contacts"
	"github.com/dmitrijs2005/devlearn/internal/validation"
)

// ContactService drives the contact form: it restores the draft, autosaves
// edits through a DraftSaver and submits.
type ContactService struct {
	contacts *contacts.Repository
	saver    *contacts.DraftSaver
}

func NewContactService(repo *contacts.Repository, saver *contacts.DraftSaver) *ContactService {
	return &ContactService{contacts: repo, saver: saver}
}

// Open returns the draft to pre-fill the form with, or nil.
func (s *ContactService) Open(ctx context.Context) (*models.ContactDraft, error) {
	return s.contacts.LoadDraft(ctx)
}

// Edit schedules an autosave of the form's current contents.
func (s *ContactService) Edit(form validation.ContactForm) {
	s.saver.Touch(models.ContactDraft{
		Name:    form.Name,
		Email:   form.Email,
		Subject: form.Subject,
		Message: form.Message,
	})
}

// Submit cancels any pending autosave and stores the submission. The
// stored draft is cleared in the same transaction.
func (s *ContactService) Submit(ctx context.Context, form validation.ContactForm) (*models.ContactSubmission, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	s.saver.Cancel()
	return s.contacts.Submit(ctx, form)
}

// Leave writes any pending draft immediately.
func (s *ContactService) Leave(ctx context.Context) error {
	return s.saver.Flush(ctx)
}

// Discard cancels any pending autosave and deletes the stored draft.
func (s *ContactService) Discard(ctx context.Context) error {
	s.saver.Cancel()
	return s.contacts.ClearDraft(ctx)
}
