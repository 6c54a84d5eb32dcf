package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devlearn/internal/session"
	"github.com/dmitrijs2005/devlearn/internal/validation"
)

// Contact fills in the contact form. A saved draft pre-fills it, each
// field is autosaved as it is entered, and leaving without sending writes
// the draft at once.
func (a *App) Contact(ctx context.Context) error {
	ok, err := a.sessions.Guard(ctx, session.PageContact, a.presenter)
	if err != nil {
		return a.report(ctx, err, "")
	}
	if !ok {
		return nil
	}

	draft, err := a.contactService.Open(ctx)
	if err != nil {
		return a.report(ctx, err, "")
	}

	var form validation.ContactForm
	if draft != nil {
		form = validation.ContactForm{Name: draft.Name, Email: draft.Email, Subject: draft.Subject, Message: draft.Message}
		fmt.Fprintf(a.out, "Restored your draft from %s.\n", draft.Timestamp.Local().Format(timeLayout))
	} else if cur, err := a.sessions.Current(ctx); err == nil && cur != nil {
		form.Name, form.Email = cur.FullName, cur.Email
	}

	steps := []struct {
		field, prompt string
		dst           *string
		multiline     bool
	}{
		{validation.FieldContactName, "Name", &form.Name, false},
		{validation.FieldContactEmail, "Email", &form.Email, false},
		{validation.FieldContactSubject, "Subject", &form.Subject, false},
		{validation.FieldContactMessage, "Message (10-500 characters)", &form.Message, true},
	}
	for _, s := range steps {
		ask := a.ask
		if s.multiline {
			ask = a.askMultiline
		}
		v, err := ask(s.field, s.prompt, *s.dst)
		if err != nil {
			_ = a.contactService.Leave(ctx)
			return a.inputError(ctx, err)
		}
		*s.dst = v
		a.contactService.Edit(form)
	}

	if !a.confirm("Send message?") {
		if err := a.contactService.Leave(ctx); err != nil {
			return a.report(ctx, err, "")
		}
		fmt.Fprintln(a.out, "Draft saved.")
		return nil
	}

	if _, err := a.contactService.Submit(ctx, form); err != nil {
		_ = a.contactService.Leave(ctx)
		return a.report(ctx, err, "")
	}
	a.presenter.ShowModal(ModalContactSent)
	return nil
}

// DiscardDraft deletes the saved contact draft.
func (a *App) DiscardDraft(ctx context.Context) error {
	if err := a.contactService.Discard(ctx); err != nil {
		return a.report(ctx, err, "")
	}
	fmt.Fprintln(a.out, "Draft discarded.")
	return nil
}
