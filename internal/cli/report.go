package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/devlearn/internal/common"
	"github.com/dmitrijs2005/devlearn/internal/session"
	"github.com/dmitrijs2005/devlearn/internal/validation"
)

const (
	msgDuplicateEmail     = "An account with this email already exists"
	msgInvalidCredentials = "Invalid email or password"
	msgNoLinkedAccount    = "No Google account found. Please sign up first."
)

// report renders err through the presenter and returns it. emailField is
// the form field a duplicate email is attached to.
func (a *App) report(ctx context.Context, err error, emailField string) error {
	var verr *validation.Errors
	switch {
	case err == nil:
		return nil

	case errors.As(err, &verr):
		for _, f := range verr.Fields() {
			a.presenter.ShowFieldError(f.Field, f.Message)
		}

	case errors.Is(err, common.ErrDuplicateEmail):
		a.presenter.ShowFieldError(emailField, msgDuplicateEmail)

	case errors.Is(err, common.ErrInvalidCredentials):
		a.presenter.ShowFieldError(validation.FieldLoginEmail, msgInvalidCredentials)
		a.presenter.ShowFieldError(validation.FieldLoginPassword, msgInvalidCredentials)

	case errors.Is(err, common.ErrNoLinkedAccount):
		fmt.Fprintln(a.out, msgNoLinkedAccount)

	case errors.Is(err, common.ErrNotAuthenticated):
		a.presenter.Redirect(ctx, session.PageLogin)

	case errors.Is(err, context.Canceled):
		fmt.Fprintln(a.out, "Cancelled.")

	default:
		a.log.Error(ctx, "command failed", "err", err)
		fmt.Fprintf(a.out, "Something went wrong: %v\n", err)
	}
	return err
}
