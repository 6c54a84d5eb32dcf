package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/devlearn/internal/models"
	"github.com/dmitrijs2005/devlearn/internal/session"
	"github.com/dmitrijs2005/devlearn/internal/validation"
)

// progressInterval is how often a running provider sign-in prints a dot.
var progressInterval = 500 * time.Millisecond

// Signup prompts for the account form and creates the account. On success
// the user is signed in and taken to the dashboard.
func (a *App) Signup(ctx context.Context) error {
	if ok, err := a.sessions.Guard(ctx, session.PageSignup, a.presenter); err != nil || !ok {
		return err
	}

	var form validation.SignupForm
	var err error
	if form.FullName, err = a.ask(validation.FieldFullName, "Full name", ""); err != nil {
		return a.inputError(ctx, err)
	}
	if form.Email, err = a.ask(validation.FieldEmail, "Email", ""); err != nil {
		return a.inputError(ctx, err)
	}
	if form.Password, err = a.askSecret(validation.FieldPassword, "Password"); err != nil {
		return a.inputError(ctx, err)
	}
	if form.ConfirmPassword, err = a.askSecret(validation.FieldConfirmPassword, "Confirm password"); err != nil {
		return a.inputError(ctx, err)
	}

	if _, err := a.authService.Signup(ctx, form); err != nil {
		return a.report(ctx, err, validation.FieldEmail)
	}

	a.presenter.ShowModal(ModalSignupSuccess)
	a.presenter.Redirect(ctx, session.PageDashboard)
	return nil
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	if ok, err := a.sessions.Guard(ctx, session.PageLogin, a.presenter); err != nil || !ok {
		return err
	}

	var form validation.LoginForm
	var err error
	if form.Email, err = a.ask(validation.FieldLoginEmail, "Email", ""); err != nil {
		return a.inputError(ctx, err)
	}
	if form.Password, err = a.askSecret(validation.FieldLoginPassword, "Password"); err != nil {
		return a.inputError(ctx, err)
	}

	if _, err := a.authService.Login(ctx, form); err != nil {
		return a.report(ctx, err, validation.FieldLoginEmail)
	}

	a.presenter.Redirect(ctx, session.PageDashboard)
	return nil
}

// GoogleSignup creates a Google-linked account through the simulated
// provider and signs it in.
func (a *App) GoogleSignup(ctx context.Context) error {
	if ok, err := a.sessions.Guard(ctx, session.PageSignup, a.presenter); err != nil || !ok {
		return err
	}
	if _, err := a.connecting(ctx, a.authService.ProviderSignup); err != nil {
		return a.report(ctx, err, validation.FieldEmail)
	}
	a.presenter.Redirect(ctx, session.PageDashboard)
	return nil
}

// GoogleLogin signs in the first Google-linked account.
func (a *App) GoogleLogin(ctx context.Context) error {
	if ok, err := a.sessions.Guard(ctx, session.PageLogin, a.presenter); err != nil || !ok {
		return err
	}
	if _, err := a.connecting(ctx, a.authService.ProviderLogin); err != nil {
		return a.report(ctx, err, validation.FieldLoginEmail)
	}
	a.presenter.Redirect(ctx, session.PageDashboard)
	return nil
}

// connecting runs a provider flow in the background and prints progress
// until it returns.
func (a *App) connecting(ctx context.Context, fn func(context.Context) (*models.Session, error)) (*models.Session, error) {
	type result struct {
		s   *models.Session
		err error
	}
	done := make(chan result, 1)
	go func() {
		s, err := fn(ctx)
		done <- result{s, err}
	}()

	fmt.Fprint(a.out, "Connecting...")
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()
	for {
		select {
		case r := <-done:
			fmt.Fprintln(a.out)
			return r.s, r.err
		case <-ticker.C:
			fmt.Fprint(a.out, ".")
		}
	}
}

// Logout asks for confirmation, ends the session and returns to login.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn(ctx) {
		fmt.Fprintln(a.out, "You are not logged in.")
		return nil
	}
	if !a.confirm("Are you sure you want to logout?") {
		return nil
	}
	if err := a.authService.Logout(ctx); err != nil {
		return a.report(ctx, err, "")
	}
	a.presenter.Redirect(ctx, session.PageLogin)
	return nil
}
