package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devlearn/internal/models"
	"github.com/dmitrijs2005/devlearn/internal/session"
	"github.com/dmitrijs2005/devlearn/internal/validation"
)

// recentActivities is how many entries the dashboard shows.
const recentActivities = 5

const timeLayout = "2006-01-02 15:04:05"

// Dashboard shows the profile summary and the latest activities. Visiting
// it is itself recorded as an activity.
func (a *App) Dashboard(ctx context.Context) error {
	view, err := a.dashboardService.Open(ctx, a.presenter)
	if err != nil {
		return a.report(ctx, err, "")
	}
	if view == nil {
		return nil
	}

	fmt.Fprintln(a.out, view.Welcome)
	fmt.Fprintf(a.out, "  [%s] %s <%s>\n", view.Initials, view.Session.FullName, view.MaskedEmail)
	fmt.Fprintf(a.out, "  signed in at %s\n", view.Session.LoginTime.Local().Format(timeLayout))

	fmt.Fprintln(a.out, "Recent activity:")
	printActivities(a, view.Activities, recentActivities)
	return nil
}

// Activity prints the whole activity log of the signed-in user.
func (a *App) Activity(ctx context.Context) error {
	cur, ok, err := a.requireSession(ctx)
	if err != nil || !ok {
		return err
	}

	entries, err := a.activities.List(ctx, cur.ID)
	if err != nil {
		return a.report(ctx, err, "")
	}
	printActivities(a, entries, len(entries))
	return nil
}

func printActivities(a *App, entries []models.ActivityLogEntry, limit int) {
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "  (no activity yet)")
		return
	}
	for i, e := range entries {
		if i == limit {
			break
		}
		fmt.Fprintf(a.out, "  %s  %s\n", e.Timestamp.Local().Format(timeLayout), e.Activity)
	}
}

// EditProfile updates name, email and optionally password. Empty input
// keeps the current value.
func (a *App) EditProfile(ctx context.Context) error {
	cur, ok, err := a.requireSession(ctx)
	if err != nil || !ok {
		return err
	}

	var form validation.ProfileForm
	if form.FullName, err = a.ask(validation.FieldProfileName, "Full name", cur.FullName); err != nil {
		return a.inputError(ctx, err)
	}
	if form.Email, err = a.ask(validation.FieldProfileEmail, "Email", cur.Email); err != nil {
		return a.inputError(ctx, err)
	}
	if form.Password, err = a.askSecret(validation.FieldProfilePassword, "New password (empty to keep)"); err != nil {
		return a.inputError(ctx, err)
	}

	if _, err := a.authService.UpdateProfile(ctx, form); err != nil {
		return a.report(ctx, err, validation.FieldProfileEmail)
	}
	a.presenter.ShowModal(ModalProfileSaved)
	return nil
}

// requireSession runs the dashboard guard and returns the session. ok is
// false when the guard redirected.
func (a *App) requireSession(ctx context.Context) (*models.Session, bool, error) {
	ok, err := a.sessions.Guard(ctx, session.PageDashboard, a.presenter)
	if err != nil {
		return nil, false, a.report(ctx, err, "")
	}
	if !ok {
		return nil, false, nil
	}
	cur, err := a.sessions.Current(ctx)
	if err != nil {
		return nil, false, a.report(ctx, err, "")
	}
	if cur == nil {
		a.presenter.Redirect(ctx, session.PageLogin)
		return nil, false, nil
	}
	return cur, true, nil
}
