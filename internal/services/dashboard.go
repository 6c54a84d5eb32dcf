package services

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/devlearn/internal/models"
	"github.com/dmitrijs2005/devlearn/internal/repositories/activities"
	"github.com/dmitrijs2005/devlearn/internal/session"
)

// DashboardView is what the dashboard shows for the signed-in user.
type DashboardView struct {
	Session     models.Session
	Welcome     string
	Initials    string
	MaskedEmail string
	Activities  []models.ActivityLogEntry
}

type DashboardService struct {
	sessions   *session.Manager
	activities activities.Logger
}

func NewDashboardService(sessions *session.Manager, activities activities.Logger) *DashboardService {
	return &DashboardService{sessions: sessions, activities: activities}
}

// Open runs the page guard, records the visit and builds the view. A nil
// view with a nil error means the guard redirected.
func (s *DashboardService) Open(ctx context.Context, nav session.Navigator) (*DashboardView, error) {
	ok, err := s.sessions.Guard(ctx, session.PageDashboard, nav)
	if err != nil || !ok {
		return nil, err
	}
	cur, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}

	s.activities.Log(ctx, cur.ID, "Accessed dashboard")

	log, err := s.activities.List(ctx, cur.ID)
	if err != nil {
		return nil, err
	}
	return &DashboardView{
		Session:     *cur,
		Welcome:     fmt.Sprintf("Welcome back, %s!", cur.FullName),
		Initials:    Initials(cur.FullName),
		MaskedEmail: MaskEmail(cur.Email),
		Activities:  log,
	}, nil
}

// MaskEmail hides most of the local part: "alexander@x.com" becomes
// "ale******@x.com" and short names keep one letter ("bob@x.com" becomes
// "b***@x.com").
func MaskEmail(email string) string {
	user, domain, ok := strings.Cut(email, "@")
	if !ok {
		return email
	}
	runes := []rune(user)
	if len(runes) <= 3 {
		first := ""
		if len(runes) > 0 {
			first = string(runes[0])
		}
		return first + "***@" + domain
	}
	visible := min(3, len(runes)/3)
	return string(runes[:visible]) + strings.Repeat("*", len(runes)-visible) + "@" + domain
}

// Initials returns up to two upper-cased leading letters of the
// space-separated words in name.
func Initials(name string) string {
	var b strings.Builder
	n := 0
	for _, w := range strings.Split(name, " ") {
		if n == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(w)
		if r == utf8.RuneError {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
		n++
	}
	return b.String()
}
