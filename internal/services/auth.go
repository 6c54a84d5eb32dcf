package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/devlearn/internal/common"
	"github.com/dmitrijs2005/devlearn/internal/identity"
	"github.com/dmitrijs2005/devlearn/internal/logging"
	"github.com/dmitrijs2005/devlearn/internal/models"
	"github.com/dmitrijs2005/devlearn/internal/repositories/users"
	"github.com/dmitrijs2005/devlearn/internal/session"
	"github.com/dmitrijs2005/devlearn/internal/validation"
)

// AuthService covers account creation, sign-in, sign-out and profile
// edits.
//
// Contract:
//   - Signup and Login validate first and return *validation.Errors
//     (matching common.ErrValidation) before touching storage.
//   - Signup returns common.ErrDuplicateEmail for a taken email.
//   - Login returns common.ErrInvalidCredentials for any mismatch.
//   - ProviderLogin returns common.ErrNoLinkedAccount when no account was
//     created through the provider.
//   - UpdateProfile returns common.ErrNotAuthenticated without a session
//     and common.ErrorNotFound when the session's user is gone; state is
//     left unchanged in both cases.
//
// Successful sign-ins return the new Session.
type AuthService interface {
	Signup(ctx context.Context, form validation.SignupForm) (*models.Session, error)
	Login(ctx context.Context, form validation.LoginForm) (*models.Session, error)
	ProviderSignup(ctx context.Context) (*models.Session, error)
	ProviderLogin(ctx context.Context) (*models.Session, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, form validation.ProfileForm) (*models.Session, error)
}

type authService struct {
	users    users.Repository
	sessions *session.Manager
	provider identity.Provider
	log      logging.Logger
}

func NewAuthService(users users.Repository, sessions *session.Manager, provider identity.Provider, log logging.Logger) AuthService {
	return &authService{users: users, sessions: sessions, provider: provider, log: log}
}

// Signup creates the account and signs it in.
func (s *authService) Signup(ctx context.Context, form validation.SignupForm) (*models.Session, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	form = form.Clean()

	u, err := s.users.Create(ctx, form.FullName, form.Email, form.Password)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "user signed up", "user_id", u.ID)
	return s.sessions.Begin(ctx, *u)
}

func (s *authService) Login(ctx context.Context, form validation.LoginForm) (*models.Session, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	form = form.Clean()

	u, err := s.users.VerifyCredentials(ctx, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			s.log.Info(ctx, "login rejected")
		}
		return nil, err
	}
	s.log.Info(ctx, "user logged in", "user_id", u.ID)
	return s.sessions.Begin(ctx, *u)
}

// ProviderSignup creates a new provider-linked account from the identity
// the provider returns and signs it in.
func (s *authService) ProviderSignup(ctx context.Context) (*models.Session, error) {
	id, err := s.provider.Authenticate(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s sign-in: %w", s.provider.Name(), err)
	}

	secret, err := common.MakeRandHexString(8)
	if err != nil {
		return nil, fmt.Errorf("generate password: %w", err)
	}
	u, err := s.users.CreateWithProvider(ctx, id.FullName, id.Email, string(id.Provider)+"_auth_"+secret, id.Provider)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "user signed up", "user_id", u.ID, "provider", id.Provider)
	return s.sessions.Begin(ctx, *u)
}

// ProviderLogin signs in the first account created through the provider.
func (s *authService) ProviderLogin(ctx context.Context) (*models.Session, error) {
	if _, err := s.provider.Authenticate(ctx); err != nil {
		return nil, fmt.Errorf("%s sign-in: %w", s.provider.Name(), err)
	}

	u, err := s.users.FirstByProvider(ctx, s.provider.Name())
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, common.ErrNoLinkedAccount
	}
	s.log.Info(ctx, "user logged in", "user_id", u.ID, "provider", u.AuthProvider)
	return s.sessions.Begin(ctx, *u)
}

func (s *authService) Logout(ctx context.Context) error {
	return s.sessions.End(ctx)
}

// UpdateProfile saves the form to the user record and mirrors name and
// email into the live session.
func (s *authService) UpdateProfile(ctx context.Context, form validation.ProfileForm) (*models.Session, error) {
	cur, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, common.ErrNotAuthenticated
	}

	if err := form.Validate(); err != nil {
		return nil, err
	}
	form = form.Clean()

	patch := models.UserPatch{FullName: &form.FullName, Email: &form.Email, Password: &form.Password}
	u, err := s.users.Update(ctx, cur.ID, patch)
	if err != nil {
		return nil, err
	}
	return s.sessions.UpdateProfile(ctx, u.FullName, u.Email)
}
