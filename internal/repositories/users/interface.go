package users

import (
	"context"

	"github.com/dmitrijs2005/devlearn/internal/models"
)

// Repository is the account store.
//
// Lookups return (nil, nil) when nothing matches. Emails are compared
// exactly, case included.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	// FirstByProvider returns the earliest created user linked to provider.
	FirstByProvider(ctx context.Context, provider models.AuthProvider) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)

	// Create fails with common.ErrDuplicateEmail when email is taken.
	Create(ctx context.Context, fullName, email, password string) (*models.User, error)
	CreateWithProvider(ctx context.Context, fullName, email, password string, provider models.AuthProvider) (*models.User, error)

	// VerifyCredentials returns common.ErrInvalidCredentials for an unknown
	// email and for a wrong password alike.
	VerifyCredentials(ctx context.Context, email, password string) (*models.User, error)

	// Update fails with common.ErrorNotFound when id is unknown and with
	// common.ErrDuplicateEmail when the new email belongs to someone else.
	Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
}
