package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devlearn/internal/common"
	"github.com/dmitrijs2005/devlearn/internal/models"
	"github.com/dmitrijs2005/devlearn/internal/storage/kv"
	"github.com/dmitrijs2005/devlearn/internal/timex"
	"github.com/google/uuid"
)

// Key is the durable key holding the users array.
const Key = "devlearn_users"

type kvRepository struct {
	store kv.Store
	clock timex.Clock
	newID func() string
}

// NewRepository returns a Repository persisted in store.
func NewRepository(store kv.Store, clock timex.Clock) Repository {
	return &kvRepository{store: store, clock: clock, newID: uuid.NewString}
}

func load(ctx context.Context, r kv.Repository) ([]models.User, error) {
	users, _, err := kv.GetJSON[[]models.User](ctx, r, Key)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return users, nil
}

func save(ctx context.Context, r kv.Repository, users []models.User) error {
	if err := kv.SetJSON(ctx, r, Key, users); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}

func find(users []models.User, match func(models.User) bool) int {
	for i, u := range users {
		if match(u) {
			return i
		}
	}
	return -1
}

func (r *kvRepository) first(ctx context.Context, match func(models.User) bool) (*models.User, error) {
	users, err := load(ctx, r.store)
	if err != nil {
		return nil, err
	}
	i := find(users, match)
	if i < 0 {
		return nil, nil
	}
	u := users[i]
	return &u, nil
}

func (r *kvRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.first(ctx, func(u models.User) bool { return u.Email == email })
}

func (r *kvRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.first(ctx, func(u models.User) bool { return u.ID == id })
}

func (r *kvRepository) FirstByProvider(ctx context.Context, provider models.AuthProvider) (*models.User, error) {
	return r.first(ctx, func(u models.User) bool { return u.AuthProvider == provider })
}

func (r *kvRepository) List(ctx context.Context) ([]models.User, error) {
	return load(ctx, r.store)
}

func (r *kvRepository) Create(ctx context.Context, fullName, email, password string) (*models.User, error) {
	return r.CreateWithProvider(ctx, fullName, email, password, "")
}

func (r *kvRepository) CreateWithProvider(ctx context.Context, fullName, email, password string, provider models.AuthProvider) (*models.User, error) {
	var created models.User
	err := r.store.Update(ctx, func(ctx context.Context, tx kv.Repository) error {
		users, err := load(ctx, tx)
		if err != nil {
			return err
		}
		if find(users, func(u models.User) bool { return u.Email == email }) >= 0 {
			return common.ErrDuplicateEmail
		}

		created = models.User{
			ID:           r.newID(),
			FullName:     fullName,
			Email:        email,
			Password:     password,
			CreatedAt:    r.clock.Now(),
			AuthProvider: provider,
		}
		return save(ctx, tx, append(users, created))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *kvRepository) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	u, err := r.first(ctx, func(u models.User) bool { return u.Email == email && u.Password == password })
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, common.ErrInvalidCredentials
	}
	return u, nil
}

func (r *kvRepository) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	var updated models.User
	err := r.store.Update(ctx, func(ctx context.Context, tx kv.Repository) error {
		users, err := load(ctx, tx)
		if err != nil {
			return err
		}
		i := find(users, func(u models.User) bool { return u.ID == id })
		if i < 0 {
			return fmt.Errorf("user %s: %w", id, common.ErrorNotFound)
		}
		if patch.Email != nil {
			taken := find(users, func(u models.User) bool { return u.Email == *patch.Email && u.ID != id })
			if taken >= 0 {
				return common.ErrDuplicateEmail
			}
		}

		patch.Apply(&users[i], r.clock.Now())
		updated = users[i]
		return save(ctx, tx, users)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
