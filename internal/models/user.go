package models

import "time"

// AuthProvider names the external identity provider that created a user.
type AuthProvider string

const ProviderGoogle AuthProvider = "google"

// User is an account record in the durable users collection.
type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	// Password is stored in plaintext.
	Password     string       `json:"password"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    *time.Time   `json:"updatedAt,omitempty"`
	AuthProvider AuthProvider `json:"authProvider,omitempty"`
}

// UserPatch carries optional profile changes. Nil fields are left as is;
// an empty Password is ignored.
type UserPatch struct {
	FullName *string
	Email    *string
	Password *string
}

// Apply merges p into u and stamps UpdatedAt.
func (p UserPatch) Apply(u *User, now time.Time) {
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil && *p.Password != "" {
		u.Password = *p.Password
	}
	u.UpdatedAt = &now
}
