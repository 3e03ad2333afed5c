package users

import (
	"context"
)

// Repository is the store contract for user records. Every implementation
// returns normalized users (hex string identifiers) and reports a missing
// record as common.ErrNotFound.
type Repository interface {
	// Create inserts u and returns the stored record with its new ID.
	Create(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	// GetByEmail matches the lowercase email exactly.
	GetByEmail(ctx context.Context, email string) (*User, error)
	// FindByName returns users whose first and last names start with the
	// given prefixes, ignoring case. An empty result is not an error.
	FindByName(ctx context.Context, firstName, lastName string) ([]User, error)
	// FindByUsernamePrefix returns the first user whose username starts with
	// the prefix, ignoring case.
	FindByUsernamePrefix(ctx context.Context, prefix string) (*User, error)
	// ExistsUsername and ExistsEmail report whether another user (other than
	// exceptID, which may be empty) already holds the value.
	ExistsUsername(ctx context.Context, username, exceptID string) (bool, error)
	ExistsEmail(ctx context.Context, email, exceptID string) (bool, error)
	List(ctx context.Context) ([]User, error)
	// Update replaces the profile fields of the user with the given id and
	// returns the record as it is after the write. Password, reviews,
	// history and rating are left untouched.
	Update(ctx context.Context, id string, u *User) (*User, error)
	// EnsureIndexes creates the unique username and email constraints.
	EnsureIndexes(ctx context.Context) error
}
