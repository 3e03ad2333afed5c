package db

import (
	"context"

	"github.com/dmitrijs2005/courtbook/internal/server/users"
)

// RepositoryManager owns the store handle and hands out repositories bound
// to it.
type RepositoryManager interface {
	// EnsureIndexes creates the constraints every repository relies on.
	EnsureIndexes(context.Context) error
	Users() users.Repository
	Close(context.Context) error
}
