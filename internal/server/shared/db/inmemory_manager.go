package db

import (
	"context"

	"github.com/dmitrijs2005/courtbook/internal/server/users"
)

type InMemoryRepositoryManager struct {
	users *users.InMemoryRepository
}

func (m InMemoryRepositoryManager) EnsureIndexes(ctx context.Context) error {
	return m.users.EnsureIndexes(ctx)
}

func (m InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m InMemoryRepositoryManager) Close(ctx context.Context) error {
	return nil
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return InMemoryRepositoryManager{users: users.NewInMemoryRepository()}
}
