package db

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/courtbook/internal/common"
	"github.com/dmitrijs2005/courtbook/internal/server/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoRepositoryManager struct {
	client *mongo.Client
	users  users.Repository
}

func (m *MongoRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MongoRepositoryManager) EnsureIndexes(ctx context.Context) error {
	if err := m.users.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("users: %w", err)
	}
	return nil
}

// Close disconnects the client. A manager built from an injected database
// leaves the client to its owner.
func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}

// NewMongoRepositoryManager binds repositories to an already connected
// database handle.
func NewMongoRepositoryManager(db *mongo.Database) *MongoRepositoryManager {
	return &MongoRepositoryManager{
		users: users.NewMongoRepository(db.Collection(common.UsersCollection)),
	}
}

// ConnectMongo connects to uri, verifies the connection with a ping and
// returns a manager bound to database. Both steps share the timeout.
func ConnectMongo(ctx context.Context, uri, database string, timeout time.Duration) (*MongoRepositoryManager, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect error: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping error: %w", err)
	}

	m := NewMongoRepositoryManager(client.Database(database))
	m.client = client
	return m, nil
}
