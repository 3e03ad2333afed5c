// Package server wires configuration, storage, the users service and the
// HTTP API together and runs them until the process is signalled.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/courtbook/internal/logging"
	"github.com/dmitrijs2005/courtbook/internal/server/auth"
	"github.com/dmitrijs2005/courtbook/internal/server/config"
	"github.com/dmitrijs2005/courtbook/internal/server/httpapi"
	"github.com/dmitrijs2005/courtbook/internal/server/shared/db"
	"github.com/dmitrijs2005/courtbook/internal/server/users"
)

const serviceName = "courtbook"

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       db.RepositoryManager
	userService *users.Service
}

// NewRepositoryManager opens the store selected by c.Store and makes sure
// its indexes exist.
func NewRepositoryManager(ctx context.Context, c *config.Config) (db.RepositoryManager, error) {
	var (
		m   db.RepositoryManager
		err error
	)

	switch c.Store {
	case config.StoreMemory:
		m = db.NewInMemoryRepositoryManager()
	case config.StoreMongo:
		m, err = db.ConnectMongo(ctx, c.MongoURI, c.MongoDatabase, c.MongoConnectTimeout)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown store %q", c.Store)
	}

	if err := m.EnsureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, fmt.Errorf("index creation error: %w", err)
	}

	return m, nil
}

// NewUserService builds the users service over repos with the configured
// bcrypt cost.
func NewUserService(c *config.Config, repos db.RepositoryManager, logger logging.Logger) *users.Service {
	return users.NewService(repos.Users(), auth.NewBcryptHasher(c.PasswordCost), logger)
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(serviceName, c.LogLevel)

	repos, err := NewRepositoryManager(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	logger.Info(ctx, "store ready", "store", c.Store)

	return &App{
		config:      c,
		logger:      logger,
		repos:       repos,
		userService: NewUserService(c, repos, logger),
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "signal received", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.userService,
		app.config.SecretKey, app.config.AccessTokenValidityDuration)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a termination signal arrives or the
// HTTP server fails. The store is closed before returning.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(context.Background()); err != nil {
		app.logger.Error(ctx, "store close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
