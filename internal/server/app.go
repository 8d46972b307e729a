// Package server wires configuration, storage, the social network services
// and the REST and gRPC servers into one runnable application.
package server

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/ecosocial/internal/logging"
	"github.com/dmitrijs2005/ecosocial/internal/server/config"
	"github.com/dmitrijs2005/ecosocial/internal/server/credentials"
	"github.com/dmitrijs2005/ecosocial/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/ecosocial/internal/server/rest"
	"github.com/dmitrijs2005/ecosocial/internal/server/services"

	gs "github.com/dmitrijs2005/ecosocial/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	repos   repomanager.RepositoryManager
	network *services.SocialNetwork
	rest    *rest.Server
	grpc    *gs.GRPCServer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewJSONLogger(os.Stdout, level)

	repos, err := newRepositoryManager(ctx, c)
	if err != nil {
		return nil, err
	}

	if err := repos.RunMigrations(ctx); err != nil {
		_ = repos.Close()
		return nil, err
	}

	hasher := credentials.NewHasher(credentials.Params{
		Time:    c.Argon2Time,
		Memory:  c.Argon2Memory,
		Threads: c.Argon2Threads,
	})

	network := services.NewSocialNetwork(repos, hasher,
		services.WithTokenBytes(c.TokenBytes),
		services.WithLogger(logger),
	)

	return &App{
		config:  c,
		logger:  logger,
		repos:   repos,
		network: network,
		rest:    rest.NewServer(c.EndpointAddrHTTP, network, logger, c.ShutdownTimeout),
		grpc:    gs.NewGRPCServer(c.EndpointAddrGRPC, logger),
	}, nil
}

func newRepositoryManager(ctx context.Context, c *config.Config) (repomanager.RepositoryManager, error) {
	if c.Storage != config.StoragePostgres {
		return repomanager.NewMemoryRepositoryManager(), nil
	}

	db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	return repomanager.NewPostgresRepositoryManager(db), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// runServer runs one of the servers and cancels the whole app if it fails.
func (app *App) runServer(ctx context.Context, cancelFunc context.CancelFunc, name string, run func(context.Context) error) {
	if err := run(ctx); err != nil {
		app.logger.Error(ctx, "server failed", "server", name, "error", err)
		cancelFunc()
	}
}

// Run serves until a termination signal arrives or a server fails, then
// releases the storage.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.Storage)

	if stats, err := app.network.Stats(ctx); err == nil {
		app.logger.Info(ctx, "Loaded data",
			"users", stats.Users,
			"posts", stats.Posts,
			"events", stats.Events,
			"sessions", stats.Sessions,
		)
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.runServer(ctx, cancelFunc, "rest", app.rest.Run)
	}()
	go func() {
		defer wg.Done()
		app.runServer(ctx, cancelFunc, "grpc", app.grpc.Run)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "closing storage", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
