// Package server wires up and runs the users service: configuration,
// logging, database, service layer, and the HTTP endpoint.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joshradin/federeddit/internal/logging"
	"github.com/joshradin/federeddit/internal/server/config"
	"github.com/joshradin/federeddit/internal/server/db"
	"github.com/joshradin/federeddit/internal/server/httpapi"
	"github.com/joshradin/federeddit/internal/server/repositories/users"
	"github.com/joshradin/federeddit/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
}

func NewApp(cfg *config.Config) *App {
	return &App{config: cfg, logger: logging.NewDefault()}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting users service...")

	app.initSignalHandler(cancelFunc)

	conn, err := db.Open(ctx, app.config.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer conn.Close()

	repo := users.NewPostgresRepository(conn)
	us := services.NewUserService(repo, app.config, app.logger)
	srv := httpapi.NewServer(app.config.EndpointAddr, app.logger, us)

	var wg sync.WaitGroup
	var runErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := srv.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			runErr = err
			cancelFunc()
		}
	}()

	wg.Wait()
	return runErr
}
