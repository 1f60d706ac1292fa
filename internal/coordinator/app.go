// Package coordinator wires up and runs the coordinator service. Token
// validation is delegated to the users service over HTTP, with a shared
// in-process cache in front of it.
package coordinator

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joshradin/federeddit/internal/auth"
	"github.com/joshradin/federeddit/internal/client"
	"github.com/joshradin/federeddit/internal/coordinator/config"
	"github.com/joshradin/federeddit/internal/coordinator/httpapi"
	"github.com/joshradin/federeddit/internal/logging"
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

	app.logger.Info(ctx, "Starting coordinator...", "authority", app.config.AuthorityURL)

	app.initSignalHandler(cancelFunc)

	validator := client.NewHTTPClient(app.config.AuthorityURL, app.config.AuthTimeout)
	guard := auth.NewGuard(auth.NewTokenCache(), validator, app.logger)
	srv := httpapi.NewServer(app.config.EndpointAddr, guard, app.logger)

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
