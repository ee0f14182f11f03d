package mockapi

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/userdesk/internal/logging"
	"github.com/dmitrijs2005/userdesk/internal/mockapi/config"
)

// App runs the mock API as a standalone process.
type App struct {
	config *config.Config
	logger logging.Logger
	server *Server
}

func NewApp(c *config.Config) *App {
	logger := logging.New(os.Stdout, c.LogLevel, "json")

	srv := NewServer(c.ListenAddr, Options{
		APIKey:   c.APIKey,
		Secret:   c.SecretKey,
		TokenTTL: c.TokenTTL,
		PerPage:  c.PerPage,
		Logger:   logger,
	})

	return &App{config: c, logger: logger, server: srv}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until SIGINT/SIGTERM/SIGQUIT or until ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting mock api...", "addr", app.config.ListenAddr, "api_key_required", app.config.APIKey != "")
	app.initSignalHandler(cancelFunc)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, "mock api failed", "error", err)
		return err
	}
	return nil
}
