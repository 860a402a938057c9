// Package server wires the account service together: configuration,
// logging, the database with its migrations, the domain services and the
// gRPC endpoint, plus graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/henkenclub/account/internal/logging"
	"github.com/henkenclub/account/internal/server/config"
	gs "github.com/henkenclub/account/internal/server/grpc"
	"github.com/henkenclub/account/internal/server/mailer"
	"github.com/henkenclub/account/internal/server/repositories/repomanager"
	"github.com/henkenclub/account/internal/server/services"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	signupService  *services.SignupService
	signinService  *services.SigninService
	accountService *services.AccountService
	tokenService   *services.TokenService
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	tokens := services.NewTokenService(cfg)
	mail := mailer.NewLogSender(logger)

	return &App{
		config:         cfg,
		logger:         logger,
		db:             db,
		signupService:  services.NewSignupService(db, rm, mail, logger, cfg),
		signinService:  services.NewSigninService(db, rm, tokens, logger),
		accountService: services.NewAccountService(db, rm),
		tokenService:   tokens,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.signupService, app.signinService, app.accountService, app.tokenService)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}

}
