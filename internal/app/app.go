package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/soccervitae/soccerapp/internal/api"
	"github.com/soccervitae/soccerapp/internal/expiry"
	"github.com/soccervitae/soccerapp/internal/expiry/expiryimpl"
	"github.com/soccervitae/soccerapp/internal/migrations"
	repositories "github.com/soccervitae/soccerapp/internal/repositories/fx"
	"github.com/soccervitae/soccerapp/internal/storyservice/storyserviceimpl"
	"github.com/soccervitae/soccerapp/internal/viewer/viewerimpl"
	"github.com/soccervitae/soccerapp/pkg/config"
	"github.com/soccervitae/soccerapp/pkg/logger"
	"github.com/soccervitae/soccerapp/pkg/pgx"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
	),
	repositories.Module,
	storyserviceimpl.Module,
	viewerimpl.Module,
	expiryimpl.Module,
	api.Module,
	fx.Invoke(migrate),
	fx.Invoke(scheduleExpiry),
	fx.Invoke(serveHTTP),
)

// migrate runs after the pool has reached postgres.
func migrate(lc fx.Lifecycle, _ *pgxpool.Pool, cfg *config.Config, log logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := migrations.Up(ctx, cfg.GetDSN()); err != nil {
				return fmt.Errorf("failed to apply migrations: %w", err)
			}
			log.Info("Database migrations applied")
			return nil
		},
	})
}

func scheduleExpiry(lc fx.Lifecycle, client expiry.Client) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return client.Schedule(ctx)
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func serveHTTP(lc fx.Lifecycle, handler *api.Handler, cfg *config.Config, log logger.Logger) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
			}
			log.Info("Starting server", "addr", srv.Addr)

			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Server stopped unexpectedly", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			defer sentry.Flush(2 * time.Second)
			log.Info("Stopping server")
			return srv.Shutdown(ctx)
		},
	})
}
