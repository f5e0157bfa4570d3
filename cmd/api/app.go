package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board-api/internal/config"
	"github.com/justsurfingit/job-board-api/internal/database"
	"github.com/justsurfingit/job-board-api/internal/handlers"
	"github.com/justsurfingit/job-board-api/internal/logger"
	"github.com/justsurfingit/job-board-api/internal/services"
	"github.com/justsurfingit/job-board-api/internal/telemetry"
	"github.com/justsurfingit/job-board-api/internal/validation"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newApp(cfg *config.Config) *fx.App {
	return fx.New(
		fx.Supply(cfg),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		fx.Provide(
			newLogger,
			newDatabase,
			database.NewStore,
			validation.New,
			services.NewCompanyService,
			services.NewJobService,
			newHandlers,
			newRouter,
			newHTTPServer,
		),
		fx.Invoke(registerTracer),
		fx.Invoke(func(*http.Server) {}),
	)
}

func newLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() {
		_ = log.Sync()
	}))
	return log, nil
}

func newDatabase(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg, log)
	if err != nil {
		return nil, err
	}
	if cfg.Database.AutoMigrate {
		log.Info("Running migrations...")
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
	}
	lc.Append(fx.StopHook(func() error {
		return database.Close(db)
	}))
	return db, nil
}

func newHandlers(jobs *services.JobService, companies *services.CompanyService, store *database.Store) (*handlers.JobHandler, *handlers.CompanyHandler, *handlers.HealthHandler) {
	return handlers.NewJobHandler(jobs), handlers.NewCompanyHandler(companies), handlers.NewHealthHandler(store)
}

func newRouter(cfg *config.Config, log *zap.Logger, jobs *handlers.JobHandler, companies *handlers.CompanyHandler, health *handlers.HealthHandler) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	return handlers.NewRouter(cfg.Server.AllowedOrigins, log.Named("http"), jobs, companies, health)
}

func newHTTPServer(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger, router *gin.Engine) *http.Server {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      otelhttp.NewHandler(router, cfg.Telemetry.ServiceName),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("Server starting", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Server shutting down")
			return srv.Shutdown(ctx)
		},
	})
	return srv
}

func registerTracer(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) {
	var shutdown func(context.Context) error
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			shutdown, err = telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.OTLPEndpoint)
			if err != nil {
				return err
			}
			if cfg.Telemetry.OTLPEndpoint != "" {
				log.Info("Tracing enabled", zap.String("endpoint", cfg.Telemetry.OTLPEndpoint))
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if shutdown == nil {
				return nil
			}
			return shutdown(ctx)
		},
	})
}
