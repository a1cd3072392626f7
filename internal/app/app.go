// Package app assembles the server from its parts with fx.
package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"

	config "taskboard.com/taskboard/internal/configs"
	"taskboard.com/taskboard/internal/graphql"
	httpapi "taskboard.com/taskboard/internal/http"
	"taskboard.com/taskboard/internal/ratelimit"
	repository "taskboard.com/taskboard/internal/repositories"
	"taskboard.com/taskboard/internal/services"
	"taskboard.com/taskboard/pkg/auth"
)

const rateLimitKeyPrefix = "taskboard:ratelimit:"

var Module = fx.Options(
	fx.Provide(
		config.NewLogger,
		newDatabase,
		newLimiter,
		newTokenManager,
		newPasswordManager,

		repository.NewUserRepository,
		repository.NewProjectRepository,
		repository.NewTaskRepository,

		services.NewUserService,
		services.NewAuthService,
		newProjectService,
		services.NewTaskService,
		services.NewDashboardService,

		graphql.NewResolver,
		graphql.NewExecutor,
		httpapi.NewHandler,
		newEcho,
	),
	fx.Invoke(migrate, serverLifecycle),
)

// New builds the application for cfg. Stopping it waits at most
// SHUTDOWN_TIMEOUT_SECONDS for in-flight requests.
func New(cfg config.Config, opts ...fx.Option) *fx.App {
	return fx.New(
		fx.Supply(cfg),
		Module,
		fx.StopTimeout(time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Options(opts...),
	)
}

func newDatabase(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := config.NewDatabaseClient(cfg, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
	return db, nil
}

func migrate(db *gorm.DB) error {
	return config.Migrate(db)
}

// newLimiter shares the request budget through Redis when REDIS_ADDR is set
// and keeps it in process otherwise.
func newLimiter(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (ratelimit.Limiter, error) {
	if cfg.RedisAddr == "" {
		return ratelimit.NewMemoryLimiter(cfg.RateLimit, time.Minute), nil
	}

	client, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			client.Close()
			return nil
		},
	})

	logger.Info("using redis rate limiter", zap.String("addr", cfg.RedisAddr))
	return ratelimit.NewRedisLimiter(client, rateLimitKeyPrefix, cfg.RateLimit, time.Minute), nil
}

func newTokenManager(cfg config.Config) *auth.TokenManager {
	return auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL, cfg.JWTIssuer)
}

func newPasswordManager(cfg config.Config) *auth.PasswordManager {
	return auth.NewPasswordManager(cfg.BcryptCost)
}

func newProjectService(
	cfg config.Config,
	projects *repository.ProjectRepository,
	tasks *repository.TaskRepository,
	users *repository.UserRepository,
	logger *zap.Logger,
) *services.ProjectService {
	return services.NewProjectService(projects, tasks, users, creationOf(cfg.ProjectCreationPolicy), logger)
}

func creationOf(policy string) services.ProjectCreation {
	if policy == config.ProjectCreationAny {
		return services.AnyoneCreatesProjects
	}
	return services.AdminsCreateProjects
}

func newEcho(
	cfg config.Config,
	handler *httpapi.Handler,
	limiter ratelimit.Limiter,
	authService *services.AuthService,
	logger *zap.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	httpapi.Register(e, handler, httpapi.RouteConfig{
		AllowedOrigins: cfg.AllowedOrigins(),
		Limiter:        limiter,
		Tokens:         authService,
		Logger:         logger,
	})
	return e
}

func serverLifecycle(lc fx.Lifecycle, e *echo.Echo, cfg config.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				logger.Info("HTTP server listening", zap.String("addr", cfg.AppURL))
				if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("shutting down HTTP server")
			return e.Shutdown(ctx)
		},
	})
}
