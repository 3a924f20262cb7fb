// Package maasplatform собирает приложение: хранилище, миграции, кеш,
// брокер сообщений, сервисы и HTTP-сервер.
package maasplatform

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/mkravelev/maas-platform/internal/cache"
	"github.com/mkravelev/maas-platform/internal/config"
	"github.com/mkravelev/maas-platform/internal/lib/jwt"
	librabbitmq "github.com/mkravelev/maas-platform/internal/lib/rabbitmq"
	"github.com/mkravelev/maas-platform/internal/migrations"
	"github.com/mkravelev/maas-platform/internal/rabbitmq"
	activityservice "github.com/mkravelev/maas-platform/internal/services/activity"
	billingservice "github.com/mkravelev/maas-platform/internal/services/billing"
	catalogservice "github.com/mkravelev/maas-platform/internal/services/catalog"
	customerservice "github.com/mkravelev/maas-platform/internal/services/customer"
	employeeservice "github.com/mkravelev/maas-platform/internal/services/employee"
	packagesservice "github.com/mkravelev/maas-platform/internal/services/packages"
	reportservice "github.com/mkravelev/maas-platform/internal/services/report"
	"github.com/mkravelev/maas-platform/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQConnection, 5, 3*time.Second)
	if err != nil {
		return nil, err
	}
	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.DefaultQueues)
	if err != nil {
		return nil, err
	}
	alertPublisher := librabbitmq.NewPublisher(ch, rabbitmq.Exchange)

	tokenParser := jwt.NewParser(cfg.JWTToken.JWTSecretKey)

	catalogService := catalogservice.New(db, cacheRedis, logger)
	packagesService := packagesservice.New(db, catalogService, cacheRedis, alertPublisher, cfg.Rates, logger)
	customerService := customerservice.New(db, cacheRedis, logger)
	employeeService := employeeservice.New(db, logger)
	activityService := activityservice.New(db, cacheRedis, logger)
	reportService := reportservice.New(db, cacheRedis, cfg.Rates, logger)
	billingService := billingservice.New(db, cacheRedis, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, &Services{
		Catalog:  catalogService,
		Packages: packagesService,
		Customer: customerService,
		Employee: employeeService,
		Activity: activityService,
		Report:   reportService,
		Billing:  billingService,
	}, tokenParser, cfg.BillingWebhookSecret)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
