// File: servicehub/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"servicehub/config"
	"servicehub/cron"
	"servicehub/database"
	"servicehub/database/repository"
	catalogRepo "servicehub/database/repository/catalog"
	"servicehub/handlers"
	"servicehub/routes"
	"servicehub/services/admin"
	"servicehub/services/booking"
	"servicehub/services/catalog"
	"servicehub/services/earnings"
	"servicehub/services/geo"
	"servicehub/services/notification"
	"servicehub/services/quotation"
	"servicehub/services/user"
	"servicehub/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// repositories.
	repos, err := openRepositories(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open repositories: %v", err)
	}

	// city lookup.
	resolver := openResolver(ctx, logger)

	// push delivery.
	var (
		queue     *asynq.Client
		pushQueue notification.Enqueuer
		messenger notification.Messenger
	)
	if config.AppConfig.PushEnabled {
		queue = asynq.NewClient(cron.QueueRedisOpt())
		pushQueue = queue
		client, err := utils.NewMessagingClient(ctx, config.AppConfig.FirebaseCredentialsFile)
		if err != nil {
			logger.Warn("main: firebase messaging unavailable, pushes will be dropped", zap.Error(err))
		} else {
			messenger = client
		}
	}

	// payments.
	var gateway booking.PaymentGateway = booking.MockGateway{}
	if config.AppConfig.PaymentGateway == config.PaymentStripe {
		stripe.Key = config.AppConfig.StripeKey
		gateway = booking.StripeGateway{}
	}

	// services.
	tokenTTL := time.Duration(config.AppConfig.TokenTTLHours) * time.Hour
	userService := user.NewUserService(repos.Users, tokenTTL)

	catalogService := catalog.NewCatalogService(repos.Catalog, resolver, repos.ReviewIDs)
	catalogService.RadiusKm = config.AppConfig.DefaultRadiusKm

	notificationService := notification.NewDefaultNotificationService(repos.Notifications, repos.Users, pushQueue, messenger)

	quotationService := &quotation.DefaultQuotationService{
		Repo:     repos.Quotations,
		Catalog:  repos.Catalog,
		Bookings: repos.Bookings,
		Notifier: notificationService,
		Currency: config.AppConfig.Currency,
		Now:      time.Now,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:       repos.Bookings,
		Saved:      repos.Saved,
		Catalog:    repos.Catalog,
		Quotations: repos.Quotations,
		Gateway:    gateway,
		Notifier:   notificationService,
		Now:        time.Now,
	}
	earningsService := &earnings.DefaultEarningsService{
		Bookings:   repos.Bookings,
		Payouts:    repos.Payouts,
		Quotations: repos.Quotations,
		Catalog:    repos.Catalog,
		Now:        time.Now,
	}

	adminService := &admin.DefaultAdminService{
		Users:      repos.Users,
		Catalog:    repos.Catalog,
		Quotations: repos.Quotations,
		Bookings:   repos.Bookings,
		Now:        time.Now,
	}

	var worker *asynq.Server
	if config.AppConfig.PushEnabled {
		worker = cron.InitPushWorker(ctx, notificationService)
	}

	hb := &handlers.HandlerBundle{
		Auth:          handlers.NewAuthHandler(userService),
		Services:      handlers.NewServiceHandler(catalogService, userService),
		Reviews:       handlers.NewReviewHandler(catalogService, userService),
		Quotations:    handlers.NewQuotationHandler(quotationService, userService),
		Customer:      handlers.NewCustomerHandler(bookingService),
		Provider:      handlers.NewProviderHandler(earningsService),
		Notifications: handlers.NewNotificationHandler(notificationService),
		Admin:         handlers.NewAdminHandler(adminService),
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	routes.RegisterRoutes(router, hb, registry)

	utils.StartHealthMonitor(ctx, 30*time.Second)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	go func() {
		logger.Info("Server is running", zap.String("port", port),
			zap.String("storage", config.AppConfig.StorageBackend),
			zap.String("geo", config.AppConfig.GeoResolver),
			zap.String("payments", config.AppConfig.PaymentGateway))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	if worker != nil {
		worker.Shutdown()
	}
	if queue != nil {
		if err := queue.Close(); err != nil {
			logger.Warn("main: closing task queue", zap.Error(err))
		}
	}
	if err := database.CloseDB(shutdownCtx); err != nil {
		logger.Warn("main: closing database", zap.Error(err))
	}
	logger.Info("Server exiting")
}

// openRepositories builds the repository set for STORAGE_BACKEND and loads the
// demo catalog and accounts.
func openRepositories(ctx context.Context) (*repository.Set, error) {
	now := time.Now()
	users, err := user.DefaultUsers(now)
	if err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}
	services := catalogRepo.DefaultServices(now)

	set := repository.NewMemorySet()
	if config.AppConfig.StorageBackend == config.StorageMongo {
		db, err := database.InitDB(ctx)
		if err != nil {
			return nil, err
		}
		if set, err = repository.NewMongoSet(ctx, db); err != nil {
			return nil, err
		}
	}
	if err := set.Seed(ctx, services, users); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Loaded demo data",
		zap.Int("services", len(services)), zap.Int("users", len(users)))
	return set, nil
}

// openResolver returns the city table for GEO_RESOLVER. A redis resolver that
// cannot be loaded degrades to the static table.
func openResolver(ctx context.Context, logger *zap.Logger) geo.CityResolver {
	static := geo.NewStaticResolver(geo.DefaultCities)
	if config.AppConfig.GeoResolver != config.GeoRedis {
		return static
	}
	if err := utils.InitCache(); err != nil {
		logger.Warn("main: redis cache unavailable, using static city table", zap.Error(err))
		return static
	}
	rdb, err := utils.GetCacheClient()
	if err != nil {
		logger.Warn("main: redis cache unavailable, using static city table", zap.Error(err))
		return static
	}
	resolver := geo.NewRedisResolver(rdb, geo.DefaultGeoKey, static)
	if err := resolver.Load(ctx, geo.DefaultCities); err != nil {
		logger.Warn("main: failed to load city table into redis", zap.Error(err))
	}
	return resolver
}
