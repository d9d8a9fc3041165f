package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	bookingUseCase "github.com/andreysazonov/office-booking/internal/domain/usecase/booking"
	reportUseCase "github.com/andreysazonov/office-booking/internal/domain/usecase/report"
	userUseCase "github.com/andreysazonov/office-booking/internal/domain/usecase/user"

	"github.com/andreysazonov/office-booking/internal/infrastructure/adapter/api/handler"
	"github.com/andreysazonov/office-booking/internal/infrastructure/adapter/api/routes"
	"github.com/andreysazonov/office-booking/internal/infrastructure/adapter/database"
	"github.com/andreysazonov/office-booking/internal/infrastructure/adapter/database/migration"
	"github.com/andreysazonov/office-booking/internal/infrastructure/adapter/logger"
	"github.com/andreysazonov/office-booking/internal/infrastructure/adapter/repository"
	"github.com/andreysazonov/office-booking/internal/infrastructure/adapter/session"
	timeProvider "github.com/andreysazonov/office-booking/internal/infrastructure/adapter/time"
	"github.com/andreysazonov/office-booking/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == "production")

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          "postgres",
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay / time.Second),
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations, then seed the desk catalog
	if err := dbManager.MigrationManager().MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	seeder := migration.NewCatalogSeeder(dbManager.DB(), appLogger)
	if err := seeder.SeedWorkplaces(cfg.Booking.Locations, cfg.Booking.DesksPerLocation); err != nil {
		appLogger.Error("Failed to seed desk catalog", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	workplaceRepo := repository.NewWorkplaceRepository(dbManager.DB(), appLogger)
	bookingRepo := repository.NewBookingRepository(dbManager.DB(), tp, appLogger)

	// Unit of work (transaction manager)
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	// Initialize use cases
	userUseCaseImpl := userUseCase.NewUserUseCase(userRepo, workplaceRepo, tp, appLogger)

	policy := bookingUseCase.Policy{
		MaxDuration:         time.Duration(cfg.Booking.MaxDurationDays) * 24 * time.Hour,
		MaxAdvance:          time.Duration(cfg.Booking.MaxAdvanceDays) * 24 * time.Hour,
		EnforceWorkingHours: cfg.Booking.EnforceWorkingHours,
		OpenHour:            cfg.Booking.OpenHour,
		CloseHour:           cfg.Booking.CloseHour,
	}
	bookingService := bookingUseCase.NewService(uow, userRepo, workplaceRepo, bookingRepo, policy, tp, appLogger)

	reportService := reportUseCase.NewService(
		bookingRepo,
		workplaceRepo,
		reportUseCase.Window{OpenHour: cfg.Booking.OpenHour, CloseHour: cfg.Booking.CloseHour},
		tp,
		appLogger,
	)

	// Session manager and revocation store
	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.Issuer, cfg.Session.TokenTTL, tp)
	revocations := session.NewRedisStore(session.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, appLogger)
	defer revocations.Close()

	if err := revocations.Ping(context.Background()); err != nil {
		appLogger.Error("Failed to connect to Redis", map[string]any{
			"addr":  cfg.Redis.Addr,
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize API handlers
	handlers := routes.Handlers{
		Auth:      handler.NewAuthHandler(userUseCaseImpl, sessions, revocations, appLogger),
		Booking:   handler.NewBookingHandler(bookingService, appLogger),
		Report:    handler.NewReportHandler(reportService, appLogger),
		Workplace: handler.NewWorkplaceHandler(workplaceRepo, appLogger),
		Health:    handler.NewHealthHandler(dbManager.PoolMonitor(), appLogger),
	}

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, handlers, sessions, revocations, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	if cfg.Database.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("OB_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or OB_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}

	if cfg.Database.Username == "" {
		if cfg.Environment == config.Production && os.Getenv("OB_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or OB_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}

	if cfg.Database.Password == "" {
		if cfg.Environment == config.Production && os.Getenv("OB_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or OB_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}

	if cfg.Database.Database == "" {
		if cfg.Environment == config.Production && os.Getenv("OB_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or OB_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Session tokens cannot be issued without a signing secret
	if cfg.Session.Secret == "" {
		missingConfigs = append(missingConfigs, "session.secret (or OB_SESSION_SECRET environment variable)")
	}

	// Reservation policy sanity
	if cfg.Booking.MaxDurationDays <= 0 {
		missingConfigs = append(missingConfigs, "booking.maxDurationDays")
	}
	if cfg.Booking.MaxAdvanceDays <= 0 {
		missingConfigs = append(missingConfigs, "booking.maxAdvanceDays")
	}
	if cfg.Booking.OpenHour < 0 || cfg.Booking.CloseHour > 24 || cfg.Booking.OpenHour >= cfg.Booking.CloseHour {
		return fmt.Errorf("invalid working window: openHour=%d closeHour=%d",
			cfg.Booking.OpenHour, cfg.Booking.CloseHour)
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		// Check database security settings
		if strings.ToLower(cfg.Database.SSLMode) != "require" && strings.ToLower(cfg.Database.SSLMode) != "verify-ca" && strings.ToLower(cfg.Database.SSLMode) != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
