package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/sevasetu/kavach/internal/kavach/http"
	"github.com/sevasetu/kavach/internal/kavach/realtime"
	"github.com/sevasetu/kavach/internal/kavach/service"
	"github.com/sevasetu/kavach/internal/kavach/store"
	"github.com/sevasetu/kavach/internal/kavach/store/drivers/badgerdb"
	"github.com/sevasetu/kavach/internal/kavach/store/drivers/sqlite"
	"github.com/sevasetu/kavach/pkg/cryptox"
	"github.com/sevasetu/kavach/pkg/jwtx"
	"github.com/sevasetu/kavach/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the crowd-safety service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	fallback *badgerdb.ProfileStore
	signer   *jwtx.Signer
	keys     *jwtx.KeySet
	verifier *jwtx.Verifier
	hub      *realtime.Hub

	// Services
	authService         *service.AuthService
	mfaService          *service.MFAService
	profileService      *service.ProfileService
	locationService     *service.LocationService
	alertService        *service.AlertService
	sosService          *service.SOSService
	healthUnitService   *service.HealthUnitService
	cameraService       *service.CameraService
	lostFoundService    *service.LostFoundService
	volunteerService    *service.VolunteerService
	foodPointService    *service.FoodPointService
	helpRequestService  *service.HelpRequestService
	routeService        *service.RouteService
	analyticsService    *service.AnalyticsService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "kavach",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initKeys(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.hub = realtime.NewHub(app.logger)

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	go app.hub.Run()
	app.housekeepingService.Start()

	app.logger.Info("kavach service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down kavach service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()
	app.hub.Stop()

	// Close stores last so in-flight handlers finish first
	if err := app.fallback.Close(); err != nil {
		app.logger.Error("error closing fallback store", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("kavach service stopped")
	return nil
}

// initDatabase initializes the primary database, applies migrations and opens
// the fallback profile store.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	fallback, err := badgerdb.Open(app.cfg.FallbackDir)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to open fallback profile store: %w", err)
	}
	app.fallback = fallback

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initKeys generates the ephemeral signing key and wires the verifier.
func (app *Application) initKeys() error {
	signer, err := jwtx.NewSigner()
	if err != nil {
		return fmt.Errorf("failed to generate signing key: %w", err)
	}

	keys := jwtx.NewKeySet()
	if err := keys.AddSigner(signer); err != nil {
		return fmt.Errorf("failed to register signing key: %w", err)
	}

	app.signer = signer
	app.keys = keys
	app.verifier = jwtx.NewVerifier(keys, app.cfg.Issuer)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.profileService = service.NewProfileService(app.db.Profiles(), app.fallback)

	app.authService = &service.AuthService{
		Store:      app.db,
		Profiles:   app.profileService,
		Signer:     app.signer,
		Issuer:     app.cfg.Issuer,
		AccessTTL:  app.cfg.AccessTTL,
		RefreshTTL: app.cfg.RefreshTTL,
	}

	app.mfaService = &service.MFAService{
		Store:  app.db,
		Issuer: app.cfg.Issuer,
	}

	app.locationService = &service.LocationService{Store: app.db, Events: app.hub}
	app.alertService = &service.AlertService{Store: app.db, Events: app.hub}
	app.sosService = &service.SOSService{Store: app.db, Events: app.hub}
	app.healthUnitService = &service.HealthUnitService{Store: app.db, Events: app.hub}
	app.cameraService = &service.CameraService{Store: app.db, Events: app.hub}
	app.lostFoundService = &service.LostFoundService{Store: app.db, Events: app.hub}
	app.volunteerService = &service.VolunteerService{Store: app.db, Events: app.hub}
	app.foodPointService = &service.FoodPointService{Store: app.db, Events: app.hub}
	app.helpRequestService = &service.HelpRequestService{Store: app.db, Events: app.hub}
	app.routeService = &service.RouteService{Store: app.db, Events: app.hub}

	app.analyticsService = &service.AnalyticsService{
		Store:            app.db,
		EmergencyContact: app.cfg.EmergencyContact,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.hub,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys,
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.AuthService = app.authService
	router.MFAService = app.mfaService
	router.ProfileService = app.profileService
	router.LocationService = app.locationService
	router.AlertService = app.alertService
	router.SOSService = app.sosService
	router.HealthUnitService = app.healthUnitService
	router.CameraService = app.cameraService
	router.LostFoundService = app.lostFoundService
	router.VolunteerService = app.volunteerService
	router.FoodPointService = app.foodPointService
	router.HelpRequestService = app.helpRequestService
	router.RouteService = app.routeService
	router.AnalyticsService = app.analyticsService
	router.Events = app.hub
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
