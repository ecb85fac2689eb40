package app

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arsipkita/arsip/internal/arsip/files"
	httpapi "github.com/arsipkita/arsip/internal/arsip/http"
	"github.com/arsipkita/arsip/internal/arsip/service"
	"github.com/arsipkita/arsip/internal/arsip/store"
	"github.com/arsipkita/arsip/internal/arsip/store/drivers/sqlite"
	"github.com/arsipkita/arsip/pkg/cryptox"
	"github.com/arsipkita/arsip/pkg/jwtx"
	"github.com/arsipkita/arsip/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the archive service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	files  files.Store
	signer *jwtx.SessionSigner

	// Services
	authService        *service.AuthService
	bootstrapService   *service.BootstrapService
	letterService      *service.LetterService
	dispositionService *service.DispositionService
	statsService       *service.StatsService
	userService        *service.UserService
	reportService      *service.ReportService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "arsip",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initSigner(); err != nil {
		return nil, err
	}
	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initFiles(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()

	// Seed the initial accounts so a fresh install can log in.
	ctx := slogx.WithContext(context.Background(), app.logger)
	if err := app.bootstrapService.Seed(ctx); err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to seed initial users: %w", err)
	}

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("archive service starting",
		"port", app.cfg.Port, "version", BuildVersion, "storage", app.cfg.StorageDriver)

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
	app.logger.Info("shutting down archive service...")

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

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("archive service stopped")
	return nil
}

// initSigner builds the session token signer. Without a configured secret a
// random one is generated, which invalidates all sessions on restart.
func (app *Application) initSigner() error {
	secret := []byte(app.cfg.SessionSecret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return fmt.Errorf("failed to generate session secret: %w", err)
		}
		app.logger.Warn("ARSIP_SESSION_SECRET not set, generated an ephemeral secret; sessions will not survive restarts")
	}

	app.signer = &jwtx.SessionSigner{
		Secret: secret,
		Issuer: app.cfg.Issuer,
		TTL:    jwtx.DefaultSessionTTL,
	}
	return nil
}

// initDatabase initializes the database and applies migrations
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

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initFiles initializes the attachment store for the configured driver
func (app *Application) initFiles() error {
	switch app.cfg.StorageDriver {
	case "disk", "":
		fs, err := files.NewDiskStore(app.cfg.UploadsDir)
		if err != nil {
			return fmt.Errorf("failed to initialize uploads directory: %w", err)
		}
		app.files = fs
	case "s3":
		fs, err := files.NewS3Store(context.Background(), files.S3Config{
			Region:    app.cfg.S3Region,
			Endpoint:  app.cfg.S3Endpoint,
			Bucket:    app.cfg.S3Bucket,
			AccessKey: app.cfg.S3AccessKey,
			SecretKey: app.cfg.S3SecretKey,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize s3 storage: %w", err)
		}
		app.files = fs
	default:
		return fmt.Errorf("unknown storage driver %q", app.cfg.StorageDriver)
	}
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:  app.db,
		Signer: app.signer,
	}
	app.bootstrapService = &service.BootstrapService{
		Store:         app.db,
		AdminPassword: app.cfg.AdminPassword,
		DemoUsers:     app.cfg.SeedDemoUsers,
	}
	app.letterService = &service.LetterService{
		Store: app.db,
		Files: app.files,
	}
	app.dispositionService = &service.DispositionService{Store: app.db}
	app.statsService = &service.StatsService{Store: app.db}
	app.userService = &service.UserService{Store: app.db}
	app.reportService = &service.ReportService{Store: app.db}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		BuildVersion,
		app.cfg.CookieSecure,
		app.db,
		app.files,
		app.logger,
	)

	// Static /uploads/ mount only makes sense for the disk driver.
	if ds, ok := app.files.(*files.DiskStore); ok {
		router.UploadsDir = ds.Dir()
	}

	// Wire services to router
	router.AuthService = app.authService
	router.LetterService = app.letterService
	router.DispositionService = app.dispositionService
	router.StatsService = app.statsService
	router.UserService = app.userService
	router.ReportService = app.reportService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
