package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sbilibin2017/boulder-log/internal/handlers"
	"github.com/sbilibin2017/boulder-log/internal/jwt"
	"github.com/sbilibin2017/boulder-log/internal/logger"
	"github.com/sbilibin2017/boulder-log/internal/metrics"
	"github.com/sbilibin2017/boulder-log/internal/middlewares"
	"github.com/sbilibin2017/boulder-log/internal/repositories"
	"github.com/sbilibin2017/boulder-log/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title boulder-log API
// @version 1.0.0
// @description Service for tracking climbing locations and the problems within them
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		logLevel,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		logLevel,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger and database, wires repositories, services,
// handlers and middleware, and serves HTTP until shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	logLevel string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	locationReadRepo := repositories.NewLocationReadRepository(db)
	locationWriteRepo := repositories.NewLocationWriteRepository(db)
	problemReadRepo := repositories.NewProblemReadRepository(db)
	problemWriteRepo := repositories.NewProblemWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	locationService := services.NewLocationService(locationReadRepo, locationWriteRepo)
	problemService := services.NewProblemService(problemReadRepo, problemWriteRepo, locationReadRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(metrics.Middleware)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/signup", handlers.NewSignupHandler(authService))
		r.Post("/auth/login", handlers.NewLoginHandler(authService))

		// Protected routes behind the auth gate
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwtSvc, userReadRepo))

			r.Route("/locations", func(r chi.Router) {
				r.Get("/", handlers.NewListLocationsHandler(locationService))
				r.Post("/", handlers.NewCreateLocationHandler(locationService))
				r.Get("/{locationID}", handlers.NewGetLocationHandler(locationService))
				r.Patch("/{locationID}", handlers.NewUpdateLocationHandler(locationService))
				r.Delete("/{locationID}", handlers.NewDeleteLocationHandler(locationService))
				r.Get("/{locationID}/problems", handlers.NewListProblemsHandler(problemService))
				r.Post("/{locationID}/problems", handlers.NewCreateProblemHandler(problemService))
			})

			r.Route("/problems", func(r chi.Router) {
				r.Get("/{problemID}", handlers.NewGetProblemHandler(problemService))
				r.Patch("/{problemID}", handlers.NewUpdateProblemHandler(problemService))
				r.Delete("/{problemID}", handlers.NewDeleteProblemHandler(problemService))
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
