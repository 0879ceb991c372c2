package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/jobboard/docs"
	"github.com/sbilibin2017/jobboard/internal/handlers"
	"github.com/sbilibin2017/jobboard/internal/jwt"
	"github.com/sbilibin2017/jobboard/internal/logger"
	"github.com/sbilibin2017/jobboard/internal/metrics"
	"github.com/sbilibin2017/jobboard/internal/middlewares"
	"github.com/sbilibin2017/jobboard/internal/models"
	"github.com/sbilibin2017/jobboard/internal/repositories"
	"github.com/sbilibin2017/jobboard/internal/services"
	"github.com/sbilibin2017/jobboard/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config is everything the service reads from the environment.
type config struct {
	AppHost  string
	AppPort  string
	AppEnv   string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExpSecond int

	Storage storage.Config

	RateLimitAuth         int64
	RateLimitWindowSecond int
}

// @title jobboard API
// @version 1.0.0
// @description Job board backend: accounts, job postings, applications, resumes and employer messaging
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name auth-token
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the service configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Kafka config, no brokers disables publishing
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "jobboard.events")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "604800"); err != nil {
		return
	}

	// Blob storage config
	cfg.Storage = storage.Config{
		Type:      getEnv("STORAGE_TYPE", "local"),
		BasePath:  getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:   getEnv("STORAGE_BASE_URL", ""),
		Bucket:    getEnv("S3_BUCKET", ""),
		Region:    getEnv("S3_REGION", "us-east-1"),
		Endpoint:  getEnv("S3_ENDPOINT", ""),
		AccessKey: getEnv("S3_ACCESS_KEY", ""),
		SecretKey: getEnv("S3_SECRET_KEY", ""),
	}

	// Rate limit config
	limit, err := getInt("RATE_LIMIT_AUTH", "10")
	if err != nil {
		return
	}
	cfg.RateLimitAuth = int64(limit)
	if cfg.RateLimitWindowSecond, err = getInt("RATE_LIMIT_WINDOW_SECOND", "60"); err != nil {
		return
	}

	return
}

// postgresDSN builds the connection URL with credentials escaped.
func postgresDSN(cfg config) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.PGUser, cfg.PGPassword),
		Host:     net.JoinHostPort(cfg.PGHost, strconv.Itoa(cfg.PGPort)),
		Path:     "/" + cfg.PGDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// application holds the wired services the router needs.
type application struct {
	db          handlers.Pinger
	tokens      middlewares.TokenVerifier
	users       middlewares.UserGetter
	prom        *metrics.Prom
	rateCounter middlewares.RateCounter
	rateLimit   int64
	rateWindow  time.Duration
	cookie      handlers.SessionCookie
	filesDir    string

	auth          *services.AuthService
	applications  *services.ApplicationService
	questions     *services.QuestionService
	jobs          *services.JobService
	resumes       *services.ResumeService
	notifications *services.NotificationService
	profiles      *services.ProfileService
}

// run initializes the logger, database, Redis, Kafka, blob storage and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.AppEnv); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := postgresDSN(cfg)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			WriteTimeout:           5 * time.Second,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka writer configured", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// Blob storage
	blobs, err := storage.NewStorage(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	var filesDir string
	if local, ok := blobs.(*storage.LocalStorage); ok {
		filesDir = local.BasePath()
	}

	prom := metrics.NewProm()
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	transactor := repositories.NewTransactor(db)
	userRepo := repositories.NewUserRepository(db, repositories.GetTxFromContext)
	jobRepo := repositories.NewJobRepository(db, repositories.GetTxFromContext)
	applicationRepo := repositories.NewApplicationRepository(db, repositories.GetTxFromContext)
	profileRepo := repositories.NewProfileRepository(db, repositories.GetTxFromContext)
	resumeRepo := repositories.NewResumeRepository(db, repositories.GetTxFromContext)
	notificationRepo := repositories.NewNotificationRepository(db, repositories.GetTxFromContext)
	questionRepo := repositories.NewQuestionRepository(db, repositories.GetTxFromContext)

	// Initialize services
	events := services.NewEventPublisher(kafkaWriter, prom)

	app := &application{
		db:          db,
		tokens:      tokens,
		users:       userRepo,
		prom:        prom,
		rateCounter: repositories.NewRateLimitRepository(rdb),
		rateLimit:   cfg.RateLimitAuth,
		rateWindow:  time.Duration(cfg.RateLimitWindowSecond) * time.Second,
		cookie:      handlers.NewSessionCookie(cfg.AppEnv, tokens.Expiration()),
		filesDir:    filesDir,

		auth: services.NewAuthService(userRepo, userRepo, tokens),
		applications: services.NewApplicationService(
			transactor, jobRepo, applicationRepo, profileRepo, resumeRepo, notificationRepo, events, prom,
		),
		questions:     services.NewQuestionService(transactor, applicationRepo, questionRepo, notificationRepo, events, prom),
		jobs:          services.NewJobService(jobRepo),
		resumes:       services.NewResumeService(resumeRepo, blobs, prom),
		notifications: services.NewNotificationService(notificationRepo),
		profiles:      services.NewProfileService(profileRepo),
	}

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	docs.SwaggerInfo.Version = buildVersion

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           newRouter(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter mounts every route with its guards.
func newRouter(app *application) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware(app.prom))
	r.Use(middlewares.SessionMiddleware(app.tokens, app.users))

	// Operational routes
	r.Get("/healthz", handlers.NewHealthHandler(app.db))
	r.Handle("/metrics", app.prom.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	if app.filesDir != "" {
		r.Handle("/files/*", http.StripPrefix("/files/", http.FileServer(http.Dir(app.filesDir))))
	}

	// Public routes
	r.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if app.rateCounter != nil {
				r.Use(middlewares.RateLimitMiddleware(app.rateCounter, app.prom, "auth", app.rateLimit, app.rateWindow))
			}
			r.Post("/register", handlers.NewRegisterHandler(app.auth, app.cookie))
			r.Post("/login", handlers.NewLoginHandler(app.auth, app.cookie))
		})
		r.Post("/logout", handlers.NewLogoutHandler(app.cookie))
		r.With(middlewares.RequireAuth).Get("/session", handlers.NewSessionHandler())
	})

	// Authenticated routes
	r.With(middlewares.RequireAuth).Get("/notifications", handlers.NewListNotificationsHandler(app.notifications))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRole(models.RoleJobSeeker))
		r.Post("/jobs/{id}/apply", handlers.NewApplyHandler(app.applications))
		r.Get("/seeker/resumes", handlers.NewListResumesHandler(app.resumes))
		r.Post("/seeker/resumes", handlers.NewUploadResumeHandler(app.resumes))
		r.Get("/seeker/profile", handlers.NewGetSeekerProfileHandler(app.profiles))
		r.Put("/seeker/profile", handlers.NewSaveSeekerProfileHandler(app.profiles))
	})

	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRole(models.RoleEmployer))
		r.Post("/employer/jobs", handlers.NewCreateJobHandler(app.jobs))
		r.Post("/employer/jobs/{id}/close", handlers.NewCloseJobHandler(app.jobs))
		r.Get("/employer/applications", handlers.NewListEmployerApplicationsHandler(app.applications))
		r.Post("/employer/applications/{id}/questions", handlers.NewAskQuestionHandler(app.questions))
		r.Patch("/employer/applications/{id}/status", handlers.NewUpdateStatusHandler(app.applications))
	})

	return r
}
