package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"self-fitness/config"
	deliveryHttp "self-fitness/internal/delivery/http"
	"self-fitness/internal/delivery/http/handler"
	"self-fitness/internal/delivery/http/middleware"
	"self-fitness/internal/infrastructure/cache"
	"self-fitness/internal/infrastructure/database"
	"self-fitness/internal/infrastructure/messaging"
	"self-fitness/internal/infrastructure/wechat"
	"self-fitness/internal/observability"
	"self-fitness/internal/repository"
	"self-fitness/internal/service"
	"self-fitness/internal/usecase"
	"self-fitness/pkg/jwt"
	"self-fitness/pkg/password"
	"self-fitness/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Publisher   messaging.Publisher
	Server      *http.Server

	stopBackground context.CancelFunc
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := setupLogger(cfg.App)
	app.Log = log
	log.Info("Configuration loaded successfully")

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(database.DSN(cfg.DB), log); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	db, err := database.NewPostgresConnection(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	redisClient, err := cache.NewRedisClient(cfg.Redis, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	app.Publisher = messaging.NewPublisher(cfg.Kafka.Brokers, log)
	if len(cfg.Kafka.Brokers) == 0 {
		log.Info("KAFKA_BROKERS not set, workout events are dropped")
	}

	background, stop := context.WithCancel(context.Background())
	app.stopBackground = stop
	app.Server = initializeServer(background, cfg, log, db, redisClient, app.Publisher)

	return app, nil
}

// setupLogger configures a JSON logrus logger at the configured level
func setupLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(
	ctx context.Context,
	cfg *config.Config,
	log *logrus.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
	publisher messaging.Publisher,
) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	encoder := password.NewEncoder()
	metrics := observability.NewMetrics()
	loc := cfg.App.Location()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	permissionRepo := repository.NewPermissionRepository()
	auditLogRepo := repository.NewAuditLogRepository()
	gymRepo := repository.NewGymRepository()
	muscleRepo := repository.NewMuscleRepository()
	targetRepo := repository.NewTargetRepository()
	exerciseRepo := repository.NewExerciseRepository()
	routineRepo := repository.NewRoutineRepository()
	slotRepo := repository.NewSlotRepository()
	workoutRepo := repository.NewWorkoutRepository()
	pianoTagRepo := repository.NewPianoTagRepository()
	pieceRepo := repository.NewPieceRepository()
	practiceSessionRepo := repository.NewPracticeSessionRepository()
	pianoPracticeRepo := repository.NewPianoPracticeRepository()
	solfeggioPracticeRepo := repository.NewSolfeggioPracticeRepository()

	// Initialize services
	tokenStore := service.NewTokenStore(redisClient)
	auditService := service.NewAuditService(db, log, auditLogRepo)
	workoutEvents := metrics.CountWorkoutEvents(service.NewWorkoutEvents(log, publisher, cfg.Kafka.WorkoutTopic))

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, jwtService, tokenStore, encoder, wechat.NewClient(cfg.WeChat), auditService)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, roleRepo, encoder, auditService, tokenStore)
	roleUsecase := usecase.NewRoleUsecase(db, log, roleRepo, permissionRepo, auditService)
	permissionUsecase := usecase.NewPermissionUsecase(db, log, permissionRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)
	gymUsecase := usecase.NewGymUsecase(db, log, gymRepo)
	muscleUsecase := usecase.NewMuscleUsecase(db, log, muscleRepo)
	targetUsecase := usecase.NewTargetUsecase(db, log, targetRepo)
	exerciseUsecase := usecase.NewExerciseUsecase(db, log, exerciseRepo, muscleRepo)
	routineUsecase := usecase.NewRoutineUsecase(db, log, routineRepo, slotRepo, workoutRepo, targetRepo, exerciseRepo)
	workoutUsecase := usecase.NewWorkoutUsecase(db, log, workoutRepo, gymRepo, routineRepo, targetRepo, slotRepo, auditService, workoutEvents, loc)
	pianoTagUsecase := usecase.NewPianoTagUsecase(db, log, pianoTagRepo)
	pieceUsecase := usecase.NewPieceUsecase(db, log, pieceRepo, pianoTagRepo)
	practiceSessionUsecase := usecase.NewPracticeSessionUsecase(db, log, practiceSessionRepo, loc)
	practiceUsecase := usecase.NewPracticeUsecase(db, log, practiceSessionRepo, pieceRepo, pianoTagRepo, pianoPracticeRepo, solfeggioPracticeRepo)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Auth:       handler.NewAuthHandler(authUsecase, customValidator),
		User:       handler.NewUserHandler(userUsecase, customValidator),
		Role:       handler.NewRoleHandler(roleUsecase, customValidator),
		Permission: handler.NewPermissionHandler(permissionUsecase, customValidator),
		AuditLog:   handler.NewAuditLogHandler(auditLogUsecase),
		Gym:        handler.NewGymHandler(gymUsecase, customValidator),
		Muscle:     handler.NewMuscleHandler(muscleUsecase, customValidator),
		Target:     handler.NewTargetHandler(targetUsecase, customValidator),
		Exercise:   handler.NewExerciseHandler(exerciseUsecase, customValidator),
		Routine:    handler.NewRoutineHandler(routineUsecase, customValidator),
		Workout:    handler.NewWorkoutHandler(workoutUsecase, customValidator),
		Piano:      handler.NewPianoHandler(pianoTagUsecase, pieceUsecase, practiceSessionUsecase, practiceUsecase, customValidator),
		Health: handler.NewHealthHandler(map[string]handler.Pinger{
			"database": func(ctx context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			},
			"redis": func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			},
		}),
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenStore)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)
	loginLimiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	loginLimiter.StartCleanup(ctx, time.Minute)

	router := deliveryHttp.NewRouter(log, handlers, authMiddleware, corsMiddleware, loginLimiter, userUsecase, metrics)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close releases the database, redis and kafka connections
func (app *App) Close() {
	if app.stopBackground != nil {
		app.stopBackground()
	}

	if app.Publisher != nil {
		if err := app.Publisher.Close(); err != nil {
			app.Log.Warnf("Failed to close event publisher: %+v", err)
		}
	}

	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
