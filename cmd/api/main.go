package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/yourusername/trivia-questions-api/internal/config"
	"github.com/yourusername/trivia-questions-api/internal/domain/repository"
	"github.com/yourusername/trivia-questions-api/internal/handler"
	"github.com/yourusername/trivia-questions-api/internal/middleware"
	pgRepo "github.com/yourusername/trivia-questions-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/trivia-questions-api/internal/repository/redis"
	"github.com/yourusername/trivia-questions-api/internal/service"
	"github.com/yourusername/trivia-questions-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}
	defer database.Close(db)

	// Применяем миграции
	if err := database.MigrateDB(db, cfg.Server.MigrationsPath); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis необязателен: без него кеш и rate limit отключены
	var cacheRepo repository.CacheRepository = redisRepo.NoOpCache{}
	if cfg.Redis.Enabled {
		redisClient, err := database.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		log.Println("Successfully connected to Redis")

		repo, err := redisRepo.NewCacheRepo(redisClient, cfg.Cache.KeyPrefix)
		if err != nil {
			log.Printf("Failed to initialize CacheRepo: %v", err)
			os.Exit(1)
		}
		cacheRepo = repo
	} else {
		log.Println("Redis отключен: кеширование категорий и rate limit неактивны")
	}

	// Инициализируем репозитории
	categoryRepo := pgRepo.NewCategoryRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)

	// Инициализируем сервисы
	categoryService := service.NewCategoryService(categoryRepo, cacheRepo, cfg.Cache.CategoriesTTL)
	questionService := service.NewQuestionService(questionRepo, categoryService)
	quizService := service.NewQuizService(questionRepo)

	// Инициализируем обработчики
	handlers := handler.Handlers{
		Category: handler.NewCategoryHandler(categoryService, questionService),
		Question: handler.NewQuestionHandler(questionService),
		Quiz:     handler.NewQuizHandler(quizService),
		Health:   handler.NewHealthHandler(pinger(db)),
	}

	metrics := middleware.NewMetrics(prometheus.DefaultRegisterer)

	globals := []gin.HandlerFunc{
		gin.Logger(),
		middleware.RequestID(),
		middleware.CORS(),
		metrics.Handler(),
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cacheRepo)
		globals = append(globals, limiter.LimitByIP(middleware.RateLimitConfig{
			MaxRequests: cfg.RateLimit.MaxRequests,
			Window:      cfg.RateLimit.Window,
			KeyPrefix:   "rl",
		}))
		log.Printf("Rate limit включен: %d запросов за %s", cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	}

	router := handler.NewRouter(handlers, globals...)

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	if gin.Mode() == gin.ReleaseMode {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
			cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited properly")
}

func pinger(db *gorm.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return database.Ping(ctx, db)
	}
}
