package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-ParkingService/internal/api"
	createParkingSpotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/create_parking_spot"
	deleteParkingSpotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/delete_parking_spot"
	getParkingSpotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_parking_spot"
	listParkingSpotsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_parking_spots"
	updateParkingSpotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/update_parking_spot"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	parkingSpotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/parkingspot"
	parkingSpotsService "github.com/m04kA/SMC-ParkingService/internal/service/parkingspots"
	createParkingSpotUC "github.com/m04kA/SMC-ParkingService/internal/usecase/create_parking_spot"
	"github.com/m04kA/SMC-ParkingService/migrations"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/migrator"
	"github.com/m04kA/SMC-ParkingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
)

func main() {
	// Путь к конфигурации: флаг -config, затем CONFIG_PATH
	defaultConfigPath := "config.toml"
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		defaultConfigPath = env
	}
	configPath := flag.String("config", defaultConfigPath, "path to config.toml")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting %s...", cfg.App.Name)
	log.Info("Configuration loaded from %s (host=%s, message=%q)", *configPath, cfg.App.Host, cfg.App.Message)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		httpMetrics      middleware.HTTPMetrics
		conflicts        parkingSpotsService.ConflictRecorder
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		httpMetrics = metricsCollector
		conflicts = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Интерфейс для transaction manager (используется в usecases)
	var (
		repository parkingSpotsService.ParkingSpotRepository
		txMgr      createParkingSpotUC.TransactionManager
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		memoryRepository := parkingSpotRepo.NewMemoryRepository()
		repository = memoryRepository
		txMgr = memoryRepository
		log.Warn("Using in-memory storage, data is lost on restart")

	default:
		// Применяем миграции
		if cfg.Migrations.Enabled {
			if err := migrator.Up(cfg.Database.URL(), migrations.FS, log); err != nil {
				log.Fatal("Failed to apply migrations: %v", err)
			}
		}

		// Подключаемся к базе данных
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
			log.Info("Database metrics collection started")

			// Репозиторий с обёрткой метрик
			repository = parkingSpotRepo.NewRepository(wrappedDB)
			txMgr = txmanager.NewTransactionManager(wrappedDB)
		} else {
			repository = parkingSpotRepo.NewRepository(db)
			txMgr = simpletxmanager.NewTransactionManager(db)
		}
	}

	// Инициализируем сервисы
	parkingSpotSvc := parkingSpotsService.NewService(
		repository,
		conflicts,
		log,
	)

	// Инициализируем use cases
	createParkingSpotUseCase := createParkingSpotUC.NewUseCase(
		repository,
		parkingSpotSvc,
		txMgr,
		conflicts,
		log,
	)

	// Инициализируем handlers
	createParkingSpot := createParkingSpotHandler.NewHandler(createParkingSpotUseCase, log)
	listParkingSpots := listParkingSpotsHandler.NewHandler(parkingSpotSvc, log)
	getParkingSpot := getParkingSpotHandler.NewHandler(parkingSpotSvc, log)
	updateParkingSpot := updateParkingSpotHandler.NewHandler(parkingSpotSvc, log)
	deleteParkingSpot := deleteParkingSpotHandler.NewHandler(parkingSpotSvc, log)

	// Настраиваем роутер
	routerCtx, stopRouter := context.WithCancel(context.Background())
	defer stopRouter()

	opts := api.Options{
		BasePath:       cfg.Server.BasePath,
		Metrics:        httpMetrics,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		CORSMaxAge:     cfg.CORS.MaxAge,
	}
	if cfg.Metrics.Enabled {
		opts.MetricsPath = cfg.Metrics.Path
		opts.MetricsHandler = metricsCollector.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	if cfg.RateLimit.Enabled {
		opts.RateLimiter = middleware.NewRateLimiter(routerCtx, cfg.RateLimit.RPS, cfg.RateLimit.Burst, log)
		log.Info("Rate limiting enabled (rps=%.2f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	handler := api.NewRouter(api.Routes{
		CreateParkingSpot: createParkingSpot.Handle,
		ListParkingSpots:  listParkingSpots.Handle,
		GetParkingSpot:    getParkingSpot.Handle,
		LookupParkingSpot: getParkingSpot.HandleLookup,
		UpdateParkingSpot: updateParkingSpot.Handle,
		DeleteParkingSpot: deleteParkingSpot.Handle,
	}, opts, log)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s (base path %q)", addr, cfg.Server.BasePath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)
	stopRouter()

	log.Info("Server stopped gracefully")
}
