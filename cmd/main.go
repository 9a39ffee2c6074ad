package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-HotelOps/internal/api/handlers"
	createReservationHandler "github.com/m04kA/SMC-HotelOps/internal/api/handlers/create_reservation"
	findAvailableRoomsHandler "github.com/m04kA/SMC-HotelOps/internal/api/handlers/find_available_rooms"
	getStatisticsHandler "github.com/m04kA/SMC-HotelOps/internal/api/handlers/get_statistics"
	"github.com/m04kA/SMC-HotelOps/internal/api/middleware"
	"github.com/m04kA/SMC-HotelOps/internal/config"
	"github.com/m04kA/SMC-HotelOps/internal/domain"
	catalogRepo "github.com/m04kA/SMC-HotelOps/internal/infra/storage/catalog"
	hotelClient "github.com/m04kA/SMC-HotelOps/internal/integrations/hotelapi"
	computeStatisticsUC "github.com/m04kA/SMC-HotelOps/internal/usecase/compute_statistics"
	createReservationUC "github.com/m04kA/SMC-HotelOps/internal/usecase/create_reservation"
	findAvailableRoomsUC "github.com/m04kA/SMC-HotelOps/internal/usecase/find_available_rooms"
	"github.com/m04kA/SMC-HotelOps/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelOps/pkg/logger"
	"github.com/m04kA/SMC-HotelOps/pkg/metrics"
)

const msgRouteNotFound = "маршрут не найден"

// bulkSource источник массовых данных: номера, бронирования, отели, счета, пользователи.
// Реализуется HTTP клиентом API отелей и read-only каталогом PostgreSQL
type bulkSource interface {
	GetRoomsByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error)
	GetReservations(ctx context.Context) ([]domain.Reservation, error)
	GetHotels(ctx context.Context) ([]domain.Hotel, error)
	GetBills(ctx context.Context) ([]domain.Bill, error)
	CountUsers(ctx context.Context, role string) (int, error)
}

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-HotelOps...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		lookupRecorder   findAvailableRoomsUC.MetricsRecorder
		fetchRecorder    computeStatisticsUC.FetchErrorRecorder
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		lookupRecorder = metricsCollector
		fetchRecorder = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиента API отелей
	apiClient := hotelClient.NewClient(
		cfg.HotelAPI.URL,
		time.Duration(cfg.HotelAPI.Timeout)*time.Second,
		log,
	)
	log.Info("Hotel API client initialized (url=%s, timeout=%ds)", cfg.HotelAPI.URL, cfg.HotelAPI.Timeout)

	// Выбираем источник массовых данных
	var source bulkSource = apiClient

	if cfg.DataSource.Kind == config.DataSourcePostgres {
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
		log.Info("Successfully connected to catalog database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			source = catalogRepo.NewRepository(dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh))
			log.Info("Database metrics collection started")
		} else {
			source = catalogRepo.NewRepository(db)
		}
	}
	log.Info("Bulk data source: %s", cfg.DataSource.Kind)

	// Инициализируем use cases
	findAvailableRoomsUseCase := findAvailableRoomsUC.NewUseCase(
		apiClient,
		source,
		lookupRecorder,
		cfg.Availability.LookupTimeoutDuration(),
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(apiClient, log)

	computeStatisticsUseCase := computeStatisticsUC.NewUseCase(
		source,
		source,
		fetchRecorder,
		log,
	)

	// Инициализируем handlers
	findAvailableRooms := findAvailableRoomsHandler.NewHandler(findAvailableRoomsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getStatistics := getStatisticsHandler.NewHandler(computeStatisticsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))
	r.NotFoundHandler = middleware.RequestID(middleware.AccessLog(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondNotFound(w, msgRouteNotFound)
	})))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Поиск свободных номеров отеля
	api.HandleFunc("/hotels/{hotelId}/available-rooms", findAvailableRooms.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Операционная статистика (контекст пользователя из X-User-* заголовков)
	api.HandleFunc("/statistics", getStatistics.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
