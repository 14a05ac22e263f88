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

	adminCancelHandler "github.com/m04kA/Salon-ReservationService/internal/api/handlers/admin_cancel"
	cancelReservationHandler "github.com/m04kA/Salon-ReservationService/internal/api/handlers/cancel_reservation"
	getGridHandler "github.com/m04kA/Salon-ReservationService/internal/api/handlers/get_grid"
	makeReservationHandler "github.com/m04kA/Salon-ReservationService/internal/api/handlers/make_reservation"
	replaceGridHandler "github.com/m04kA/Salon-ReservationService/internal/api/handlers/replace_grid"
	streamGridHandler "github.com/m04kA/Salon-ReservationService/internal/api/handlers/stream_grid"
	"github.com/m04kA/Salon-ReservationService/internal/api/middleware"
	"github.com/m04kA/Salon-ReservationService/internal/config"
	gridRepo "github.com/m04kA/Salon-ReservationService/internal/infra/storage/grid"
	gridService "github.com/m04kA/Salon-ReservationService/internal/service/grid"
	adminCancelUC "github.com/m04kA/Salon-ReservationService/internal/usecase/admin_cancel"
	cancelReservationUC "github.com/m04kA/Salon-ReservationService/internal/usecase/cancel_reservation"
	makeReservationUC "github.com/m04kA/Salon-ReservationService/internal/usecase/make_reservation"
	"github.com/m04kA/Salon-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/Salon-ReservationService/pkg/logger"
	"github.com/m04kA/Salon-ReservationService/pkg/metrics"
	"github.com/m04kA/Salon-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/Salon-ReservationService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting Salon-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
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

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозиторий сетки (с метриками или без)
	var (
		gridRepository *gridRepo.Repository
		txMgr          TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		gridRepository = gridRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		gridRepository = gridRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервис сетки (снимки, замена, рассылка подписчикам)
	gridSvc := gridService.NewService(gridRepository, txMgr, log)

	// Инициализируем use cases
	makeReservationUseCase := makeReservationUC.NewUseCase(gridRepository, txMgr, gridSvc, log)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(gridRepository, txMgr, gridSvc, log)
	adminCancelUseCase := adminCancelUC.NewUseCase(cancelReservationUseCase, cfg.Admin.Secret, log)

	// Инициализируем handlers
	getGrid := getGridHandler.NewHandler(gridSvc, log)
	makeReservation := makeReservationHandler.NewHandler(makeReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	adminCancel := adminCancelHandler.NewHandler(adminCancelUseCase, log)
	replaceGrid := replaceGridHandler.NewHandler(gridSvc, log)
	streamGrid := streamGridHandler.NewHandler(gridSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Верный секрет в X-Admin-Secret выдает запросу административное право
	api.Use(middleware.AdminAuth(cfg.Admin.Secret))

	// Текущий снимок сетки с версией
	api.HandleFunc("/reservations", getGrid.Handle).Methods(http.MethodGet)

	// Поток принятых снимков (Server-Sent Events)
	api.HandleFunc("/reservations/stream", streamGrid.Handle).Methods(http.MethodGet)

	// Создание брони
	api.HandleFunc("/reservations", makeReservation.Handle).Methods(http.MethodPost)

	// Отмена брони
	api.HandleFunc("/reservations/cancel", cancelReservation.Handle).Methods(http.MethodPost)

	// Административная отмена по дню и времени начала слота
	api.HandleFunc("/admin/reservations/cancel", adminCancel.Handle).Methods(http.MethodPost)

	// Полная замена сетки - только с административным правом
	api.Handle("/reservations",
		middleware.RequireAdmin(http.HandlerFunc(replaceGrid.Handle))).Methods(http.MethodPut)

	// Создаем HTTP сервер
	// WriteTimeout выключен: SSE-поток живет дольше любого разумного таймаута
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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
