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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	blockDateHandler "github.com/m04kA/SMC-AdminService/internal/api/handlers/block_date"
	blockDateRangeHandler "github.com/m04kA/SMC-AdminService/internal/api/handlers/block_date_range"
	checkBlockedDateHandler "github.com/m04kA/SMC-AdminService/internal/api/handlers/check_blocked_date"
	createSettingsHandler "github.com/m04kA/SMC-AdminService/internal/api/handlers/create_booking_settings"
	deleteSettingsHandler "github.com/m04kA/SMC-AdminService/internal/api/handlers/delete_booking_settings"
	getBlockedDatesHandler "github.com/m04kA/SMC-AdminService/internal/api/handlers/get_blocked_dates"
	getSettingsHandler "github.com/m04kA/SMC-AdminService/internal/api/handlers/get_booking_settings"
	listAuditLogsHandler "github.com/m04kA/SMC-AdminService/internal/api/handlers/list_audit_logs"
	listSettingsHandler "github.com/m04kA/SMC-AdminService/internal/api/handlers/list_booking_settings"
	unblockDateHandler "github.com/m04kA/SMC-AdminService/internal/api/handlers/unblock_date"
	updateSettingsHandler "github.com/m04kA/SMC-AdminService/internal/api/handlers/update_booking_settings"
	"github.com/m04kA/SMC-AdminService/internal/api/middleware"
	"github.com/m04kA/SMC-AdminService/internal/config"
	"github.com/m04kA/SMC-AdminService/internal/domain"
	auditRepo "github.com/m04kA/SMC-AdminService/internal/infra/storage/audit"
	calendarRepo "github.com/m04kA/SMC-AdminService/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-AdminService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-AdminService/internal/infra/storage/migrations"
	settingsRepo "github.com/m04kA/SMC-AdminService/internal/infra/storage/settings"
	userServiceClient "github.com/m04kA/SMC-AdminService/internal/integrations/userservice"
	auditService "github.com/m04kA/SMC-AdminService/internal/service/audit"
	calendarService "github.com/m04kA/SMC-AdminService/internal/service/calendar"
	settingsService "github.com/m04kA/SMC-AdminService/internal/service/settings"
	blockDateUC "github.com/m04kA/SMC-AdminService/internal/usecase/block_date"
	blockDateRangeUC "github.com/m04kA/SMC-AdminService/internal/usecase/block_date_range"
	unblockDateUC "github.com/m04kA/SMC-AdminService/internal/usecase/unblock_date"
	"github.com/m04kA/SMC-AdminService/pkg/actor"
	"github.com/m04kA/SMC-AdminService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AdminService/pkg/logger"
	"github.com/m04kA/SMC-AdminService/pkg/metrics"
	"github.com/m04kA/SMC-AdminService/pkg/txmanager"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	migrateOnly := flag.String("migrate", "", "run migrations (up|down) and exit")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.NewWithFormat(cfg.Logs.File, cfg.Logs.Level, cfg.Logs.Format)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-AdminService...")
	log.Info("Configuration loaded from %s (storage=%s)", *configPath, cfg.Storage.Driver)

	// Метрики создаются всегда: при выключенных метриках - в отдельном реестре без endpoint
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	} else {
		metricsCollector = metrics.NewWithRegistry(cfg.Metrics.ServiceName, prometheus.NewRegistry())
	}
	stopMetricsCh := make(chan struct{})

	// Инициализируем хранилища
	var (
		calendarRepository calendarService.CalendarRepository
		auditRepository    auditService.AuditRepository
		settingsRepository settingsService.SettingsRepository
		txMgr              settingsService.TransactionManager
	)

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		calendarRepository = memory.NewCalendarStore()
		auditRepository = memory.NewAuditStore()
		settingsStore := memory.NewSettingsStore()
		if _, err := settingsStore.Create(context.Background(), defaultGlobalSettings()); err != nil {
			log.Fatal("Failed to seed global settings: %v", err)
		}
		settingsRepository = settingsStore
		txMgr = txmanager.Noop{}
		log.Info("Using in-memory storage, data is lost on restart")

	default:
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

		// Миграции
		if *migrateOnly != "" {
			if err := migrations.Run(db, *migrateOnly); err != nil {
				log.Fatal("Migrations %s failed: %v", *migrateOnly, err)
			}
			log.Info("Migrations %s applied", *migrateOnly)
			return
		}
		if cfg.Database.AutoMigrate {
			if err := migrations.Run(db, migrations.DirectionUp); err != nil {
				log.Fatal("Failed to apply migrations: %v", err)
			}
		}
		if version, dirty, err := migrations.Version(db); err == nil {
			log.Info("Database schema version=%d dirty=%t", version, dirty)
		}

		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		calendarRepository = calendarRepo.NewRepository(wrappedDB)
		auditRepository = auditRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	}

	// Инициализируем сервисы
	calendarSvc := calendarService.NewService(calendarRepository, metricsCollector, log)
	auditRecorder := auditService.NewRecorder(auditRepository, actor.ContextProvider{}, metricsCollector, log)
	auditReader := auditService.NewReader(auditRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, txMgr, auditRecorder, log)

	// Инициализируем use cases
	blockDateUseCase := blockDateUC.NewUseCase(calendarSvc, auditRecorder, log)
	blockDateRangeUseCase := blockDateRangeUC.NewUseCase(calendarSvc, auditRecorder, log)
	unblockDateUseCase := unblockDateUC.NewUseCase(calendarSvc, auditRecorder, log)

	// Инициализируем handlers
	getBlockedDates := getBlockedDatesHandler.NewHandler(calendarSvc, log)
	checkBlockedDate := checkBlockedDateHandler.NewHandler(calendarSvc, log)
	blockDate := blockDateHandler.NewHandler(blockDateUseCase, log)
	blockDateRange := blockDateRangeHandler.NewHandler(blockDateRangeUseCase, log)
	unblockDate := unblockDateHandler.NewHandler(unblockDateUseCase, log)
	listAuditLogs := listAuditLogsHandler.NewHandler(auditReader, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	listSettings := listSettingsHandler.NewHandler(settingsSvc, log)
	createSettings := createSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	deleteSettings := deleteSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Заблокированные даты для календаря бронирования
	api.HandleFunc("/blocked-dates", getBlockedDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/blocked-dates/check", checkBlockedDate.Handle).Methods(http.MethodGet)

	// Действующие настройки бронирования
	api.HandleFunc("/booking-settings/{scope}", getSettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-ID header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth)

	if cfg.UserService.Enabled() {
		userClient := userServiceClient.NewClient(
			cfg.UserService.URL,
			time.Duration(cfg.UserService.Timeout)*time.Second,
			log,
		)
		admin.Use(middleware.RequireAdmin(userClient, log))
		log.Info("Admin role check enabled (UserService=%s timeout=%ds)", cfg.UserService.URL, cfg.UserService.Timeout)
	} else {
		log.Warn("UserService URL is empty, admin role check disabled")
	}

	// --- Календарь доступности ---
	admin.HandleFunc("/blocked-dates", blockDate.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-dates/range", blockDateRange.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-dates/{id}", unblockDate.Handle).Methods(http.MethodDelete)

	// --- Журнал аудита ---
	admin.HandleFunc("/audit-logs", listAuditLogs.Handle).Methods(http.MethodGet)

	// --- Настройки бронирования ---
	admin.HandleFunc("/settings", listSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings", createSettings.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/settings/{scope}", updateSettings.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/settings/{scope}", deleteSettings.Handle).Methods(http.MethodDelete)

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

func defaultGlobalSettings() *domain.BookingSettings {
	return &domain.BookingSettings{
		Scope:                   domain.GlobalSettingsScope,
		SlotDurationMinutes:     domain.DefaultSlotDurationMinutes,
		MaxConcurrentBookings:   domain.DefaultMaxConcurrentBookings,
		AdvanceBookingDays:      domain.DefaultAdvanceBookingDays,
		MinBookingNoticeMinutes: domain.DefaultMinBookingNoticeMinutes,
	}
}
