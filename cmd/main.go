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

	cancelAppointmentHandler "github.com/toyesterday/agenda/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/toyesterday/agenda/internal/api/handlers/create_appointment"
	createBlockedSlotHandler "github.com/toyesterday/agenda/internal/api/handlers/create_blocked_slot"
	getAvailabilityHandler "github.com/toyesterday/agenda/internal/api/handlers/get_availability"
	getClientAppointmentsHandler "github.com/toyesterday/agenda/internal/api/handlers/get_client_appointments"
	updateAppointmentStatusHandler "github.com/toyesterday/agenda/internal/api/handlers/update_appointment_status"
	updateScheduleHandler "github.com/toyesterday/agenda/internal/api/handlers/update_schedule"
	"github.com/toyesterday/agenda/internal/api/middleware"
	"github.com/toyesterday/agenda/internal/config"
	availabilityCache "github.com/toyesterday/agenda/internal/infra/cache/availability"
	appointmentRepo "github.com/toyesterday/agenda/internal/infra/storage/appointment"
	blockedSlotRepo "github.com/toyesterday/agenda/internal/infra/storage/blockedslot"
	clientRepo "github.com/toyesterday/agenda/internal/infra/storage/client"
	loyaltyRepo "github.com/toyesterday/agenda/internal/infra/storage/loyalty"
	professionalRepo "github.com/toyesterday/agenda/internal/infra/storage/professional"
	scheduleRepo "github.com/toyesterday/agenda/internal/infra/storage/schedule"
	"github.com/toyesterday/agenda/internal/integrations/notify"
	appointmentsService "github.com/toyesterday/agenda/internal/service/appointments"
	blockedSlotsService "github.com/toyesterday/agenda/internal/service/blockedslots"
	loyaltyService "github.com/toyesterday/agenda/internal/service/loyalty"
	scheduleService "github.com/toyesterday/agenda/internal/service/schedule"
	createAppointmentUC "github.com/toyesterday/agenda/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/toyesterday/agenda/internal/usecase/get_availability"
	"github.com/toyesterday/agenda/pkg/dbmetrics"
	"github.com/toyesterday/agenda/pkg/logger"
	"github.com/toyesterday/agenda/pkg/metrics"
	"github.com/toyesterday/agenda/pkg/simpletxmanager"
	"github.com/toyesterday/agenda/pkg/txmanager"
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

	log.Info("Starting agenda service...")
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

	// Инициализируем кеш доступности (Redis или no-op заглушка)
	type AvailabilityCache interface {
		Get(ctx context.Context, professionalID int64, date string, durationMinutes int) ([]time.Time, bool)
		Set(ctx context.Context, professionalID int64, date string, durationMinutes int, times []time.Time)
		Invalidate(ctx context.Context, professionalID int64, date string)
	}
	var cache AvailabilityCache
	if cfg.Redis.Enabled {
		redisCache, err := availabilityCache.New(
			cfg.Redis.Addr,
			cfg.Redis.Password,
			cfg.Redis.DB,
			time.Duration(cfg.Redis.TTLSeconds)*time.Second,
			log,
		)
		if err != nil {
			log.Fatal("Failed to connect to Redis: %v", err)
		}
		cache = redisCache
		log.Info("Availability cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	} else {
		cache = availabilityCache.NewNoop()
		log.Info("Availability cache disabled, using no-op cache")
	}

	// Инициализируем клиент шлюза уведомлений
	type Notifier interface {
		Dispatch(event notify.AppointmentEvent)
	}
	var notifier Notifier
	if cfg.Notify.Enabled {
		notifier = notify.NewClient(
			cfg.Notify.URL,
			time.Duration(cfg.Notify.Timeout)*time.Second,
			log,
		)
		log.Info("Notification gateway client initialized (url=%s, timeout=%ds)",
			cfg.Notify.URL, cfg.Notify.Timeout)
	} else {
		notifier = notify.NewNoopClient()
		log.Info("Notifications disabled, using no-op client")
	}

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		appointmentRepository  *appointmentRepo.Repository
		scheduleRepository     *scheduleRepo.Repository
		blockedSlotRepository  *blockedSlotRepo.Repository
		clientRepository       *clientRepo.Repository
		loyaltyRepository      *loyaltyRepo.Repository
		professionalRepository *professionalRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		blockedSlotRepository = blockedSlotRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		loyaltyRepository = loyaltyRepo.NewRepository(wrappedDB)
		professionalRepository = professionalRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		blockedSlotRepository = blockedSlotRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		loyaltyRepository = loyaltyRepo.NewRepository(db)
		professionalRepository = professionalRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	loyaltySvc := loyaltyService.NewService(loyaltyRepository, log)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		professionalRepository,
		loyaltySvc,
		notifier,
		cache,
		txMgr,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		professionalRepository,
		txMgr,
		log,
	)
	blockedSlotsSvc := blockedSlotsService.NewService(
		blockedSlotRepository,
		professionalRepository,
		cache,
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		professionalRepository,
		scheduleRepository,
		appointmentRepository,
		blockedSlotRepository,
		cache,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		professionalRepository,
		appointmentRepository,
		blockedSlotRepository,
		clientRepository,
		notifier,
		cache,
		txMgr,
		&createAppointmentUC.RealTimeProvider{},
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	createBlockedSlot := createBlockedSlotHandler.NewHandler(blockedSlotsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты мастера на дату
	api.HandleFunc("/professionals/{professionalId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Публичная запись клиента
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Публичная самостоятельная отмена по токену
	api.HandleFunc("/appointments/{appointmentId}/cancel",
		cancelAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Смена статуса записи (админка салона)
	protected.HandleFunc("/appointments/{appointmentId}/status",
		updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// История записей клиента
	protected.HandleFunc("/clients/{clientId}/appointments",
		getClientAppointments.Handle).Methods(http.MethodGet)

	// Замена недельного расписания мастера
	protected.HandleFunc("/professionals/{professionalId}/schedule",
		updateSchedule.Handle).Methods(http.MethodPut)

	// Блокировка времени (отпуск, перерыв, праздник)
	protected.HandleFunc("/blocked-slots", createBlockedSlot.Handle).Methods(http.MethodPost)

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
