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

	cancelBookingHandler "github.com/velora-spa/SchedulingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/velora-spa/SchedulingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/velora-spa/SchedulingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/velora-spa/SchedulingService/internal/api/handlers/get_booking"
	getDayCalendarHandler "github.com/velora-spa/SchedulingService/internal/api/handlers/get_day_calendar"
	getSalonBookingsHandler "github.com/velora-spa/SchedulingService/internal/api/handlers/get_salon_bookings"
	getSalonConfigHandler "github.com/velora-spa/SchedulingService/internal/api/handlers/get_salon_config"
	getUserBookingsHandler "github.com/velora-spa/SchedulingService/internal/api/handlers/get_user_bookings"
	getWeekScheduleHandler "github.com/velora-spa/SchedulingService/internal/api/handlers/get_week_schedule"
	updateBookingStatusHandler "github.com/velora-spa/SchedulingService/internal/api/handlers/update_booking_status"
	updateSalonConfigHandler "github.com/velora-spa/SchedulingService/internal/api/handlers/update_salon_config"
	updateWeekScheduleHandler "github.com/velora-spa/SchedulingService/internal/api/handlers/update_week_schedule"
	"github.com/velora-spa/SchedulingService/internal/api/middleware"
	"github.com/velora-spa/SchedulingService/internal/config"
	cronJobs "github.com/velora-spa/SchedulingService/internal/cron"
	bookingRepo "github.com/velora-spa/SchedulingService/internal/infra/storage/booking"
	configRepo "github.com/velora-spa/SchedulingService/internal/infra/storage/config"
	hoursRepo "github.com/velora-spa/SchedulingService/internal/infra/storage/hours"
	catalogServiceClient "github.com/velora-spa/SchedulingService/internal/integrations/catalogservice"
	bookingsService "github.com/velora-spa/SchedulingService/internal/service/bookings"
	scheduleService "github.com/velora-spa/SchedulingService/internal/service/schedule"
	createBookingUC "github.com/velora-spa/SchedulingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/velora-spa/SchedulingService/internal/usecase/get_available_slots"
	getDayCalendarUC "github.com/velora-spa/SchedulingService/internal/usecase/get_day_calendar"
	"github.com/velora-spa/SchedulingService/pkg/dbmetrics"
	"github.com/velora-spa/SchedulingService/pkg/logger"
	"github.com/velora-spa/SchedulingService/pkg/metrics"
	"github.com/velora-spa/SchedulingService/pkg/simpletxmanager"
	"github.com/velora-spa/SchedulingService/pkg/txmanager"
)

// TxManager объединяет транзакционные контракты usecases и сервисов.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

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

	log.Info("Starting SchedulingService...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем клиента каталога
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("CatalogService client initialized (url=%s, timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем репозитории (с обёрткой метрик или без)
	var (
		bookingRepository *bookingRepo.Repository
		configRepository  *configRepo.Repository
		hoursRepository   *hoursRepo.Repository
		txMgr             TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		configRepository = configRepo.NewRepository(wrappedDB)
		hoursRepository = hoursRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		configRepository = configRepo.NewRepository(db)
		hoursRepository = hoursRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	timeProvider := &getAvailableSlotsUC.RealTimeProvider{}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, catalogClient, log)
	scheduleSvc := scheduleService.NewService(hoursRepository, configRepository, catalogClient, txMgr, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.New(
		bookingRepository,
		hoursRepository,
		configRepository,
		catalogClient,
		timeProvider,
		log,
	)
	createBookingUseCase := createBookingUC.New(
		bookingRepository,
		hoursRepository,
		configRepository,
		catalogClient,
		txMgr,
		timeProvider,
		log,
	)
	getDayCalendarUseCase := getDayCalendarUC.New(
		bookingRepository,
		hoursRepository,
		configRepository,
		catalogClient,
		timeProvider,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getSalonBookings := getSalonBookingsHandler.NewHandler(bookingSvc, log)
	getDayCalendar := getDayCalendarHandler.NewHandler(getDayCalendarUseCase, log)
	getWeekSchedule := getWeekScheduleHandler.NewHandler(scheduleSvc, log)
	updateWeekSchedule := updateWeekScheduleHandler.NewHandler(scheduleSvc, log)
	getSalonConfig := getSalonConfigHandler.NewHandler(scheduleSvc, log)
	updateSalonConfig := updateSalonConfigHandler.NewHandler(scheduleSvc, log)

	// Запускаем фоновые задачи
	cronRunner := cronJobs.NewRunner(bookingRepository, timeProvider, log)
	if err := cronRunner.Start(cfg.Jobs.CompletePastBookingsSchedule); err != nil {
		log.Fatal("Failed to start cron runner: %v", err)
	}
	log.Info("Background jobs started (complete_past_bookings schedule=%q)",
		cfg.Jobs.CompletePastBookingsSchedule)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Публичные маршруты (без аутентификации)
	api.HandleFunc("/therapists/{therapistId}/schedule",
		getWeekSchedule.Handle).Methods(http.MethodGet)

	// Защищённые маршруты (требуют X-User-ID)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Слоты и бронирования
	protected.HandleFunc("/therapists/{therapistId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Управление салоном (для менеджеров)
	protected.HandleFunc("/salons/{salonId}/bookings", getSalonBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/salons/{salonId}/therapists/{therapistId}/calendar",
		getDayCalendar.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/therapists/{therapistId}/schedule",
		updateWeekSchedule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/salons/{salonId}/slots-config", getSalonConfig.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/salons/{salonId}/slots-config", updateSalonConfig.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/salons/{salonId}/slots-config/{configId}",
		updateSalonConfig.HandleDelete).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	cronRunner.Stop()

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
