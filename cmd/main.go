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
	"github.com/redis/go-redis/v9"

	applyDraftActionHandler "github.com/CurtBryan/party-lab-sub000/internal/api/handlers/apply_draft_action"
	cancelBookingHandler "github.com/CurtBryan/party-lab-sub000/internal/api/handlers/cancel_booking"
	commitBookingHandler "github.com/CurtBryan/party-lab-sub000/internal/api/handlers/commit_booking"
	createDraftHandler "github.com/CurtBryan/party-lab-sub000/internal/api/handlers/create_draft"
	createOverrideHandler "github.com/CurtBryan/party-lab-sub000/internal/api/handlers/create_override"
	deleteDraftHandler "github.com/CurtBryan/party-lab-sub000/internal/api/handlers/delete_draft"
	deleteOverrideHandler "github.com/CurtBryan/party-lab-sub000/internal/api/handlers/delete_override"
	evaluateServiceAreaHandler "github.com/CurtBryan/party-lab-sub000/internal/api/handlers/evaluate_service_area"
	getAdminBookingsHandler "github.com/CurtBryan/party-lab-sub000/internal/api/handlers/get_admin_bookings"
	getAvailableSlotsHandler "github.com/CurtBryan/party-lab-sub000/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/CurtBryan/party-lab-sub000/internal/api/handlers/get_booking"
	getDraftHandler "github.com/CurtBryan/party-lab-sub000/internal/api/handlers/get_draft"
	getOverridesHandler "github.com/CurtBryan/party-lab-sub000/internal/api/handlers/get_overrides"
	runReminderSweepHandler "github.com/CurtBryan/party-lab-sub000/internal/api/handlers/run_reminder_sweep"
	"github.com/CurtBryan/party-lab-sub000/internal/api/middleware"
	"github.com/CurtBryan/party-lab-sub000/internal/config"
	draftCache "github.com/CurtBryan/party-lab-sub000/internal/infra/cache/draft"
	bookingRepo "github.com/CurtBryan/party-lab-sub000/internal/infra/storage/booking"
	overrideRepo "github.com/CurtBryan/party-lab-sub000/internal/infra/storage/override"
	geocoderClient "github.com/CurtBryan/party-lab-sub000/internal/integrations/geocoder"
	notifierClient "github.com/CurtBryan/party-lab-sub000/internal/integrations/notifier"
	paymentsClient "github.com/CurtBryan/party-lab-sub000/internal/integrations/payments"
	bookingsService "github.com/CurtBryan/party-lab-sub000/internal/service/bookings"
	draftsService "github.com/CurtBryan/party-lab-sub000/internal/service/drafts"
	overridesService "github.com/CurtBryan/party-lab-sub000/internal/service/overrides"
	commitBookingUC "github.com/CurtBryan/party-lab-sub000/internal/usecase/commit_booking"
	evaluateServiceAreaUC "github.com/CurtBryan/party-lab-sub000/internal/usecase/evaluate_service_area"
	getAvailableSlotsUC "github.com/CurtBryan/party-lab-sub000/internal/usecase/get_available_slots"
	reminderSweepUC "github.com/CurtBryan/party-lab-sub000/internal/usecase/reminder_sweep"
	"github.com/CurtBryan/party-lab-sub000/internal/worker"
	"github.com/CurtBryan/party-lab-sub000/pkg/dbmetrics"
	"github.com/CurtBryan/party-lab-sub000/pkg/logger"
	"github.com/CurtBryan/party-lab-sub000/pkg/metrics"
	"github.com/CurtBryan/party-lab-sub000/pkg/simpletxmanager"
	"github.com/CurtBryan/party-lab-sub000/pkg/txmanager"
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

	log.Info("Starting PartyLab booking service...")
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

	// Подключаемся к Redis (кеш черновиков)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)

	// Инициализируем интеграционных клиентов
	geocoder := geocoderClient.NewClient(
		cfg.Geocoder.URL,
		time.Duration(cfg.Geocoder.Timeout)*time.Second,
		log,
	)
	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	payments := paymentsClient.NewClient(cfg.Stripe.APIKey, cfg.Stripe.Currency, log)
	log.Info("Integration clients initialized (geocoder=%s, notifier=%s)",
		cfg.Geocoder.URL, cfg.Notifier.URL)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		overrideRepository *overrideRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		overrideRepository = overrideRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		overrideRepository = overrideRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Кеш черновиков
	drafts := draftCache.NewCache(
		redisClient,
		time.Duration(cfg.Redis.DraftTTLDays)*24*time.Hour,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.New(bookingRepository, overrideRepository, log)
	evaluateServiceAreaUseCase := evaluateServiceAreaUC.New(geocoder, log)
	commitBookingUseCase := commitBookingUC.New(
		bookingRepository,
		overrideRepository,
		drafts,
		payments,
		notifier,
		txMgr,
		cfg.Notifier.BusinessRecipient,
		log,
	)
	reminderSweepUseCase := reminderSweepUC.New(
		bookingRepository,
		notifier,
		&reminderSweepUC.RealTimeProvider{},
		cfg.Notifier.BusinessRecipient,
		log,
	)

	// Инициализируем сервисы
	draftSvc := draftsService.NewService(
		drafts,
		getAvailableSlotsUseCase,
		evaluateServiceAreaUseCase,
		payments,
		&draftsService.RealTimeProvider{},
		log,
	)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	overrideSvc := overridesService.NewService(overrideRepository, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	evaluateServiceArea := evaluateServiceAreaHandler.NewHandler(evaluateServiceAreaUseCase, log)
	createDraft := createDraftHandler.NewHandler(draftSvc, log)
	getDraft := getDraftHandler.NewHandler(draftSvc, log)
	applyDraftAction := applyDraftActionHandler.NewHandler(draftSvc, log)
	deleteDraft := deleteDraftHandler.NewHandler(draftSvc, log)
	commitBooking := commitBookingHandler.NewHandler(commitBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getAdminBookings := getAdminBookingsHandler.NewHandler(bookingSvc, log)
	createOverride := createOverrideHandler.NewHandler(overrideSvc, log)
	getOverrides := getOverridesHandler.NewHandler(overrideSvc, log)
	deleteOverride := deleteOverrideHandler.NewHandler(overrideSvc, log)
	runReminderSweep := runReminderSweepHandler.NewHandler(reminderSweepUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (витрина)
	// ============================================================

	// Доступные слоты для продукта на дату
	api.HandleFunc("/products/{product}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Оценка адреса по зоне обслуживания
	api.HandleFunc("/service-area", evaluateServiceArea.Handle).Methods(http.MethodPost)

	// --- Мастер бронирования ---
	api.HandleFunc("/drafts", createDraft.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{sessionId}", getDraft.Handle).Methods(http.MethodGet)
	api.HandleFunc("/drafts/{sessionId}/actions", applyDraftAction.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{sessionId}", deleteDraft.Handle).Methods(http.MethodDelete)

	// Коммит оплаченного черновика в бронирование
	api.HandleFunc("/bookings/commit", commitBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Secret header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Secret))

	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/admin/bookings", getAdminBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/admin/overrides", createOverride.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/admin/overrides", getOverrides.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/admin/overrides/{overrideId}", deleteOverride.Handle).Methods(http.MethodDelete)

	// ============================================================
	// CRON ROUTES (требуют X-Cron-Secret header)
	// ============================================================

	cron := api.PathPrefix("/jobs").Subrouter()
	cron.Use(middleware.CronAuth(cfg.Sweep.CronSecret))
	cron.HandleFunc("/reminder-sweep", runReminderSweep.Handle).Methods(http.MethodPost)

	// Фоновый воркер напоминаний (если включен)
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	if cfg.Sweep.Enabled {
		reminderWorker := worker.NewReminderWorker(
			reminderSweepUseCase,
			time.Duration(cfg.Sweep.IntervalMinutes)*time.Minute,
			log,
		)
		go reminderWorker.Start(workerCtx)
	}

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

	stopWorker()

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
		log.Fatal("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
