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
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/create_booking"
	createHoldHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/create_hold"
	getAddOnsHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/get_add_ons"
	getBookingHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/get_booking"
	getDeliveryFeeHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/get_delivery_fee"
	getQuoteHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/get_quote"
	getRateSettingsHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/get_rate_settings"
	getUserBookingsHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/get_user_bookings"
	releaseHoldHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/release_hold"
	searchVehiclesHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/search_vehicles"
	updateBookingStatusHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/update_booking_status"
	updateRateSettingsHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/update_rate_settings"
	"github.com/m04kA/SMC-CarRentalService/internal/api/middleware"
	"github.com/m04kA/SMC-CarRentalService/internal/config"
	"github.com/m04kA/SMC-CarRentalService/internal/infra/cache"
	addonRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/addon"
	bookingRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/booking"
	holdRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/hold"
	locationRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/location"
	settingsRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/settings"
	vehicleRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/vehicle"
	mapsClient "github.com/m04kA/SMC-CarRentalService/internal/integrations/maps"
	"github.com/m04kA/SMC-CarRentalService/internal/jobs"
	addonsService "github.com/m04kA/SMC-CarRentalService/internal/service/addons"
	availabilityService "github.com/m04kA/SMC-CarRentalService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-CarRentalService/internal/service/bookings"
	deliveryService "github.com/m04kA/SMC-CarRentalService/internal/service/delivery"
	"github.com/m04kA/SMC-CarRentalService/internal/service/pricing"
	quotingService "github.com/m04kA/SMC-CarRentalService/internal/service/quoting"
	"github.com/m04kA/SMC-CarRentalService/internal/service/ratesettings"
	checkAvailabilityUC "github.com/m04kA/SMC-CarRentalService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-CarRentalService/internal/usecase/create_booking"
	createHoldUC "github.com/m04kA/SMC-CarRentalService/internal/usecase/create_hold"
	quoteBookingUC "github.com/m04kA/SMC-CarRentalService/internal/usecase/quote_booking"
	releaseHoldUC "github.com/m04kA/SMC-CarRentalService/internal/usecase/release_hold"
	searchVehiclesUC "github.com/m04kA/SMC-CarRentalService/internal/usecase/search_vehicles"
	"github.com/m04kA/SMC-CarRentalService/migrations"
	"github.com/m04kA/SMC-CarRentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CarRentalService/pkg/logger"
	"github.com/m04kA/SMC-CarRentalService/pkg/metrics"
	"github.com/m04kA/SMC-CarRentalService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CarRentalService/pkg/txmanager"
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

	log.Info("Starting SMC-CarRentalService...")
	log.Info("Configuration loaded from config.toml")

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

	// Применяем миграции
	if cfg.Database.AutoMigrate {
		if err := migrate(db, log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Исполнитель запросов и transaction manager (с метриками или без)
	var (
		executor dbmetrics.DBExecutor
		txMgr    *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		executor = db
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем репозитории
	vehicleRepository := vehicleRepo.NewRepository(executor)
	bookingRepository := bookingRepo.NewRepository(executor)
	holdRepository := holdRepo.NewRepository(executor)
	locationRepository := locationRepo.NewRepository(executor)
	addonRepository := addonRepo.NewRepository(executor)
	settingsRepository := settingsRepo.NewRepository(executor)

	// Кэш настроек тарифов: Redis для нескольких реплик, иначе память процесса
	var settingsCache ratesettings.Cache = cache.NewMemoryCache()
	if cfg.Redis.Enabled {
		redisCache := cache.NewRedisCache(cache.NewRedisClient(cache.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}), cfg.Redis.Key)
		defer redisCache.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			log.Warn("Redis is not reachable, settings will fall back to defaults until it recovers: %v", err)
		}
		cancel()

		settingsCache = redisCache
		log.Info("Rate settings cache: redis (addr=%s)", cfg.Redis.Addr)
	} else {
		log.Info("Rate settings cache: in-memory")
	}

	// Google Maps опционален: без ключа расстояние считается по прямой
	var distance deliveryService.DistanceClient
	if cfg.Maps.APIKey != "" {
		client, err := mapsClient.NewClient(cfg.Maps.APIKey, time.Duration(cfg.Maps.Timeout)*time.Second, log)
		if err != nil {
			log.Warn("Maps client disabled: %v", err)
		} else {
			distance = client
			log.Info("Maps client initialized (timeout=%ds)", cfg.Maps.Timeout)
		}
	} else {
		log.Info("Maps API key is not set, delivery distance uses straight-line estimate")
	}

	// Политика расчета цены
	policy := pricing.DefaultPolicy()
	policy.WeekendPolicy, err = pricing.ParseWeekendPolicy(cfg.Pricing.WeekendPolicy)
	if err != nil {
		log.Fatal("Invalid pricing policy: %v", err)
	}
	policy.TaxRegulatoryFees = cfg.Pricing.TaxRegulatoryFees

	// Инициализируем сервисы
	rateProvider := ratesettings.NewProvider(
		settingsRepository,
		settingsCache,
		time.Duration(cfg.Pricing.SettingsCacheTTL)*time.Second,
		metricsCollector,
		log,
	)
	addonsSvc := addonsService.NewService(addonRepository, log)
	deliverySvc := deliveryService.NewService(locationRepository, distance, log)
	quotingSvc := quotingService.NewService(rateProvider, addonsSvc, deliverySvc, pricing.NewEngine(policy), log)
	availabilitySvc := availabilityService.NewService(
		vehicleRepository,
		bookingRepository,
		holdRepository,
		metricsCollector,
		log,
	)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	searchVehiclesUseCase := searchVehiclesUC.NewUseCase(availabilitySvc, locationRepository, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(vehicleRepository, availabilitySvc, log)
	quoteBookingUseCase := quoteBookingUC.NewUseCase(vehicleRepository, quotingSvc, log)
	createHoldUseCase := createHoldUC.NewUseCase(
		holdRepository,
		vehicleRepository,
		availabilitySvc,
		txMgr,
		time.Duration(cfg.Holds.TTLMinutes)*time.Minute,
		log,
	)
	releaseHoldUseCase := releaseHoldUC.NewUseCase(holdRepository, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		vehicleRepository,
		holdRepository,
		availabilitySvc,
		quotingSvc,
		metricsCollector,
		txMgr,
		log,
	)

	// Фоновые задачи
	scheduler := jobs.NewScheduler(log)
	if cfg.Jobs.Enabled {
		expirer := jobs.NewHoldExpirer(holdRepository, metricsCollector, log)
		if err := scheduler.RegisterHoldExpirer(cfg.Jobs.ExpireHoldsSchedule, expirer); err != nil {
			log.Fatal("Failed to register jobs: %v", err)
		}
		scheduler.Start()
	}

	// Инициализируем handlers
	searchVehicles := searchVehiclesHandler.NewHandler(searchVehiclesUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getQuote := getQuoteHandler.NewHandler(quoteBookingUseCase, log)
	getDeliveryFee := getDeliveryFeeHandler.NewHandler(deliverySvc, log)
	getAddOns := getAddOnsHandler.NewHandler(addonsSvc, log)
	getRateSettings := getRateSettingsHandler.NewHandler(rateProvider, log)
	updateRateSettings := updateRateSettingsHandler.NewHandler(rateProvider, log)
	createHold := createHoldHandler.NewHandler(createHoldUseCase, log)
	releaseHold := releaseHoldHandler.NewHandler(releaseHoldUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
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

	// Поиск, расчет и доставка ограничены по IP
	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter, err := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst).
			WithTrustedProxies(cfg.RateLimit.TrustedProxies)
		if err != nil {
			log.Fatal("Failed to configure rate limiter: %v", err)
		}
		public.Use(limiter.Middleware)
		log.Info("Rate limit enabled: %.1f rps, burst=%d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// --- Каталог и доступность ---
	public.HandleFunc("/vehicles/available", searchVehicles.Handle).Methods(http.MethodGet)
	public.HandleFunc("/vehicles/{vehicleId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// --- Расчет стоимости ---
	public.HandleFunc("/quotes", getQuote.Handle).Methods(http.MethodPost)
	public.HandleFunc("/delivery/fee", getDeliveryFee.Handle).Methods(http.MethodGet)

	api.HandleFunc("/addons", getAddOns.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings/rates", getRateSettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Холды ---
	protected.HandleFunc("/holds", createHold.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/holds/{holdId}", releaseHold.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Настройки тарифов ---
	protected.HandleFunc("/settings/rates", updateRateSettings.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.NewCORSHandler(cfg.CORS.AllowedOrigins)(r),
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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if err := scheduler.Stop(shutdownCtx); err != nil {
		log.Error("Scheduler did not stop in time: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	log.Info("Server stopped gracefully")
}

// migrate применяет встроенные миграции goose
func migrate(db *sql.DB, log *logger.Logger) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create goose provider: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, res := range results {
		log.Info("Migration applied: %s (%s)", res.Source.Path, res.Duration)
	}
	return nil
}
