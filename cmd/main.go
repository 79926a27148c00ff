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

	cancelBookingHandler "github.com/murlyka/CatCafe-BookingService/internal/api/handlers/cancel_booking"
	checkPaymentHandler "github.com/murlyka/CatCafe-BookingService/internal/api/handlers/check_payment"
	createBookingHandler "github.com/murlyka/CatCafe-BookingService/internal/api/handlers/create_booking"
	createInvoiceHandler "github.com/murlyka/CatCafe-BookingService/internal/api/handlers/create_invoice"
	getAvailableSlotsHandler "github.com/murlyka/CatCafe-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/murlyka/CatCafe-BookingService/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/murlyka/CatCafe-BookingService/internal/api/handlers/get_bookings"
	getJarHandler "github.com/murlyka/CatCafe-BookingService/internal/api/handlers/get_jar"
	getServicesHandler "github.com/murlyka/CatCafe-BookingService/internal/api/handlers/get_services"
	jarWebhookHandler "github.com/murlyka/CatCafe-BookingService/internal/api/handlers/jar_webhook"
	paymentWebhookHandler "github.com/murlyka/CatCafe-BookingService/internal/api/handlers/payment_webhook"
	updateBookingStatusHandler "github.com/murlyka/CatCafe-BookingService/internal/api/handlers/update_booking_status"
	"github.com/murlyka/CatCafe-BookingService/internal/api/middleware"
	"github.com/murlyka/CatCafe-BookingService/internal/config"
	bookingRepo "github.com/murlyka/CatCafe-BookingService/internal/infra/storage/booking"
	jarRepo "github.com/murlyka/CatCafe-BookingService/internal/infra/storage/jar"
	scheduleRepo "github.com/murlyka/CatCafe-BookingService/internal/infra/storage/schedule"
	servicesRepo "github.com/murlyka/CatCafe-BookingService/internal/infra/storage/services"
	"github.com/murlyka/CatCafe-BookingService/internal/integrations/monobank"
	bookingsService "github.com/murlyka/CatCafe-BookingService/internal/service/bookings"
	jarsService "github.com/murlyka/CatCafe-BookingService/internal/service/jars"
	checkPaymentUC "github.com/murlyka/CatCafe-BookingService/internal/usecase/check_payment"
	createBookingUC "github.com/murlyka/CatCafe-BookingService/internal/usecase/create_booking"
	createInvoiceUC "github.com/murlyka/CatCafe-BookingService/internal/usecase/create_invoice"
	getAvailableSlotsUC "github.com/murlyka/CatCafe-BookingService/internal/usecase/get_available_slots"
	reconcilePaymentUC "github.com/murlyka/CatCafe-BookingService/internal/usecase/reconcile_payment"
	"github.com/murlyka/CatCafe-BookingService/pkg/dbmetrics"
	"github.com/murlyka/CatCafe-BookingService/pkg/logger"
	"github.com/murlyka/CatCafe-BookingService/pkg/metrics"
	"github.com/murlyka/CatCafe-BookingService/pkg/simpletxmanager"
	"github.com/murlyka/CatCafe-BookingService/pkg/txmanager"
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

	log.Info("Starting CatCafe-BookingService...")
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

	// Инициализируем клиента платёжного провайдера (если сконфигурирован)
	var monoClient *monobank.Client
	if cfg.Monobank.IsEnabled() {
		monoClient = monobank.NewClient(
			cfg.Monobank.BaseURL,
			cfg.Monobank.Token,
			time.Duration(cfg.Monobank.Timeout)*time.Second,
			log,
		)
		log.Info("Payment provider client initialized (url=%s, timeout=%ds)",
			cfg.Monobank.BaseURL, cfg.Monobank.Timeout)
	} else {
		log.Warn("Payment provider is not configured - bookings will be created without invoices")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		servicesRepository *servicesRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		jarRepository      *jarRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		servicesRepository = servicesRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		jarRepository = jarRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		servicesRepository = servicesRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		jarRepository = jarRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	var jarPaymentClient jarsService.PaymentClient
	if monoClient != nil {
		jarPaymentClient = monoClient
	}
	jarSvc := jarsService.NewService(jarRepository, jarPaymentClient, cfg.Monobank.JarID, log)

	// Инициализируем use cases
	var bookingPaymentClient createBookingUC.PaymentClient
	var invoicePaymentClient createInvoiceUC.PaymentClient
	var statusPaymentClient checkPaymentUC.PaymentClient
	if monoClient != nil {
		bookingPaymentClient = monoClient
		invoicePaymentClient = monoClient
		statusPaymentClient = monoClient
	}

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		servicesRepository,
		scheduleRepository,
		bookingPaymentClient,
		txMgr,
		createBookingUC.Config{
			SlotStepMinutes:    cfg.Booking.SlotStepMinutes,
			MinNoticeMinutes:   cfg.Booking.MinNoticeMinutes,
			DailyGuestCapacity: cfg.Booking.DailyGuestCapacity,
			CurrencyCode:       cfg.Booking.CurrencyCode,
			RedirectURL:        cfg.Monobank.RedirectURL,
			WebhookURL:         cfg.Monobank.WebhookURL,
		},
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		servicesRepository,
		scheduleRepository,
		getAvailableSlotsUC.Config{
			SlotStepMinutes:  cfg.Booking.SlotStepMinutes,
			MinNoticeMinutes: cfg.Booking.MinNoticeMinutes,
		},
		log,
	)

	reconcilePaymentUseCase := reconcilePaymentUC.NewUseCase(bookingRepository, log)

	checkPaymentUseCase := checkPaymentUC.NewUseCase(statusPaymentClient, reconcilePaymentUseCase, log)

	createInvoiceUseCase := createInvoiceUC.NewUseCase(
		bookingRepository,
		invoicePaymentClient,
		createInvoiceUC.Config{
			CurrencyCode: cfg.Booking.CurrencyCode,
			RedirectURL:  cfg.Monobank.RedirectURL,
			WebhookURL:   cfg.Monobank.WebhookURL,
		},
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getServices := getServicesHandler.NewHandler(servicesRepository, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	checkPayment := checkPaymentHandler.NewHandler(checkPaymentUseCase, log)
	createInvoice := createInvoiceHandler.NewHandler(createInvoiceUseCase, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(reconcilePaymentUseCase, log)
	jarWebhook := jarWebhookHandler.NewHandler(jarSvc, log)
	getJar := getJarHandler.NewHandler(jarSvc, log)

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

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// Доступные окна визита
	api.HandleFunc("/services/{serviceId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Вебхуки провайдера (GET - проверка доступности при регистрации)
	api.HandleFunc("/payments/webhook", paymentWebhook.Handle).Methods(http.MethodGet, http.MethodPost)
	api.HandleFunc("/jars/webhook", jarWebhook.Handle).Methods(http.MethodGet, http.MethodPost)

	// Состояние банки для сбора донатов
	api.HandleFunc("/jar", getJar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/jars", getJar.HandleList).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-Token header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AdminAuth(cfg.Admin.Token, log))

	// --- Бронирования ---
	protected.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id}/status", updateBookingStatus.HandleStatus).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{id}/payment-status", updateBookingStatus.HandlePaymentStatus).Methods(http.MethodPut)

	// --- Платежи ---
	protected.HandleFunc("/payments/check", checkPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/payments/invoice", createInvoice.Handle).Methods(http.MethodPost)

	// --- Банки ---
	protected.HandleFunc("/jars/{externalId}/sync", getJar.HandleSync).Methods(http.MethodPost)

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
