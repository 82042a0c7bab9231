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

	createAdminBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_admin_booking"
	createBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_booking"
	getWeekGridHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_week_grid"
	listBookingsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_bookings"
	listServicesHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_services"
	rescheduleBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/reschedule_booking"
	resizeBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/resize_booking"
	updateStatusHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/update_status"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/api/pages"
	"github.com/m04kA/SMC-SalonBooking/internal/catalog"
	"github.com/m04kA/SMC-SalonBooking/internal/config"
	bookingRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/recordstore"
	bookingsService "github.com/m04kA/SMC-SalonBooking/internal/service/bookings"
	calendarService "github.com/m04kA/SMC-SalonBooking/internal/service/calendar"
	createBookingUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
	getWeekGridUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_week_grid"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
)

// bookingStore общий контракт обоих хранилищ записей (postgres и rest)
type bookingStore interface {
	bookingsService.BookingRepository
	createBookingUC.BookingRepository
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

	log.Info("Starting SMC-SalonBooking...")
	log.Info("Configuration loaded from config.toml (store=%s)", cfg.Store.Driver)

	location, err := time.LoadLocation(cfg.Calendar.Timezone)
	if err != nil {
		log.Fatal("Unknown calendar timezone %q: %v", cfg.Calendar.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище записей
	var store bookingStore

	switch cfg.Store.Driver {
	case config.StoreDriverREST:
		store = recordstore.NewClient(
			cfg.Store.URL,
			cfg.Store.Table,
			cfg.Store.APIKey,
			time.Duration(cfg.Store.Timeout)*time.Second,
			log,
		)
		log.Info("Hosted record store initialized (url=%s, table=%s, timeout=%ds)",
			cfg.Store.URL, cfg.Store.Table, cfg.Store.Timeout)

	default:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			store = bookingRepo.NewRepository(dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh))
			log.Info("Database metrics collection started")
		} else {
			store = bookingRepo.NewRepository(db)
		}
	}

	// Каталог услуг: из конфига или встроенный
	services := catalog.Default()
	if len(cfg.Catalog.Services) > 0 {
		services, err = catalog.New(cfg.Catalog.ToDomainServices())
		if err != nil {
			log.Fatal("Invalid service catalog: %v", err)
		}
	}
	log.Info("Service catalog loaded: %d services", len(services.All()))

	axis, err := calendarService.NewAxis(cfg.Calendar.Open, cfg.Calendar.Close, cfg.Calendar.SlotMinutes)
	if err != nil {
		log.Fatal("Invalid calendar axis: %v", err)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(store, services, metricsCollector, log)
	calendarSvc := calendarService.NewService(bookingSvc, axis, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(store, services, metricsCollector, location, log)
	getWeekGridUseCase := getWeekGridUC.NewUseCase(calendarSvc, location, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	createAdminBooking := createAdminBookingHandler.NewHandler(createBookingUseCase, log)
	listServices := listServicesHandler.NewHandler(services, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(calendarSvc, bookingSvc, log)
	updateStatus := updateStatusHandler.NewHandler(calendarSvc, bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(calendarSvc, bookingSvc, log)
	resizeBooking := resizeBookingHandler.NewHandler(calendarSvc, bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(calendarSvc, log)
	getWeekGrid := getWeekGridHandler.NewHandler(getWeekGridUseCase, log)

	pageHandler, err := pages.NewHandler(createBookingUseCase, getWeekGridUseCase, services, cfg.Auth.JWTSecret, log)
	if err != nil {
		log.Fatal("Failed to parse page templates: %v", err)
	}

	// Middleware
	adminAuth := middleware.Auth(cfg.Auth.JWTSecret, log)

	rateLimit := func(next http.Handler) http.Handler { return next }
	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	defer stopCleanup()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log)
		go limiter.Cleanup(cleanupCtx, time.Minute, 3*time.Minute)
		rateLimit = limiter.Middleware
		log.Info("Rate limit enabled for public bookings (rps=%.2f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PAGES
	// ============================================================

	r.HandleFunc("/", pageHandler.BookingForm).Methods(http.MethodGet)
	r.Handle("/book", rateLimit(http.HandlerFunc(pageHandler.SubmitBooking))).Methods(http.MethodPost)
	r.Handle("/admin", adminAuth(http.HandlerFunc(pageHandler.AdminCalendar))).Methods(http.MethodGet)
	r.HandleFunc("/admin/login", pageHandler.LoginForm).Methods(http.MethodGet)
	r.Handle("/admin/login", rateLimit(http.HandlerFunc(pageHandler.Login))).Methods(http.MethodPost)
	r.HandleFunc("/admin/logout", pageHandler.Logout).Methods(http.MethodPost)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.Handle("/bookings", rateLimit(http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (JWT с ролью admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(adminAuth)

	// --- Календарь ---
	admin.HandleFunc("/calendar", getWeekGrid.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", createAdminBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/bookings/{bookingId}/status", updateStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/schedule", rescheduleBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/duration", resizeBooking.Handle).Methods(http.MethodPatch)

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

	stopCleanup()
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
