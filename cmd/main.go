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

	bookClassHandler "github.com/m04kA/FitStudio-BookingService/internal/api/handlers/book_class"
	cancelBookingHandler "github.com/m04kA/FitStudio-BookingService/internal/api/handlers/cancel_booking"
	getBookingHandler "github.com/m04kA/FitStudio-BookingService/internal/api/handlers/get_booking"
	getClassHandler "github.com/m04kA/FitStudio-BookingService/internal/api/handlers/get_class"
	getClassBookingsHandler "github.com/m04kA/FitStudio-BookingService/internal/api/handlers/get_class_bookings"
	getInstructorHandler "github.com/m04kA/FitStudio-BookingService/internal/api/handlers/get_instructor"
	getScheduleHandler "github.com/m04kA/FitStudio-BookingService/internal/api/handlers/get_schedule"
	getUserBookingsHandler "github.com/m04kA/FitStudio-BookingService/internal/api/handlers/get_user_bookings"
	listClassesHandler "github.com/m04kA/FitStudio-BookingService/internal/api/handlers/list_classes"
	listInstructorsHandler "github.com/m04kA/FitStudio-BookingService/internal/api/handlers/list_instructors"
	"github.com/m04kA/FitStudio-BookingService/internal/api/middleware"
	"github.com/m04kA/FitStudio-BookingService/internal/config"
	bookingRepo "github.com/m04kA/FitStudio-BookingService/internal/infra/storage/booking"
	classRepo "github.com/m04kA/FitStudio-BookingService/internal/infra/storage/class"
	instructorRepo "github.com/m04kA/FitStudio-BookingService/internal/infra/storage/instructor"
	bookingsService "github.com/m04kA/FitStudio-BookingService/internal/service/bookings"
	classesService "github.com/m04kA/FitStudio-BookingService/internal/service/classes"
	instructorsService "github.com/m04kA/FitStudio-BookingService/internal/service/instructors"
	bookClassUC "github.com/m04kA/FitStudio-BookingService/internal/usecase/book_class"
	cancelBookingUC "github.com/m04kA/FitStudio-BookingService/internal/usecase/cancel_booking"
	getScheduleUC "github.com/m04kA/FitStudio-BookingService/internal/usecase/get_schedule"
	"github.com/m04kA/FitStudio-BookingService/pkg/dbmetrics"
	"github.com/m04kA/FitStudio-BookingService/pkg/logger"
	"github.com/m04kA/FitStudio-BookingService/pkg/metrics"
	"github.com/m04kA/FitStudio-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/FitStudio-BookingService/pkg/txmanager"
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

	log.Info("Starting FitStudio-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Таймзона студии - в ней считаются календарные дни расписания
	studioLocation, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		log.Fatal("Failed to load studio timezone %q: %v", cfg.Schedule.Timezone, err)
	}
	log.Info("Studio timezone: %s", cfg.Schedule.Timezone)

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

	// Инициализируем репозитории (с метриками или без)
	var (
		classRepository      *classRepo.Repository
		bookingRepository    *bookingRepo.Repository
		instructorRepository *instructorRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		classRepository = classRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		instructorRepository = instructorRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		classRepository = classRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		instructorRepository = instructorRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	classesSvc := classesService.NewService(classRepository, log)
	instructorsSvc := instructorsService.NewService(instructorRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, classRepository, log)

	// Инициализируем use cases
	bookClassUseCase := bookClassUC.NewUseCase(
		classRepository,
		bookingRepository,
		txMgr,
		log,
	)

	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		classRepository,
		txMgr,
		log,
	)

	getScheduleUseCase := getScheduleUC.NewUseCase(classRepository, studioLocation, log)

	// Инициализируем handlers
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	listClasses := listClassesHandler.NewHandler(classesSvc, log)
	getClass := getClassHandler.NewHandler(classesSvc, log)
	listInstructors := listInstructorsHandler.NewHandler(instructorsSvc, log)
	getInstructor := getInstructorHandler.NewHandler(instructorsSvc, classesSvc, log)
	bookClass := bookClassHandler.NewHandler(bookClassUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)
	getClassBookings := getClassBookingsHandler.NewHandler(bookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной идентификатор запроса
	r.Use(middleware.RequestID)

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

	// Недельное и дневное расписание классов
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Каталог классов с фильтрацией и сортировкой
	api.HandleFunc("/classes", listClasses.Handle).Methods(http.MethodGet)

	// Карточка класса
	api.HandleFunc("/classes/{classId}", getClass.Handle).Methods(http.MethodGet)

	// Список инструкторов
	api.HandleFunc("/instructors", listInstructors.Handle).Methods(http.MethodGet)

	// Профиль инструктора с его классами
	api.HandleFunc("/instructors/{instructorId}", getInstructor.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Запись в класс
	protected.HandleFunc("/bookings", bookClass.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Список записавшихся в класс
	protected.HandleFunc("/classes/{classId}/bookings", getClassBookings.Handle).Methods(http.MethodGet)

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
