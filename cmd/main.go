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

	cancelAppointmentHandler "github.com/akimv/BarberHub-BookingService/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/akimv/BarberHub-BookingService/internal/api/handlers/complete_appointment"
	createAppointmentHandler "github.com/akimv/BarberHub-BookingService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/akimv/BarberHub-BookingService/internal/api/handlers/get_appointment"
	getAppointmentMessagesHandler "github.com/akimv/BarberHub-BookingService/internal/api/handlers/get_appointment_messages"
	getAvailableSlotsHandler "github.com/akimv/BarberHub-BookingService/internal/api/handlers/get_available_slots"
	getBarberAppointmentsHandler "github.com/akimv/BarberHub-BookingService/internal/api/handlers/get_barber_appointments"
	getClientAppointmentsHandler "github.com/akimv/BarberHub-BookingService/internal/api/handlers/get_client_appointments"
	listBarbersHandler "github.com/akimv/BarberHub-BookingService/internal/api/handlers/list_barbers"
	listServicesHandler "github.com/akimv/BarberHub-BookingService/internal/api/handlers/list_services"
	listSitesHandler "github.com/akimv/BarberHub-BookingService/internal/api/handlers/list_sites"
	sendAppointmentMessageHandler "github.com/akimv/BarberHub-BookingService/internal/api/handlers/send_appointment_message"
	updateAppointmentHandler "github.com/akimv/BarberHub-BookingService/internal/api/handlers/update_appointment"
	"github.com/akimv/BarberHub-BookingService/internal/api/middleware"
	"github.com/akimv/BarberHub-BookingService/internal/config"
	catalogCache "github.com/akimv/BarberHub-BookingService/internal/infra/cache/catalog"
	appointmentRepo "github.com/akimv/BarberHub-BookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/akimv/BarberHub-BookingService/internal/infra/storage/catalog"
	chatServiceClient "github.com/akimv/BarberHub-BookingService/internal/integrations/chatservice"
	identityClient "github.com/akimv/BarberHub-BookingService/internal/integrations/identity"
	appointmentsService "github.com/akimv/BarberHub-BookingService/internal/service/appointments"
	catalogService "github.com/akimv/BarberHub-BookingService/internal/service/catalog"
	chatService "github.com/akimv/BarberHub-BookingService/internal/service/chat"
	createAppointmentUC "github.com/akimv/BarberHub-BookingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/akimv/BarberHub-BookingService/internal/usecase/get_available_slots"
	updateAppointmentUC "github.com/akimv/BarberHub-BookingService/internal/usecase/update_appointment"
	"github.com/akimv/BarberHub-BookingService/migrations"
	"github.com/akimv/BarberHub-BookingService/pkg/dbmetrics"
	"github.com/akimv/BarberHub-BookingService/pkg/logger"
	"github.com/akimv/BarberHub-BookingService/pkg/metrics"
	"github.com/akimv/BarberHub-BookingService/pkg/simpletxmanager"
	"github.com/akimv/BarberHub-BookingService/pkg/txmanager"
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

	log.Info("Starting BarberHub-BookingService...")
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

	// Применяем миграции
	if err := migrations.Apply(context.Background(), db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Инициализируем интеграционных клиентов
	identity := identityClient.NewClient(
		cfg.Identity.URL,
		time.Duration(cfg.Identity.Timeout)*time.Second,
		log,
	)
	chatClient := chatServiceClient.NewClient(
		cfg.Chat.URL,
		time.Duration(cfg.Chat.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (IdentityService=%s timeout=%ds, ChatService=%s timeout=%ds)",
		cfg.Identity.URL, cfg.Identity.Timeout, cfg.Chat.URL, cfg.Chat.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		catalogRepository     *catalogRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Кэш справочников (если включён Redis)
	var catalogLister catalogService.CatalogLister = catalogRepository
	var redisClient *redis.Client

	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}

		catalogLister = catalogCache.NewCache(
			redisClient,
			catalogRepository,
			time.Duration(cfg.Redis.CatalogTTL)*time.Second,
			log,
		)
		log.Info("Catalog cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.CatalogTTL)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		log,
	)
	catalogSvc := catalogService.NewService(
		catalogLister,
		log,
	)
	chatSvc := chatService.NewService(
		appointmentRepository,
		chatClient,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		txMgr,
		log,
	)

	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentSvc, log)
	getBarberAppointments := getBarberAppointmentsHandler.NewHandler(appointmentSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	listBarbers := listBarbersHandler.NewHandler(catalogSvc, log)
	listSites := listSitesHandler.NewHandler(catalogSvc, log)
	getAppointmentMessages := getAppointmentMessagesHandler.NewHandler(chatSvc, log)
	sendAppointmentMessage := sendAppointmentMessageHandler.NewHandler(chatSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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

	// Справочники барбершопа
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/barbers", listBarbers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sites", listSites.Handle).Methods(http.MethodGet)

	// Доступные слоты записи к барберу
	api.HandleFunc("/barbers/{id}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(identity, log))

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)

	// Изменение записи владельцем
	protected.HandleFunc("/appointments/{id}", updateAppointment.Handle).Methods(http.MethodPut)

	// Отмена записи
	protected.HandleFunc("/appointments/{id}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Завершение записи барбером
	protected.HandleFunc("/appointments/{id}/complete", completeAppointment.Handle).Methods(http.MethodPatch)

	// История записей клиента
	protected.HandleFunc("/clients/me/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// --- Расписание барбера ---
	protected.HandleFunc("/barbers/{id}/appointments", getBarberAppointments.Handle).Methods(http.MethodGet)

	// --- Чат записи ---
	protected.HandleFunc("/appointments/{id}/messages", getAppointmentMessages.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/messages", sendAppointmentMessage.Handle).Methods(http.MethodPost)

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

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
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
