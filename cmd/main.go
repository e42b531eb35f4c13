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

	allocatePlanHandler "github.com/m04kA/YSM-SchedulingService/internal/api/handlers/allocate_plan"
	allocatePlanBulkHandler "github.com/m04kA/YSM-SchedulingService/internal/api/handlers/allocate_plan_bulk"
	cancelAllocationHandler "github.com/m04kA/YSM-SchedulingService/internal/api/handlers/cancel_allocation"
	checkSlotCapacityHandler "github.com/m04kA/YSM-SchedulingService/internal/api/handlers/check_slot_capacity"
	createSlotHandler "github.com/m04kA/YSM-SchedulingService/internal/api/handlers/create_slot"
	deactivateSlotHandler "github.com/m04kA/YSM-SchedulingService/internal/api/handlers/deactivate_slot"
	getDayAllocationsHandler "github.com/m04kA/YSM-SchedulingService/internal/api/handlers/get_day_allocations"
	getSlotAllocationHandler "github.com/m04kA/YSM-SchedulingService/internal/api/handlers/get_slot_allocation"
	getSlotOccupancyHandler "github.com/m04kA/YSM-SchedulingService/internal/api/handlers/get_slot_occupancy"
	getSlotsHandler "github.com/m04kA/YSM-SchedulingService/internal/api/handlers/get_slots"
	updateSlotCapacityHandler "github.com/m04kA/YSM-SchedulingService/internal/api/handlers/update_slot_capacity"
	"github.com/m04kA/YSM-SchedulingService/internal/api/middleware"
	"github.com/m04kA/YSM-SchedulingService/internal/config"
	allocationRepo "github.com/m04kA/YSM-SchedulingService/internal/infra/storage/allocation"
	slotRepo "github.com/m04kA/YSM-SchedulingService/internal/infra/storage/slot"
	subscriptionRepo "github.com/m04kA/YSM-SchedulingService/internal/infra/storage/subscription"
	trialRepo "github.com/m04kA/YSM-SchedulingService/internal/infra/storage/trial"
	planCatalogClient "github.com/m04kA/YSM-SchedulingService/internal/integrations/plancatalog"
	sessionLogClient "github.com/m04kA/YSM-SchedulingService/internal/integrations/sessionlog"
	allocationsService "github.com/m04kA/YSM-SchedulingService/internal/service/allocations"
	slotsService "github.com/m04kA/YSM-SchedulingService/internal/service/slots"
	allocatePlanUC "github.com/m04kA/YSM-SchedulingService/internal/usecase/allocate_plan"
	allocatePlanToAllUC "github.com/m04kA/YSM-SchedulingService/internal/usecase/allocate_plan_to_all"
	checkCapacityUC "github.com/m04kA/YSM-SchedulingService/internal/usecase/check_capacity"
	computeOccupancyUC "github.com/m04kA/YSM-SchedulingService/internal/usecase/compute_occupancy"
	"github.com/m04kA/YSM-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/YSM-SchedulingService/pkg/logger"
	"github.com/m04kA/YSM-SchedulingService/pkg/metrics"
	"github.com/m04kA/YSM-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/YSM-SchedulingService/pkg/txmanager"
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

	log.Info("Starting YSM-SchedulingService...")
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

	// Инициализируем интеграционных клиентов
	planClient := planCatalogClient.NewClient(
		cfg.PlanCatalog.URL,
		time.Duration(cfg.PlanCatalog.Timeout)*time.Second,
		log,
	)
	sessionLog := sessionLogClient.NewClient(
		cfg.SessionLog.URL,
		time.Duration(cfg.SessionLog.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (PlanCatalog=%s timeout=%ds, SessionLog=%s timeout=%ds)",
		cfg.PlanCatalog.URL, cfg.PlanCatalog.Timeout, cfg.SessionLog.URL, cfg.SessionLog.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository         *slotRepo.Repository
		subscriptionRepository *subscriptionRepo.Repository
		trialRepository        *trialRepo.Repository
		allocationRepository   *allocationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		slotRepository = slotRepo.NewRepository(wrappedDB)
		subscriptionRepository = subscriptionRepo.NewRepository(wrappedDB)
		trialRepository = trialRepo.NewRepository(wrappedDB)
		allocationRepository = allocationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		slotRepository = slotRepo.NewRepository(db)
		subscriptionRepository = subscriptionRepo.NewRepository(db)
		trialRepository = trialRepo.NewRepository(db)
		allocationRepository = allocationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	slotsSvc := slotsService.NewService(slotRepository, log)
	allocationsSvc := allocationsService.NewService(allocationRepository, log)

	// Инициализируем use cases
	computeOccupancyUseCase := computeOccupancyUC.NewUseCase(
		slotRepository,
		subscriptionRepository,
		trialRepository,
		log,
	)

	checkCapacityUseCase := checkCapacityUC.NewUseCase(
		slotRepository,
		subscriptionRepository,
		log,
	)

	allocatePlanUseCase := allocatePlanUC.NewUseCase(
		allocationRepository,
		slotRepository,
		planClient,
		txMgr,
		log,
	)

	allocatePlanToAllUseCase := allocatePlanToAllUC.NewUseCase(
		allocationRepository,
		slotRepository,
		planClient,
		sessionLog,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getSlots := getSlotsHandler.NewHandler(slotsSvc, log)
	createSlot := createSlotHandler.NewHandler(slotsSvc, log)
	updateSlotCapacity := updateSlotCapacityHandler.NewHandler(slotsSvc, log)
	deactivateSlot := deactivateSlotHandler.NewHandler(slotsSvc, log)
	getSlotOccupancy := getSlotOccupancyHandler.NewHandler(computeOccupancyUseCase, log)
	checkSlotCapacity := checkSlotCapacityHandler.NewHandler(checkCapacityUseCase, log)
	allocatePlan := allocatePlanHandler.NewHandler(allocatePlanUseCase, log)
	allocatePlanBulk := allocatePlanBulkHandler.NewHandler(allocatePlanToAllUseCase, log)
	cancelAllocation := cancelAllocationHandler.NewHandler(allocationsSvc, log)
	getSlotAllocation := getSlotAllocationHandler.NewHandler(allocationsSvc, log)
	getDayAllocations := getDayAllocationsHandler.NewHandler(allocationsSvc, log)

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

	// Список активных слотов
	api.HandleFunc("/slots", getSlots.Handle).Methods(http.MethodGet)

	// Занятость слота на дату
	api.HandleFunc("/slots/{slotId}/occupancy", getSlotOccupancy.Handle).Methods(http.MethodGet)

	// Проверка вместимости для новой подписки
	api.HandleFunc("/slots/{slotId}/capacity-check", checkSlotCapacity.Handle).Methods(http.MethodGet)

	// Назначенный план слота на дату
	api.HandleFunc("/slots/{slotId}/allocation", getSlotAllocation.Handle).Methods(http.MethodGet)

	// Все назначения на дату (страница планирования дня)
	api.HandleFunc("/allocations", getDayAllocations.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Слоты (для администраторов) ---
	// Создание слота
	protected.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)

	// Изменение вместимости слота
	protected.HandleFunc("/slots/{slotId}/capacity", updateSlotCapacity.Handle).Methods(http.MethodPut)

	// Деактивация слота
	protected.HandleFunc("/slots/{slotId}", deactivateSlot.Handle).Methods(http.MethodDelete)

	// --- Назначения планов ---
	// Назначение плана на слот и дату
	protected.HandleFunc("/allocations", allocatePlan.Handle).Methods(http.MethodPost)

	// Массовое назначение плана на все слоты даты
	protected.HandleFunc("/allocations/bulk", allocatePlanBulk.Handle).Methods(http.MethodPost)

	// Отмена назначения
	protected.HandleFunc("/allocations/{allocationId}/cancel", cancelAllocation.Handle).Methods(http.MethodPatch)

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
