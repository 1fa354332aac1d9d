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

	cancelTaskHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/cancel_task"
	createTaskHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/create_task"
	getScheduleHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/get_schedule"
	getTaskHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/get_task"
	listDriverTasksHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/list_driver_tasks"
	matchResourcesHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/match_resources"
	setResourceActiveHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/set_resource_active"
	updateSlotsHandler "github.com/m04kA/SMC-FleetService/internal/api/handlers/update_slots"
	"github.com/m04kA/SMC-FleetService/internal/api/middleware"
	"github.com/m04kA/SMC-FleetService/internal/config"
	resourceRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/resource"
	scheduleRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/schedule"
	taskRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/task"
	resourcesService "github.com/m04kA/SMC-FleetService/internal/service/resources"
	schedulesService "github.com/m04kA/SMC-FleetService/internal/service/schedules"
	tasksService "github.com/m04kA/SMC-FleetService/internal/service/tasks"
	createTaskUC "github.com/m04kA/SMC-FleetService/internal/usecase/create_task"
	matchResourcesUC "github.com/m04kA/SMC-FleetService/internal/usecase/match_resources"
	updateSlotsUC "github.com/m04kA/SMC-FleetService/internal/usecase/update_slots"
	"github.com/m04kA/SMC-FleetService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FleetService/pkg/logger"
	"github.com/m04kA/SMC-FleetService/pkg/metrics"
	"github.com/m04kA/SMC-FleetService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-FleetService/pkg/txmanager"
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

	log.Info("Starting SMC-FleetService...")
	log.Info("Configuration loaded from config.toml")

	// Дефолтная политика расписаний (рабочие часы)
	policy, err := cfg.Scheduling.Policy()
	if err != nil {
		log.Fatal("Invalid scheduling config: %v", err)
	}
	log.Info("Default schedule policy: business hours indices [%d, %d)",
		policy.BusinessStartIndex, policy.BusinessEndIndex)

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
		resourceRepository *resourceRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		taskRepository     *taskRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		resourceRepository = resourceRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		taskRepository = taskRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		resourceRepository = resourceRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		taskRepository = taskRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	taskSvc := tasksService.NewService(taskRepository, log)
	scheduleSvc := schedulesService.NewService(scheduleRepository, policy, log)
	resourceSvc := resourcesService.NewService(resourceRepository, log)

	// Инициализируем use cases
	matchResourcesUseCase := matchResourcesUC.NewUseCase(
		resourceRepository,
		scheduleRepository,
		policy,
		log,
	)
	updateSlotsUseCase := updateSlotsUC.NewUseCase(
		scheduleRepository,
		txMgr,
		policy,
		log,
	)
	createTaskUseCase := createTaskUC.NewUseCase(
		resourceRepository,
		scheduleRepository,
		taskRepository,
		txMgr,
		policy,
		log,
	)

	// Инициализируем handlers
	matchResources := matchResourcesHandler.NewHandler(matchResourcesUseCase, log)
	createTask := createTaskHandler.NewHandler(createTaskUseCase, log)
	updateSlots := updateSlotsHandler.NewHandler(updateSlotsUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	getTask := getTaskHandler.NewHandler(taskSvc, log)
	cancelTask := cancelTaskHandler.NewHandler(taskSvc, log)
	listDriverTasks := listDriverTasksHandler.NewHandler(taskSvc, log)
	setResourceActive := setResourceActiveHandler.NewHandler(resourceSvc, log)

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

	// Подбор ресурсов, доступных на временное окно
	api.HandleFunc("/resources/available", matchResources.Handle).Methods(http.MethodGet)

	// Расписание ресурса на дату
	api.HandleFunc("/resources/{resourceId}/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Задачи ---
	// Создание задачи (коммит назначения)
	protected.HandleFunc("/tasks", createTask.Handle).Methods(http.MethodPost)

	// Получение задачи по ID
	protected.HandleFunc("/tasks/{taskId}", getTask.Handle).Methods(http.MethodGet)

	// Отмена задачи
	protected.HandleFunc("/tasks/{taskId}/cancel", cancelTask.Handle).Methods(http.MethodPatch)

	// Задачи водителя
	protected.HandleFunc("/drivers/{driverId}/tasks", listDriverTasks.Handle).Methods(http.MethodGet)

	// --- Управление ресурсами ---
	// Пакетное изменение слотов расписания
	protected.HandleFunc("/resources/{resourceId}/schedule/slots", updateSlots.Handle).Methods(http.MethodPatch)

	// Активация/деактивация ресурса
	protected.HandleFunc("/resources/{resourceId}/active", setResourceActive.Handle).Methods(http.MethodPatch)

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
