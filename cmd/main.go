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

	acceptServiceHandler "github.com/m04kA/cappadocia-tours/internal/api/handlers/accept_service"
	cartsHandler "github.com/m04kA/cappadocia-tours/internal/api/handlers/carts"
	catalogHandler "github.com/m04kA/cappadocia-tours/internal/api/handlers/catalog"
	createBookingHandler "github.com/m04kA/cappadocia-tours/internal/api/handlers/create_booking"
	describePackageHandler "github.com/m04kA/cappadocia-tours/internal/api/handlers/describe_package"
	packagesHandler "github.com/m04kA/cappadocia-tours/internal/api/handlers/packages"
	predictPackagesHandler "github.com/m04kA/cappadocia-tours/internal/api/handlers/predict_packages"
	weatherHandler "github.com/m04kA/cappadocia-tours/internal/api/handlers/weather"
	"github.com/m04kA/cappadocia-tours/internal/api/middleware"
	"github.com/m04kA/cappadocia-tours/internal/config"
	"github.com/m04kA/cappadocia-tours/internal/infra/cache"
	hotelRepo "github.com/m04kA/cappadocia-tours/internal/infra/storage/hotel"
	"github.com/m04kA/cappadocia-tours/internal/infra/storage/images"
	packageRepo "github.com/m04kA/cappadocia-tours/internal/infra/storage/packages"
	serviceRepo "github.com/m04kA/cappadocia-tours/internal/infra/storage/service"
	"github.com/m04kA/cappadocia-tours/internal/integrations/llm"
	"github.com/m04kA/cappadocia-tours/internal/integrations/predictor"
	weatherClient "github.com/m04kA/cappadocia-tours/internal/integrations/weather"
	"github.com/m04kA/cappadocia-tours/internal/service/cart"
	catalogService "github.com/m04kA/cappadocia-tours/internal/service/catalog"
	"github.com/m04kA/cappadocia-tours/internal/service/history"
	packagesService "github.com/m04kA/cappadocia-tours/internal/service/packages"
	"github.com/m04kA/cappadocia-tours/internal/service/recommendation"
	weatherService "github.com/m04kA/cappadocia-tours/internal/service/weather"
	acceptServiceUC "github.com/m04kA/cappadocia-tours/internal/usecase/accept_service"
	createBookingUC "github.com/m04kA/cappadocia-tours/internal/usecase/create_booking"
	describePackageUC "github.com/m04kA/cappadocia-tours/internal/usecase/describe_package"
	predictPackagesUC "github.com/m04kA/cappadocia-tours/internal/usecase/predict_packages"
	"github.com/m04kA/cappadocia-tours/pkg/dbmetrics"
	"github.com/m04kA/cappadocia-tours/pkg/logger"
	"github.com/m04kA/cappadocia-tours/pkg/metrics"
	"github.com/m04kA/cappadocia-tours/pkg/txmanager"
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

	log.Info("Starting cappadocia-tours...")
	log.Info("Configuration loaded from config.toml (accept_policy=%s)", cfg.Booking.AcceptPolicy)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Инициализируем метрики (если включены). nil *Metrics безопасен для всех вызовов
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
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	hotelRepository := hotelRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	packageRepository := packageRepo.NewRepository(wrappedDB)

	// Кэш прогнозов погоды (опционально)
	var weatherCache weatherService.Cache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cache.Options{
			Addr:     cfg.Redis.Addr,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn("Redis unavailable, weather cache disabled: %v", err)
		} else {
			defer redisClient.Close()
			weatherCache = cache.NewWeatherCache(redisClient, time.Duration(cfg.Weather.CacheTTL)*time.Second)
			log.Info("Weather cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Weather.CacheTTL)
		}
	}

	// Хранилище изображений услуг (опционально)
	var imageStore catalogService.ImageStore
	if cfg.Images.Enabled {
		store, err := images.NewStore(ctx, images.Options{
			Endpoint:      cfg.Images.Endpoint,
			Region:        cfg.Images.Region,
			Bucket:        cfg.Images.Bucket,
			AccessKey:     cfg.Images.AccessKey,
			SecretKey:     cfg.Images.SecretKey,
			PublicBaseURL: cfg.Images.PublicBaseURL,
		})
		if err != nil {
			log.Fatal("Failed to initialize image store: %v", err)
		}
		imageStore = store
		log.Info("Image store enabled (bucket=%s)", cfg.Images.Bucket)
	}

	// Инициализируем интеграционных клиентов
	predictorClient := predictor.NewClient(
		cfg.Predictor.URL,
		time.Duration(cfg.Predictor.Timeout)*time.Second,
		log,
	)
	weatherAPI := weatherClient.NewClient(
		cfg.Weather.URL,
		cfg.Weather.APIKey,
		cfg.Weather.Lang,
		time.Duration(cfg.Weather.Timeout)*time.Second,
		log,
	)
	llmClient := llm.NewClient(llm.Options{
		APIKey:            cfg.LLM.APIKey,
		BaseURL:           cfg.LLM.BaseURL,
		Model:             cfg.LLM.Model,
		Timeout:           time.Duration(cfg.LLM.Timeout) * time.Second,
		RequestsPerSecond: cfg.LLM.RequestsPerSecond,
		Burst:             cfg.LLM.Burst,
	}, log)
	if !llmClient.Enabled() {
		log.Warn("LLM api key is not set, package descriptions will use the fallback text")
	}
	log.Info("Integration clients initialized (Predictor=%s timeout=%ds, Weather timeout=%ds, LLM model=%s)",
		cfg.Predictor.URL, cfg.Predictor.Timeout, cfg.Weather.Timeout, cfg.LLM.Model)

	// Инициализируем сервисы
	joiner := recommendation.NewJoiner(recommendation.NewRandomSource(time.Now().UnixNano()), log)
	cartStore := cart.NewStore(cart.Pricing{
		TaxRate:            cfg.Pricing.TaxRate,
		BundleDiscountRate: cfg.Pricing.BundleDiscountRate,
	}, time.Duration(cfg.Cart.IdleTTL)*time.Second)
	cartSvc := cart.NewService(cartStore, serviceRepository, log)
	historyBuilder := history.NewBuilder(packageRepository, serviceRepository, log)
	catalogSvc := catalogService.NewService(hotelRepository, serviceRepository, packageRepository, imageStore, log)
	packagesSvc := packagesService.NewService(packageRepository, log)
	weatherSvc := weatherService.NewService(weatherAPI, weatherCache, metricsCollector, cfg.Weather.DefaultCity, log)

	go cartStore.RunSweeper(ctx, time.Duration(cfg.Cart.SweepInterval)*time.Second, log)

	// Инициализируем use cases
	predictPackagesUseCase := predictPackagesUC.NewUseCase(
		historyBuilder,
		predictorClient,
		serviceRepository,
		joiner,
		metricsCollector,
		cfg.Predictor.GroupTokenQuote,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		packageRepository,
		hotelRepository,
		serviceRepository,
		cfg.Predictor.GroupTokenQuote,
		log,
	)
	acceptServiceUseCase := acceptServiceUC.NewUseCase(
		packageRepository,
		serviceRepository,
		txMgr,
		acceptServiceUC.Policy(cfg.Booking.AcceptPolicy),
		log,
	)
	describePackageUseCase := describePackageUC.NewUseCase(
		llmClient,
		weatherSvc,
		cartSvc,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	predictPackages := predictPackagesHandler.NewHandler(predictPackagesUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	acceptService := acceptServiceHandler.NewHandler(acceptServiceUseCase, log)
	describePackage := describePackageHandler.NewHandler(describePackageUseCase, log)
	carts := cartsHandler.NewHandler(cartSvc, log)
	catalog := catalogHandler.NewHandler(catalogSvc, int64(cfg.Images.MaxSizeMB)<<20, log)
	packages := packagesHandler.NewHandler(packagesSvc, log)
	weather := weatherHandler.NewHandler(weatherSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))
	r.Use(middleware.AccessLog(log))

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

	// --- Рекомендации ---
	api.HandleFunc("/predictions", predictPackages.Handle).Methods(http.MethodPost)
	api.HandleFunc("/packages/describe", describePackage.Describe).Methods(http.MethodPost)
	api.HandleFunc("/gpt", describePackage.Complete).Methods(http.MethodPost)
	api.HandleFunc("/weather", weather.Handle).Methods(http.MethodGet)

	// --- Каталог ---
	api.HandleFunc("/services", catalog.ListServices).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// --- Корзина ---
	api.HandleFunc("/carts", carts.Create).Methods(http.MethodPost)
	api.HandleFunc("/carts/{cartId}", carts.Get).Methods(http.MethodGet)
	api.HandleFunc("/carts/{cartId}", carts.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/carts/{cartId}/items", carts.AddItem).Methods(http.MethodPost)
	api.HandleFunc("/carts/{cartId}/items/{itemId}", carts.RemoveItem).Methods(http.MethodDelete)
	api.HandleFunc("/carts/{cartId}/items", carts.Clear).Methods(http.MethodDelete)
	api.HandleFunc("/carts/{cartId}/bundle", carts.SetBundle).Methods(http.MethodPut)
	api.HandleFunc("/carts/{cartId}/bundle", carts.ClearBundle).Methods(http.MethodDelete)
	api.HandleFunc("/carts/{cartId}/checkout", carts.Checkout).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют JWT персонала)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth([]byte(cfg.Auth.JWTSecret), log, middleware.RoleStaff, middleware.RoleAdmin))

	// --- Бронирования ---
	admin.HandleFunc("/packages", packages.List).Methods(http.MethodGet)
	admin.HandleFunc("/packages/{packageId}", packages.Get).Methods(http.MethodGet)
	admin.HandleFunc("/packages/{packageId}", packages.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/packages/{packageId}/accept", acceptService.Handle).Methods(http.MethodPost)

	// --- Каталог ---
	admin.HandleFunc("/hotels", catalog.ListHotels).Methods(http.MethodGet)
	admin.HandleFunc("/hotels/{hotelId}", catalog.GetHotel).Methods(http.MethodGet)
	admin.HandleFunc("/services", catalog.CreateService).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}/capacity", catalog.UpdateCapacity).Methods(http.MethodPatch)
	admin.HandleFunc("/services/{serviceId}", catalog.DeleteService).Methods(http.MethodDelete)
	admin.HandleFunc("/services/{serviceId}/image", catalog.UploadImage).Methods(http.MethodPost)
	admin.HandleFunc("/stats", catalog.Stats).Methods(http.MethodGet)

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
	<-ctx.Done()

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
