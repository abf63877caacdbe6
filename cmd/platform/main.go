package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	appAnalytics "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/analytics"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/detection"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/scoring"
	appTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/securitytest"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/variant"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/config"
	handlers "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/handlers/http"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/auth/jwt"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/backends"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/backends/factory"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/database"
	infraLogger "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/logger"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/metrics"
	_ "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/migrations"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/queue"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/repository"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/seed"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/middleware"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/server"
)

func main() {
	ctx := context.Background()
	serverType := getServerType()
	envFile := os.Getenv("ENV_FILE")

	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("./config"); err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	metrics.Initialize()

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	runQueue, err := queue.NewRunQueue(logger, cfg.Redis)
	if err != nil {
		logger.Fatalf("failed to initialize run queue: %v", err)
	}
	defer runQueue.Close()

	// repository
	scenarioRepository := repository.NewScenarioRepository(db.DB)
	testRepository := repository.NewSecurityTestRepository(db.DB)
	analyticsRepository := repository.NewAnalyticsRepository(db.DB)

	if err := seed.AttackScenarios(ctx, logger, scenarioRepository); err != nil {
		logger.Fatalf("failed to seed attack scenarios: %v", err)
	}

	// backends
	httpClient := &fasthttp.Client{
		ReadTimeout:  time.Duration(cfg.Backends.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Backends.TimeoutSeconds) * time.Second,
	}
	locator := factory.NewBackendLocator(&cfg.Backends, httpClient)
	generator := backends.NewExecutor(
		logger,
		time.Duration(cfg.Backends.TimeoutSeconds)*time.Second,
		cfg.Backends.MaxRetries,
	)

	// service
	variantGenerator := variant.NewGenerator()
	leakageDetector := detection.NewDetector()
	riskScorer := scoring.NewScorer()

	testCreator := appTest.NewCreator(logger, testRepository, scenarioRepository)
	variantExpander := appTest.NewVariantExpander(logger, testRepository, variantGenerator)
	runEvaluator := appTest.NewRunEvaluator(logger, testRepository, leakageDetector, riskScorer)
	runExecutor := appTest.NewRunExecutor(logger, testRepository, locator, generator, runEvaluator)
	statusUpdater := appTest.NewStatusUpdater(logger, testRepository)
	testScheduler := appTest.NewScheduler(logger, testRepository, runQueue)
	testCanceller := appTest.NewCanceller(logger, testRepository)
	testDeleter := appTest.NewDeleter(logger, testRepository)

	dashboardGetter := appAnalytics.NewDashboardGetter(logger, analyticsRepository)
	testReportGetter := appAnalytics.NewTestReportGetter(logger, analyticsRepository, testRepository)
	vendorComparisonGetter := appAnalytics.NewVendorComparisonGetter(logger, analyticsRepository)

	if serverType == "worker" {
		worker := queue.NewWorker(logger, runQueue, runExecutor, statusUpdater, cfg.Execution.MaxConcurrentRuns)
		runWorker(ctx, logger, worker)
		return
	}

	jwtManager := jwt.NewJwtManager(&cfg.Server)

	middlewareTransport := middleware.Transport{
		AuthMiddleware: middleware.NewAdminAuthMiddleware(logger, jwtManager),
	}

	handlerTransport := handlers.HandlerTransport{
		CreateTestHandler:       handlers.NewCreateTestHandler(logger, testCreator, variantExpander, cfg.Execution),
		ListTestsHandler:        handlers.NewListTestsHandler(logger, testRepository),
		GetTestHandler:          handlers.NewGetTestHandler(logger, testRepository),
		DeleteTestHandler:       handlers.NewDeleteTestHandler(logger, testDeleter),
		GenerateVariantsHandler: handlers.NewGenerateVariantsHandler(logger, variantExpander, cfg.Execution),
		ExecuteTestHandler:      handlers.NewExecuteTestHandler(logger, testScheduler),
		CancelTestHandler:       handlers.NewCancelTestHandler(logger, testCanceller),
		GetTestStatusHandler:    handlers.NewGetTestStatusHandler(logger, statusUpdater),

		ExecuteVariantHandler:  handlers.NewExecuteVariantHandler(logger, runExecutor, statusUpdater, testRepository),
		EvaluateRunHandler:     handlers.NewEvaluateRunHandler(logger, runEvaluator),
		PreviewVariantsHandler: handlers.NewPreviewVariantsHandler(logger, variantGenerator, cfg.Execution),

		ListScenariosHandler: handlers.NewListScenariosHandler(logger, scenarioRepository),
		ListModelsHandler:    handlers.NewListModelsHandler(),

		DashboardAnalyticsHandler: handlers.NewDashboardAnalyticsHandler(logger, dashboardGetter),
		TestAnalyticsHandler:      handlers.NewTestAnalyticsHandler(logger, testReportGetter),
		VendorComparisonHandler:   handlers.NewVendorComparisonHandler(logger, vendorComparisonGetter),
	}

	srv := server.NewAdminServer(server.AdminServerDI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		Config:              cfg,
		Logger:              logger,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("error shutting down server")
		os.Exit(1)
	}
	logger.Info("server gracefully stopped")
}

func runWorker(ctx context.Context, logger *logrus.Logger, worker *queue.Worker) {
	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		logger.Info("shutting down worker...")
		cancel()
	}()

	if err := worker.Run(workerCtx); err != nil && err != context.Canceled {
		logger.WithError(err).Error("worker stopped with error")
		os.Exit(1)
	}
	logger.Info("worker gracefully stopped")
}

func getServerType() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return "admin"
}
