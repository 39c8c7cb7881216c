package main

import (
	"net/http"
	"time"

	"transaction-reports/internal/config"
	"transaction-reports/internal/handlers"
	"transaction-reports/internal/middleware"
	"transaction-reports/internal/report"
	"transaction-reports/internal/repositories"
	"transaction-reports/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// serverDeps carries everything the HTTP server is built from
type serverDeps struct {
	cfg        *config.Config
	log        *zap.SugaredLogger
	repo       repositories.TransactionRepositoryInterface
	metrics    services.MetricsRecorderInterface
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer
	limiter    *middleware.RateLimiter
	now        func() time.Time
}

func newServer(deps serverDeps) *echo.Echo {
	cfg := deps.cfg

	service := services.NewTransactionService(
		deps.repo,
		services.NewQueryEngine(),
		services.NewReportAssembler(deps.now),
		report.NewPDFRenderer(),
		deps.metrics,
		deps.log,
		cfg.Report.Template,
	)

	transactionHandler := handlers.NewTransactionHandler(service, handlers.TransactionHandlerConfig{
		DefaultClientID:   cfg.Auth.DefaultClientID,
		DefaultClientName: cfg.Report.DefaultClientName,
		ReportFilename:    cfg.Report.Filename,
		Logger:            deps.log,
	})
	healthHandler := handlers.NewHealthCheckHandler(deps.repo)
	docsHandler := handlers.NewDocsHandler()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(deps.log, deps.registerer)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.AccessLog(deps.log))
	e.Use(middleware.PanicRecovery(deps.log))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{echo.HeaderContentDisposition, middleware.TraceIDHeader},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/docs/openapi.json", docsHandler.ServeOpenAPI)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api/transaction")
	if deps.limiter != nil {
		api.Use(deps.limiter.Middleware())
	}
	api.Use(middleware.ClientAuth(services.NewTokenService(&cfg.Auth), middleware.ClientAuthConfig{
		Enabled:         cfg.Auth.Enabled,
		DefaultClientID: cfg.Auth.DefaultClientID,
	}))
	api.GET("/get-transactions", transactionHandler.GetTransactions)
	api.GET("/transaction-report", transactionHandler.TransactionReport)

	return e
}

// cacheOutcome forwards candidate cache lookups to the metrics recorder
func cacheOutcome(metrics services.MetricsRecorderInterface) func(bool) {
	return func(hit bool) {
		result := "miss"
		if hit {
			result = "hit"
		}
		metrics.IncrementCounter(services.MetricCandidateCacheHits, map[string]string{"result": result})
	}
}
