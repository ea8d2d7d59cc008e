package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/idconsole/audit"
	"github.com/dev-mohitbeniwal/idconsole/config"
	"github.com/dev-mohitbeniwal/idconsole/controller"
	"github.com/dev-mohitbeniwal/idconsole/db"
	logger "github.com/dev-mohitbeniwal/idconsole/logging"
	"github.com/dev-mohitbeniwal/idconsole/management"
	"github.com/dev-mohitbeniwal/idconsole/metrics"
	"github.com/dev-mohitbeniwal/idconsole/permission"
	"github.com/dev-mohitbeniwal/idconsole/router"
	"github.com/dev-mohitbeniwal/idconsole/service"
	"github.com/dev-mohitbeniwal/idconsole/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}
	cfg := config.GetConfig()

	// Initialize logger
	if cfg.Log.Level != "" && os.Getenv("LOG_LEVEL") == "" {
		os.Setenv("LOG_LEVEL", cfg.Log.Level)
	}
	logger.InitLogger(cfg.Log.Dir)
	defer logger.Sync()

	if missing := config.MissingAuth0Settings(); len(missing) > 0 {
		logger.Warn("Auth0 Management API is not fully configured; management calls will fail",
			zap.String("missing", strings.Join(missing, ", ")))
	}

	metrics.Register(nil)

	// Initialize Redis
	var tokenCache management.TokenCache = management.NewMemoryTokenCache()
	if cfg.Redis.Enabled {
		if err := db.InitRedis(cfg.Redis); err != nil {
			logger.Fatal("Failed to initialize Redis", zap.Error(err))
		}
		defer db.CloseRedis()
		tokenCache = util.NewCacheService(cfg.Auth0.Domain)
	}
	if cfg.RateLimit.Enabled && !db.Enabled() {
		logger.Warn("Rate limiting needs Redis; requests will not be limited")
	}

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Initialize audit trail
	var auditRepository audit.Repository = audit.NewLogRepository()
	if cfg.Elasticsearch.URL != "" {
		esRepository, err := audit.NewElasticsearchRepository(cfg.Elasticsearch.URL, cfg.Elasticsearch.Index)
		if err != nil {
			logger.Fatal("Failed to initialize Elasticsearch audit repository", zap.Error(err))
		}
		auditRepository = esRepository
	}
	auditService := audit.NewService(auditRepository)

	// Initialize the Management API gateway
	gateway := management.NewGateway(
		management.ConfigFrom(cfg.Auth0),
		management.WithTokenCache(tokenCache),
		management.WithTimeout(cfg.Auth0.RequestTimeout),
	)

	// Initialize services
	services, err := service.InitializeServices(
		gateway,
		auditService,
		util.NewValidationUtil(),
		util.NewNotificationService(),
		eventBus,
	)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	// Initialize controllers
	controllers := controller.InitializeControllers(services)

	// Set up Gin
	gin.SetMode(cfg.Server.Mode)
	resolver := permission.NewResolver(cfg.Auth0.APIAudience, cfg.Auth0.APIScope)
	engine := router.SetupRouter(controllers, resolver, router.Options{
		SessionCookie:     cfg.Session.CookieName,
		RateLimitEnabled:  cfg.RateLimit.Enabled && db.Enabled(),
		RateLimitRequests: cfg.RateLimit.Requests,
		RateLimitDuration: cfg.RateLimit.Per,
	})

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
