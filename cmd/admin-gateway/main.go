package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/nutvale/admin-gateway/config"
	"github.com/nutvale/admin-gateway/internal/audit"
	auditH "github.com/nutvale/admin-gateway/internal/audit/handler"
	"github.com/nutvale/admin-gateway/internal/cache"
	catH "github.com/nutvale/admin-gateway/internal/catalog/handler"
	catRepoPkg "github.com/nutvale/admin-gateway/internal/catalog/repository"
	catUCPkg "github.com/nutvale/admin-gateway/internal/catalog/usecase"
	mktH "github.com/nutvale/admin-gateway/internal/marketing/handler"
	mktRepoPkg "github.com/nutvale/admin-gateway/internal/marketing/repository"
	mktUCPkg "github.com/nutvale/admin-gateway/internal/marketing/usecase"
	ordH "github.com/nutvale/admin-gateway/internal/orders/handler"
	ordRepoPkg "github.com/nutvale/admin-gateway/internal/orders/repository"
	ordUCPkg "github.com/nutvale/admin-gateway/internal/orders/usecase"
	repH "github.com/nutvale/admin-gateway/internal/reports/handler"
	repUCPkg "github.com/nutvale/admin-gateway/internal/reports/usecase"
	revH "github.com/nutvale/admin-gateway/internal/reviews/handler"
	revRepoPkg "github.com/nutvale/admin-gateway/internal/reviews/repository"
	revUCPkg "github.com/nutvale/admin-gateway/internal/reviews/usecase"
	"github.com/nutvale/admin-gateway/internal/server"
	"github.com/nutvale/admin-gateway/internal/upload"
	uplH "github.com/nutvale/admin-gateway/internal/upload/handler"
	"github.com/nutvale/admin-gateway/internal/upstream"
	"github.com/nutvale/admin-gateway/pkg/logger"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		Level:             cfg.Logger.Level,
		Encoding:          cfg.Logger.Encoding,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
		IsDevelopment:     cfg.Server.AppEnv == "dev",
	}
	appLogger, err := logger.NewZapLogger(logConfig)
	if err != nil {
		panic(err)
	}
	defer appLogger.Sync()

	// 3. Audit store (sqlite). The gateway still runs if it cannot open.
	var auditStore *audit.Store
	if db, err := sqlx.Open("sqlite3", cfg.Audit.DBPath+"?_journal_mode=WAL&_busy_timeout=5000"); err != nil {
		appLogger.Warn("audit database unavailable, mutations will not be recorded", zap.Error(err))
	} else {
		defer db.Close()
		auditStore, err = audit.NewStore(db, appLogger)
		if err != nil {
			appLogger.Warn("audit schema setup failed, mutations will not be recorded", zap.Error(err))
			auditStore = nil
		} else {
			appLogger.Info("audit store ready", zap.String("path", cfg.Audit.DBPath))
		}
	}

	// 4. Cache, with an optional shared redis mirror
	var mirror cache.Mirror
	if cfg.Redis.Addr != "" {
		redisMirror, err := cache.NewRedisMirror(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Admin.CacheTTL, appLogger)
		if err != nil {
			appLogger.Warn("redis unavailable, running with in-process cache only", zap.Error(err))
		} else {
			defer redisMirror.Close()
			mirror = redisMirror
			appLogger.Info("connected to redis cache mirror", zap.String("addr", cfg.Redis.Addr))
		}
	}
	store := cache.NewStore(mirror, appLogger)

	// 5. Upstream client
	client := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.ServiceToken, cfg.Upstream.Timeout, appLogger)
	appLogger.Info("upstream configured", zap.String("base_url", cfg.Upstream.BaseURL))

	// 6. Uploads
	var uploader upload.Uploader
	if cfg.Cloudinary.URL != "" {
		cld, err := upload.NewCloudinaryUploader(cfg.Cloudinary.URL)
		if err != nil {
			appLogger.Warn("cloudinary init failed, image uploads disabled", zap.Error(err))
		} else {
			uploader = cld
		}
	}

	// 7. Repositories
	catRepo := catRepoPkg.NewRESTRepository(client)
	ordRepo := ordRepoPkg.NewRESTRepository(client)
	mktRepo := mktRepoPkg.NewRESTRepository(client)
	revRepo := revRepoPkg.NewRESTRepository(client)

	// 8. UseCases
	catUC := catUCPkg.NewCatalogUseCase(catRepo, store, appLogger)
	ordUC := ordUCPkg.NewOrdersUseCase(ordRepo, store, appLogger)
	mktUC := mktUCPkg.NewMarketingUseCase(mktRepo, store, appLogger)
	revUC := revUCPkg.NewReviewsUseCase(revRepo, store, appLogger)
	repUC := repUCPkg.NewReportsUseCase(catRepo, ordRepo, store, cfg.Admin.LowStockThreshold, appLogger)

	// 9. Routes
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		server.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	catH.NewCatalogHandler(catUC, uploader, cfg.Admin.PageSize, appLogger).Register(mux)
	ordH.NewOrdersHandler(ordUC, cfg.Admin.PageSize).Register(mux)
	mktH.NewMarketingHandler(mktUC, cfg.Admin.PageSize).Register(mux)
	revH.NewReviewsHandler(revUC, cfg.Admin.PageSize).Register(mux)
	repH.NewReportsHandler(repUC).Register(mux)
	uplH.NewUploadHandler(uploader).Register(mux)
	if auditStore != nil {
		auditH.NewAuditHandler(auditStore).Register(mux)
	}

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: server.Middleware(mux, appLogger, auditStore),
	}

	// 10. Serve until signalled
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.Info("admin gateway listening", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	appLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
