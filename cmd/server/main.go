package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appidentity "github.com/autoexpert/backend/internal/application/identity"
	appmission "github.com/autoexpert/backend/internal/application/mission"
	appregistry "github.com/autoexpert/backend/internal/application/registry"
	appreport "github.com/autoexpert/backend/internal/application/report"
	"github.com/autoexpert/backend/internal/infrastructure/auth"
	"github.com/autoexpert/backend/internal/infrastructure/config"
	"github.com/autoexpert/backend/internal/infrastructure/logger"
	"github.com/autoexpert/backend/internal/infrastructure/persistence"
	"github.com/autoexpert/backend/internal/infrastructure/storage"
	"github.com/autoexpert/backend/internal/interfaces/http/handler"
	"github.com/autoexpert/backend/internal/interfaces/http/middleware"
	"github.com/autoexpert/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting expertise backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database ready", zap.String("driver", cfg.Database.Driver))

	fileStore, err := storage.NewLocalStore(&cfg.Storage)
	if err != nil {
		log.Fatal("Failed to initialize file store", zap.Error(err))
	}

	// Repositories
	missionRepo := persistence.NewGormMissionRepository(db.DB)
	damageLineRepo := persistence.NewGormDamageLineRepository(db.DB)
	laborEntryRepo := persistence.NewGormLaborEntryRepository(db.DB)
	attachmentRepo := persistence.NewGormAttachmentRepository(db.DB)
	insurerRepo := persistence.NewGormInsurerRepository(db.DB)
	agencyRepo := persistence.NewGormAgencyRepository(db.DB)
	brandRepo := persistence.NewGormBrandRepository(db.DB)
	garageRepo := persistence.NewGormGarageRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Application services
	tokens := auth.NewTokenManager(cfg.JWT)
	authService := appidentity.NewAuthService(userRepo, tokens, log)
	userService := appidentity.NewUserService(userRepo, log)
	missionService := appmission.NewService(missionRepo, insurerRepo, agencyRepo, brandRepo, garageRepo, userRepo, log)
	damageService := appmission.NewDamageService(missionRepo, damageLineRepo, log)
	laborService := appmission.NewLaborService(missionRepo, laborEntryRepo, db, log)
	evidenceService := appmission.NewEvidenceService(missionRepo, attachmentRepo, db, log)
	summaryService := appmission.NewSummaryService(missionRepo, damageLineRepo, laborEntryRepo)
	registryService := appregistry.NewService(insurerRepo, agencyRepo, brandRepo, garageRepo, missionRepo, log)
	reportService := appreport.NewService(missionRepo, damageLineRepo, laborEntryRepo, attachmentRepo)

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	missionHandler := handler.NewMissionHandler(missionService)
	damageHandler := handler.NewDamageHandler(damageService)
	laborHandler := handler.NewLaborHandler(laborService)
	evidenceHandler := handler.NewEvidenceHandler(evidenceService)
	summaryHandler := handler.NewSummaryHandler(summaryService)
	registryHandler := handler.NewRegistryHandler(registryService)
	reportHandler := handler.NewReportHandler(reportService)
	uploadHandler := handler.NewUploadHandler(fileStore)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID(log))
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORS(cfg.HTTP.CORSAllowOrigins))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint, outside API versioning
	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.UseAuth(middleware.Authenticate(tokens))
	r.Public(router.RegistrarFunc(authHandler.RegisterPublicRoutes))
	r.Protected(
		authHandler,
		userHandler,
		missionHandler,
		damageHandler,
		laborHandler,
		evidenceHandler,
		summaryHandler,
		registryHandler,
		reportHandler,
		uploadHandler,
	)
	r.Setup()

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports process and database liveness
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
