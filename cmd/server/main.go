package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"mangal/internal/config"
	"mangal/internal/handler"
	"mangal/internal/repository"
	"mangal/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const msgRouteNotFound = "Маршрут API не найден"

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Print version info
	log.Printf("Мангал Силы API")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.EffectiveGinMode())

	// Initialize database connection
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	repo, err := repository.NewPostgresRepository(ctx, cfg.GetPostgreSQLDSN(), repository.Options{
		MaxConnections:     cfg.PostgreSQL.MaxConnections,
		MaxIdleConnections: cfg.PostgreSQL.MaxIdleConnections,
		ConnectAttempts:    cfg.PostgreSQL.ConnectAttempts,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	log.Println("✅ Connected to PostgreSQL database")

	if err := repo.Migrate(ctx); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("✅ Database schema is up to date")

	if cfg.PostgreSQL.SeedDemoData {
		seeded, err := repo.SeedDemoData(ctx)
		if err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		if seeded {
			log.Println("🌱 Demo catalog, leads and portfolio seeded")
		}
	}

	// Initialize services
	ranker := service.NewRanker(
		cfg.Ranking.WeightSpaceType,
		cfg.Ranking.WeightStyle,
		cfg.Ranking.WeightProfile,
	)
	catalogService := service.NewCatalogService(repo)
	intakeService := service.NewIntakeService(repo)
	imageService := service.NewImageService(repo, cfg.Upload.MaxBytes)
	projectService := service.NewProjectService(repo)
	statsService := service.NewStatsService(repo)
	configuratorService := service.NewConfiguratorService(
		repo,
		ranker,
		cfg.Configurator.SimilarProjects,
		cfg.Configurator.PriceNote,
	)

	// fail fast on a broken quiz definition
	if _, err := configuratorService.Steps(); err != nil {
		log.Fatalf("Failed to load configurator steps: %v", err)
	}

	log.Println("✅ Services initialized")

	if !cfg.AdminAuthEnabled() {
		log.Println("⚠️  ADMIN_PASSWORD_HASH is not set - admin API is open")
	}

	// Setup Gin router
	router := gin.New()
	router.Use(handler.RequestLogger(cfg.Logging.Format, cfg.Logging.Level), gin.Recovery())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.AllowedOrigins) == 1 && cfg.Server.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	}
	corsConfig.AllowMethods = cfg.Server.AllowedMethods
	corsConfig.AllowHeaders = cfg.Server.AllowedHeaders
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := repo.Ping(pingCtx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"service":    "mangal-api",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	handler.RegisterRoutes(router, handler.Handlers{
		Catalog:      handler.NewCatalogHandler(catalogService, cfg.Catalog.PublicInStockOnly),
		Intake:       handler.NewIntakeHandler(intakeService),
		Images:       handler.NewImageHandler(imageService, cfg.Upload.MaxBytes),
		Configurator: handler.NewConfiguratorHandler(configuratorService),
		Projects:     handler.NewProjectHandler(projectService),
		Stats:        handler.NewStatsHandler(statsService),
	}, handler.AdminAuth(cfg.Admin.Username, cfg.Admin.PasswordHash))

	// Serve static files (frontend)
	// This function is implemented in embed.go (production) or static_dev.go (development)
	setupStaticFiles(router)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API: http://localhost:%d/api/v1", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()

	log.Println("🛑 Shutting down server...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️  Forced shutdown: %v", err)
	}
	log.Println("✅ Server stopped")
}

func isAPIPath(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}
