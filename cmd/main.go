package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"creatures/internal/config"
	"creatures/internal/database"
	"creatures/internal/handler"
	"creatures/internal/middleware"
	"creatures/internal/monitoring"
	"creatures/internal/repository"
	"creatures/internal/service"
)

// Version du service (à définir lors du build)
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Initialisation du logger
	initLogger()

	logrus.WithFields(logrus.Fields{
		"service":    "creatures",
		"version":    Version,
		"build_time": BuildTime,
		"git_commit": GitCommit,
	}).Info("Starting Creatures Service...")

	// Chargement de la configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatal("Failed to load config: ", err)
	}

	// Connexion à la base de données
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	// Exécution des migrations
	if err := database.RunMigrations(db); err != nil {
		logrus.Fatal("Failed to run migrations: ", err)
	}

	// Initialisation des repositories
	creatureRepo := repository.NewCreatureRepository(db)
	stoneRepo := repository.NewStoneRepository(db)
	battleRepo := repository.NewBattleRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	// Initialisation des services
	feed := service.NewBattleFeed()
	fusionService := service.NewFusionService(cfg, creatureRepo, stoneRepo)
	battleService := service.NewBattleService(cfg, battleRepo, creatureRepo, feed)
	ratingService := service.NewRatingService(cfg, ratingRepo)

	// Initialisation des handlers
	fusionHandler := handler.NewFusionHandler(fusionService)
	creatureHandler := handler.NewCreatureHandler(creatureRepo)
	battleHandler := handler.NewBattleHandler(battleService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	healthHandler := handler.NewHealthHandler(db)
	wsHandler := handler.NewWebSocketHandler(battleService, feed)

	// Configuration du mode Gin
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Configuration des routes
	metrics := monitoring.NewMetrics()
	router := setupRoutes(fusionHandler, creatureHandler, battleHandler, ratingHandler, healthHandler, wsHandler, metrics, cfg)

	// Configuration du serveur HTTP
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Démarrage du serveur en arrière-plan
	go func() {
		logrus.WithFields(logrus.Fields{
			"host": cfg.Server.Host,
			"port": cfg.Server.Port,
			"env":  cfg.Server.Environment,
		}).Info("Creatures Service started successfully")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	// Gestion gracieuse de l'arrêt
	gracefulShutdown(server)
}

// setupRoutes configure toutes les routes du service
func setupRoutes(
	fusionHandler *handler.FusionHandler,
	creatureHandler *handler.CreatureHandler,
	battleHandler *handler.BattleHandler,
	ratingHandler *handler.RatingHandler,
	healthHandler *handler.HealthHandler,
	wsHandler *handler.WebSocketHandler,
	metrics *monitoring.Metrics,
	cfg *config.Config,
) *gin.Engine {
	router := gin.New()

	// Middleware globaux
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(metrics.Middleware())

	// Rate limiting global si configuré
	if cfg.RateLimit.RequestsPerMinute > 0 {
		router.Use(middleware.RateLimit(cfg.RateLimit))
	}

	// Routes de santé et monitoring (sans auth)
	router.GET(cfg.Monitoring.HealthPath, healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)
	router.GET(cfg.Monitoring.MetricsPath, gin.WrapH(metrics.Handler()))

	// Flux temps réel du journal de combat
	router.GET("/ws/battles/:id", wsHandler.StreamBattle)

	// API v1 (authentification JWT requise)
	v1 := router.Group("/api/v1")
	v1.Use(middleware.JWTAuth(cfg.JWT.Secret))
	{
		// Fusion
		fusion := v1.Group("/fusion")
		{
			fusion.POST("", fusionHandler.Fuse)
			if cfg.Fusion.AllowPreview {
				fusion.POST("/preview", fusionHandler.Preview)
			}
		}

		// Créatures
		creatures := v1.Group("/creatures")
		{
			creatures.GET("", creatureHandler.List)
			creatures.POST("/starter", creatureHandler.CreateStarter)
			creatures.GET("/:id", creatureHandler.Get)
		}

		// Combats
		battles := v1.Group("/battles")
		{
			battles.POST("", battleHandler.Create)
			battles.GET("/:id", battleHandler.Get)
			battles.GET("/:id/log", battleHandler.GetLog)
			battles.POST("/:id/action",
				middleware.ActionRateLimit(cfg.Battle.ActionsPerMinute, cfg.Battle.ActionBurstSize),
				battleHandler.SubmitAction)
		}

		// Classements
		ratings := v1.Group("/ratings")
		{
			ratings.GET("", ratingHandler.Leaderboard)
			ratings.GET("/:playerId", ratingHandler.Get)
			ratings.POST("/report", ratingHandler.ReportMatch)
		}
	}

	return router
}

// initLogger initialise le système de logging
func initLogger() {
	if os.Getenv("SERVER_ENVIRONMENT") == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
		logrus.SetLevel(logrus.DebugLevel)
	}

	logrus.SetOutput(os.Stdout)
}

// gracefulShutdown gère l'arrêt gracieux du service
func gracefulShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logrus.Info("Creatures Service is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.Fatal("Server forced to shutdown: ", err)
	}

	logrus.Info("Creatures Service stopped gracefully")
}
