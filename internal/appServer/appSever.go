package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VishalKR1202/ChukGO1/config"
	repository "github.com/VishalKR1202/ChukGO1/internal/database/postgres"
	rediscache "github.com/VishalKR1202/ChukGO1/internal/database/redis"
	"github.com/VishalKR1202/ChukGO1/internal/service"
	"github.com/VishalKR1202/ChukGO1/internal/transport"

	"github.com/VishalKR1202/ChukGO1/pkg/postgres"
	"github.com/VishalKR1202/ChukGO1/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	// Initialize database
	db, err := postgres.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := postgres.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed reference data (idempotent)
	if cfg.App.SeedOnStart {
		if err := repository.SeedReferenceData(db); err != nil {
			logrus.Fatalf("Failed to seed reference data: %v", err)
		}
	}

	// Initialize repositories
	stationRepo := repository.NewStationRepository(db)
	trainRepo := repository.NewTrainRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Station cache is optional; the service runs without it
	var stationCache service.StationCache
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewRedisClient(&cfg.Redis)
		if err != nil {
			logrus.Errorf("Failed to initialize Redis: %v. Continuing without cache...", err)
		} else {
			defer redisClient.Close()
			stationCache = rediscache.NewStationCache(redisClient, cfg.App.StationCacheTTL)
			logrus.Info("Station cache initialized")
		}
	}

	// Initialize services
	estimator := service.NewAvailabilityEstimator()
	trainService := service.NewTrainService(trainRepo, stationRepo, stationCache, estimator)
	bookingService := service.NewBookingService(bookingRepo, trainRepo, stationRepo)

	// Initialize handlers
	stationHandler := transport.NewStationHandler(trainService)
	trainHandler := transport.NewTrainHandler(trainService)
	bookingHandler := transport.NewBookingHandler(bookingService)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(stationHandler, trainHandler, bookingHandler)); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
