// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"time"

	"fleet-service/internal/config"
	"fleet-service/internal/db"
	vehicleHandler "fleet-service/internal/handlers/vehicle"
	"fleet-service/internal/middleware"
	"fleet-service/internal/repository/mongodb"
	vehicleUsecase "fleet-service/internal/service/vehicle"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	mongo  *db.Mongo
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- MongoDB -----
	mongoDB, err := db.Connect(s.cfg.MongoURL, s.cfg.DatabaseName, s.cfg.MongoMaxPoolSize, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	s.mongo = mongoDB

	// ----- Repositories -----
	vehicleRepo := mongodb.NewVehicleRepository(mongoDB.Database)

	// Unique indexes on plate, fleet_number and vin must exist before
	// the first request; declaring them is idempotent across boots.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := vehicleRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to ensure vehicle indexes: %w", err)
	}

	// ----- Services (Usecases) -----
	vehicleService := vehicleUsecase.NewVehicleService(vehicleRepo, logger)

	// ----- Handlers -----
	vehicleHandlerInst := vehicleHandler.NewVehicleHandler(vehicleService)

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		VehicleHandler: vehicleHandlerInst,
	}
	SetupRouter(s.engine, handlers)

	// ----- Start HTTP -----
	logger.Info("server running", zap.String("addr", s.cfg.HTTPAddr))
	return s.engine.Run(s.cfg.HTTPAddr)
}

// Shutdown releases process resources, currently the Mongo client.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.mongo == nil {
		return nil
	}
	return s.mongo.Close(ctx)
}
