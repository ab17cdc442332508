package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/vivekadapa/Drone-Management-System/internal/config"
	"github.com/vivekadapa/Drone-Management-System/internal/database/postgres"
	"github.com/vivekadapa/Drone-Management-System/internal/database/redis"
	"github.com/vivekadapa/Drone-Management-System/internal/event"
	"github.com/vivekadapa/Drone-Management-System/internal/handlers"
	"github.com/vivekadapa/Drone-Management-System/internal/repository"
	"github.com/vivekadapa/Drone-Management-System/internal/services"
	"github.com/vivekadapa/Drone-Management-System/internal/utils"

	"github.com/gin-gonic/gin"
)

func setupLogging() (*os.File, error) {
	logDir := filepath.Join("/var", "log", "mission_service")
	err := os.MkdirAll(logDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return file, nil
}

func main() {
	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Error setting up logging: %v", err)
	}
	defer logFile.Close()

	cfg := config.New()
	log.Printf("Mission Service starting on port %s", cfg.Port)

	db, err := postgres.ConnectAndCreateDB(cfg.PostgresCfg)
	if err != nil {
		log.Printf("error connecting to database: %s", err)
		// Block until the store is reachable. Repositories capture this
		// handle once, so wiring them around a nil *sqlx.DB would poison
		// every request even after a background reconnect succeeded.
		postgres.RetryConnectOnFailed(30*time.Second, &db, cfg.PostgresCfg)
	}
	if db == nil {
		log.Fatalf("database unavailable after retries")
	}

	// Redis and RabbitMQ are optional: the service degrades to uncached
	// reports and no event stream when either is unreachable.
	var reportCache *services.ReportCache
	redisClient, err := redis.NewRedisClient(cfg.RedisCfg.Host, cfg.RedisCfg.Port, cfg.RedisCfg.Password, cfg.RedisCfg.DB)
	if err != nil {
		log.Printf("redis unavailable, report caching disabled: %s", err)
	} else {
		defer redisClient.Close()
		reportCache = services.NewReportCache(redisClient)
	}

	var publisher *event.MissionPublisher
	mqConn, err := event.NewRabbitMQConnection(cfg.RabbitMQCfg)
	if err != nil {
		log.Printf("rabbitmq unavailable, mission events disabled: %s", err)
	} else {
		defer mqConn.Close()
		publisher = event.NewMissionPublisher(mqConn)
	}

	droneRepo := repository.NewDroneRepository(db)
	missionRepo := repository.NewMissionRepository(db)
	waypointRepo := repository.NewWaypointRepository(db)
	telemetryRepo := repository.NewTelemetryRepository(db)

	droneService := services.NewDroneService(droneRepo)
	missionService := services.NewMissionService(missionRepo, droneRepo, publisher, reportCache)
	waypointService := services.NewWaypointService(waypointRepo, missionRepo)
	telemetryService := services.NewTelemetryService(telemetryRepo, droneRepo)
	monitoringService := services.NewMonitoringService(missionRepo, droneRepo, waypointRepo, telemetryRepo)
	reportService := services.NewReportService(missionRepo, reportCache)

	r := gin.Default()

	handlers.NewDroneHandler(droneService).RegisterRoutes(r)
	handlers.NewMissionHandler(missionService, monitoringService).RegisterRoutes(r)
	handlers.NewWaypointHandler(waypointService).RegisterRoutes(r)
	handlers.NewTelemetryHandler(telemetryService).RegisterRoutes(r)
	handlers.NewReportHandler(reportService).RegisterRoutes(r)

	r.GET("/health", func(c *gin.Context) {
		cacheHealthy := false
		if redisClient != nil {
			cacheHealthy = redisClient.Ping(c.Request.Context()) == nil
		}

		health := map[string]any{
			"database": postgres.DB_Status,
			"cache":    cacheHealthy,
		}
		if publisher != nil {
			health["events"] = publisher.HealthCheck()
		} else {
			health["events"] = false
		}
		c.JSON(http.StatusOK, utils.CreateSuccessResponse(health))
	})

	log.Printf("Starting mission-service on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
