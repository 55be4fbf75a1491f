package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"neuronutrition-service/internal/app/config"
	"neuronutrition-service/internal/app/delivery/http/middlewares"
	"neuronutrition-service/internal/app/delivery/http/routers"
	"neuronutrition-service/internal/app/drivers/database"
	"neuronutrition-service/internal/app/drivers/logger"
	"neuronutrition-service/internal/app/drivers/messaging"
	"neuronutrition-service/internal/app/drivers/storage"
	"neuronutrition-service/internal/app/services/core/assignments"
	"neuronutrition-service/internal/app/services/core/charts"
	"neuronutrition-service/internal/app/services/core/notifications"
	"neuronutrition-service/internal/app/services/core/patients"
	"neuronutrition-service/internal/app/services/core/scoring"
	sharedmessaging "neuronutrition-service/internal/app/services/shared/messaging"
	sharedredis "neuronutrition-service/internal/app/services/shared/redis"
	sharedstorage "neuronutrition-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()
	processLogger := logger.NewLogrusLogger(internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Minio:          minioClient,
		ZapLogger:      zapLogger,
		ProcessLogger:  processLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		processLogger.Infof("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			processLogger.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	processLogger.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		processLogger.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := mongoDB.Disconnect(shutdownCtx); err != nil {
		processLogger.Warnf("Failed to disconnect mongo client: %v", err)
	}
	if err := rabbitMQConnection.Close(); err != nil {
		processLogger.Warnf("Failed to close rabbitMQ connection: %v", err)
	}

	processLogger.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Shared infrastructure
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	storageService := sharedstorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	queuePublisher, err := sharedmessaging.NewRabbitMQPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.App.RabbitMQAssignmentQueue,
	)
	if err != nil {
		bootstrap.ProcessLogger.Fatalf("Failed to initialize rabbitMQ publisher: %v", err)
	}

	// Middlewares
	httpMiddlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, bootstrap.InternalConfig)

	// Scoring
	scoringUsecase := scoring.NewScoringUsecase(bootstrap.ZapLogger, redisRepository, bootstrap.InternalConfig)
	scoringController := scoring.NewScoringController(bootstrap.ZapLogger, scoringUsecase)

	// Charts
	chartUsecase := charts.NewChartUsecase(bootstrap.ZapLogger, scoringUsecase, storageService, bootstrap.InternalConfig)
	chartController := charts.NewChartController(bootstrap.ZapLogger, chartUsecase)

	// Notifications
	notificationRepository := notifications.NewNotificationMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	notificationService := notifications.NewNotificationService(
		bootstrap.ZapLogger,
		notificationRepository,
		queuePublisher,
		bootstrap.InternalConfig.App.RabbitMQAssignmentQueue,
	)

	// Patients
	patientMongoRepository := patients.NewPatientMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	// Assignments
	assignmentMongoRepository := assignments.NewAssignmentMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	assignmentUsecase := assignments.NewAssignmentUsecase(
		bootstrap.ZapLogger,
		assignmentMongoRepository,
		patientMongoRepository,
		notificationService,
	)
	assignmentController := assignments.NewAssignmentController(bootstrap.ZapLogger, assignmentUsecase)

	patientUsecase := patients.NewPatientUsecase(bootstrap.ZapLogger, patientMongoRepository, assignmentUsecase)
	patientController := patients.NewPatientController(bootstrap.ZapLogger, patientUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		httpMiddlewares,
		scoringController,
		chartController,
		assignmentController,
		patientController,
	)
}
