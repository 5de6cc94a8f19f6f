package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"qsights-service/internal/app/config"
	"qsights-service/internal/app/delivery/http/middlewares"
	"qsights-service/internal/app/delivery/http/routers"
	"qsights-service/internal/app/drivers/database"
	"qsights-service/internal/app/drivers/logger"
	"qsights-service/internal/app/drivers/messaging"
	"qsights-service/internal/app/drivers/storage"
	"qsights-service/internal/app/services/core/logics"
	"qsights-service/internal/app/services/core/questionnaires"
	"qsights-service/internal/app/services/core/sessions"
	"qsights-service/internal/app/services/shared/eventbus"
	"qsights-service/internal/app/services/shared/redis"
	"qsights-service/internal/app/services/shared/snapshots"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	snapshotStorage := snapshots.NewMinioSnapshotStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName, bootstrap.Logger)

	eventPublisher, err := eventbus.NewService(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		logrus.Fatalf("Failed to initialize event publisher: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Questionnaire
	questionnaireMongoRepository := questionnaires.NewQuestionnaireMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	questionnaireUsecase := questionnaires.NewQuestionnaireUsecase(questionnaireMongoRepository, snapshotStorage, eventPublisher)
	questionnaireController := questionnaires.NewQuestionnaireController(bootstrap.Logger, questionnaireUsecase)

	// Branching logic
	logicUsecase := logics.NewLogicUsecase(questionnaireMongoRepository)
	logicController := logics.NewLogicController(bootstrap.Logger, logicUsecase)

	// Respondent sessions
	sessionUsecase := sessions.NewSessionUsecase(questionnaireMongoRepository, redisRepository, bootstrap.InternalConfig)
	sessionController := sessions.NewSessionController(bootstrap.Logger, sessionUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, questionnaireController, logicController, sessionController)
}
