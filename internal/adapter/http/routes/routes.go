package routes

import (
	"context"
	"os"

	_ "autofixpro/docs" // This will be auto-generated
	"autofixpro/internal/adapter/http/handlers"
	"autofixpro/internal/adapter/http/middleware"
	repository2 "autofixpro/internal/adapter/persistence/repository"
	"autofixpro/internal/infrastructure/database"
	infranotification "autofixpro/internal/infrastructure/notification"
	"autofixpro/internal/notification"
	"autofixpro/internal/realtime"
	"autofixpro/internal/usecase"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := getenvDefault("PORT", "8080")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewServiceOrderDynamoRepository(ddb)
	technicianRepo := repository2.NewTechnicianDynamoRepository(ddb)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	snapshotRepo := repository2.NewStatusSnapshotDynamoRepository(ddb)

	awsCfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	smsProvider := infranotification.NewSNSProvider(sns.NewFromConfig(awsCfg))
	emailSender := infranotification.NewLogEmailSender()
	dispatcher := notification.NewDispatcher(emailSender, smsProvider, smsProvider, os.Getenv("DEFAULT_COUNTRY_CODE"))

	hub := realtime.NewHub()
	go hub.Run()

	tracker := usecase.NewStatusTracker(snapshotRepo)
	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, vehicleRepo, technicianRepo, tracker, dispatcher, hub)
	technicianUseCase := usecase.NewTechnicianUseCase(technicianRepo, orderRepo)
	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo)

	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	technicianHandler := handlers.NewTechnicianHandler(technicianUseCase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	publicStatusHandler := handlers.NewPublicStatusHandler(orderUseCase)
	wsHandler := handlers.NewWSHandler(hub)

	v1 := router.Group("/v1")
	v1.Use(middleware.Identity())
	addPingRoutes(v1)
	addWorkshopRoutes(v1, orderHandler, technicianHandler, vehicleHandler, publicStatusHandler, wsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
