package routes

import (
	"log"
	"os"
	"strconv"

	_ "aventura_tours/docs" // This will be auto-generated
	"aventura_tours/internal/adapter/http/handlers"
	repository2 "aventura_tours/internal/adapter/persistence/repository"
	"aventura_tours/internal/domain/finance"
	"aventura_tours/internal/infrastructure/database"
	"aventura_tours/internal/infrastructure/notifications"
	"aventura_tours/internal/infrastructure/payments"
	"aventura_tours/internal/usecase"
	"aventura_tours/internal/usecase/interfaces"
	"aventura_tours/internal/worker"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	installmentRepo := repository2.NewInstallmentDynamoRepository(ddb)
	policyRepo := repository2.NewCancellationPolicyDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	notifier := notifications.NewEmailNotifierFromEnv()

	installmentUseCase := usecase.NewInstallmentUseCase(finance.DefaultConfig(), installmentRepo, paymentGateway, notifier)
	policyUseCase := usecase.NewCancellationPolicyUseCase(policyRepo)

	installmentHandler := handlers.NewInstallmentHandler(installmentUseCase)
	policyHandler := handlers.NewCancellationPolicyHandler(policyUseCase)

	worker.StartScheduler(installmentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTourBillingRoutes(v1, installmentHandler, policyHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
