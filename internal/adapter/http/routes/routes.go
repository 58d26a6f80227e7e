package routes

import (
	"log"
	"os"
	"strconv"

	_ "retail_console/docs" // This will be auto-generated
	"retail_console/internal/adapter/http/handlers"
	repository2 "retail_console/internal/adapter/persistence/repository"
	"retail_console/internal/infrastructure/database"
	"retail_console/internal/infrastructure/notify"
	"retail_console/internal/infrastructure/payments"
	"retail_console/internal/usecase"
	"retail_console/internal/usecase/interfaces"

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

	engagementRepo := repository2.NewEngagementDynamoRepository(ddb)
	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)

	notifier := notify.NewQueue()

	workflowUseCase := usecase.NewWorkflowUseCase(engagementRepo, customerRepo, notifier)
	profilingUseCase := usecase.NewProfilingUseCase(workflowUseCase, customerRepo)
	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, engagementRepo, workflowUseCase)
	timelineUseCase := usecase.NewTimelineUseCase(quotationRepo, engagementRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewPaymentUseCase(quotationRepo, engagementRepo, paymentGateway)

	engagementHandler := handlers.NewEngagementHandler(workflowUseCase)
	profilingHandler := handlers.NewProfilingHandler(profilingUseCase)
	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	timelineHandler := handlers.NewTimelineHandler(timelineUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addConsoleRoutes(v1, engagementHandler, profilingHandler, quotationHandler, timelineHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
