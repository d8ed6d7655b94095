package routes

import (
	"os"
	"strconv"

	_ "bengkel_manager/docs" // This will be auto-generated
	"bengkel_manager/internal/adapter/http/handlers"
	"bengkel_manager/internal/adapter/http/middleware"
	repository2 "bengkel_manager/internal/adapter/persistence/repository"
	"bengkel_manager/internal/infrastructure/auth"
	"bengkel_manager/internal/infrastructure/database"
	"bengkel_manager/internal/infrastructure/payments"
	"bengkel_manager/internal/usecase"
	"bengkel_manager/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
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
		logrus.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	log := logrus.StandardLogger()
	ddb := database.ConnectDynamoDB()

	tenantRepo := repository2.NewTenantDynamoRepository(ddb)
	profileRepo := repository2.NewProfileDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	sparepartRepo := repository2.NewSparepartDynamoRepository(ddb)
	orderRepo := repository2.NewServiceOrderDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	costRepo := repository2.NewCostDynamoRepository(ddb)

	tokenService := auth.NewService()

	// Non-cash methods can be charged through Mercado Pago when configured;
	// without a token the gateway stays nil and payments are recorded offline.
	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.WithError(err).Warn("Mercado Pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}

	authUseCase := usecase.NewAuthUseCase(profileRepo, tokenService, log)
	tenantUseCase := usecase.NewTenantUseCase(tenantRepo, log)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo, vehicleRepo)
	sparepartUseCase := usecase.NewSparepartUseCase(sparepartRepo, log)
	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, sparepartRepo, tenantRepo, log)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, orderRepo, paymentGateway, log)
	costUseCase := usecase.NewCostUseCase(costRepo)
	reportUseCase := usecase.NewReportUseCase(orderRepo, paymentRepo, sparepartRepo, costRepo)

	authHandler := handlers.NewAuthHandler(authUseCase)
	tenantHandler := handlers.NewTenantHandler(tenantUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	sparepartHandler := handlers.NewSparepartHandler(sparepartUseCase)
	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	costHandler := handlers.NewCostHandler(costUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkshopRoutes(v1, workshopHandlers{
		auth:       authHandler,
		tenant:     tenantHandler,
		customer:   customerHandler,
		sparepart:  sparepartHandler,
		order:      orderHandler,
		payment:    paymentHandler,
		cost:       costHandler,
		report:     reportHandler,
		authGuard:  middleware.Authenticate(tokenService),
		tenantOnly: middleware.RequireTenant(),
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
