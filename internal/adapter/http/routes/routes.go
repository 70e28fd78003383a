package routes

import (
	"log"
	"os"
	"strconv"

	_ "jobcard_service/docs" // swag-generated swagger registration
	"jobcard_service/internal/adapter/http/handlers"
	repository "jobcard_service/internal/adapter/persistence/repository"
	"jobcard_service/internal/infrastructure/catalog"
	"jobcard_service/internal/infrastructure/database"
	"jobcard_service/internal/usecase"
	"jobcard_service/internal/usecase/interfaces"

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

	jobCardRepo := repository.NewJobCardDynamoRepository(ddb)
	ticketCounter := repository.NewTicketCounterDynamoRepository(ddb)
	paymentLedger := repository.NewPaymentLedgerDynamoRepository(ddb)

	var inventoryCatalog interfaces.IInventoryCatalog
	catalogClient, err := catalog.NewInventoryCatalogClient(os.Getenv("INVENTORY_SERVICE_URL"))
	if err != nil {
		log.Printf("Inventory catalog client not configured: %v", err)
	} else {
		inventoryCatalog = catalogClient
	}

	jobCardUseCase := usecase.NewJobCardUseCase(jobCardRepo, ticketCounter, inventoryCatalog)
	closureUseCase := usecase.NewJobClosureUseCase(jobCardRepo, paymentLedger)

	jobCardHandler := handlers.NewJobCardHandler(jobCardUseCase)
	closureHandler := handlers.NewJobClosureHandler(closureUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addJobCardRoutes(v1, jobCardHandler, closureHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
