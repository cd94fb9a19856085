package routes

import (
	"log"
	"os"
	"strconv"

	_ "quoteforge/docs" // This will be auto-generated
	"quoteforge/internal/adapter/http/handlers"
	repository2 "quoteforge/internal/adapter/persistence/repository"
	"quoteforge/internal/infrastructure/database"
	"quoteforge/internal/infrastructure/pricing"
	"quoteforge/internal/usecase"
	"quoteforge/internal/usecase/interfaces"

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

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	sessionRepo := repository2.NewSessionMemoryRepository()

	var oracle interfaces.IPricingOracle
	openAIOracle, err := pricing.NewOpenAIPricingOracle(os.Getenv("OPENAI_API_KEY"))
	if err != nil {
		log.Printf("Pricing oracle not configured: %v", err)
	} else {
		oracle = openAIOracle
	}

	wizardUseCase := usecase.NewWizardUseCase(sessionRepo, quoteRepo, oracle)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo)

	wizardHandler := handlers.NewWizardHandler(wizardUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWizardRoutes(v1, wizardHandler)
	addQuoteRoutes(v1, quoteHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
