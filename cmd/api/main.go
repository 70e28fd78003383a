package main

import (
	_ "jobcard_service/docs"
	"jobcard_service/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Job Card Service API
// @version         1.0
// @description     Showroom service-center job cards (intake, parts/labor charging, payment-reconciled closure) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
