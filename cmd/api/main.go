package main

import (
	_ "github.com/tukang-design/tukang-api/docs"
	"github.com/tukang-design/tukang-api/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Tukang API
// @version         1.0
// @description     Lead-generation backend (regional quotes, notifications, bookings) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    https://tukang.design
// @contact.email  studio@tukang.design

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin API token.

func main() {
	routes.Run()
}
