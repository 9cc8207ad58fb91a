package main

import (
	"go-user-api/app"
)

// @title           User Account API
// @version         1.0
// @description     Minimal user-account service with JWT authentication.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
