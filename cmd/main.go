// cmd/main.go
package main

import (
	"github.com/Sifundo-B/BankApi/app"

	_ "github.com/Sifundo-B/BankApi/docs"
)

// @title           Bank Back-Office API
// @version         1.0
// @description     Back-office banking API: account lookup, withdrawals with business-rule validation, audit trail, and JWT auth.

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
