package main

import (
	"os"

	"dishlist/backend/internal/cli"

	// Swagger imports
	_ "dishlist/backend/docs" // This is important for swag to find the generated docs
)

// @title           Dishlist API
// @version         1.0
// @description     Restaurant catalog with friend-scoped visibility.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
