package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"petcare-catalog/config"
	"petcare-catalog/models"
	"petcare-catalog/routes"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.ServiceCategory{},
		&models.ServiceType{},
		&models.Service{},
		&models.ServiceVariation{},
	)

	if os.Getenv("SEED_DB") == "true" {
		if err := config.SeedCatalog(config.DB); err != nil {
			log.Printf("Seeding failed: %v", err)
		}
	}
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(config.DB)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
