package main

import (
	"fmt"
	"log"
	"os"

	"barbearia-backend/config"
	"barbearia-backend/controllers"
	"barbearia-backend/models"
	"barbearia-backend/routes"
	"barbearia-backend/services"
	"barbearia-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := config.Connect()
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	defer config.Close(db)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Product{},
		&models.Promotion{},
		&models.GalleryImage{},
		&models.TeamMember{},
		&models.SectionVisibility{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := controllers.NewSectionController(db).EnsureSeeded(); err != nil {
		log.Fatalf("Failed to seed sections: %v", err)
	}

	var files storage.ObjectStore
	if s3Store, err := storage.NewS3Store(); err != nil {
		log.Printf("File storage disabled: %v", err)
		files = storage.Unconfigured{}
	} else {
		files = s3Store
	}

	services.NewPromotionSweeper(db).StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(db, files, services.NewContactNotifier())
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
