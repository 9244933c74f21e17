package routes

import (
	"os"
	"strings"

	"barbearia-backend/config"
	"barbearia-backend/controllers"
	"barbearia-backend/storage"
	"barbearia-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func allowedOrigins() []string {
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		return strings.Split(env, ",")
	}
	return []string{"http://localhost:3000"}
}

// SetupRouter wires every endpoint. Reads on the marketing resources are
// public; everything that writes sits behind the auth middleware.
func SetupRouter(db *gorm.DB, files storage.ObjectStore, sender controllers.MessageSender) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	guard := utils.AuthMiddleware()

	authController := controllers.NewAuthController(db)
	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.GET("/me", guard, authController.Me)
	}

	api := r.Group("/api")
	{
		controllers.NewServiceResource(db, files).Register(api.Group("/services"), guard)
		controllers.NewProductResource(db, files).Register(api.Group("/products"), guard)
		controllers.NewPromotionResource(db, files).Register(api.Group("/promotions"), guard)
		controllers.NewGalleryResource(db, files).Register(api.Group("/gallery"), guard)
		controllers.NewTeamResource(db, files).Register(api.Group("/team"), guard)

		sectionController := controllers.NewSectionController(db)
		sections := api.Group("/sections")
		{
			sections.GET("", sectionController.List)
			sections.POST("", guard, sectionController.Seed)
			sections.PUT("/:id", guard, sectionController.Update)
		}

		userController := controllers.NewUserController(db)
		users := api.Group("/auth/users", guard)
		{
			users.POST("", userController.Create)
			users.GET("", userController.List)
			users.PUT("/:id", userController.Update)
			users.DELETE("/:id", userController.Delete)
		}

		uploadController := controllers.NewUploadController(files)
		api.POST("/uploads", guard, uploadController.Upload)
		api.POST("/uploadthing/delete", guard, uploadController.Delete)

		contactController := controllers.NewContactController(sender)
		api.POST("/contact", contactController.Send)
	}

	return r
}
