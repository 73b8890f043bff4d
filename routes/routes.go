package routes

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"petcare-catalog/config"
	"petcare-catalog/controllers"
	"petcare-catalog/repository"
	"petcare-catalog/services"
	"petcare-catalog/utils"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	categoryRepo := repository.NewCategoryRepository(db)
	typeRepo := repository.NewTypeRepository(db)
	serviceRepo := repository.NewServiceRepository(db)

	moderation := services.NewModerationService(typeRepo)
	moderation.StartScheduler()

	categoryController := controllers.NewCategoryController(
		services.NewCategoryService(categoryRepo))
	typeController := controllers.NewTypeController(
		services.NewTypeService(typeRepo, categoryRepo, moderation))
	serviceController := controllers.NewServiceController(
		services.NewCatalogService(serviceRepo, typeRepo))
	healthController := controllers.NewHealthController(db)

	r.GET("/health", healthController.CheckHealth)

	r.Use(utils.GatewayAuthMiddleware())

	// Category routes
	categories := r.Group("/service-categories")
	{
		categories.GET("", categoryController.ListCategories)
		categories.GET("/with-types", categoryController.ListCategoriesWithTypes)
		categories.GET("/slug/:slug", categoryController.GetCategoryBySlug)
		categories.GET("/:id", categoryController.GetCategory)
		categories.POST("", utils.AdminOnly(), categoryController.CreateCategory)
		categories.PUT("/:id", utils.AdminOnly(), categoryController.UpdateCategory)
		categories.DELETE("/:id", utils.AdminOnly(), categoryController.DeleteCategory)
	}

	// Type routes
	types := r.Group("/service-types")
	{
		types.GET("", typeController.ListTypes)
		types.GET("/all", utils.AdminOnly(), typeController.ListAllTypes)
		types.GET("/pending", utils.AdminOnly(), typeController.ListPendingTypes)
		types.GET("/slug/:slug", typeController.GetTypeBySlug)
		types.GET("/:id", typeController.GetType)
		types.POST("", utils.AdminOnly(), typeController.CreateType)
		types.POST("/suggest", typeController.SuggestType)
		types.PUT("/:id/approve", utils.AdminOnly(), typeController.ApproveType)
		types.PUT("/:id/reject", utils.AdminOnly(), typeController.RejectType)
		types.PUT("/:id", utils.AdminOnly(), typeController.UpdateType)
		types.DELETE("/:id", utils.AdminOnly(), typeController.DeleteType)
	}

	// Service routes
	manageServices := utils.Permissions([]string{"services.manage"}, "COMPANY")
	svc := r.Group("/services")
	{
		svc.GET("", serviceController.ListServices)
		svc.GET("/:id", serviceController.GetService)
		svc.POST("", manageServices, serviceController.CreateService)
		svc.PUT("/:id", manageServices, serviceController.UpdateService)
		svc.DELETE("/:id", manageServices, serviceController.DeleteService)
	}

	r.GET("/organizations/:id/services", serviceController.ListOrganizationServices)
	r.GET("/branches/:id/services", serviceController.ListBranchServices)

	return r
}
