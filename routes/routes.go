package routes

import (
	"catalog-backend/config"
	"catalog-backend/controllers"
	"catalog-backend/repositories"
	"catalog-backend/services"
	"catalog-backend/utils"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies is everything the HTTP layer needs from main.
type Dependencies struct {
	Config         *config.Config
	Logger         *zap.Logger
	Repos          *repositories.Repositories
	Services       *services.ServiceManager
	ServiceDetails *services.ServiceDetailManager
}

func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.Server.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(config.PerformanceLogger(deps.Logger, deps.Config.Server.SlowRequestThreshold))

	tokens := utils.TokenConfig{
		Secret: deps.Config.Auth.JWTSecret,
		TTL:    deps.Config.Auth.TokenTTL,
	}

	authController := &controllers.AuthController{
		Users:  deps.Repos.Users,
		Tokens: tokens,
		Logger: deps.Logger.Named("auth"),
	}
	serviceController := &controllers.ServiceController{
		Services: deps.Services,
		Details:  deps.ServiceDetails,
	}
	detailController := &controllers.ServiceDetailController{
		Details: deps.ServiceDetails,
	}

	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	api := r.Group("/api")
	api.Use(utils.OptionalAuthMiddleware(tokens.Secret))
	{
		// Service routes
		svc := api.Group("/services")
		{
			svc.POST("", serviceController.CreateService)
			svc.GET("", serviceController.GetServices)
			svc.GET("/uuid/:uuid", serviceController.GetServiceByUUID)
			svc.GET("/slug/:slug", serviceController.GetServiceBySlug)
			svc.GET("/:id", serviceController.GetService)
			svc.GET("/:id/details", serviceController.GetServiceWithDetails)
			svc.GET("/:id/service-details", serviceController.GetServiceDetails)
			svc.PUT("/:id", serviceController.UpdateService)
			svc.DELETE("/:id", serviceController.DeleteService)
		}

		// Service detail routes
		details := api.Group("/service-details")
		{
			details.POST("", detailController.CreateServiceDetail)
			details.GET("/uuid/:uuid", detailController.GetServiceDetailByUUID)
			details.GET("/:id", detailController.GetServiceDetail)
			details.PUT("/:id", detailController.UpdateServiceDetail)
			details.DELETE("/:id", detailController.DeleteServiceDetail)
		}
	}

	return r
}
