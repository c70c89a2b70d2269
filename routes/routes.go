package routes

import (
	"github.com/pr-poehali-dev/sochi-tour-guide-app/controllers"
	"github.com/pr-poehali-dev/sochi-tour-guide-app/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter создаёт gin.Engine, регистрирует все маршруты и возвращает роутер
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())

	// CORS middleware ДО роутов
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "https://sochi-guide.poehali.dev"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	userController := controllers.NewUserController()
	userProfileController := controllers.NewUserProfileController()
	favoriteController := controllers.NewFavoriteController()
	bookingController := controllers.NewBookingController()
	searchHistoryController := controllers.NewSearchHistoryController()

	r.POST("/auth/register", userController.Register)
	r.POST("/auth/login", userController.Login)
	r.POST("/auth/refresh", userController.Refresh)
	r.POST("/auth/switch-user", userController.SwitchUser)
	r.GET("/auth/google", userController.GoogleLogin)
	r.GET("/auth/google/callback", userController.GoogleCallback)

	userGroup := r.Group("/user", middleware.JWTAuthMiddleware())
	{
		userGroup.GET("/profile", userProfileController.GetProfile)
		userGroup.POST("/update-profile", userProfileController.UpdateProfile)
		userGroup.POST("/logout", userProfileController.Logout)

		userGroup.POST("/favorites/toggle", favoriteController.Toggle)
		userGroup.GET("/favorites", favoriteController.List)
		userGroup.GET("/favorites/check/:kind/:id", favoriteController.Check)

		userGroup.GET("/bookings", bookingController.List)

		userGroup.POST("/search-history", searchHistoryController.Save)
		userGroup.GET("/search-history", searchHistoryController.List)
	}

	// Каталог (без обязательной авторизации)
	SetupCatalogRoutes(r)

	// Бронирования (токен опционален)
	SetupBookingRoutes(r, bookingController)

	return r
}
