package routes

import (
	catalogctl "github.com/pr-poehali-dev/sochi-tour-guide-app/controllers/catalog"
	"github.com/pr-poehali-dev/sochi-tour-guide-app/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCatalogRoutes(r *gin.Engine) {
	catalogController := catalogctl.NewCatalogController()

	catalogGroup := r.Group("/catalog")
	{
		catalogGroup.GET("/attractions", catalogController.GetAttractions)
		catalogGroup.GET("/hotels", catalogController.GetHotels)
		// Рекомендации персонализируются при наличии токена
		catalogGroup.GET("/recommendations", middleware.ParserJWTMiddleware(), catalogController.GetRecommendations)
		catalogGroup.GET("/map-points", catalogController.GetMapPoints)
	}
}
