package routes

import (
	"github.com/pr-poehali-dev/sochi-tour-guide-app/controllers"
	"github.com/pr-poehali-dev/sochi-tour-guide-app/middleware"

	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(r *gin.Engine, bookingController *controllers.BookingController) {
	bookings := r.Group("/bookings", middleware.ParserJWTMiddleware())
	{
		bookings.POST("", bookingController.Create)
		bookings.POST("/:id/cancel", bookingController.Cancel)
	}
}
