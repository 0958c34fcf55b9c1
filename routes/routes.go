package routes

import (
	"time"

	"ticketing-service/controllers"
	"ticketing-service/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.Engine, cc *controllers.CheckoutController, oc *controllers.OrderController, jwtSecret string) {
	events := r.Group("/events")
	events.Use(middleware.AuthMiddleware(jwtSecret))
	events.GET("/:eventId", cc.GetEvent)
	events.POST("/:eventId/checkout", middleware.RateLimitMiddleware(rate.Every(time.Minute/30), 10), cc.PurchaseTicket)
	events.GET("/:eventId/orders", oc.GetEventOrders)

	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware(jwtSecret))
	orders.GET("/", oc.GetMyOrders)
}
