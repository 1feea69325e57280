package routes

import (
	"github.com/Ducklowkey/Pizza-Website/controllers"
	"github.com/Ducklowkey/Pizza-Website/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	order := server.Group("/api/order")
	{
		order.POST("/place", middlewares.RequireAuth(), controllers.PlaceOrder)
		order.GET("/list", controllers.ListOrders)
		order.POST("/userorders", middlewares.RequireAuth(), controllers.UserOrders)
		order.POST("/status", controllers.UpdateOrderStatus)
		order.POST("/verify", controllers.VerifyOrder)
		order.GET("/:id", controllers.GetOrder)
	}
}
