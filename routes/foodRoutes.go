package routes

import (
	"github.com/Ducklowkey/Pizza-Website/controllers"
	"github.com/gin-gonic/gin"
)

func FoodRoutes(server *gin.Engine) {
	food := server.Group("/api/food")
	{
		food.POST("/add", controllers.AddFood)
		food.GET("/list", controllers.ListFood)
		food.GET("/:id", controllers.GetFood)
		food.POST("/update", controllers.UpdateFood)
		food.POST("/remove", controllers.RemoveFood)
	}
}
