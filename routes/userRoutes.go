package routes

import (
	"github.com/Ducklowkey/Pizza-Website/controllers"
	"github.com/Ducklowkey/Pizza-Website/middlewares"
	"github.com/gin-gonic/gin"
)

func UserRoutes(server *gin.Engine) {
	user := server.Group("/api/user")
	{
		user.POST("/register", controllers.RegisterUser)
		user.POST("/login", controllers.LoginUser)
		user.GET("/list", controllers.GetUsers)
		user.POST("/userdata", middlewares.RequireAuth(), controllers.GetUserData)
		user.POST("/add", controllers.AddCustomer)
		user.POST("/update", controllers.UpdateUser)
	}
}
