package routes

import (
	"github.com/Ducklowkey/Pizza-Website/controllers"
	"github.com/gin-gonic/gin"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
