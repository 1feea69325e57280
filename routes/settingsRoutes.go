package routes

import (
	"github.com/Ducklowkey/Pizza-Website/controllers"
	"github.com/gin-gonic/gin"
)

func SettingsRoutes(server *gin.Engine) {
	settings := server.Group("/api/settings")
	{
		settings.GET("", controllers.GetSettings)
		settings.POST("/update", controllers.UpdateSettings)
	}
}
