package routes

import (
	"github.com/Ducklowkey/Pizza-Website/controllers"
	"github.com/gin-gonic/gin"
)

func MessageRoutes(server *gin.Engine) {
	message := server.Group("/api/message")
	{
		message.POST("/add", controllers.AddMessage)
		message.GET("/list", controllers.ListMessages)
		message.GET("/user/list", controllers.GetUserMessages)
		message.GET("/user/conversation", controllers.GetUserConversation)
		message.GET("/counts", controllers.GetMessageCounts)
		message.GET("/unanswered/count", controllers.GetUnansweredCount)
		message.POST("/updateread", controllers.UpdateReadStatus)
		message.POST("/updatestarred", controllers.UpdateStarredStatus)
		message.POST("/updatelabel", controllers.UpdateMessageLabel)
		message.POST("/delete", controllers.DeleteMessage)
		message.POST("/delete/multiple", controllers.DeleteMultipleMessages)
		message.POST("/reply", controllers.AddReply)
		// Param route goes last to avoid shadowing the static paths.
		message.GET("/:id", controllers.GetMessage)
	}
}
