package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Pizza-Website API.

The following are the endpoints for this API:

USER
- POST "/api/user/register" - Create user account
- POST "/api/user/login" - Access user account
- GET "/api/user/list" - Get all users
- POST "/api/user/userdata" - Get profile for the token owner
- POST "/api/user/add" - Add customer (admin)
- POST "/api/user/update" - Update profile and avatar

FOOD
- POST "/api/food/add" - Add food item with image
- GET "/api/food/list" - Get all food items
- GET "/api/food/{id}" - Get food item by ID
- POST "/api/food/update" - Update food item
- POST "/api/food/remove" - Remove food item

ORDER
- POST "/api/order/place" - Place an order from the cart
- GET "/api/order/list" - Retrieve all orders
- POST "/api/order/userorders" - Get orders for the token owner
- POST "/api/order/status" - Update order status
- POST "/api/order/verify" - Verify payment outcome

MESSAGE
- POST "/api/message/add" - Send a contact message
- GET "/api/message/list" - List messages by folder/search
- GET "/api/message/counts" - Folder counts
- GET "/api/message/unanswered/count" - Unanswered badge count
- GET "/api/message/{id}" - Get message (marks read)
- POST "/api/message/reply" - Reply to a message
- GET "/api/message/user/conversation" - Sender conversation

SETTINGS
- GET "/api/settings" - Get site settings
- POST "/api/settings/update" - Update site settings`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
