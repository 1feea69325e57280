package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Ducklowkey/Pizza-Website/initializers"
	"github.com/Ducklowkey/Pizza-Website/models"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const deliveryCharge = 5 // flat delivery fee in dollars, added as its own line item

// Closed set of order statuses accepted by UpdateOrderStatus.
var orderStatuses = []string{
	"Food Processing",
	"Shipping",
	"Out for delivery",
	"Delivered",
	"Completed",
	"Cancelled",
	"Payment Failed",
}

// createCheckoutSession asks Stripe for a hosted-checkout session covering
// the order's line items plus the delivery charge, and returns the redirect
// URL. Amounts go over the wire in cents.
func createCheckoutSession(order models.Order, items []models.OrderItem) (string, error) {
	secretKey := os.Getenv("STRIPE_SECRET_KEY")
	if secretKey == "" {
		return "", fmt.Errorf("stripe secret key is not set")
	}

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:5173"
	}

	apiBase := os.Getenv("STRIPE_API_BASE")
	if apiBase == "" {
		apiBase = "https://api.stripe.com"
	}

	form := url.Values{}
	for i, item := range items {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[price_data][currency]", "usd")
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
		form.Set(prefix+"[price_data][unit_amount]", strconv.Itoa(int(math.Round(item.Price*100))))
		form.Set(prefix+"[quantity]", strconv.Itoa(item.Quantity))
	}
	prefix := fmt.Sprintf("line_items[%d]", len(items))
	form.Set(prefix+"[price_data][currency]", "usd")
	form.Set(prefix+"[price_data][product_data][name]", "Delivery Charge")
	form.Set(prefix+"[price_data][unit_amount]", strconv.Itoa(deliveryCharge*100))
	form.Set(prefix+"[quantity]", "1")

	form.Set("mode", "payment")
	form.Set("success_url", fmt.Sprintf("%s/verify?success=true&orderId=%d", frontendURL, order.ID))
	form.Set("cancel_url", fmt.Sprintf("%s/verify?success=false&orderId=%d", frontendURL, order.ID))

	resp, err := resty.New().SetTimeout(30 * time.Second).
		R().
		SetAuthToken(secretKey).
		SetHeader("Accept", "application/json").
		SetFormDataFromValues(form).
		Post(apiBase + "/v1/checkout/sessions")
	if err != nil {
		return "", err
	}

	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("stripe session request failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var session map[string]any
	if err := json.Unmarshal(resp.Body(), &session); err != nil {
		return "", fmt.Errorf("failed to parse session response: %w", err)
	}

	sessionURL, ok := session["url"].(string)
	if !ok || sessionURL == "" {
		return "", fmt.Errorf("session url not found in response")
	}

	return sessionURL, nil
}

// PlaceOrder creates an order from the caller's cart snapshot. The order
// insert and the cart clear share one transaction. Cash-on-delivery orders
// finish here; card orders additionally get a hosted-checkout redirect URL.
func PlaceOrder(ctx *gin.Context) {
	userId, ok := authedUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Not Authorized. Login Again.")
		return
	}

	var orderInfo struct {
		Items         []models.OrderItem `json:"items" binding:"required"`
		Amount        float64            `json:"amount" binding:"required"`
		Address       models.Address     `json:"address"`
		PaymentMethod string             `json:"paymentMethod"`
	}
	if err := ctx.ShouldBindJSON(&orderInfo); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	paymentMethod := orderInfo.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "stripe"
	}

	order := models.Order{
		UserID:        userId,
		Items:         datatypes.NewJSONType(orderInfo.Items),
		Amount:        orderInfo.Amount,
		Address:       datatypes.NewJSONType(orderInfo.Address),
		Status:        "Food Processing",
		Payment:       false,
		PaymentMethod: paymentMethod,
		Date:          time.Now(),
	}

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		log.Println("Order creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	emptyCart := datatypes.NewJSONType(map[string]int{})
	if err := tx.Model(&models.User{}).Where("id = ?", userId).Update("cart_data", emptyCart).Error; err != nil {
		tx.Rollback()
		log.Println("Cart clear error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		log.Println("Order commit error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if paymentMethod == "cod" {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"success":       true,
			"orderId":       order.ID,
			"paymentMethod": "cod",
		})
		return
	}

	sessionURL, err := createCheckoutSession(order, orderInfo.Items)
	if err != nil {
		log.Println("Stripe error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success":       true,
		"session_url":   sessionURL,
		"paymentMethod": "stripe",
	})
}

// VerifyOrder finalizes the payment outcome reported by the checkout
// redirect. Success marks the order paid; failure removes it.
func VerifyOrder(ctx *gin.Context) {
	var body struct {
		OrderID uint `json:"orderId" binding:"required"`
		// Checkout redirects send success as the string "true"/"false";
		// API clients send a real boolean. Both are accepted.
		Success json.RawMessage `json:"success"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if strings.Trim(string(body.Success), `"`) == "true" {
		result := initializers.DB.Model(&models.Order{}).Where("id = ?", body.OrderID).Update("payment", true)
		if result.Error != nil {
			log.Println("Order verification error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Not Verified")
			return
		}
		if result.RowsAffected == 0 {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "Paid"})
		return
	}

	if result := initializers.DB.Delete(&models.Order{}, body.OrderID); result.Error != nil {
		log.Println("Order delete error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Not Verified")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": false, "message": "Not Paid"})
}

// ListOrders returns every order for the admin panel.
func ListOrders(ctx *gin.Context) {
	var orders []models.Order
	if result := initializers.DB.Order("date desc").Find(&orders); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": orders})
}

// UserOrders returns the caller's orders.
func UserOrders(ctx *gin.Context) {
	userId, ok := authedUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Not Authorized. Login Again.")
		return
	}

	var orders []models.Order
	if result := initializers.DB.Where("user_id = ?", userId).Order("date desc").Find(&orders); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": orders})
}

// UpdateOrderStatus overwrites the status string. Any member of the closed
// status set is accepted from any current state.
func UpdateOrderStatus(ctx *gin.Context) {
	var body struct {
		OrderID uint   `json:"orderId" binding:"required"`
		Status  string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	status := ""
	for _, known := range orderStatuses {
		if strings.EqualFold(known, body.Status) {
			status = known
			break
		}
	}
	if status == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown order status")
		return
	}

	result := initializers.DB.Model(&models.Order{}).Where("id = ?", body.OrderID).Update("status", status)
	if result.Error != nil {
		log.Println("Status update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "Status Updated"})
}

// GetOrder returns a single order.
func GetOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var order models.Order
	if result := initializers.DB.First(&order, orderId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println("Database error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": order})
}
