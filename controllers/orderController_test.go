package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ducklowkey/Pizza-Website/initializers"
	"github.com/Ducklowkey/Pizza-Website/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func createTestUser(t *testing.T, cart map[string]int) models.User {
	t.Helper()
	user := models.User{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "hashed",
		CartData: datatypes.NewJSONType(cart),
	}
	require.NoError(t, initializers.DB.Create(&user).Error)
	return user
}

func createTestOrder(t *testing.T, userId uint) models.Order {
	t.Helper()
	order := models.Order{
		UserID: userId,
		Items: datatypes.NewJSONType([]models.OrderItem{
			{ItemID: 1, Name: "Margherita", Price: 12.5, Quantity: 2},
		}),
		Amount:        30,
		Address:       datatypes.NewJSONType(models.Address{City: "Rome"}),
		Status:        "Food Processing",
		PaymentMethod: "stripe",
		Date:          time.Now(),
	}
	require.NoError(t, initializers.DB.Create(&order).Error)
	return order
}

func TestPlaceOrderCOD(t *testing.T) {
	setupTest(t)
	user := createTestUser(t, map[string]int{"1": 2})

	body := map[string]any{
		"items": []map[string]any{
			{"itemId": 1, "name": "Margherita", "price": 12.5, "quantity": 2},
		},
		"amount":        30,
		"address":       map[string]any{"firstName": "Ann", "city": "Rome"},
		"paymentMethod": "cod",
	}
	ctx, w := newJSONContext(t, http.MethodPost, "/api/order/place", body)
	ctx.Set("userId", user.ID)

	PlaceOrder(ctx)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "cod", resp["paymentMethod"])
	require.NotNil(t, resp["orderId"])

	// The cart is cleared the instant the order exists.
	var reloaded models.User
	require.NoError(t, initializers.DB.First(&reloaded, user.ID).Error)
	assert.Empty(t, reloaded.CartData.Data())

	var order models.Order
	require.NoError(t, initializers.DB.Where("user_id = ?", user.ID).First(&order).Error)
	assert.False(t, order.Payment)
	assert.Equal(t, "cod", order.PaymentMethod)
	assert.Equal(t, "Food Processing", order.Status)

	// Items are value snapshots, not joins.
	items := order.Items.Data()
	require.Len(t, items, 1)
	assert.Equal(t, "Margherita", items[0].Name)
	assert.Equal(t, 12.5, items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Rome", order.Address.Data().City)
}

func TestPlaceOrderCardReturnsRedirectURL(t *testing.T) {
	setupTest(t)
	stripe := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		assert.Equal(t, "payment", r.FormValue("mode"))
		// One line item per cart entry plus the delivery charge, in cents.
		assert.Equal(t, "Margherita", r.FormValue("line_items[0][price_data][product_data][name]"))
		assert.Equal(t, "1250", r.FormValue("line_items[0][price_data][unit_amount]"))
		assert.Equal(t, "Delivery Charge", r.FormValue("line_items[1][price_data][product_data][name]"))
		assert.Equal(t, "500", r.FormValue("line_items[1][price_data][unit_amount]"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"url":"https://checkout.stripe.example/pay/cs_test_123"}`)
	}))
	defer stripe.Close()
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_API_BASE", stripe.URL)

	user := createTestUser(t, map[string]int{"1": 1})
	body := map[string]any{
		"items": []map[string]any{
			{"itemId": 1, "name": "Margherita", "price": 12.5, "quantity": 1},
		},
		"amount":  17.5,
		"address": map[string]any{"firstName": "Ann", "city": "Rome"},
	}
	ctx, w := newJSONContext(t, http.MethodPost, "/api/order/place", body)
	ctx.Set("userId", user.ID)

	PlaceOrder(ctx)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody(t, w)
	assert.Equal(t, "stripe", resp["paymentMethod"])
	assert.Equal(t, "https://checkout.stripe.example/pay/cs_test_123", resp["session_url"])

	var reloaded models.User
	require.NoError(t, initializers.DB.First(&reloaded, user.ID).Error)
	assert.Empty(t, reloaded.CartData.Data())

	var order models.Order
	require.NoError(t, initializers.DB.Where("user_id = ?", user.ID).First(&order).Error)
	assert.False(t, order.Payment)
	assert.Equal(t, "stripe", order.PaymentMethod)
}

func TestPlaceOrderCardSessionFailureKeepsOrder(t *testing.T) {
	setupTest(t)
	t.Setenv("STRIPE_SECRET_KEY", "")
	user := createTestUser(t, map[string]int{"1": 2})

	body := map[string]any{
		"items": []map[string]any{
			{"itemId": 1, "name": "Margherita", "price": 12.5, "quantity": 2},
		},
		"amount":  30,
		"address": map[string]any{"city": "Rome"},
	}
	ctx, w := newJSONContext(t, http.MethodPost, "/api/order/place", body)
	ctx.Set("userId", user.ID)

	PlaceOrder(ctx)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	// Session creation failed after commit: the unpaid order survives and
	// the cart is already gone.
	var order models.Order
	require.NoError(t, initializers.DB.Where("user_id = ?", user.ID).First(&order).Error)
	assert.False(t, order.Payment)
	assert.Equal(t, "stripe", order.PaymentMethod)

	var reloaded models.User
	require.NoError(t, initializers.DB.First(&reloaded, user.ID).Error)
	assert.Empty(t, reloaded.CartData.Data())
}

func TestPlaceOrderRequiresAuth(t *testing.T) {
	setupTest(t)

	ctx, w := newJSONContext(t, http.MethodPost, "/api/order/place", map[string]any{"amount": 10})
	PlaceOrder(ctx)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyOrderSuccess(t *testing.T) {
	setupTest(t)
	user := createTestUser(t, nil)
	order := createTestOrder(t, user.ID)

	ctx, w := newJSONContext(t, http.MethodPost, "/api/order/verify", map[string]any{
		"orderId": order.ID,
		"success": "true",
	})
	VerifyOrder(ctx)
	require.Equal(t, http.StatusOK, w.Code)

	var verified models.Order
	require.NoError(t, initializers.DB.First(&verified, order.ID).Error)
	assert.True(t, verified.Payment)
}

func TestVerifyOrderFailureRemovesOrder(t *testing.T) {
	setupTest(t)
	user := createTestUser(t, nil)
	order := createTestOrder(t, user.ID)

	ctx, w := newJSONContext(t, http.MethodPost, "/api/order/verify", map[string]any{
		"orderId": order.ID,
		"success": "false",
	})
	VerifyOrder(ctx)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody(t, w)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Not Paid", resp["message"])

	err := initializers.DB.First(&models.Order{}, order.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	listCtx, listW := newJSONContext(t, http.MethodGet, "/api/order/list", nil)
	ListOrders(listCtx)
	require.Equal(t, http.StatusOK, listW.Code)
	listResp := decodeBody(t, listW)
	assert.Empty(t, listResp["data"])
}

func TestVerifyOrderAcceptsBooleanSuccess(t *testing.T) {
	setupTest(t)
	user := createTestUser(t, nil)
	first := createTestOrder(t, user.ID)
	second := createTestOrder(t, user.ID)

	ctx, w := newJSONContext(t, http.MethodPost, "/api/order/verify", map[string]any{
		"orderId": first.ID,
		"success": true,
	})
	VerifyOrder(ctx)
	require.Equal(t, http.StatusOK, w.Code)

	var verified models.Order
	require.NoError(t, initializers.DB.First(&verified, first.ID).Error)
	assert.True(t, verified.Payment)

	ctx2, w2 := newJSONContext(t, http.MethodPost, "/api/order/verify", map[string]any{
		"orderId": second.ID,
		"success": false,
	})
	VerifyOrder(ctx2)
	require.Equal(t, http.StatusOK, w2.Code)

	err := initializers.DB.First(&models.Order{}, second.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUserOrdersFiltersByOwner(t *testing.T) {
	setupTest(t)
	ann := createTestUser(t, nil)
	bob := models.User{Name: "Bob", Email: "bob@example.com", Password: "hashed"}
	require.NoError(t, initializers.DB.Create(&bob).Error)

	createTestOrder(t, ann.ID)
	createTestOrder(t, ann.ID)
	createTestOrder(t, bob.ID)

	ctx, w := newJSONContext(t, http.MethodPost, "/api/order/userorders", nil)
	ctx.Set("userId", ann.ID)
	UserOrders(ctx)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody(t, w)
	orders := resp["data"].([]any)
	assert.Len(t, orders, 2)
}

func TestUpdateOrderStatus(t *testing.T) {
	setupTest(t)
	user := createTestUser(t, nil)
	order := createTestOrder(t, user.ID)

	ctx, w := newJSONContext(t, http.MethodPost, "/api/order/status", map[string]any{
		"orderId": order.ID,
		"status":  "out for delivery",
	})
	UpdateOrderStatus(ctx)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Order
	require.NoError(t, initializers.DB.First(&updated, order.ID).Error)
	assert.Equal(t, "Out for delivery", updated.Status)
}

func TestUpdateOrderStatusRejectsUnknown(t *testing.T) {
	setupTest(t)
	user := createTestUser(t, nil)
	order := createTestOrder(t, user.ID)

	ctx, w := newJSONContext(t, http.MethodPost, "/api/order/status", map[string]any{
		"orderId": order.ID,
		"status":  "Teleported",
	})
	UpdateOrderStatus(ctx)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var unchanged models.Order
	require.NoError(t, initializers.DB.First(&unchanged, order.ID).Error)
	assert.Equal(t, "Food Processing", unchanged.Status)
}

func TestUpdateOrderStatusMissingOrder(t *testing.T) {
	setupTest(t)

	ctx, w := newJSONContext(t, http.MethodPost, "/api/order/status", map[string]any{
		"orderId": 99,
		"status":  "Completed",
	})
	UpdateOrderStatus(ctx)
	require.Equal(t, http.StatusNotFound, w.Code)
}
