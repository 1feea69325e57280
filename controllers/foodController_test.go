package controllers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/Ducklowkey/Pizza-Website/initializers"
	"github.com/Ducklowkey/Pizza-Website/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestFood(t *testing.T, name string, price float64) models.Food {
	t.Helper()
	food := models.Food{
		Name:        name,
		Description: "fresh from the oven",
		Price:       price,
		Category:    "Pizza",
		Image:       "placeholder.png",
	}
	require.NoError(t, initializers.DB.Create(&food).Error)
	return food
}

func TestListFood(t *testing.T) {
	setupTest(t)
	createTestFood(t, "Margherita", 12.5)
	createTestFood(t, "Diavola", 14)

	ctx, w := newJSONContext(t, http.MethodGet, "/api/food/list", nil)
	ListFood(ctx)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody(t, w)
	assert.Len(t, resp["data"].([]any), 2)
}

func TestGetFood(t *testing.T) {
	setupTest(t)
	food := createTestFood(t, "Margherita", 12.5)

	ctx, w := newJSONContext(t, http.MethodGet, "/api/food/1", nil)
	ctx.Params = gin.Params{{Key: "id", Value: "1"}}
	GetFood(ctx)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody(t, w)
	data := resp["data"].(map[string]any)
	assert.Equal(t, food.Name, data["name"])
	assert.Equal(t, food.Price, data["price"])
}

func TestGetFoodNotFound(t *testing.T) {
	setupTest(t)

	ctx, w := newJSONContext(t, http.MethodGet, "/api/food/99", nil)
	ctx.Params = gin.Params{{Key: "id", Value: "99"}}
	GetFood(ctx)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["success"])
}

func TestUpdateFoodFields(t *testing.T) {
	setupTest(t)
	food := createTestFood(t, "Margherita", 12.5)

	form := url.Values{}
	form.Set("id", "1")
	form.Set("price", "13.5")
	form.Set("description", "now with buffalo mozzarella")
	ctx, w := newFormContext(t, "/api/food/update", form)
	UpdateFood(ctx)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Food
	require.NoError(t, initializers.DB.First(&reloaded, food.ID).Error)
	assert.Equal(t, 13.5, reloaded.Price)
	assert.Equal(t, "now with buffalo mozzarella", reloaded.Description)
	assert.Equal(t, "Margherita", reloaded.Name)
	assert.Equal(t, "placeholder.png", reloaded.Image)
}
