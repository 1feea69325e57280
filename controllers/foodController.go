package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Ducklowkey/Pizza-Website/initializers"
	"github.com/Ducklowkey/Pizza-Website/models"
	"github.com/Ducklowkey/Pizza-Website/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddFood creates a catalog item from a multipart form with an image file.
func AddFood(ctx *gin.Context) {
	price, err := strconv.ParseFloat(ctx.PostForm("price"), 64)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid price")
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Image file is required")
		return
	}

	key, err := utils.UploadImage(file)
	if err != nil {
		log.Println("Image upload error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	food := models.Food{
		Name:        ctx.PostForm("name"),
		Description: ctx.PostForm("description"),
		Price:       price,
		Category:    ctx.PostForm("category"),
		Image:       key,
	}
	if result := initializers.DB.Create(&food); result.Error != nil {
		log.Println("Food creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"success": true, "message": "Food Added"})
}

func ListFood(ctx *gin.Context) {
	var foods []models.Food
	if result := initializers.DB.Find(&foods); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": foods})
}

func GetFood(ctx *gin.Context) {
	foodId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid food ID")
		return
	}

	var food models.Food
	if result := initializers.DB.First(&food, foodId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Food not found")
		} else {
			log.Println("Database error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": food})
}

// UpdateFood updates catalog fields; a new image replaces and deletes the
// old blob first.
func UpdateFood(ctx *gin.Context) {
	foodId, err := strconv.Atoi(ctx.PostForm("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid food ID")
		return
	}

	var food models.Food
	if result := initializers.DB.First(&food, foodId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Food not found")
		} else {
			log.Println("Database error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if name := ctx.PostForm("name"); name != "" {
		food.Name = name
	}
	if description := ctx.PostForm("description"); description != "" {
		food.Description = description
	}
	if priceStr := ctx.PostForm("price"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid price")
			return
		}
		food.Price = price
	}
	if category := ctx.PostForm("category"); category != "" {
		food.Category = category
	}

	if file, err := ctx.FormFile("image"); err == nil {
		if err := utils.DeleteImage(food.Image); err != nil {
			log.Println("Error deleting old image:", err)
		}
		key, err := utils.UploadImage(file)
		if err != nil {
			log.Println("Image upload error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to upload image")
			return
		}
		food.Image = key
	}

	if result := initializers.DB.Save(&food); result.Error != nil {
		log.Println("Food update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "Food Updated", "data": food})
}

// RemoveFood deletes the record and its stored image.
func RemoveFood(ctx *gin.Context) {
	var body struct {
		ID uint `json:"id" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var food models.Food
	if result := initializers.DB.First(&food, body.ID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Food not found")
		} else {
			log.Println("Database error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if err := utils.DeleteImage(food.Image); err != nil {
		log.Println("Error deleting image:", err)
	}

	if result := initializers.DB.Delete(&food); result.Error != nil {
		log.Println("Food delete error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "Food Removed"})
}
