package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Ducklowkey/Pizza-Website/initializers"
	"github.com/Ducklowkey/Pizza-Website/models"
	"github.com/Ducklowkey/Pizza-Website/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func defaultSettings() models.Settings {
	return models.Settings{
		SiteName:       "Pizza Admin",
		Copyright:      "All rights Reserved@Pizza",
		SeoTitle:       "Pizza Admin Dashboard",
		SeoDescription: "Pizza Admin Dashboard",
		SeoKeywords:    "Pizza",
		AdminName:      "Daniel",
	}
}

// loadSettings returns the singleton settings row, creating it with defaults
// on first read.
func loadSettings() (models.Settings, error) {
	var settings models.Settings
	err := initializers.DB.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = defaultSettings()
		err = initializers.DB.Create(&settings).Error
	}
	return settings, err
}

func GetSettings(ctx *gin.Context) {
	settings, err := loadSettings()
	if err != nil {
		log.Println("Settings load error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error fetching settings")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": settings})
}

// UpdateSettings updates site configuration fields present in the form and
// optionally replaces the logo image, deleting the old blob.
func UpdateSettings(ctx *gin.Context) {
	settings, err := loadSettings()
	if err != nil {
		log.Println("Settings load error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error updating settings")
		return
	}

	if siteName := ctx.PostForm("siteName"); siteName != "" {
		settings.SiteName = siteName
	}
	if copyright := ctx.PostForm("copyright"); copyright != "" {
		settings.Copyright = copyright
	}
	if seoTitle := ctx.PostForm("seoTitle"); seoTitle != "" {
		settings.SeoTitle = seoTitle
	}
	if seoDescription := ctx.PostForm("seoDescription"); seoDescription != "" {
		settings.SeoDescription = seoDescription
	}
	if seoKeywords := ctx.PostForm("seoKeywords"); seoKeywords != "" {
		settings.SeoKeywords = seoKeywords
	}
	if adminName := ctx.PostForm("adminName"); adminName != "" {
		settings.AdminName = adminName
	}

	if file, err := ctx.FormFile("image"); err == nil {
		if err := utils.DeleteImage(settings.ProfileImage); err != nil {
			log.Println("Error deleting old logo:", err)
		}
		key, err := utils.UploadImage(file)
		if err != nil {
			log.Println("Logo upload error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to upload image")
			return
		}
		settings.ProfileImage = key
	}

	if result := initializers.DB.Save(&settings); result.Error != nil {
		log.Println("Settings save error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error updating settings")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Settings updated successfully",
		"data":    settings,
	})
}
