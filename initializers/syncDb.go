package initializers

import (
	"log"

	"github.com/Ducklowkey/Pizza-Website/models"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.User{}, &models.Food{}, &models.Order{}, &models.Message{}, &models.Settings{})
	log.Println("Database synced successfully.")
}
