package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name        string                             `json:"name"`
	Email       string                             `json:"email" gorm:"uniqueIndex;size:191"`
	Password    string                             `json:"-"`
	Phone       string                             `json:"phone"`
	Address     string                             `json:"address"`
	DateOfBirth *time.Time                         `json:"dateOfBirth"`
	CartData    datatypes.JSONType[map[string]int] `json:"cartData"`
	Image       string                             `json:"image"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
