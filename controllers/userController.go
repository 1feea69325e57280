package controllers

import (
	"errors"
	"log"
	"net/http"
	"net/mail"
	"strconv"
	"time"

	"github.com/Ducklowkey/Pizza-Website/initializers"
	"github.com/Ducklowkey/Pizza-Website/models"
	"github.com/Ducklowkey/Pizza-Website/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func findUserByEmail(email string) (models.User, error) {
	var user models.User
	result := initializers.DB.Where("email = ?", email).First(&user)
	return user, result.Error
}

// RegisterUser creates a user account and returns a signed token.
func RegisterUser(ctx *gin.Context) {
	var signUpData struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&signUpData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if _, err := findUserByEmail(signUpData.Email); err == nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "User already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error during user check:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if _, err := mail.ParseAddress(signUpData.Email); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Please enter a valid email")
		return
	}
	if len(signUpData.Password) < 8 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Please enter a strong password")
		return
	}

	hashedPassword, err := hashPassword(signUpData.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	user := models.User{
		Name:     signUpData.Name,
		Email:    signUpData.Email,
		Password: hashedPassword,
		CartData: datatypes.NewJSONType(map[string]int{}),
	}
	if result := initializers.DB.Create(&user); result.Error != nil {
		log.Println("User creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "token": tokenString})
}

// LoginUser authenticates a user and returns a signed token.
func LoginUser(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := findUserByEmail(loginData.Email)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "User does not exist")
		return
	}

	if err := comparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid credentials")
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "token": tokenString})
}

// GetUsers returns every user for the admin dashboard; password hashes are
// never serialized.
func GetUsers(ctx *gin.Context) {
	var users []models.User
	if result := initializers.DB.Find(&users); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": users})
}

// GetUserData returns the profile of the token's owner.
func GetUserData(ctx *gin.Context) {
	userId, ok := authedUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Token not provided")
		return
	}

	var user models.User
	if result := initializers.DB.First(&user, userId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		} else {
			log.Println("Database error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": user})
}

// AddCustomer lets an admin create a customer record directly.
func AddCustomer(ctx *gin.Context) {
	var customerData struct {
		Name        string `json:"name" binding:"required"`
		Email       string `json:"email" binding:"required"`
		Phone       string `json:"phone"`
		Address     string `json:"address"`
		Password    string `json:"password"`
		DateOfBirth string `json:"dateOfBirth"`
	}
	if err := ctx.ShouldBindJSON(&customerData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if _, err := findUserByEmail(customerData.Email); err == nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Customer with this email already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error during customer check:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if _, err := mail.ParseAddress(customerData.Email); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Please enter a valid email")
		return
	}

	// Admin-created accounts fall back to a default password.
	password := customerData.Password
	if password == "" {
		password = "123456789"
	}
	hashedPassword, err := hashPassword(password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	var dateOfBirth *time.Time
	if customerData.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", customerData.DateOfBirth)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid date of birth")
			return
		}
		dateOfBirth = &parsed
	}

	customer := models.User{
		Name:        customerData.Name,
		Email:       customerData.Email,
		Password:    hashedPassword,
		Phone:       customerData.Phone,
		Address:     customerData.Address,
		DateOfBirth: dateOfBirth,
		CartData:    datatypes.NewJSONType(map[string]int{}),
	}
	if result := initializers.DB.Create(&customer); result.Error != nil {
		log.Println("Customer creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error adding customer")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"success": true,
		"message": "Customer added successfully",
		"data":    customer,
	})
}

// UpdateUser updates profile fields and optionally replaces the avatar image.
func UpdateUser(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.PostForm("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid user id")
		return
	}

	var user models.User
	if result := initializers.DB.First(&user, userId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		} else {
			log.Println("Database error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if name := ctx.PostForm("name"); name != "" {
		user.Name = name
	}
	if email := ctx.PostForm("email"); email != "" && email != user.Email {
		if _, err := mail.ParseAddress(email); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Please enter a valid email")
			return
		}
		if _, err := findUserByEmail(email); err == nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "User already exists")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("Database error during user check:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
		user.Email = email
	}
	if phone := ctx.PostForm("phone"); phone != "" {
		user.Phone = phone
	}
	if address := ctx.PostForm("address"); address != "" {
		user.Address = address
	}
	if dob := ctx.PostForm("dateOfBirth"); dob != "" {
		parsed, err := time.Parse("2006-01-02", dob)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid date of birth")
			return
		}
		user.DateOfBirth = &parsed
	}

	if file, err := ctx.FormFile("image"); err == nil {
		if err := utils.DeleteImage(user.Image); err != nil {
			log.Println("Error deleting old avatar:", err)
		}
		key, err := utils.UploadImage(file)
		if err != nil {
			log.Println("Avatar upload error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to upload image")
			return
		}
		user.Image = key
	}

	if result := initializers.DB.Save(&user); result.Error != nil {
		log.Println("User update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "User updated", "data": user})
}
