package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Ducklowkey/Pizza-Website/initializers"
	"github.com/Ducklowkey/Pizza-Website/models"
	"github.com/Ducklowkey/Pizza-Website/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// applyFolderFilter narrows a message query to one of the named folders.
// Folders are filter predicates over the flag columns, not stored partitions.
func applyFolderFilter(query *gorm.DB, folder string) *gorm.DB {
	switch folder {
	case "starred":
		return query.Where("starred = ?", true)
	case "important":
		return query.Where("label = ?", "Work")
	case "spam":
		return query.Where("label = ?", "Spam")
	case "bin":
		return query.Where("`read` = ?", true)
	case "inbox":
		return query.Where("`read` = ?", false)
	}
	return query
}

// AddMessage accepts an inbound contact message, anonymous or not.
func AddMessage(ctx *gin.Context) {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Message string `json:"message" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	name := body.Name
	if name == "" {
		name = "Anonymous"
	}

	message := models.Message{
		Name:    name,
		Email:   body.Email,
		Phone:   body.Phone,
		Message: body.Message,
		Label:   "Primary",
		Date:    time.Now(),
		Replies: datatypes.NewJSONType([]models.Reply{}),
	}
	if result := initializers.DB.Create(&message); result.Error != nil {
		log.Println("Message creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error sending message")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"success": true,
		"message": "Message sent successfully",
		"data":    message,
	})
}

// ListMessages returns messages for a folder view, newest first. Search is a
// case-insensitive substring match over name, message and email, ANDed with
// the folder predicate.
func ListMessages(ctx *gin.Context) {
	query := applyFolderFilter(initializers.DB.Model(&models.Message{}), ctx.Query("folder"))

	if search := ctx.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"(LOWER(name) LIKE ? OR LOWER(message) LIKE ? OR LOWER(email) LIKE ?)",
			pattern, pattern, pattern,
		)
	}

	var messages []models.Message
	if result := query.Order("date desc").Find(&messages); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error fetching messages")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": messages})
}

// GetMessageCounts recomputes per-folder counts with one aggregate query per
// folder. Fine at inbox scale; nothing is maintained incrementally.
func GetMessageCounts(ctx *gin.Context) {
	counts := map[string]any{}
	predicates := []struct {
		name  string
		where string
		value any
	}{
		{"inbox", "`read` = ?", false},
		{"starred", "starred = ?", true},
		{"sent", "replied = ?", true},
		{"draft", "label = ?", "Draft"},
		{"spam", "label = ?", "Spam"},
		{"important", "label = ?", "Work"},
		{"bin", "label = ?", "Bin"},
	}

	for _, p := range predicates {
		var count int64
		if result := initializers.DB.Model(&models.Message{}).Where(p.where, p.value).Count(&count); result.Error != nil {
			log.Println("Count error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Error fetching counts")
			return
		}
		counts[p.name] = count
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": counts})
}

// GetUnansweredCount backs the admin notification badge poll.
func GetUnansweredCount(ctx *gin.Context) {
	var count int64
	if result := initializers.DB.Model(&models.Message{}).Where("replied = ?", false).Count(&count); result.Error != nil {
		log.Println("Count error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error fetching unanswered count")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "count": count})
}

// GetMessage fetches one message. Opening an unread message marks it read.
func GetMessage(ctx *gin.Context) {
	messageId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid message ID")
		return
	}

	var message models.Message
	if result := initializers.DB.First(&message, messageId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Message not found")
		} else {
			log.Println("Database error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Error fetching message")
		}
		return
	}

	if !message.Read {
		message.Read = true
		if result := initializers.DB.Model(&message).Update("read", true); result.Error != nil {
			log.Println("Read flag update error:", result.Error)
		}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": message})
}

// AddReply appends an admin reply to a message's reply list and flips the
// replied and read flags. Existing replies are never reordered.
func AddReply(ctx *gin.Context) {
	var body struct {
		MessageID uint   `json:"messageId" binding:"required"`
		Message   string `json:"message" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var message models.Message
	if result := initializers.DB.First(&message, body.MessageID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Message not found")
		} else {
			log.Println("Database error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Error sending reply")
		}
		return
	}

	replies := message.Replies.Data()
	replies = append(replies, models.Reply{
		ID:      uuid.NewString(),
		Message: body.Message,
		Sender:  "Admin",
		Date:    time.Now(),
	})
	message.Replies = datatypes.NewJSONType(replies)
	message.Replied = true
	message.Read = true

	if result := initializers.DB.Save(&message); result.Error != nil {
		log.Println("Reply save error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error sending reply")
		return
	}

	// Best effort: tell the sender a reply landed. Failures are logged only.
	if message.Email != "" {
		emailData := utils.EmailData{
			Name:    message.Name,
			Message: body.Message,
			SiteURL: os.Getenv("FRONTEND_URL"),
		}
		templatePath := filepath.Join("templates", "reply_notification.html")
		if err := utils.SendEmail(message.Email, "You have a new reply", emailData, templatePath); err != nil {
			log.Println("Error sending reply notification:", err)
		}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Reply sent successfully",
		"data":    message,
	})
}

// GetUserMessages returns a sender's messages for the storefront chat
// widget, newest first.
func GetUserMessages(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Email is required")
		return
	}

	var messages []models.Message
	if result := initializers.DB.Where("email = ?", email).Order("date desc").Find(&messages); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error fetching messages")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": messages})
}

// GetUserConversation returns every message from one sender, oldest first,
// each root message still carrying its own ordered reply list. Identity is
// the email when present, the display name otherwise.
func GetUserConversation(ctx *gin.Context) {
	email := ctx.Query("email")
	name := ctx.Query("name")

	query := initializers.DB.Model(&models.Message{})
	if email != "" {
		query = query.Where("email = ?", email)
	} else if name != "" {
		query = query.Where("name = ?", name)
	} else {
		sendErrorResponse(ctx, http.StatusBadRequest, "Email or name is required")
		return
	}

	var messages []models.Message
	if result := query.Order("date asc").Find(&messages); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error fetching conversation")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": messages})
}

// UpdateReadStatus sets the read flag directly.
func UpdateReadStatus(ctx *gin.Context) {
	var body struct {
		MessageID uint `json:"messageId" binding:"required"`
		Read      bool `json:"read"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if result := initializers.DB.Model(&models.Message{}).Where("id = ?", body.MessageID).Update("read", body.Read); result.Error != nil {
		log.Println("Read update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error updating status")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "Status updated"})
}

// UpdateStarredStatus sets the starred flag directly.
func UpdateStarredStatus(ctx *gin.Context) {
	var body struct {
		MessageID uint `json:"messageId" binding:"required"`
		Starred   bool `json:"starred"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if result := initializers.DB.Model(&models.Message{}).Where("id = ?", body.MessageID).Update("starred", body.Starred); result.Error != nil {
		log.Println("Starred update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error updating starred status")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "Starred status updated"})
}

// UpdateMessageLabel sets the label string directly.
func UpdateMessageLabel(ctx *gin.Context) {
	var body struct {
		MessageID uint   `json:"messageId" binding:"required"`
		Label     string `json:"label" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if result := initializers.DB.Model(&models.Message{}).Where("id = ?", body.MessageID).Update("label", body.Label); result.Error != nil {
		log.Println("Label update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error updating label")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "Label updated"})
}

// DeleteMessage soft-deletes by moving the message to the bin folder. The
// document stays retrievable and repeating the call changes nothing.
func DeleteMessage(ctx *gin.Context) {
	var body struct {
		MessageID uint `json:"messageId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	updates := map[string]any{"read": true, "label": "Bin"}
	if result := initializers.DB.Model(&models.Message{}).Where("id = ?", body.MessageID).Updates(updates); result.Error != nil {
		log.Println("Message delete error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error deleting message")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "Message deleted"})
}

// DeleteMultipleMessages moves a batch of messages to the bin.
func DeleteMultipleMessages(ctx *gin.Context) {
	var body struct {
		MessageIDs []uint `json:"messageIds"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if len(body.MessageIDs) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "No message IDs provided")
		return
	}

	updates := map[string]any{"read": true, "label": "Bin"}
	if result := initializers.DB.Model(&models.Message{}).Where("id IN ?", body.MessageIDs).Updates(updates); result.Error != nil {
		log.Println("Batch delete error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error deleting messages")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success":      true,
		"message":      fmt.Sprintf("%d message(s) deleted", len(body.MessageIDs)),
		"deletedCount": len(body.MessageIDs),
	})
}
