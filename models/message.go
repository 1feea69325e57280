package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Reply struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	Sender  string    `json:"sender"`
	Date    time.Time `json:"date"`
}

// Message is a contact-inbox document. Replies are embedded in append order;
// each reply belongs to the message that provoked it, so a sender's
// conversation is a list of root messages each carrying its own replies.
type Message struct {
	gorm.Model
	Name    string                      `json:"name"`
	Email   string                      `json:"email"`
	Phone   string                      `json:"phone"`
	Message string                      `json:"message"`
	Read    bool                        `json:"read"`
	Replied bool                        `json:"replied"`
	Starred bool                        `json:"starred"`
	Label   string                      `json:"label"`
	Date    time.Time                   `json:"date"`
	Replies datatypes.JSONType[[]Reply] `json:"replies"`
}
