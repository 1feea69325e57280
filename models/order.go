package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderItem and Address are stored as JSON snapshots on the order. They are
// copied at placement time and never re-joined to live Food or User rows, so
// an order stays a true receipt even after the catalog changes.
type OrderItem struct {
	ItemID   uint    `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Address struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

type Order struct {
	gorm.Model
	UserID        uint                            `json:"userId"`
	Items         datatypes.JSONType[[]OrderItem] `json:"items"`
	Amount        float64                         `json:"amount"`
	Address       datatypes.JSONType[Address]     `json:"address"`
	Status        string                          `json:"status"`
	Payment       bool                            `json:"payment"`
	PaymentMethod string                          `json:"paymentMethod"`
	Date          time.Time                       `json:"date"`
}
