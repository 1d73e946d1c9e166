package models

import "time"

// Client is a customer record in the shop's directory.
type Client struct {
	ID        string    `bson:"id" json:"id"`
	ShopID    string    `bson:"shop_id" json:"shop_id"`
	Name      string    `bson:"name" json:"name" validate:"required"`
	Phone     string    `bson:"phone" json:"phone" validate:"required"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Birthdate string    `bson:"birthdate,omitempty" json:"birthdate,omitempty"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
