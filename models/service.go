package models

import "time"

// Service represents a bookable service offered by a shop.
type Service struct {
	ID          string    `bson:"id" json:"id"`                               // Unique service identifier (UUID)
	ShopID      string    `bson:"shop_id" json:"shop_id"`                     // Owning shop account
	Name        string    `bson:"name" json:"name"`                           // Display name, e.g. "Haircut"
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64   `bson:"price" json:"price"`       // Current price; appointments snapshot this at booking time
	DurationMin int       `bson:"duration_min" json:"duration_min"` // Duration in minutes
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
