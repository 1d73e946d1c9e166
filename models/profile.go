package models

import "time"

// ShopProfile holds a shop's identity, contact details and scheduling policy.
// The booking pipeline refuses to run for a shop without a profile.
type ShopProfile struct {
	ShopID          string    `bson:"shop_id" json:"shop_id"`
	Name            string    `bson:"name" json:"name" validate:"required"`
	Address         string    `bson:"address,omitempty" json:"address,omitempty"`
	Phone           string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Email           string    `bson:"email,omitempty" json:"email,omitempty"`
	WhatsApp        string    `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
	SlotIntervalMin int       `bson:"slot_interval_min" json:"slot_interval_min"` // Minutes between consecutive appointments
	MinNoticeMin    int       `bson:"min_notice_min" json:"min_notice_min"`       // Minimum booking notice in minutes
	GeminiAPIKey    string    `bson:"gemini_api_key,omitempty" json:"-"`          // Per-shop key; never serialized outward
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}
