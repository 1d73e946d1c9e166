package models

import "time"

// Appointment status values. Completed and cancelled are terminal.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Payment method values.
const (
	PaymentCash     = "cash"
	PaymentTransfer = "instant-transfer"
	PaymentCard     = "card"
	PaymentPending  = "pending"
)

// Provenance values: who created the appointment.
const (
	ProvenanceAssistant = "assistant"
	ProvenanceHuman     = "human"
)

// Appointment represents a booked slot. Appointments are never hard-deleted;
// cancellation is a status transition so history is preserved.
type Appointment struct {
	ID            string    `bson:"id" json:"id"`                 // Unique appointment identifier (UUID)
	ShopID        string    `bson:"shop_id" json:"shop_id"`       // Owning shop account
	ClientName    string    `bson:"client_name" json:"client_name"`
	Phone         string    `bson:"phone" json:"phone"`
	Email         string    `bson:"email,omitempty" json:"email,omitempty"`
	ServiceID     string    `bson:"service_id" json:"service_id"`
	Date          string    `bson:"date" json:"date"`   // "YYYY-MM-DD"
	Time          string    `bson:"time" json:"time"`   // "HH:MM"
	Price         float64   `bson:"price" json:"price"` // Snapshot of the service price at booking time
	Paid          bool      `bson:"paid" json:"paid"`
	PaymentMethod string    `bson:"payment_method" json:"payment_method"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status        string    `bson:"status" json:"status"`
	Provenance    string    `bson:"provenance" json:"provenance"`
	Live          bool      `bson:"live" json:"-"` // Maintained by the repository; backs the slot uniqueness index
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// IsLive reports whether the appointment still occupies its slot.
func (a *Appointment) IsLive() bool {
	return a.Status != StatusCancelled
}

// AppointmentUpdate carries the updatable appointment fields. Nil pointers
// leave the field untouched.
type AppointmentUpdate struct {
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	Paid          *bool   `json:"paid,omitempty"`
	PaymentMethod *string `json:"payment_method,omitempty" validate:"omitempty,oneof=cash instant-transfer card pending"`
	Notes         *string `json:"notes,omitempty"`
	Date          *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time          *string `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
}

// SlotRef is a booked (date, time) pair, stripped of client identity.
type SlotRef struct {
	Date string `bson:"date" json:"date"`
	Time string `bson:"time" json:"time"`
}

// AppointmentLog actions.
const (
	LogCreated     = "created"
	LogConfirmed   = "confirmed"
	LogRescheduled = "rescheduled"
	LogCompleted   = "completed"
	LogCancelled   = "cancelled"
	LogUpdated     = "updated"
)

// AppointmentLog is an append-only record of a state-changing action on an
// appointment. Entries are never updated or deleted.
type AppointmentLog struct {
	ID            string    `bson:"id" json:"id"`
	AppointmentID string    `bson:"appointment_id" json:"appointment_id"`
	Action        string    `bson:"action" json:"action"`
	Details       string    `bson:"details,omitempty" json:"details,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
