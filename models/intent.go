package models

// BookingIntent is the structured booking request the assistant conveys on
// behalf of the end customer.
type BookingIntent struct {
	Action string            `json:"action" validate:"required,eq=book"`
	Data   BookingIntentData `json:"data" validate:"required"`
}

// BookingIntentData carries the fields needed to attempt a booking.
type BookingIntentData struct {
	Client  string `json:"client" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Service string `json:"service" validate:"required"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Time    string `json:"time" validate:"required,datetime=15:04"`
}

// AssistantTurn is one reply from the generation backend. Call is non-nil
// when the model emitted a structured booking function call instead of (or in
// addition to) free text.
type AssistantTurn struct {
	Text string
	Call *BookingIntent
}

// ChatRequest is the inbound chat-to-booking payload.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatResponse pairs the assistant's reply with the appointment the turn
// created, if any.
type ChatResponse struct {
	AssistantReply string       `json:"assistant_reply"`
	BookingCreated *Appointment `json:"booking_created"`
	BookingError   string       `json:"booking_error,omitempty"`
}
