package booking

import (
	"fmt"
	"strings"
)

// BookingError is a typed, recoverable booking failure.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Sentinel booking errors. Compared with errors.Is.
var (
	// ErrConfigMissing: the shop has no profile; fatal to the request.
	ErrConfigMissing = &BookingError{Code: "configMissing", Message: "shop has no configured profile"}
	// ErrServiceNotFound: no active service matched the requested name.
	ErrServiceNotFound = &BookingError{Code: "serviceNotFound", Message: "no matching service"}
	// ErrSlotConflict: the requested (date, time) is already taken.
	ErrSlotConflict = &BookingError{Code: "slotConflict", Message: "slot already booked"}
	// ErrAssistantUnavailable: the generation call failed or timed out.
	ErrAssistantUnavailable = &BookingError{Code: "assistantUnavailable", Message: "assistant unavailable"}
	// ErrAppointmentNotFound: the referenced appointment does not exist.
	ErrAppointmentNotFound = &BookingError{Code: "appointmentNotFound", Message: "appointment not found"}
)

// AmbiguousServiceError reports a service-name match with multiple candidates
// and no exact winner. Detected with errors.As.
type AmbiguousServiceError struct {
	Candidates []string
}

func (e *AmbiguousServiceError) Error() string {
	return fmt.Sprintf("ambiguous service name, candidates: %s", strings.Join(e.Candidates, ", "))
}

// InvalidTransitionError reports a disallowed appointment status change.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s", e.From, e.To)
}
