package scheduleRepo

import (
	"context"
	"errors"

	"trimly/models"
)

// ErrSlotTaken is returned when an insert or reschedule collides with the
// unique live-slot index. Callers translate it into a slot-conflict error.
var ErrSlotTaken = errors.New("slot already taken")

// ErrNotFound is returned when the referenced document does not exist.
var ErrNotFound = errors.New("not found")

// AppointmentFilter narrows appointment listings.
type AppointmentFilter struct {
	Date   string // "YYYY-MM-DD", empty for all
	Status string // empty for all
}

// ScheduleRepository is the schedule store: services, appointments and their
// append-only logs.
type ScheduleRepository interface {
	// CreateService inserts a new service record.
	CreateService(ctx context.Context, svc *models.Service) error
	// UpdateService modifies an existing service record.
	UpdateService(ctx context.Context, svc *models.Service) error
	// SetServiceActive toggles the active flag.
	SetServiceActive(ctx context.Context, shopID, id string, active bool) error
	// GetServiceByID retrieves one service scoped to a shop.
	GetServiceByID(ctx context.Context, shopID, id string) (*models.Service, error)
	// ListServices retrieves a shop's services, optionally only active ones.
	ListServices(ctx context.Context, shopID string, activeOnly bool) ([]models.Service, error)
	// FindActiveServicesByName returns active services whose name contains the
	// given fragment, case-insensitive.
	FindActiveServicesByName(ctx context.Context, shopID, fragment string) ([]models.Service, error)

	// CreateAppointmentWithLog inserts the appointment and its "created" log
	// entry atomically. Returns ErrSlotTaken if the live slot is occupied.
	CreateAppointmentWithLog(ctx context.Context, appt *models.Appointment, entry *models.AppointmentLog) error
	// UpdateAppointmentWithLog applies the update and appends the log entry
	// atomically. Returns ErrSlotTaken when a reschedule collides.
	UpdateAppointmentWithLog(ctx context.Context, shopID, id string, upd *models.AppointmentUpdate, entry *models.AppointmentLog) (*models.Appointment, error)
	// GetAppointmentByID retrieves one appointment scoped to a shop.
	GetAppointmentByID(ctx context.Context, shopID, id string) (*models.Appointment, error)
	// ListAppointments retrieves a shop's appointments, newest date first.
	ListAppointments(ctx context.Context, shopID string, filter AppointmentFilter) ([]models.Appointment, error)
	// FindLiveAt returns non-cancelled appointments at the exact slot.
	FindLiveAt(ctx context.Context, shopID, date, timeOfDay string) ([]models.Appointment, error)
	// UpcomingLiveSlots returns booked (date, time) pairs from the given date
	// onward, without client identity.
	UpcomingLiveSlots(ctx context.Context, shopID, fromDate string) ([]models.SlotRef, error)
	// ListLogs returns an appointment's log entries, oldest first.
	ListLogs(ctx context.Context, appointmentID string) ([]models.AppointmentLog, error)

	// Report aggregates appointment statistics over the trailing period.
	Report(ctx context.Context, shopID string, days int) (*models.Report, error)

	// Clients directory.
	CreateClient(ctx context.Context, client *models.Client) error
	ListClients(ctx context.Context, shopID string) ([]models.Client, error)
}
