package booking

import (
	"context"

	scheduleRepo "trimly/database/repository/schedule"
	"trimly/models"

	"github.com/go-playground/validator/v10"
)

// NewAppointmentInput is the manual (staff) booking payload.
type NewAppointmentInput struct {
	ClientName string `json:"client" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	ServiceID  string `json:"service_id" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string `json:"time" validate:"required,datetime=15:04"`
	Notes      string `json:"notes,omitempty"`
}

// ServiceUpdate carries the editable service fields. Nil pointers leave the
// field untouched.
type ServiceUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	DurationMin *int     `json:"duration_min,omitempty" validate:"omitempty,gt=0"`
	Active      *bool    `json:"active,omitempty"`
}

// BookingService exposes the booking pipeline and the staff-facing schedule
// operations.
type BookingService interface {
	// AttemptBooking resolves and commits an extracted intent. It returns the
	// created appointment, or a typed error (ErrServiceNotFound,
	// AmbiguousServiceError, ErrSlotConflict) on recoverable failure.
	AttemptBooking(ctx context.Context, shopID string, intent *models.BookingIntent, provenance string) (*models.Appointment, error)

	// CreateAppointment books a slot on behalf of staff.
	CreateAppointment(ctx context.Context, shopID string, input NewAppointmentInput) (*models.Appointment, error)
	// GetAppointment fetches one appointment.
	GetAppointment(ctx context.Context, shopID, id string) (*models.Appointment, error)
	// ListAppointments lists a shop's appointments with optional filters.
	ListAppointments(ctx context.Context, shopID string, filter scheduleRepo.AppointmentFilter) ([]models.Appointment, error)
	// UpdateAppointment applies staff edits, enforcing the status machine and
	// re-checking the slot on reschedule.
	UpdateAppointment(ctx context.Context, shopID, id string, upd *models.AppointmentUpdate) (*models.Appointment, error)
	// CancelAppointment transitions the appointment to cancelled, freeing its
	// slot. The record is retained.
	CancelAppointment(ctx context.Context, shopID, id string) (*models.Appointment, error)
	// AppointmentLogs returns the appointment's audit trail.
	AppointmentLogs(ctx context.Context, shopID, id string) ([]models.AppointmentLog, error)

	// CreateService registers a new service.
	CreateService(ctx context.Context, svc *models.Service) error
	// UpdateService edits a service's catalogue fields. Existing appointments
	// keep their price snapshot.
	UpdateService(ctx context.Context, shopID, id string, upd ServiceUpdate) (*models.Service, error)
	// ListServices lists a shop's services.
	ListServices(ctx context.Context, shopID string, activeOnly bool) ([]models.Service, error)
	// DeactivateService hides a service from booking without deleting it.
	DeactivateService(ctx context.Context, shopID, id string) error

	// CreateClient adds a client directory entry.
	CreateClient(ctx context.Context, client *models.Client) error
	// ListClients lists the shop's client directory.
	ListClients(ctx context.Context, shopID string) ([]models.Client, error)

	// Report aggregates statistics over the trailing period.
	Report(ctx context.Context, shopID string, days int) (*models.Report, error)
}

// DefaultBookingService is the production BookingService.
type DefaultBookingService struct {
	Repo     scheduleRepo.ScheduleRepository
	Validate *validator.Validate
}

// NewDefaultBookingService wires a booking service over the given repository.
func NewDefaultBookingService(repo scheduleRepo.ScheduleRepository) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:     repo,
		Validate: validator.New(),
	}
}
