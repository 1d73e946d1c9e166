package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	scheduleRepo "trimly/database/repository/schedule"
	"trimly/models"
	"trimly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetAppointment fetches one appointment.
func (s *DefaultBookingService) GetAppointment(ctx context.Context, shopID, id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetAppointmentByID(ctx, shopID, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return appt, nil
}

// ListAppointments lists a shop's appointments with optional filters.
func (s *DefaultBookingService) ListAppointments(ctx context.Context, shopID string, filter scheduleRepo.AppointmentFilter) ([]models.Appointment, error) {
	return s.Repo.ListAppointments(ctx, shopID, filter)
}

// UpdateAppointment applies staff edits. Status changes go through the status
// machine; date or time changes are treated as a reschedule and re-checked
// against the live-slot constraint. Every applied update appends a log entry.
func (s *DefaultBookingService) UpdateAppointment(ctx context.Context, shopID, id string, upd *models.AppointmentUpdate) (*models.Appointment, error) {
	if err := s.Validate.Struct(upd); err != nil {
		return nil, fmt.Errorf("invalid appointment update: %w", err)
	}

	current, err := s.GetAppointment(ctx, shopID, id)
	if err != nil {
		return nil, err
	}

	action := models.LogUpdated
	if upd.Status != nil && *upd.Status != current.Status {
		if !ValidTransition(current.Status, *upd.Status) {
			return nil, &InvalidTransitionError{From: current.Status, To: *upd.Status}
		}
		action = logActionFor(*upd.Status)
	}
	if upd.Date != nil || upd.Time != nil {
		action = models.LogRescheduled
	}

	changed, _ := json.Marshal(upd)
	entry := &models.AppointmentLog{
		ID:            uuid.New().String(),
		AppointmentID: id,
		Action:        action,
		Details:       fmt.Sprintf("Appointment updated: %s", changed),
		CreatedAt:     time.Now(),
	}

	updated, err := s.Repo.UpdateAppointmentWithLog(ctx, shopID, id, upd, entry)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrSlotTaken) {
			return nil, ErrSlotConflict
		}
		if errors.Is(err, scheduleRepo.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	utils.GetLogger().Info("Appointment updated",
		zap.String("appointmentID", id),
		zap.String("shopID", shopID),
		zap.String("action", action),
	)
	return updated, nil
}

// CancelAppointment transitions the appointment to cancelled. The record and
// its logs are kept; the freed slot becomes bookable again.
func (s *DefaultBookingService) CancelAppointment(ctx context.Context, shopID, id string) (*models.Appointment, error) {
	current, err := s.GetAppointment(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if !ValidTransition(current.Status, models.StatusCancelled) {
		return nil, &InvalidTransitionError{From: current.Status, To: models.StatusCancelled}
	}

	cancelled := models.StatusCancelled
	entry := &models.AppointmentLog{
		ID:            uuid.New().String(),
		AppointmentID: id,
		Action:        models.LogCancelled,
		Details:       "Appointment cancelled by staff",
		CreatedAt:     time.Now(),
	}

	updated, err := s.Repo.UpdateAppointmentWithLog(ctx, shopID, id, &models.AppointmentUpdate{Status: &cancelled}, entry)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return updated, nil
}

// AppointmentLogs returns the appointment's audit trail.
func (s *DefaultBookingService) AppointmentLogs(ctx context.Context, shopID, id string) ([]models.AppointmentLog, error) {
	if _, err := s.GetAppointment(ctx, shopID, id); err != nil {
		return nil, err
	}
	return s.Repo.ListLogs(ctx, id)
}

// CreateService registers a new service.
func (s *DefaultBookingService) CreateService(ctx context.Context, svc *models.Service) error {
	if svc.Name == "" || svc.Price < 0 || svc.DurationMin <= 0 {
		return fmt.Errorf("invalid service: name required, price >= 0, duration > 0")
	}
	now := time.Now()
	svc.ID = uuid.New().String()
	svc.Active = true
	svc.CreatedAt = now
	svc.UpdatedAt = now
	return s.Repo.CreateService(ctx, svc)
}

// UpdateService edits a service's catalogue fields. Price changes apply to
// future bookings only; committed appointments keep their snapshot.
func (s *DefaultBookingService) UpdateService(ctx context.Context, shopID, id string, upd ServiceUpdate) (*models.Service, error) {
	if err := s.Validate.Struct(upd); err != nil {
		return nil, fmt.Errorf("invalid service update: %w", err)
	}

	svc, err := s.Repo.GetServiceByID(ctx, shopID, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, fmt.Errorf("invalid service update: name cannot be empty")
		}
		svc.Name = *upd.Name
	}
	if upd.Description != nil {
		svc.Description = *upd.Description
	}
	if upd.Price != nil {
		svc.Price = *upd.Price
	}
	if upd.DurationMin != nil {
		svc.DurationMin = *upd.DurationMin
	}
	if upd.Active != nil {
		svc.Active = *upd.Active
	}
	svc.UpdatedAt = time.Now()

	if err := s.Repo.UpdateService(ctx, svc); err != nil {
		if errors.Is(err, scheduleRepo.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return svc, nil
}

// ListServices lists a shop's services.
func (s *DefaultBookingService) ListServices(ctx context.Context, shopID string, activeOnly bool) ([]models.Service, error) {
	return s.Repo.ListServices(ctx, shopID, activeOnly)
}

// DeactivateService hides a service from booking without deleting it.
func (s *DefaultBookingService) DeactivateService(ctx context.Context, shopID, id string) error {
	if err := s.Repo.SetServiceActive(ctx, shopID, id, false); err != nil {
		if errors.Is(err, scheduleRepo.ErrNotFound) {
			return ErrServiceNotFound
		}
		return err
	}
	return nil
}

// CreateClient adds a client directory entry.
func (s *DefaultBookingService) CreateClient(ctx context.Context, client *models.Client) error {
	if err := s.Validate.Struct(client); err != nil {
		return fmt.Errorf("invalid client: %w", err)
	}
	client.ID = uuid.New().String()
	client.Active = true
	client.CreatedAt = time.Now()
	return s.Repo.CreateClient(ctx, client)
}

// ListClients lists the shop's client directory.
func (s *DefaultBookingService) ListClients(ctx context.Context, shopID string) ([]models.Client, error) {
	return s.Repo.ListClients(ctx, shopID)
}

// Report aggregates statistics over the trailing period.
func (s *DefaultBookingService) Report(ctx context.Context, shopID string, days int) (*models.Report, error) {
	if days <= 0 {
		days = 30
	}
	return s.Repo.Report(ctx, shopID, days)
}
