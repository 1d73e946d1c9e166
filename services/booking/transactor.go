package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	scheduleRepo "trimly/database/repository/schedule"
	"trimly/models"
	"trimly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AttemptBooking validates, resolves and commits an extracted intent.
func (s *DefaultBookingService) AttemptBooking(ctx context.Context, shopID string, intent *models.BookingIntent, provenance string) (*models.Appointment, error) {
	if err := s.Validate.Struct(intent); err != nil {
		return nil, fmt.Errorf("invalid booking intent: %w", err)
	}

	resolved, err := s.resolveAvailability(ctx, shopID, intent.Data)
	if err != nil {
		return nil, err
	}

	detail := fmt.Sprintf("Appointment created via assistant for %s", intent.Data.Client)
	if provenance == models.ProvenanceHuman {
		detail = fmt.Sprintf("Appointment created by staff for %s", intent.Data.Client)
	}

	return s.commit(ctx, &models.Appointment{
		ShopID:        shopID,
		ClientName:    intent.Data.Client,
		Phone:         intent.Data.Phone,
		ServiceID:     resolved.Service.ID,
		Date:          intent.Data.Date,
		Time:          intent.Data.Time,
		Price:         resolved.Price,
		PaymentMethod: models.PaymentPending,
		Status:        models.StatusConfirmed,
		Provenance:    provenance,
	}, detail)
}

// CreateAppointment books a slot on behalf of staff. The same conflict rule
// and atomic appointment+log write apply.
func (s *DefaultBookingService) CreateAppointment(ctx context.Context, shopID string, input NewAppointmentInput) (*models.Appointment, error) {
	if err := s.Validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid appointment input: %w", err)
	}

	svc, err := s.Repo.GetServiceByID(ctx, shopID, input.ServiceID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("service lookup failed: %w", err)
	}

	return s.commit(ctx, &models.Appointment{
		ShopID:        shopID,
		ClientName:    input.ClientName,
		Phone:         input.Phone,
		Email:         input.Email,
		ServiceID:     svc.ID,
		Date:          input.Date,
		Time:          input.Time,
		Price:         svc.Price,
		PaymentMethod: models.PaymentPending,
		Notes:         input.Notes,
		Status:        models.StatusConfirmed,
		Provenance:    models.ProvenanceHuman,
	}, fmt.Sprintf("Appointment created by staff for %s", input.ClientName))
}

// commit inserts the appointment and its creation log entry atomically. A
// live-slot collision surfaces as ErrSlotConflict; any other storage failure
// is a persistence failure and leaves no partial record.
func (s *DefaultBookingService) commit(ctx context.Context, appt *models.Appointment, detail string) (*models.Appointment, error) {
	now := time.Now()
	appt.ID = uuid.New().String()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	entry := &models.AppointmentLog{
		ID:            uuid.New().String(),
		AppointmentID: appt.ID,
		Action:        models.LogCreated,
		Details:       detail,
		CreatedAt:     now,
	}

	if err := s.Repo.CreateAppointmentWithLog(ctx, appt, entry); err != nil {
		if errors.Is(err, scheduleRepo.ErrSlotTaken) {
			return nil, ErrSlotConflict
		}
		return nil, fmt.Errorf("booking transaction failed: %w", err)
	}

	utils.GetLogger().Info("Appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("shopID", appt.ShopID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time),
		zap.String("provenance", appt.Provenance),
	)
	return appt, nil
}
