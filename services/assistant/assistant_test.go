package assistant

import (
	"context"

	profileRepo "trimly/database/repository/profile"
	scheduleRepo "trimly/database/repository/schedule"
	"trimly/models"
	"trimly/services/booking"
)

// stubProfiles serves a fixed profile and hours set.
type stubProfiles struct {
	profileRepo.ProfileRepository

	profile *models.ShopProfile
	hours   []models.BusinessHours
}

func (s *stubProfiles) GetProfile(ctx context.Context, shopID string) (*models.ShopProfile, error) {
	if s.profile == nil || s.profile.ShopID != shopID {
		return nil, profileRepo.ErrProfileNotFound
	}
	out := *s.profile
	return &out, nil
}

func (s *stubProfiles) GetHours(ctx context.Context, shopID string) ([]models.BusinessHours, error) {
	return s.hours, nil
}

// stubSchedule serves fixed services and booked slots.
type stubSchedule struct {
	scheduleRepo.ScheduleRepository

	services []models.Service
	slots    []models.SlotRef
}

func (s *stubSchedule) ListServices(ctx context.Context, shopID string, activeOnly bool) ([]models.Service, error) {
	return s.services, nil
}

func (s *stubSchedule) UpcomingLiveSlots(ctx context.Context, shopID, fromDate string) ([]models.SlotRef, error) {
	return s.slots, nil
}

// generatorFunc adapts a bare function into a TextGenerator.
type generatorFunc func(ctx context.Context, apiKey, briefing, message string) (*models.AssistantTurn, error)

func (f generatorFunc) Generate(ctx context.Context, apiKey, briefing, message string) (*models.AssistantTurn, error) {
	return f(ctx, apiKey, briefing, message)
}

// stubBooking records booking attempts and returns a canned result.
type stubBooking struct {
	booking.BookingService

	attempts []*models.BookingIntent
	appt     *models.Appointment
	err      error
}

func (s *stubBooking) AttemptBooking(ctx context.Context, shopID string, intent *models.BookingIntent, provenance string) (*models.Appointment, error) {
	s.attempts = append(s.attempts, intent)
	if s.err != nil {
		return nil, s.err
	}
	appt := *s.appt
	appt.Provenance = provenance
	return &appt, nil
}

func testProfile() *models.ShopProfile {
	return &models.ShopProfile{
		ShopID:          "shop-1",
		Name:            "Corner Barbershop",
		Address:         "12 High Street",
		Phone:           "555-0199",
		WhatsApp:        "555-0199",
		SlotIntervalMin: 30,
		MinNoticeMin:    60,
		GeminiAPIKey:    "shop-key",
	}
}

func newTestAssistant(gen TextGenerator, book booking.BookingService) *DefaultAssistantService {
	profiles := &stubProfiles{
		profile: testProfile(),
		hours: []models.BusinessHours{
			{ShopID: "shop-1", Weekday: "monday", Open: "09:00", Close: "18:00", BreakStart: "12:00", BreakEnd: "13:00", Active: true},
			{ShopID: "shop-1", Weekday: "saturday", Open: "09:00", Close: "14:00", Active: true},
		},
	}
	schedule := &stubSchedule{
		services: []models.Service{
			{ID: "svc-1", ShopID: "shop-1", Name: "Haircut", Price: 25.00, DurationMin: 30, Active: true},
			{ID: "svc-2", ShopID: "shop-1", Name: "Beard Trim", Price: 15.00, DurationMin: 15, Active: true},
		},
		slots: []models.SlotRef{{Date: "2024-01-15", Time: "14:00"}},
	}
	return NewDefaultAssistantService(profiles, schedule, book, gen, nil)
}
