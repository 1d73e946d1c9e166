package booking

import (
	"context"
	"sync"

	scheduleRepo "trimly/database/repository/schedule"
	"trimly/models"
)

// memScheduleRepo is an in-memory ScheduleRepository. It enforces the same
// live-slot uniqueness rule as the mongo unique index, under a mutex, so the
// concurrency behavior of the pipeline can be exercised without a database.
type memScheduleRepo struct {
	scheduleRepo.ScheduleRepository

	mu       sync.Mutex
	services []models.Service
	appts    []models.Appointment
	logs     []models.AppointmentLog
}

func (m *memScheduleRepo) CreateService(ctx context.Context, svc *models.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.services = append(m.services, *svc)
	return nil
}

func (m *memScheduleRepo) UpdateService(ctx context.Context, svc *models.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.services {
		if m.services[i].ShopID == svc.ShopID && m.services[i].ID == svc.ID {
			m.services[i] = *svc
			return nil
		}
	}
	return scheduleRepo.ErrNotFound
}

func (m *memScheduleRepo) SetServiceActive(ctx context.Context, shopID, id string, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.services {
		if m.services[i].ShopID == shopID && m.services[i].ID == id {
			m.services[i].Active = active
			return nil
		}
	}
	return scheduleRepo.ErrNotFound
}

func (m *memScheduleRepo) ListServices(ctx context.Context, shopID string, activeOnly bool) ([]models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Service
	for _, svc := range m.services {
		if svc.ShopID == shopID && (!activeOnly || svc.Active) {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (m *memScheduleRepo) FindActiveServicesByName(ctx context.Context, shopID, fragment string) ([]models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Service
	for _, svc := range m.services {
		if svc.ShopID == shopID && svc.Active && containsFold(svc.Name, fragment) {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (m *memScheduleRepo) GetServiceByID(ctx context.Context, shopID, id string) (*models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, svc := range m.services {
		if svc.ShopID == shopID && svc.ID == id {
			out := svc
			return &out, nil
		}
	}
	return nil, scheduleRepo.ErrNotFound
}

func (m *memScheduleRepo) FindLiveAt(ctx context.Context, shopID, date, timeOfDay string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.liveAtLocked(shopID, date, timeOfDay), nil
}

func (m *memScheduleRepo) liveAtLocked(shopID, date, timeOfDay string) []models.Appointment {
	var out []models.Appointment
	for _, a := range m.appts {
		if a.ShopID == shopID && a.Date == date && a.Time == timeOfDay && a.IsLive() {
			out = append(out, a)
		}
	}
	return out
}

func (m *memScheduleRepo) CreateAppointmentWithLog(ctx context.Context, appt *models.Appointment, entry *models.AppointmentLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if appt.IsLive() && len(m.liveAtLocked(appt.ShopID, appt.Date, appt.Time)) > 0 {
		return scheduleRepo.ErrSlotTaken
	}
	appt.Live = appt.IsLive()
	m.appts = append(m.appts, *appt)
	m.logs = append(m.logs, *entry)
	return nil
}

func (m *memScheduleRepo) GetAppointmentByID(ctx context.Context, shopID, id string) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.appts {
		if a.ShopID == shopID && a.ID == id {
			out := a
			return &out, nil
		}
	}
	return nil, scheduleRepo.ErrNotFound
}

func (m *memScheduleRepo) UpdateAppointmentWithLog(ctx context.Context, shopID, id string, upd *models.AppointmentUpdate, entry *models.AppointmentLog) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.appts {
		a := &m.appts[i]
		if a.ShopID != shopID || a.ID != id {
			continue
		}
		date, timeOfDay := a.Date, a.Time
		if upd.Date != nil {
			date = *upd.Date
		}
		if upd.Time != nil {
			timeOfDay = *upd.Time
		}
		live := a.Live
		if upd.Status != nil {
			live = *upd.Status != models.StatusCancelled
		}
		if live && (date != a.Date || timeOfDay != a.Time) {
			for _, other := range m.liveAtLocked(shopID, date, timeOfDay) {
				if other.ID != id {
					return nil, scheduleRepo.ErrSlotTaken
				}
			}
		}
		a.Date, a.Time, a.Live = date, timeOfDay, live
		if upd.Status != nil {
			a.Status = *upd.Status
		}
		if upd.Paid != nil {
			a.Paid = *upd.Paid
		}
		if upd.PaymentMethod != nil {
			a.PaymentMethod = *upd.PaymentMethod
		}
		if upd.Notes != nil {
			a.Notes = *upd.Notes
		}
		m.logs = append(m.logs, *entry)
		out := *a
		return &out, nil
	}
	return nil, scheduleRepo.ErrNotFound
}

func (m *memScheduleRepo) ListLogs(ctx context.Context, appointmentID string) ([]models.AppointmentLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.AppointmentLog
	for _, l := range m.logs {
		if l.AppointmentID == appointmentID {
			out = append(out, l)
		}
	}
	return out, nil
}

func containsFold(haystack, needle string) bool {
	h, n := []rune(haystack), []rune(needle)
	lower := func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + 32
		}
		return r
	}
	for i := 0; i+len(n) <= len(h); i++ {
		match := true
		for j := range n {
			if lower(h[i+j]) != lower(n[j]) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func (m *memScheduleRepo) countLive(shopID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, a := range m.appts {
		if a.ShopID == shopID && a.IsLive() {
			n++
		}
	}
	return n
}

func newTestRepo() *memScheduleRepo {
	return &memScheduleRepo{
		services: []models.Service{
			{ID: "svc-1", ShopID: "shop-1", Name: "Haircut", Price: 25.00, DurationMin: 30, Active: true},
		},
	}
}

func bookIntent(service, date, timeOfDay string) *models.BookingIntent {
	return &models.BookingIntent{
		Action: "book",
		Data: models.BookingIntentData{
			Client:  "Maria",
			Phone:   "555-0100",
			Service: service,
			Date:    date,
			Time:    timeOfDay,
		},
	}
}
