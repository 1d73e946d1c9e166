package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"trimly/models"
)

func TestAttemptBooking_CreatesAppointmentAndLog(t *testing.T) {
	repo := newTestRepo()
	svc := NewDefaultBookingService(repo)

	appt, err := svc.AttemptBooking(context.Background(), "shop-1", bookIntent("Haircut", "2024-01-15", "15:00"), models.ProvenanceAssistant)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if appt.Status != models.StatusConfirmed {
		t.Errorf("expected status confirmed, got %s", appt.Status)
	}
	if appt.Price != 25.00 {
		t.Errorf("expected price snapshot 25.00, got %.2f", appt.Price)
	}
	if appt.Provenance != models.ProvenanceAssistant {
		t.Errorf("expected assistant provenance, got %s", appt.Provenance)
	}
	if appt.ServiceID != "svc-1" {
		t.Errorf("expected resolved service svc-1, got %s", appt.ServiceID)
	}

	logs, err := repo.ListLogs(context.Background(), appt.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 1 || logs[0].Action != models.LogCreated {
		t.Fatalf("expected exactly one 'created' log entry, got %+v", logs)
	}
}

func TestAttemptBooking_PriceSnapshotSurvivesPriceChange(t *testing.T) {
	repo := newTestRepo()
	svc := NewDefaultBookingService(repo)

	appt, err := svc.AttemptBooking(context.Background(), "shop-1", bookIntent("Haircut", "2024-01-15", "15:00"), models.ProvenanceAssistant)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.mu.Lock()
	repo.services[0].Price = 40.00
	repo.mu.Unlock()

	got, err := svc.GetAppointment(context.Background(), "shop-1", appt.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Price != 25.00 {
		t.Errorf("expected snapshot price 25.00 after service price change, got %.2f", got.Price)
	}
}

func TestAttemptBooking_SlotConflict(t *testing.T) {
	repo := newTestRepo()
	svc := NewDefaultBookingService(repo)

	if _, err := svc.AttemptBooking(context.Background(), "shop-1", bookIntent("Haircut", "2024-01-15", "14:00"), models.ProvenanceHuman); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	_, err := svc.AttemptBooking(context.Background(), "shop-1", bookIntent("Haircut", "2024-01-15", "14:00"), models.ProvenanceAssistant)
	if !errors.Is(err, ErrSlotConflict) {
		t.Fatalf("expected ErrSlotConflict, got %v", err)
	}
	if n := repo.countLive("shop-1"); n != 1 {
		t.Errorf("expected 1 live appointment after conflict, got %d", n)
	}
}

func TestAttemptBooking_ServiceNotFound(t *testing.T) {
	repo := newTestRepo()
	svc := NewDefaultBookingService(repo)

	_, err := svc.AttemptBooking(context.Background(), "shop-1", bookIntent("Massage", "2024-01-15", "15:00"), models.ProvenanceAssistant)
	if !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
	if n := repo.countLive("shop-1"); n != 0 {
		t.Errorf("expected no appointments, got %d", n)
	}
	if len(repo.logs) != 0 {
		t.Errorf("expected no log entries, got %d", len(repo.logs))
	}
}

func TestCancelThenRebookSameSlot(t *testing.T) {
	repo := newTestRepo()
	svc := NewDefaultBookingService(repo)
	ctx := context.Background()

	first, err := svc.AttemptBooking(ctx, "shop-1", bookIntent("Haircut", "2024-01-15", "14:00"), models.ProvenanceAssistant)
	if err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	cancelled, err := svc.CancelAppointment(ctx, "shop-1", first.ID)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if cancelled.Status != models.StatusCancelled {
		t.Fatalf("expected cancelled status, got %s", cancelled.Status)
	}

	second, err := svc.AttemptBooking(ctx, "shop-1", bookIntent("Haircut", "2024-01-15", "14:00"), models.ProvenanceAssistant)
	if err != nil {
		t.Fatalf("rebooking freed slot failed: %v", err)
	}
	if second.ID == first.ID {
		t.Error("rebooking must create a new appointment")
	}

	// The cancelled record is retained, not deleted.
	if _, err := svc.GetAppointment(ctx, "shop-1", first.ID); err != nil {
		t.Errorf("cancelled appointment should still be readable: %v", err)
	}
}

func TestConcurrentBooking_OnlyOneSucceeds(t *testing.T) {
	repo := newTestRepo()
	svc := NewDefaultBookingService(repo)

	const attempts = 8
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AttemptBooking(context.Background(), "shop-1", bookIntent("Haircut", "2024-01-15", "14:00"), models.ProvenanceAssistant)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, conflicts int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrSlotConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if ok != 1 {
		t.Fatalf("expected exactly one successful booking, got %d", ok)
	}
	if conflicts != attempts-1 {
		t.Fatalf("expected %d conflicts, got %d", attempts-1, conflicts)
	}
	if n := repo.countLive("shop-1"); n != 1 {
		t.Fatalf("expected 1 live appointment, got %d", n)
	}
}
