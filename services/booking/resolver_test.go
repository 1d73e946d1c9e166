package booking

import (
	"context"
	"errors"
	"testing"

	"trimly/models"
)

func TestPickService_NoMatch(t *testing.T) {
	_, err := pickService(nil, "massage")
	if !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestPickService_UniqueMatch(t *testing.T) {
	matches := []models.Service{{ID: "a", Name: "Beard Trim"}}
	svc, err := pickService(matches, "beard")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.ID != "a" {
		t.Errorf("expected service a, got %s", svc.ID)
	}
}

func TestPickService_ExactNameWinsOverPartial(t *testing.T) {
	matches := []models.Service{
		{ID: "a", Name: "Haircut Deluxe"},
		{ID: "b", Name: "Haircut"},
	}
	svc, err := pickService(matches, "haircut")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.ID != "b" {
		t.Errorf("expected exact match b, got %s", svc.ID)
	}
}

func TestPickService_AmbiguousReportsCandidates(t *testing.T) {
	matches := []models.Service{
		{ID: "a", Name: "Haircut Deluxe"},
		{ID: "b", Name: "Haircut Kids"},
	}
	_, err := pickService(matches, "haircut")

	var ambiguous *AmbiguousServiceError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("expected AmbiguousServiceError, got %v", err)
	}
	if len(ambiguous.Candidates) != 2 {
		t.Errorf("expected 2 candidates, got %v", ambiguous.Candidates)
	}
}

func TestResolveAvailability_CaseInsensitivePartial(t *testing.T) {
	repo := newTestRepo()
	svc := NewDefaultBookingService(repo)

	resolved, err := svc.resolveAvailability(context.Background(), "shop-1", models.BookingIntentData{
		Client: "Maria", Phone: "555-0100", Service: "hairc", Date: "2024-01-15", Time: "15:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Service.ID != "svc-1" || resolved.Price != 25.00 {
		t.Errorf("unexpected resolution: %+v", resolved)
	}
}
