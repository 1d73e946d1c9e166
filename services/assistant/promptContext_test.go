package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"trimly/services/booking"
)

func TestBuildBriefing_Contents(t *testing.T) {
	svc := newTestAssistant(nil, nil)

	briefing, profile, err := svc.BuildBriefing(context.Background(), "shop-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile == nil || profile.Name != "Corner Barbershop" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	for _, want := range []string{
		"Corner Barbershop",
		"12 High Street",
		"Haircut: $25.00 (30 min)",
		"Beard Trim: $15.00 (15 min)",
		"monday: 09:00 to 18:00 (break 12:00 to 13:00)",
		"saturday: 09:00 to 14:00",
		"Interval between appointments: 30 minutes",
		"Minimum notice: 60 minutes",
		"2024-01-15 at 14:00",
		`"action":"book"`,
	} {
		if !strings.Contains(briefing, want) {
			t.Errorf("briefing missing %q", want)
		}
	}
}

func TestBuildBriefing_NoClientIdentity(t *testing.T) {
	svc := newTestAssistant(nil, nil)

	briefing, _, err := svc.BuildBriefing(context.Background(), "shop-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Booked slots are exposed as date and time only.
	for _, leak := range []string{"Maria", "555-0100"} {
		if strings.Contains(briefing, leak) {
			t.Errorf("briefing leaks client identity: %q", leak)
		}
	}
}

func TestBuildBriefing_InactiveHoursSkipped(t *testing.T) {
	svc := newTestAssistant(nil, nil)
	profiles := svc.Profiles.(*stubProfiles)
	profiles.hours[1].Active = false

	briefing, _, err := svc.BuildBriefing(context.Background(), "shop-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(briefing, "saturday") {
		t.Error("inactive weekday should not appear in briefing")
	}
}

func TestBuildBriefing_MissingProfile(t *testing.T) {
	svc := newTestAssistant(nil, nil)
	svc.Profiles.(*stubProfiles).profile = nil

	_, _, err := svc.BuildBriefing(context.Background(), "shop-1")
	if !errors.Is(err, booking.ErrConfigMissing) {
		t.Fatalf("expected ErrConfigMissing, got %v", err)
	}
}
