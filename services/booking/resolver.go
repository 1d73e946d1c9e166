package booking

import (
	"context"
	"fmt"
	"strings"

	"trimly/models"
	"trimly/utils"

	"go.uber.org/zap"
)

// ResolvedBooking is a booking draft ready for commit: the service the intent
// referred to and its price snapshotted at resolution time.
type ResolvedBooking struct {
	Service models.Service
	Price   float64
}

// resolveAvailability resolves the named service and checks the requested
// slot. The returned draft carries the price snapshot; later service price
// changes never affect a committed appointment.
//
// The slot pre-check here is advisory UX. The unique live-slot index enforced
// at insert time is what actually prevents a double-booking between the check
// and the commit.
func (s *DefaultBookingService) resolveAvailability(ctx context.Context, shopID string, data models.BookingIntentData) (*ResolvedBooking, error) {
	matches, err := s.Repo.FindActiveServicesByName(ctx, shopID, data.Service)
	if err != nil {
		return nil, fmt.Errorf("service lookup failed: %w", err)
	}

	svc, err := pickService(matches, data.Service)
	if err != nil {
		return nil, err
	}

	existing, err := s.Repo.FindLiveAt(ctx, shopID, data.Date, data.Time)
	if err != nil {
		return nil, fmt.Errorf("slot lookup failed: %w", err)
	}
	if len(existing) > 0 {
		utils.GetLogger().Debug("Slot already booked",
			zap.String("shopID", shopID),
			zap.String("date", data.Date),
			zap.String("time", data.Time),
		)
		return nil, ErrSlotConflict
	}

	return &ResolvedBooking{Service: *svc, Price: svc.Price}, nil
}

// pickService turns a partial-match result set into a single winner:
// no matches fails, one match wins, several matches fall back to an exact
// case-insensitive name match and otherwise report the ambiguity with its
// candidates rather than silently picking one.
func pickService(matches []models.Service, requested string) (*models.Service, error) {
	switch len(matches) {
	case 0:
		return nil, ErrServiceNotFound
	case 1:
		return &matches[0], nil
	}

	for i := range matches {
		if strings.EqualFold(matches[i].Name, requested) {
			return &matches[i], nil
		}
	}

	candidates := make([]string, len(matches))
	for i := range matches {
		candidates[i] = matches[i].Name
	}
	return nil, &AmbiguousServiceError{Candidates: candidates}
}
