package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	profileRepo "trimly/database/repository/profile"
	"trimly/models"
	"trimly/services/booking"
)

// BuildBriefing assembles the deterministic context briefing sent to the
// assistant: shop identity and contact, active services, weekly hours, the
// scheduling policy, and already-booked upcoming slots. Client identity never
// enters the briefing.
//
// Returns booking.ErrConfigMissing when the shop has no profile; the pipeline
// must not proceed without a configured identity.
func (s *DefaultAssistantService) BuildBriefing(ctx context.Context, shopID string) (string, *models.ShopProfile, error) {
	profile, err := s.Profiles.GetProfile(ctx, shopID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return "", nil, booking.ErrConfigMissing
		}
		return "", nil, fmt.Errorf("profile lookup failed: %w", err)
	}

	if s.Briefings != nil {
		if cached, ok := s.Briefings.Get(ctx, shopID); ok {
			return cached, profile, nil
		}
	}

	services, err := s.Schedule.ListServices(ctx, shopID, true)
	if err != nil {
		return "", nil, fmt.Errorf("service listing failed: %w", err)
	}
	hours, err := s.Profiles.GetHours(ctx, shopID)
	if err != nil {
		return "", nil, fmt.Errorf("hours lookup failed: %w", err)
	}
	today := time.Now().Format("2006-01-02")
	slots, err := s.Schedule.UpcomingLiveSlots(ctx, shopID, today)
	if err != nil {
		return "", nil, fmt.Errorf("booked slots lookup failed: %w", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are the virtual assistant of %s.\n\n", profile.Name)

	sb.WriteString("SHOP INFORMATION:\n")
	fmt.Fprintf(&sb, "- Name: %s\n", profile.Name)
	if profile.Address != "" {
		fmt.Fprintf(&sb, "- Address: %s\n", profile.Address)
	}
	if profile.Phone != "" {
		fmt.Fprintf(&sb, "- Phone: %s\n", profile.Phone)
	}
	if profile.WhatsApp != "" {
		fmt.Fprintf(&sb, "- WhatsApp: %s\n", profile.WhatsApp)
	}

	sb.WriteString("\nAVAILABLE SERVICES:\n")
	for _, svc := range services {
		fmt.Fprintf(&sb, "- %s: $%.2f (%d min)\n", svc.Name, svc.Price, svc.DurationMin)
	}

	sb.WriteString("\nOPENING HOURS:\n")
	for _, h := range hours {
		if !h.Active {
			continue
		}
		if h.BreakStart != "" && h.BreakEnd != "" {
			fmt.Fprintf(&sb, "- %s: %s to %s (break %s to %s)\n", h.Weekday, h.Open, h.Close, h.BreakStart, h.BreakEnd)
		} else {
			fmt.Fprintf(&sb, "- %s: %s to %s\n", h.Weekday, h.Open, h.Close)
		}
	}

	sb.WriteString("\nBOOKING RULES:\n")
	fmt.Fprintf(&sb, "- Interval between appointments: %d minutes\n", profile.SlotIntervalMin)
	fmt.Fprintf(&sb, "- Minimum notice: %d minutes\n", profile.MinNoticeMin)
	sb.WriteString("- Never book a slot that is already taken\n")

	sb.WriteString("\nSLOTS ALREADY TAKEN (upcoming days):\n")
	for _, slot := range slots {
		fmt.Fprintf(&sb, "- %s at %s\n", slot.Date, slot.Time)
	}

	sb.WriteString(`
INSTRUCTIONS:
1. Be courteous and professional
2. When the customer wants to book, collect: name, phone, desired service, date and time
3. Check availability before confirming
4. If the slot is taken, suggest alternatives
5. Confirm all details with the customer before finalizing
6. To finalize, call the book_appointment function. If you cannot call functions, reply with JSON in this exact format:
{"action":"book","data":{"client":"Customer Name","phone":"(11) 99999-9999","service":"Service Name","date":"2024-01-15","time":"14:30"}}
`)

	briefing := sb.String()
	if s.Briefings != nil {
		s.Briefings.Set(ctx, shopID, briefing)
	}
	return briefing, profile, nil
}
