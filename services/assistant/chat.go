package assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trimly/models"
	"trimly/services/booking"
	"trimly/utils"

	"go.uber.org/zap"
)

// HandleChat runs one chat-to-booking turn. The assistant's reply is always
// delivered when generation succeeds; recoverable booking failures ride along
// in the response instead of failing the turn.
func (s *DefaultAssistantService) HandleChat(ctx context.Context, shopID, message string) (*models.ChatResponse, error) {
	logger := utils.GetLogger()

	briefing, profile, err := s.BuildBriefing(ctx, shopID)
	if err != nil {
		return nil, err
	}

	apiKey := profile.GeminiAPIKey
	if apiKey == "" {
		apiKey = s.FallbackAPIKey
	}
	if apiKey == "" {
		return nil, booking.ErrConfigMissing
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	genCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	turn, err := s.Generator.Generate(genCtx, apiKey, briefing, message)
	if err != nil {
		// A failed or timed-out generation never reaches the booking step.
		logger.Error("Assistant generation failed", zap.String("shopID", shopID), zap.Error(err))
		return nil, booking.ErrAssistantUnavailable
	}

	resp := &models.ChatResponse{AssistantReply: turn.Text}

	intent := turn.Call
	if intent != nil {
		if verr := s.Validate.Struct(intent); verr != nil {
			logger.Debug("Dropping malformed function-call intent", zap.Error(verr))
			intent = nil
		}
	}
	if intent == nil {
		intent = ExtractIntent(turn.Text, s.Validate)
	}
	if intent == nil {
		return resp, nil
	}

	appt, err := s.Booking.AttemptBooking(ctx, shopID, intent, models.ProvenanceAssistant)
	if err != nil {
		var ambiguous *booking.AmbiguousServiceError
		var bookErr *booking.BookingError
		switch {
		case errors.As(err, &ambiguous):
			resp.BookingError = fmt.Sprintf("service name is ambiguous: %v", ambiguous.Candidates)
			return resp, nil
		case errors.As(err, &bookErr) && (bookErr == booking.ErrServiceNotFound || bookErr == booking.ErrSlotConflict):
			resp.BookingError = bookErr.Message
			return resp, nil
		default:
			// Persistence failures are fatal to the turn; the transaction
			// guarantees no partial record was written.
			return nil, err
		}
	}

	if s.Briefings != nil {
		s.Briefings.Invalidate(ctx, shopID)
	}
	resp.BookingCreated = appt
	return resp, nil
}
