package assistant

import (
	"context"
	"time"

	profileRepo "trimly/database/repository/profile"
	scheduleRepo "trimly/database/repository/schedule"
	"trimly/models"
	"trimly/services/booking"

	"github.com/go-playground/validator/v10"
)

// TextGenerator is the generation backend: briefing and message in, one
// assistant turn out. The API key is supplied per request so no key ever
// lives in process-wide state.
type TextGenerator interface {
	Generate(ctx context.Context, apiKey, briefing, message string) (*models.AssistantTurn, error)
}

// AssistantService is the chat-to-booking entry point exposed to the request
// layer.
type AssistantService interface {
	// HandleChat runs one conversational turn: build the briefing, call the
	// generator, extract any booking intent and attempt the booking.
	HandleChat(ctx context.Context, shopID, message string) (*models.ChatResponse, error)
}

// DefaultAssistantService is the production AssistantService.
type DefaultAssistantService struct {
	Profiles  profileRepo.ProfileRepository
	Schedule  scheduleRepo.ScheduleRepository
	Booking   booking.BookingService
	Generator TextGenerator
	Briefings *BriefingCache
	Validate  *validator.Validate
	// Timeout bounds the generation call; a timed-out call never books.
	Timeout time.Duration
	// FallbackAPIKey is used for shops without their own Gemini key.
	FallbackAPIKey string
}

// NewDefaultAssistantService wires the chat pipeline over its dependencies.
// Timeout and FallbackAPIKey are optional and set by the caller.
func NewDefaultAssistantService(profiles profileRepo.ProfileRepository, schedule scheduleRepo.ScheduleRepository, book booking.BookingService, gen TextGenerator, briefings *BriefingCache) *DefaultAssistantService {
	return &DefaultAssistantService{
		Profiles:  profiles,
		Schedule:  schedule,
		Booking:   book,
		Generator: gen,
		Briefings: briefings,
		Validate:  validator.New(),
	}
}
