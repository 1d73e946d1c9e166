package assistant

import (
	"context"
	"fmt"
	"strings"

	"trimly/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// bookTool declares the structured booking channel. The model is told to call
// book_appointment once the customer has confirmed all details, which makes
// intent extraction deterministic; scanning the reply text for a JSON block
// remains as a compatibility fallback only.
var bookTool = &genai.Tool{
	FunctionDeclarations: []*genai.FunctionDeclaration{{
		Name:        "book_appointment",
		Description: "Book a confirmed appointment for the customer",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"client":  {Type: genai.TypeString, Description: "Customer full name"},
				"phone":   {Type: genai.TypeString, Description: "Customer phone number"},
				"service": {Type: genai.TypeString, Description: "Requested service name"},
				"date":    {Type: genai.TypeString, Description: "Date in YYYY-MM-DD"},
				"time":    {Type: genai.TypeString, Description: "Time in HH:MM"},
			},
			Required: []string{"client", "phone", "service", "date", "time"},
		},
	}},
}

// GeminiGenerator implements TextGenerator over the Gemini API.
type GeminiGenerator struct {
	modelName string
}

// NewGeminiGenerator returns a generator for the default chat model.
func NewGeminiGenerator() *GeminiGenerator {
	return &GeminiGenerator{modelName: "models/gemini-1.5-flash"}
}

// Generate runs one turn. The client is created per call because the API key
// is per shop.
func (g *GeminiGenerator) Generate(ctx context.Context, apiKey, briefing, message string) (*models.AssistantTurn, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.modelName)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(briefing)}}
	model.Tools = []*genai.Tool{bookTool}

	resp, err := model.GenerateContent(ctx, genai.Text(message))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	turn := &models.AssistantTurn{}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			sb.WriteString(string(p))
		case genai.FunctionCall:
			if p.Name == "book_appointment" && turn.Call == nil {
				turn.Call = intentFromArgs(p.Args)
			}
		}
	}
	turn.Text = sb.String()
	return turn, nil
}

func intentFromArgs(args map[string]any) *models.BookingIntent {
	return &models.BookingIntent{
		Action: "book",
		Data: models.BookingIntentData{
			Client:  stringArg(args, "client"),
			Phone:   stringArg(args, "phone"),
			Service: stringArg(args, "service"),
			Date:    stringArg(args, "date"),
			Time:    stringArg(args, "time"),
		},
	}
}

func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}
