package assistant

import (
	"encoding/json"
	"strings"

	"trimly/models"
	"trimly/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ExtractIntent scans assistant free text for an embedded booking intent.
// The first JSON object in the text that decodes to a valid "book" intent
// wins; later candidates are ignored. Anything malformed or incomplete is
// logged and dropped, never surfaced as an error: a turn without an intent
// is a normal conversational turn.
func ExtractIntent(text string, validate *validator.Validate) *models.BookingIntent {
	for i := 0; i < len(text); i++ {
		if text[i] != '{' {
			continue
		}

		dec := json.NewDecoder(strings.NewReader(text[i:]))
		var intent models.BookingIntent
		if err := dec.Decode(&intent); err != nil {
			continue
		}
		if intent.Action != "book" {
			continue
		}
		if err := validate.Struct(&intent); err != nil {
			utils.GetLogger().Debug("Dropping malformed booking intent", zap.Error(err))
			// Skip past this object so a later block can still match.
			i += int(dec.InputOffset()) - 1
			continue
		}
		return &intent
	}
	return nil
}
