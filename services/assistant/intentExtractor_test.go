package assistant

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestExtractIntent_NoJSON(t *testing.T) {
	v := validator.New()
	intent := ExtractIntent("Hello! We are open Monday to Saturday, 9am to 6pm.", v)
	if intent != nil {
		t.Fatalf("expected nil intent, got %+v", intent)
	}
}

func TestExtractIntent_ValidBlockInProse(t *testing.T) {
	v := validator.New()
	text := `Great, booking you in now!
{"action":"book","data":{"client":"Maria","phone":"555-0100","service":"Haircut","date":"2024-01-15","time":"14:30"}}
See you then!`

	intent := ExtractIntent(text, v)
	if intent == nil {
		t.Fatal("expected an intent")
	}
	if intent.Data.Client != "Maria" || intent.Data.Service != "Haircut" {
		t.Errorf("unexpected intent data: %+v", intent.Data)
	}
	if intent.Data.Date != "2024-01-15" || intent.Data.Time != "14:30" {
		t.Errorf("unexpected slot: %+v", intent.Data)
	}
}

func TestExtractIntent_FirstWellFormedWins(t *testing.T) {
	v := validator.New()
	text := `{"action":"book","data":{"client":"Maria","phone":"555-0100","service":"Haircut","date":"2024-01-15","time":"14:30"}}
{"action":"book","data":{"client":"Ana","phone":"555-0200","service":"Shave","date":"2024-01-16","time":"10:00"}}`

	intent := ExtractIntent(text, v)
	if intent == nil {
		t.Fatal("expected an intent")
	}
	if intent.Data.Client != "Maria" {
		t.Errorf("expected first intent to win, got %s", intent.Data.Client)
	}
}

func TestExtractIntent_MalformedThenValid(t *testing.T) {
	v := validator.New()
	text := `{"action":"book","data":{"client":"","phone":"","service":"","date":"tomorrow","time":"2pm"}}
Actually here it is:
{"action":"book","data":{"client":"Maria","phone":"555-0100","service":"Haircut","date":"2024-01-15","time":"14:30"}}`

	intent := ExtractIntent(text, v)
	if intent == nil {
		t.Fatal("expected the later valid intent")
	}
	if intent.Data.Client != "Maria" {
		t.Errorf("unexpected client: %s", intent.Data.Client)
	}
}

func TestExtractIntent_NonBookActionIgnored(t *testing.T) {
	v := validator.New()
	text := `{"action":"cancel","data":{"client":"Maria","phone":"555-0100","service":"Haircut","date":"2024-01-15","time":"14:30"}}`
	if intent := ExtractIntent(text, v); intent != nil {
		t.Fatalf("non-book action should be ignored, got %+v", intent)
	}
}

func TestExtractIntent_BadDateDropped(t *testing.T) {
	v := validator.New()
	text := `{"action":"book","data":{"client":"Maria","phone":"555-0100","service":"Haircut","date":"15/01/2024","time":"14:30"}}`
	if intent := ExtractIntent(text, v); intent != nil {
		t.Fatalf("intent with bad date format should be dropped, got %+v", intent)
	}
}

func TestExtractIntent_UnrelatedJSONObject(t *testing.T) {
	v := validator.New()
	text := `Here is our price list: {"haircut": 25, "shave": 15}. Want to book?`
	if intent := ExtractIntent(text, v); intent != nil {
		t.Fatalf("unrelated JSON should be ignored, got %+v", intent)
	}
}
