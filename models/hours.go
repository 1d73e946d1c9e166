package models

import (
	"errors"
	"fmt"
)

// BusinessHours holds one shop's operating window for a single weekday.
// Times are "HH:MM" strings. When a break is set, the invariant is
// open < break_start < break_end < close; otherwise open < close.
type BusinessHours struct {
	ShopID     string `bson:"shop_id" json:"shop_id"`
	Weekday    string `bson:"weekday" json:"weekday" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Open       string `bson:"open" json:"open" validate:"required,datetime=15:04"`
	Close      string `bson:"close" json:"close" validate:"required,datetime=15:04"`
	BreakStart string `bson:"break_start,omitempty" json:"break_start,omitempty" validate:"omitempty,datetime=15:04"`
	BreakEnd   string `bson:"break_end,omitempty" json:"break_end,omitempty" validate:"omitempty,datetime=15:04"`
	Active     bool   `bson:"active" json:"active"`
}

// CheckWindow verifies the ordering invariant. Zero-padded "HH:MM" strings
// compare correctly lexicographically; format is enforced by the validate tags.
func (h *BusinessHours) CheckWindow() error {
	hasBreak := h.BreakStart != "" || h.BreakEnd != ""
	if hasBreak {
		if h.BreakStart == "" || h.BreakEnd == "" {
			return errors.New("break requires both start and end")
		}
		if !(h.Open < h.BreakStart && h.BreakStart < h.BreakEnd && h.BreakEnd < h.Close) {
			return fmt.Errorf("hours for %s must satisfy open < break start < break end < close", h.Weekday)
		}
		return nil
	}
	if !(h.Open < h.Close) {
		return fmt.Errorf("hours for %s must satisfy open < close", h.Weekday)
	}
	return nil
}
