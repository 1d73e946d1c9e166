package booking

import "trimly/models"

// allowedTransitions encodes the appointment status machine:
// pending -> confirmed -> completed, with cancelled reachable from pending or
// confirmed. Completed and cancelled are terminal.
var allowedTransitions = map[string][]string{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusCompleted, models.StatusCancelled},
	models.StatusCompleted: {},
	models.StatusCancelled: {},
}

// ValidTransition reports whether from -> to is a legal status change.
// Same-status updates are no-ops only while the appointment is still open;
// terminal states admit no transition at all, not even to themselves.
func ValidTransition(from, to string) bool {
	if from == to {
		return from == models.StatusPending || from == models.StatusConfirmed
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// logActionFor maps a status change to its audit log action.
func logActionFor(status string) string {
	switch status {
	case models.StatusConfirmed:
		return models.LogConfirmed
	case models.StatusCompleted:
		return models.LogCompleted
	case models.StatusCancelled:
		return models.LogCancelled
	default:
		return models.LogUpdated
	}
}
