package profileRepo

import (
	"context"
	"errors"

	"trimly/models"
)

// ErrProfileNotFound is returned when a shop has no stored profile.
var ErrProfileNotFound = errors.New("shop profile not found")

// ProfileRepository provides access to shop profiles and weekly hours.
type ProfileRepository interface {
	// GetProfile retrieves the shop's profile.
	GetProfile(ctx context.Context, shopID string) (*models.ShopProfile, error)
	// UpsertProfile creates or replaces the shop's profile.
	UpsertProfile(ctx context.Context, profile *models.ShopProfile) error
	// GetHours retrieves the shop's weekly operating hours.
	GetHours(ctx context.Context, shopID string) ([]models.BusinessHours, error)
	// UpsertHours creates or replaces one weekday entry.
	UpsertHours(ctx context.Context, hours *models.BusinessHours) error
}
