package profileRepo

import (
	"context"
	"fmt"
	"time"

	"trimly/database"
	"trimly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Canonical weekday order for hours listings.
var weekdayOrder = map[string]int{
	"monday":    0,
	"tuesday":   1,
	"wednesday": 2,
	"thursday":  3,
	"friday":    4,
	"saturday":  5,
	"sunday":    6,
}

// MongoProfileRepo implements ProfileRepository backed by MongoDB.
type MongoProfileRepo struct {
	profileColl *mongo.Collection
	hoursColl   *mongo.Collection
}

// NewMongoProfileRepo creates a profile repository over the default database.
func NewMongoProfileRepo() *MongoProfileRepo {
	db := database.DB()
	return &MongoProfileRepo{
		profileColl: db.Collection("shop_profiles"),
		hoursColl:   db.Collection("business_hours"),
	}
}

// EnsureIndexes creates the necessary indexes on the profile collections.
func (r *MongoProfileRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.profileColl.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "shop_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_shop"),
	}); err != nil {
		return fmt.Errorf("failed to create profile index: %w", err)
	}

	if _, err := r.hoursColl.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "shop_id", Value: 1}, {Key: "weekday", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_shop_weekday"),
	}); err != nil {
		return fmt.Errorf("failed to create hours index: %w", err)
	}

	return nil
}

// GetProfile retrieves the shop's profile.
func (r *MongoProfileRepo) GetProfile(ctx context.Context, shopID string) (*models.ShopProfile, error) {
	var profile models.ShopProfile
	err := r.profileColl.FindOne(ctx, bson.M{"shop_id": shopID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shop profile: %w", err)
	}
	return &profile, nil
}

// UpsertProfile creates or replaces the shop's profile.
func (r *MongoProfileRepo) UpsertProfile(ctx context.Context, profile *models.ShopProfile) error {
	profile.UpdatedAt = time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = profile.UpdatedAt
	}

	filter := bson.M{"shop_id": profile.ShopID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.profileColl.ReplaceOne(ctx, filter, profile, opts); err != nil {
		return fmt.Errorf("failed to upsert shop profile: %w", err)
	}
	return nil
}

// GetHours retrieves the shop's weekly hours in weekday order.
func (r *MongoProfileRepo) GetHours(ctx context.Context, shopID string) ([]models.BusinessHours, error) {
	cursor, err := r.hoursColl.Find(ctx, bson.M{"shop_id": shopID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch business hours: %w", err)
	}
	defer cursor.Close(ctx)

	var hours []models.BusinessHours
	if err := cursor.All(ctx, &hours); err != nil {
		return nil, fmt.Errorf("failed to decode business hours: %w", err)
	}

	// Mongo has no weekday collation; sort here.
	for i := 1; i < len(hours); i++ {
		for j := i; j > 0 && weekdayOrder[hours[j].Weekday] < weekdayOrder[hours[j-1].Weekday]; j-- {
			hours[j], hours[j-1] = hours[j-1], hours[j]
		}
	}
	return hours, nil
}

// UpsertHours creates or replaces one weekday entry.
func (r *MongoProfileRepo) UpsertHours(ctx context.Context, hours *models.BusinessHours) error {
	filter := bson.M{"shop_id": hours.ShopID, "weekday": hours.Weekday}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.hoursColl.ReplaceOne(ctx, filter, hours, opts); err != nil {
		return fmt.Errorf("failed to upsert business hours: %w", err)
	}
	return nil
}
