package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the schedule collections.
// The partial unique index on (shop_id, date, time) over live appointments is
// what actually prevents double-booking under concurrent writers; the
// resolver's pre-check is advisory only.
func (r *MongoScheduleRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	apptIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{{Key: "shop_id", Value: 1}, {Key: "date", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"live": true}).
				SetName("unique_live_slot"),
		},
		{
			Keys:    bson.D{{Key: "shop_id", Value: 1}, {Key: "date", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("shop_date_status_idx"),
		},
	}
	if _, err := r.apptColl.Indexes().CreateMany(ctx, apptIndexes); err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}

	serviceIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "shop_id", Value: 1}, {Key: "active", Value: 1}},
			Options: options.Index().SetName("shop_active_idx"),
		},
	}
	if _, err := r.serviceColl.Indexes().CreateMany(ctx, serviceIndexes); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}

	logIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "appointment_id", Value: 1}, {Key: "created_at", Value: 1}},
			Options: options.Index().SetName("appointment_created_idx"),
		},
	}
	if _, err := r.logColl.Indexes().CreateMany(ctx, logIndexes); err != nil {
		return fmt.Errorf("failed to create log indexes: %w", err)
	}

	return nil
}
