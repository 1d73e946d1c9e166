package scheduleRepo

import (
	"context"
	"fmt"

	"trimly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAppointmentByID retrieves one appointment scoped to a shop.
func (r *MongoScheduleRepo) GetAppointmentByID(ctx context.Context, shopID, id string) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.apptColl.FindOne(ctx, bson.M{"id": id, "shop_id": shopID}).Decode(&appt)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appt, nil
}

// ListAppointments retrieves a shop's appointments ordered by date and time.
func (r *MongoScheduleRepo) ListAppointments(ctx context.Context, shopID string, filter AppointmentFilter) ([]models.Appointment, error) {
	query := bson.M{"shop_id": shopID}
	if filter.Date != "" {
		query["date"] = filter.Date
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.apptColl.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// FindLiveAt returns non-cancelled appointments holding the exact slot.
func (r *MongoScheduleRepo) FindLiveAt(ctx context.Context, shopID, date, timeOfDay string) ([]models.Appointment, error) {
	query := bson.M{"shop_id": shopID, "date": date, "time": timeOfDay, "live": true}
	cursor, err := r.apptColl.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query slot %s %s: %w", date, timeOfDay, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode slot appointments: %w", err)
	}
	return appts, nil
}

// UpcomingLiveSlots returns booked (date, time) pairs from the given date
// onward. Client identity is deliberately projected away.
func (r *MongoScheduleRepo) UpcomingLiveSlots(ctx context.Context, shopID, fromDate string) ([]models.SlotRef, error) {
	query := bson.M{"shop_id": shopID, "live": true, "date": bson.M{"$gte": fromDate}}
	opts := options.Find().
		SetProjection(bson.M{"date": 1, "time": 1, "_id": 0}).
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})

	cursor, err := r.apptColl.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.SlotRef
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode upcoming slots: %w", err)
	}
	return slots, nil
}

// ListLogs returns an appointment's log entries, oldest first.
func (r *MongoScheduleRepo) ListLogs(ctx context.Context, appointmentID string) ([]models.AppointmentLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.logColl.Find(ctx, bson.M{"appointment_id": appointmentID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointment logs: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.AppointmentLog
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode appointment logs: %w", err)
	}
	return entries, nil
}
