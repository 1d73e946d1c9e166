package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"trimly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateAppointmentWithLog inserts the appointment document and its creation
// log entry in one transaction. Either both become visible or neither does.
// A collision on the live-slot unique index aborts the transaction and is
// reported as ErrSlotTaken.
func (r *MongoScheduleRepo) CreateAppointmentWithLog(ctx context.Context, appt *models.Appointment, entry *models.AppointmentLog) error {
	appt.Live = appt.IsLive()

	client := r.apptColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.apptColl.InsertOne(sc, appt); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrSlotTaken
			}
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		if _, err := r.logColl.InsertOne(sc, entry); err != nil {
			return fmt.Errorf("insert appointment log failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotTaken {
			return ErrSlotTaken
		}
		return fmt.Errorf("appointment transaction failed: %w", err)
	}

	return nil
}

// UpdateAppointmentWithLog applies the partial update and appends the log
// entry in one transaction, returning the updated document. Reschedules that
// collide with an occupied live slot return ErrSlotTaken.
func (r *MongoScheduleRepo) UpdateAppointmentWithLog(ctx context.Context, shopID, id string, upd *models.AppointmentUpdate, entry *models.AppointmentLog) (*models.Appointment, error) {
	setDoc := bson.M{"updated_at": time.Now()}
	if upd.Status != nil {
		setDoc["status"] = *upd.Status
		setDoc["live"] = *upd.Status != models.StatusCancelled
	}
	if upd.Paid != nil {
		setDoc["paid"] = *upd.Paid
	}
	if upd.PaymentMethod != nil {
		setDoc["payment_method"] = *upd.PaymentMethod
	}
	if upd.Notes != nil {
		setDoc["notes"] = *upd.Notes
	}
	if upd.Date != nil {
		setDoc["date"] = *upd.Date
	}
	if upd.Time != nil {
		setDoc["time"] = *upd.Time
	}

	client := r.apptColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var updated models.Appointment
	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{"id": id, "shop_id": shopID}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err := r.apptColl.FindOneAndUpdate(sc, filter, bson.M{"$set": setDoc}, opts).Decode(&updated)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return ErrNotFound
			}
			if mongo.IsDuplicateKeyError(err) {
				return ErrSlotTaken
			}
			return fmt.Errorf("update appointment failed: %w", err)
		}
		if _, err := r.logColl.InsertOne(sc, entry); err != nil {
			return fmt.Errorf("insert appointment log failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotTaken || err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("appointment update transaction failed: %w", err)
	}

	return &updated, nil
}
