package scheduleRepo

import (
	"trimly/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoScheduleRepo implements ScheduleRepository backed by MongoDB.
type MongoScheduleRepo struct {
	serviceColl *mongo.Collection
	apptColl    *mongo.Collection
	logColl     *mongo.Collection
	clientColl  *mongo.Collection
}

// NewMongoScheduleRepo creates a schedule repository over the default database.
func NewMongoScheduleRepo() *MongoScheduleRepo {
	db := database.DB()
	return &MongoScheduleRepo{
		serviceColl: db.Collection("services"),
		apptColl:    db.Collection("appointments"),
		logColl:     db.Collection("appointment_logs"),
		clientColl:  db.Collection("clients"),
	}
}
