package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"trimly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Report aggregates appointment statistics for the trailing period of days.
func (r *MongoScheduleRepo) Report(ctx context.Context, shopID string, days int) (*models.Report, error) {
	since := time.Now().AddDate(0, 0, -days)
	match := bson.M{"shop_id": shopID, "created_at": bson.M{"$gte": since}}

	report := &models.Report{}

	summaryPipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{
			"_id":            nil,
			"total":          bson.M{"$sum": 1},
			"confirmed":      bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$status", models.StatusConfirmed}}, 1, 0}}},
			"completed":      bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$status", models.StatusCompleted}}, 1, 0}}},
			"cancelled":      bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$status", models.StatusCancelled}}, 1, 0}}},
			"revenue":        bson.M{"$sum": bson.M{"$cond": bson.A{"$paid", "$price", 0}}},
			"average_ticket": bson.M{"$avg": "$price"},
		}},
	}
	cursor, err := r.apptColl.Aggregate(ctx, summaryPipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate report summary: %w", err)
	}
	var summaries []models.ReportSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode report summary: %w", err)
	}
	if len(summaries) > 0 {
		report.Summary = summaries[0]
	}

	topPipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{
			"_id":     "$service_id",
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$price"},
		}},
		{"$sort": bson.M{"count": -1}},
		{"$limit": 5},
		{"$lookup": bson.M{
			"from":         "services",
			"localField":   "_id",
			"foreignField": "id",
			"as":           "service",
		}},
		{"$addFields": bson.M{"name": bson.M{"$first": "$service.name"}}},
		{"$project": bson.M{"service": 0}},
	}
	cursor, err = r.apptColl.Aggregate(ctx, topPipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate top services: %w", err)
	}
	if err := cursor.All(ctx, &report.TopServices); err != nil {
		return nil, fmt.Errorf("failed to decode top services: %w", err)
	}

	dailyPipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{
			"_id":     "$date",
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$price"},
		}},
		{"$sort": bson.M{"_id": -1}},
	}
	cursor, err = r.apptColl.Aggregate(ctx, dailyPipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily volume: %w", err)
	}
	if err := cursor.All(ctx, &report.Daily); err != nil {
		return nil, fmt.Errorf("failed to decode daily volume: %w", err)
	}

	return report, nil
}
