package scheduleRepo

import (
	"context"
	"fmt"
	"regexp"

	"trimly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateService inserts a new service document.
func (r *MongoScheduleRepo) CreateService(ctx context.Context, svc *models.Service) error {
	if _, err := r.serviceColl.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// UpdateService modifies an existing service document.
func (r *MongoScheduleRepo) UpdateService(ctx context.Context, svc *models.Service) error {
	filter := bson.M{"id": svc.ID, "shop_id": svc.ShopID}
	result, err := r.serviceColl.UpdateOne(ctx, filter, bson.M{"$set": svc})
	if err != nil {
		return fmt.Errorf("failed to update service with id %s: %w", svc.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetServiceActive toggles a service's active flag.
func (r *MongoScheduleRepo) SetServiceActive(ctx context.Context, shopID, id string, active bool) error {
	filter := bson.M{"id": id, "shop_id": shopID}
	result, err := r.serviceColl.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"active": active}})
	if err != nil {
		return fmt.Errorf("failed to set service active flag for %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GetServiceByID retrieves a service by its unique ID, scoped to a shop.
func (r *MongoScheduleRepo) GetServiceByID(ctx context.Context, shopID, id string) (*models.Service, error) {
	var svc models.Service
	err := r.serviceColl.FindOne(ctx, bson.M{"id": id, "shop_id": shopID}).Decode(&svc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	return &svc, nil
}

// ListServices retrieves a shop's services sorted by name.
func (r *MongoScheduleRepo) ListServices(ctx context.Context, shopID string, activeOnly bool) ([]models.Service, error) {
	query := bson.M{"shop_id": shopID}
	if activeOnly {
		query["active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.serviceColl.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

// FindActiveServicesByName returns active services whose name contains the
// fragment, case-insensitive. The fragment is regex-quoted before matching.
func (r *MongoScheduleRepo) FindActiveServicesByName(ctx context.Context, shopID, fragment string) ([]models.Service, error) {
	query := bson.M{
		"shop_id": shopID,
		"active":  true,
		"name":    primitive.Regex{Pattern: regexp.QuoteMeta(fragment), Options: "i"},
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.serviceColl.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search services by name: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode service matches: %w", err)
	}
	return services, nil
}

// CreateClient inserts a new client directory entry.
func (r *MongoScheduleRepo) CreateClient(ctx context.Context, client *models.Client) error {
	if _, err := r.clientColl.InsertOne(ctx, client); err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// ListClients retrieves a shop's client directory sorted by name.
func (r *MongoScheduleRepo) ListClients(ctx context.Context, shopID string) ([]models.Client, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.clientColl.Find(ctx, bson.M{"shop_id": shopID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("failed to decode clients: %w", err)
	}
	return clients, nil
}
