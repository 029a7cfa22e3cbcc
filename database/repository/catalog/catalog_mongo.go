package catalogRepo

import (
	"context"
	"errors"
	"time"

	"fixify/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no service matches the given id.
var ErrNotFound = errors.New("service not found")

func (r *mongoServiceRepo) Create(ctx context.Context, svc *models.Service) error {
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	now := time.Now()
	svc.CreatedAt = now
	svc.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, svc)
	return err
}

func (r *mongoServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	var svc models.Service
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &svc, nil
}

func (r *mongoServiceRepo) Update(ctx context.Context, svc *models.Service) error {
	svc.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": svc.ID}, svc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoServiceRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Service, error) {
	return r.list(ctx, bson.M{"provider_id": providerID})
}

// ListActive returns active listings, optionally filtered by category.
func (r *mongoServiceRepo) ListActive(ctx context.Context, category string) ([]models.Service, error) {
	filter := bson.M{"active": true}
	if category != "" {
		filter["category"] = category
	}
	return r.list(ctx, filter)
}

func (r *mongoServiceRepo) list(ctx context.Context, filter bson.M) ([]models.Service, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}
