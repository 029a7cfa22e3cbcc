package catalogRepo

import (
	"context"

	"fixify/database"
	"fixify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceRepository defines the interface for catalog data access.
type ServiceRepository interface {
	Create(ctx context.Context, svc *models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	Update(ctx context.Context, svc *models.Service) error
	ListByProvider(ctx context.Context, providerID string) ([]models.Service, error)
	ListActive(ctx context.Context, category string) ([]models.Service, error)
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo returns a ServiceRepository backed by MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	return &mongoServiceRepo{
		coll: database.DB().Collection("services"),
	}
}
