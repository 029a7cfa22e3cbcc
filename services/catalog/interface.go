package catalog

import (
	"context"

	"fixify/database/repository"
	"fixify/models"
)

// ServiceInput is a provider-authored listing payload.
type ServiceInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" binding:"required"`
	BasePrice   float64 `json:"basePrice" binding:"required,gt=0"`
}

// CatalogService manages provider service listings.
type CatalogService interface {
	CreateService(ctx context.Context, principal models.Principal, input ServiceInput) (*models.Service, error)
	UpdateService(ctx context.Context, principal models.Principal, id string, input ServiceInput) (*models.Service, error)
	DeactivateService(ctx context.Context, principal models.Principal, id string) error
	ListProviderServices(ctx context.Context, providerID string) ([]models.Service, error)
	BrowseServices(ctx context.Context, category string) ([]models.Service, error)
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo repository.ServiceRepository
}
