package catalog

import (
	"context"
	"errors"
	"fmt"

	"fixify/models"
)

// ErrNotOwner is returned when a provider touches another provider's listing.
var ErrNotOwner = errors.New("service belongs to another provider")

// CreateService publishes a new listing owned by the acting provider.
func (svc *DefaultCatalogService) CreateService(ctx context.Context, principal models.Principal, input ServiceInput) (*models.Service, error) {
	if principal.Role != models.RoleProvider {
		return nil, errors.New("only providers can publish services")
	}

	service := &models.Service{
		ProviderID:  principal.ID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		BasePrice:   input.BasePrice,
		Active:      true,
	}
	if err := svc.Repo.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return service, nil
}

// UpdateService edits an owned listing.
func (svc *DefaultCatalogService) UpdateService(ctx context.Context, principal models.Principal, id string, input ServiceInput) (*models.Service, error) {
	service, err := svc.owned(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	service.Name = input.Name
	service.Description = input.Description
	service.Category = input.Category
	service.BasePrice = input.BasePrice
	if err := svc.Repo.Update(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return service, nil
}

// DeactivateService hides a listing from customers. Existing bookings keep
// their snapshot.
func (svc *DefaultCatalogService) DeactivateService(ctx context.Context, principal models.Principal, id string) error {
	service, err := svc.owned(ctx, principal, id)
	if err != nil {
		return err
	}
	service.Active = false
	return svc.Repo.Update(ctx, service)
}

// ListProviderServices returns all of a provider's listings, active or not.
func (svc *DefaultCatalogService) ListProviderServices(ctx context.Context, providerID string) ([]models.Service, error) {
	return svc.Repo.ListByProvider(ctx, providerID)
}

// BrowseServices returns active listings, optionally filtered by category.
func (svc *DefaultCatalogService) BrowseServices(ctx context.Context, category string) ([]models.Service, error) {
	return svc.Repo.ListActive(ctx, category)
}

func (svc *DefaultCatalogService) owned(ctx context.Context, principal models.Principal, id string) (*models.Service, error) {
	service, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if principal.Role != models.RoleAdmin && service.ProviderID != principal.ID {
		return nil, ErrNotOwner
	}
	return service, nil
}
