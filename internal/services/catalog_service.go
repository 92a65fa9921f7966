// internal/services/catalog_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/minshop/storefront-api/internal/catalog"
	"github.com/minshop/storefront-api/internal/models"
)

// CatalogService fronts the product repository. It can reproduce the original
// mock service's artificial response latency when configured; the delay honors
// context cancellation.
type CatalogService struct {
	repo    *catalog.Repository
	latency time.Duration
}

func NewCatalogService(repo *catalog.Repository, latency time.Duration) *CatalogService {
	return &CatalogService{repo: repo, latency: latency}
}

func (s *CatalogService) GetProducts(ctx context.Context, query models.ProductQuery) ([]models.Product, models.Pagination, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, models.Pagination{}, err
	}

	items, pagination := s.repo.Query(query)

	logrus.WithFields(logrus.Fields{
		"total":   pagination.Total,
		"page":    pagination.Page,
		"limit":   pagination.Limit,
		"sort_by": query.SortBy,
	}).Debug("Catalog query served")

	return items, pagination, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (models.Product, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return models.Product{}, err
	}

	product, err := s.repo.GetProduct(id)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return product, nil
}

func (s *CatalogService) GetCategories(ctx context.Context) ([]string, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	return s.repo.GetCategories(), nil
}

func (s *CatalogService) simulateLatency(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
