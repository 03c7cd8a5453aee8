package service

import (
	"fmt"
	"log"
	"sync"

	"eventquote/internal/entities"
	"eventquote/internal/repository"
)

// CatalogService holds the current immutable catalog snapshot. The engine only
// ever sees a snapshot value; writes go through the repository and then swap in
// a freshly loaded snapshot.
type CatalogService struct {
	Repo *repository.CatalogRepository

	mu       sync.RWMutex
	snapshot entities.Catalog
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

// Refresh reloads the snapshot from the database.
func (s *CatalogService) Refresh() error {
	catalog, err := s.Repo.LoadCatalog()
	if err != nil {
		return fmt.Errorf("could not refresh catalog: %w", err)
	}

	s.mu.Lock()
	s.snapshot = *catalog
	s.mu.Unlock()

	log.Printf("Catalog snapshot refreshed: %d food packages, %d experiences, %d beverage tiers",
		len(catalog.FoodPackages), len(catalog.FoodExperiences), len(catalog.BeverageTiers))
	return nil
}

// Snapshot returns the current catalog. The returned value must be treated as
// read-only.
func (s *CatalogService) Snapshot() entities.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *CatalogService) UpdateFoodPackage(id string, p entities.FoodPackage) error {
	if err := s.Repo.UpdateFoodPackage(id, p); err != nil {
		return err
	}
	return s.Refresh()
}

func (s *CatalogService) UpdateBeverageTier(id string, t entities.BeverageTier) error {
	if err := s.Repo.UpdateBeverageTier(id, t); err != nil {
		return err
	}
	return s.Refresh()
}
