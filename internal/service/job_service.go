package service

import (
	"fmt"
	"log"
)

type JobService struct {
	Catalog *CatalogService
}

func NewJobService(catalog *CatalogService) *JobService {
	return &JobService{Catalog: catalog}
}

// RefreshCatalogSnapshot re-reads the catalog from the database so price edits
// made out of band (directly in the database) reach the pricing engine without a
// restart.
func (s *JobService) RefreshCatalogSnapshot() error {
	log.Println("Cron Job: refreshing catalog snapshot...")

	if err := s.Catalog.Refresh(); err != nil {
		return fmt.Errorf("cron job: catalog refresh failed: %w", err)
	}

	log.Println("Cron Job: catalog snapshot refreshed.")
	return nil
}
