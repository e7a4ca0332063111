package infra

import (
	"context"
	"log"

	"todograph/internal/infra/repository"
	"todograph/internal/infra/service"
)

// NewServiceLocator initializes application resources.
func NewServiceLocator(cfg service.Config) *service.Locator {
	l := service.Locator{}

	todoRepository := repository.Todo{}

	if cfg.SeedDemoData {
		// Illustrative seed data, not required for correctness.
		if _, err := todoRepository.Create(context.Background(), "Buy milk"); err != nil {
			log.Printf("failed to seed demo data: %v", err)
		}
	}

	l.TodoListerProvider = &todoRepository
	l.TodoFinderProvider = &todoRepository
	l.TodoCreatorProvider = &todoRepository
	l.TodoTogglerProvider = &todoRepository
	l.TodoDeleterProvider = &todoRepository

	return &l
}
