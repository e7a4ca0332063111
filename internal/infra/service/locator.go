package service

import "todograph/pkg/graceful"

// Locator defines application services.
type Locator struct {
	graceful.Shutdown

	TodoListerProvider
	TodoFinderProvider
	TodoCreatorProvider
	TodoTogglerProvider
	TodoDeleterProvider
}
