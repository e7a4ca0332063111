package service

import "todograph/internal/domain/todo"

// TodoListerProvider is a service locator provider.
type TodoListerProvider interface {
	TodoLister() todo.Lister
}

// TodoFinderProvider is a service locator provider.
type TodoFinderProvider interface {
	TodoFinder() todo.Finder
}

// TodoCreatorProvider is a service locator provider.
type TodoCreatorProvider interface {
	TodoCreator() todo.Creator
}

// TodoTogglerProvider is a service locator provider.
type TodoTogglerProvider interface {
	TodoToggler() todo.Toggler
}

// TodoDeleterProvider is a service locator provider.
type TodoDeleterProvider interface {
	TodoDeleter() todo.Deleter
}
