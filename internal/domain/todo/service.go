// Package todo describes todo domain.
package todo

import "context"

// Lister lists todos.
type Lister interface {
	List(ctx context.Context) []Entity
}

// Finder finds todos.
type Finder interface {
	Find(ctx context.Context, id string) (Entity, bool)
}

// Creator creates todos.
type Creator interface {
	Create(ctx context.Context, title string) (Entity, error)
}

// Toggler flips todo completion state.
type Toggler interface {
	Toggle(ctx context.Context, id string) (Entity, bool)
}

// Deleter removes todos.
type Deleter interface {
	Delete(ctx context.Context, id string) bool
}
