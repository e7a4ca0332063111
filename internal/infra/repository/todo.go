// Package repository implements domain services with in-memory storage.
package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/bool64/ctxd"
	"github.com/google/uuid"
	"github.com/swaggest/usecase/status"

	"todograph/internal/domain/todo"
)

// Todo is an in-memory todo repository.
//
// A single mutex serializes every operation, reads included, so the list is
// never observed in a half-mutated state. Items keep insertion order.
// State lives in process memory only and is lost on restart.
type Todo struct {
	mu   sync.Mutex
	list []todo.Entity
}

// TodoLister is a service provider.
func (tr *Todo) TodoLister() todo.Lister {
	return tr
}

// List returns a snapshot copy of all todos in insertion order.
func (tr *Todo) List(_ context.Context) []todo.Entity {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	result := make([]todo.Entity, len(tr.list))
	copy(result, tr.list)

	return result
}

// TodoFinder is a service provider.
func (tr *Todo) TodoFinder() todo.Finder {
	return tr
}

// Find returns a copy of the todo with matching id, absence is not an error.
func (tr *Todo) Find(_ context.Context, id string) (todo.Entity, bool) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	for _, t := range tr.list {
		if t.ID == id {
			return t, true
		}
	}

	return todo.Entity{}, false
}

// TodoCreator is a service provider.
func (tr *Todo) TodoCreator() todo.Creator {
	return tr
}

// Create appends a new uncompleted todo with a fresh id and returns a copy of it.
func (tr *Todo) Create(ctx context.Context, title string) (todo.Entity, error) {
	if strings.TrimSpace(title) == "" {
		return todo.Entity{}, status.Wrap(ctxd.NewError(ctx, "title is empty"), status.InvalidArgument)
	}

	tr.mu.Lock()
	defer tr.mu.Unlock()

	t := todo.Entity{
		ID:    uuid.NewString(),
		Title: title,
	}

	tr.list = append(tr.list, t)

	return t, nil
}

// TodoToggler is a service provider.
func (tr *Todo) TodoToggler() todo.Toggler {
	return tr
}

// Toggle flips completion of the todo with matching id and returns a copy of
// the updated todo, absence is not an error.
func (tr *Todo) Toggle(_ context.Context, id string) (todo.Entity, bool) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	for i, t := range tr.list {
		if t.ID == id {
			tr.list[i].Completed = !t.Completed

			return tr.list[i], true
		}
	}

	return todo.Entity{}, false
}

// TodoDeleter is a service provider.
func (tr *Todo) TodoDeleter() todo.Deleter {
	return tr
}

// Delete removes the todo with matching id for good and reports whether
// removal happened.
func (tr *Todo) Delete(_ context.Context, id string) bool {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	for i, t := range tr.list {
		if t.ID == id {
			tr.list = append(tr.list[:i], tr.list[i+1:]...)

			return true
		}
	}

	return false
}
