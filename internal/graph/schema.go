package graph

import (
	"context"
	"encoding/json"

	"github.com/bool64/ctxd"
	"github.com/swaggest/usecase/status"

	"todograph/internal/domain/todo"
)

// Deps exposes store capabilities required by resolvers.
type Deps interface {
	TodoLister() todo.Lister
	TodoFinder() todo.Finder
	TodoCreator() todo.Creator
	TodoToggler() todo.Toggler
	TodoDeleter() todo.Deleter
}

type resolver func(ctx context.Context, args json.RawMessage) (interface{}, error)

// Schema is a static registry of query and mutation resolvers.
//
// Resolvers are stateless, all state lives in the todo store behind Deps.
type Schema struct {
	queries   map[OpName]resolver
	mutations map[OpName]resolver
}

// NewSchema binds both operation groups to store capabilities.
func NewSchema(deps Deps) *Schema {
	s := Schema{}

	s.queries = map[OpName]resolver{
		OpTodos: func(ctx context.Context, _ json.RawMessage) (interface{}, error) {
			return deps.TodoLister().List(ctx), nil
		},
		OpTodo: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			in, err := decodeArgs[idArgs](ctx, args)
			if err != nil {
				return nil, err
			}

			t, found := deps.TodoFinder().Find(ctx, in.ID)
			if !found {
				// Missing todo resolves to null, not to an error.
				return nil, nil
			}

			return t, nil
		},
	}

	s.mutations = map[OpName]resolver{
		OpCreateTodo: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			in, err := decodeArgs[titleArgs](ctx, args)
			if err != nil {
				return nil, err
			}

			return deps.TodoCreator().Create(ctx, in.Title)
		},
		OpToggleTodo: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			in, err := decodeArgs[idArgs](ctx, args)
			if err != nil {
				return nil, err
			}

			t, found := deps.TodoToggler().Toggle(ctx, in.ID)
			if !found {
				return nil, nil
			}

			return t, nil
		},
		OpDeleteTodo: func(ctx context.Context, args json.RawMessage) (interface{}, error) {
			in, err := decodeArgs[idArgs](ctx, args)
			if err != nil {
				return nil, err
			}

			return deps.TodoDeleter().Delete(ctx, in.ID), nil
		},
	}

	return &s
}

type idArgs struct {
	ID string `json:"id"`
}

type titleArgs struct {
	Title string `json:"title"`
}

func decodeArgs[T any](ctx context.Context, args json.RawMessage) (T, error) {
	var in T

	if len(args) == 0 {
		return in, status.Wrap(ctxd.NewError(ctx, "missing operation arguments"), status.InvalidArgument)
	}

	if err := json.Unmarshal(args, &in); err != nil {
		return in, status.Wrap(ctxd.WrapError(ctx, err, "decode operation arguments"), status.InvalidArgument)
	}

	return in, nil
}
