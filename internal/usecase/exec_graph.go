// Package usecase exposes application operations as use case interactors.
package usecase

import (
	"context"
	"errors"

	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"

	"todograph/internal/graph"
)

// ExecGraph creates usecase interactor for the graph endpoint.
//
// It resolves a batch of named query and mutation operations in one
// request/response cycle. Per-operation failures are carried in the
// response body, only a malformed request fails the use case itself.
func ExecGraph(deps graph.Deps) usecase.Interactor {
	s := graph.NewSchema(deps)

	u := usecase.NewInteractor(func(ctx context.Context, input graph.Request, output *graph.Response) error {
		if len(input.Operations) == 0 {
			return status.Wrap(errors.New("empty operation batch"), status.InvalidArgument)
		}

		*output = s.Exec(ctx, input)

		return nil
	})

	u.SetName("execGraph")
	u.SetTitle("Execute Graph Operations")
	u.SetDescription("Resolve a batch of todo queries (todos, todo) and mutations " +
		"(createTodo, toggleTodo, deleteTodo) against the in-memory store.")
	u.SetExpectedErrors(status.InvalidArgument)
	u.SetTags("Graph")

	return u
}
