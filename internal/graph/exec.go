package graph

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/bool64/ctxd"
	"github.com/swaggest/usecase/status"
)

var nullJSON = json.RawMessage("null")

// Exec resolves a batch of operations against the store.
//
// Operations resolve sequentially in request order, so mutations of one
// batch are visible to its later operations. A failed operation keeps null
// under its result key and appends a structured error, the rest of the
// batch is unaffected.
func (s *Schema) Exec(ctx context.Context, req Request) Response {
	resp := Response{
		Data: make(map[string]json.RawMessage, len(req.Operations)),
	}

	for _, op := range req.Operations {
		if _, taken := resp.Data[op.Key()]; taken {
			resp.fail(op, status.Wrap(ctxd.NewError(ctx, "duplicate result key", "key", op.Key()), status.InvalidArgument))

			continue
		}

		resp.Data[op.Key()] = nullJSON

		v, err := s.resolve(ctx, op)
		if err != nil {
			resp.fail(op, err)

			continue
		}

		raw, err := json.Marshal(v)
		if err != nil {
			resp.fail(op, status.Wrap(err, status.Internal))

			continue
		}

		resp.Data[op.Key()] = raw
	}

	return resp
}

func (s *Schema) resolve(ctx context.Context, op Operation) (interface{}, error) {
	if r, found := s.queries[op.Op]; found {
		return r(ctx, op.Args)
	}

	if r, found := s.mutations[op.Op]; found {
		return r(ctx, op.Args)
	}

	return nil, status.Wrap(ctxd.NewError(ctx, "unknown operation", "op", op.Op), status.Unimplemented)
}

func (r *Response) fail(op Operation, err error) {
	e := Error{
		Op:        op.Op,
		Alias:     op.Alias,
		ErrorText: err.Error(),
	}

	var withStatus interface {
		error
		Status() status.Code
	}

	if errors.As(err, &withStatus) {
		e.StatusText = withStatus.Status().String()
	}

	r.Errors = append(r.Errors, e)
}
