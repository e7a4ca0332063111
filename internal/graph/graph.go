// Package graph maps named query and mutation operations onto todo store calls.
package graph

import (
	"encoding/json"

	"github.com/swaggest/jsonschema-go"
)

// OpName identifies an operation of the graph schema.
type OpName string

// Query group.
const (
	OpTodos = OpName("todos")
	OpTodo  = OpName("todo")
)

// Mutation group.
const (
	OpCreateTodo = OpName("createTodo")
	OpToggleTodo = OpName("toggleTodo")
	OpDeleteTodo = OpName("deleteTodo")
)

var _ jsonschema.Exposer = OpName("")

// JSONSchema exposes OpName JSON schema, implements jsonschema.Exposer.
func (OpName) JSONSchema() (jsonschema.Schema, error) {
	s := jsonschema.Schema{}
	s.
		WithType(jsonschema.String.Type()).
		WithTitle("Operation Name").
		WithDescription("Name of a query or mutation operation.").
		WithEnum(OpTodos, OpTodo, OpCreateTodo, OpToggleTodo, OpDeleteTodo)

	return s, nil
}

// Operation is a single named call with optional arguments.
type Operation struct {
	Op    OpName          `json:"op" required:"true"`
	Alias string          `json:"alias,omitempty" description:"Overrides the result key, allows repeating an operation in one batch."`
	Args  json.RawMessage `json:"args,omitempty" description:"Operation arguments, shape depends on op."`
}

// Key returns the result key of the operation, alias if set, op name otherwise.
func (o Operation) Key() string {
	if o.Alias != "" {
		return o.Alias
	}

	return string(o.Op)
}

// Request is a batch of operations resolved in request order.
type Request struct {
	Operations []Operation `json:"operations" minItems:"1" required:"true"`
}

// Response carries per-operation results keyed by alias or operation name.
//
// A failed operation holds null under its key and contributes an entry to
// Errors, other operations of the same batch are unaffected.
type Response struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []Error                    `json:"errors,omitempty"`
}

// Error describes a failed operation within a batch.
type Error struct {
	Op         OpName `json:"op"`
	Alias      string `json:"alias,omitempty"`
	StatusText string `json:"status,omitempty" description:"Canonical status code name."`
	ErrorText  string `json:"error" description:"Error message."`
}
