// Package schema instruments OpenAPI schema.
package schema

import (
	"net/http"

	"github.com/swaggest/openapi-go/openapi3"
	"github.com/swaggest/rest/openapi"
)

// SetupOpenAPICollector sets up API documentation collector.
func SetupOpenAPICollector(apiSchema *openapi.Collector) {
	apiSchema.SpecSchema().SetTitle("Todo Graph Service")
	apiSchema.SpecSchema().SetDescription("This service manages a todo list through a single graph-query endpoint.")
	apiSchema.SpecSchema().SetVersion("v0.1.0")

	apiSchema.Annotate(http.MethodPost, "/graph", func(op *openapi3.Operation) error {
		op.Tags = []string{"Graph"}

		return nil
	})
}
