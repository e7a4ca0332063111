// Package nethttp instruments HTTP transport.
package nethttp

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/swaggest/openapi-go/openapi3"
	"github.com/swaggest/rest/nethttp"
	"github.com/swaggest/rest/response/gzip"
	"github.com/swaggest/rest/web"
	swgui "github.com/swaggest/swgui/v5emb"

	"todograph/internal/infra/log"
	"todograph/internal/infra/schema"
	"todograph/internal/infra/service"
	"todograph/internal/usecase"
)

// NewRouter creates HTTP router.
func NewRouter(locator *service.Locator) http.Handler {
	s := web.NewService(openapi3.NewReflector())

	schema.SetupOpenAPICollector(s.OpenAPICollector)

	s.Wrap(
		middleware.NoCache,
		nethttp.UseCaseMiddlewares(log.UseCaseMiddleware()), // Use case logging.
		cors.AllowAll().Handler,                             // The graph endpoint is called from browsers.
		gzip.Middleware,                                     // Response compression.
	)

	// Single graph-query endpoint for both operation groups.
	s.Post("/graph", usecase.ExecGraph(locator))

	// Swagger UI endpoint at /docs, schema introspection at /docs/openapi.json.
	s.Docs("/docs", swgui.New)

	return s
}
