// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/todo-lists-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-lists-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-lists-api/internal/domain"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Trailing slashes are stripped before routing, so /lists/ and /lists are
// the same resource. Middleware is applied globally in the order given.
func NewRouter(
	listHandler *handlers.ListHandler,
	itemHandler *handlers.ItemHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.StripSlashes)
	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("no route for %s: %w", req.URL.Path, domain.ErrNotFound))
	})

	r.Get("/health", healthHandler.Liveness)
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)
	r.Get("/echo", healthHandler.Echo)

	const (
		list = "/lists/{" + handlers.ParamListID + "}"
		item = list + "/items/{" + handlers.ParamItemID + "}"
	)

	// Todo lists.
	r.Get("/lists", listHandler.ListLists)
	r.Post("/lists", listHandler.CreateList)
	r.Get(list, listHandler.GetList)
	r.Put(list, listHandler.UpdateList)
	r.Delete(list, listHandler.DeleteList)

	// Items nested under a list.
	r.Get(list+"/items", itemHandler.ListItems)
	r.Post(list+"/items", itemHandler.CreateItem)
	r.Get(item, itemHandler.GetItem)
	r.Put(item, itemHandler.UpdateItem)
	r.Delete(item, itemHandler.DeleteItem)

	return r
}
