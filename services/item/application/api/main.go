package api

import (
	"fmt"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemservice/pkg/app"
	"github.com/ghuser/itemservice/services/item/application/handlers"
	appsvcs "github.com/ghuser/itemservice/services/item/application/services"
)

// ItemRoutes wires the item services from a and registers their endpoints
// on r. The returned Services are shared with startup tasks such as seeding.
func ItemRoutes(r chi.Router, a *app.Application) (*appsvcs.Services, error) {
	svcs, err := appsvcs.New(a)
	if err != nil {
		return nil, fmt.Errorf("item services: %w", err)
	}
	Mount(r, svcs)
	return svcs, nil
}

// Mount registers item endpoints backed by svcs.
func Mount(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/items", func(r chi.Router) {
		r.Get("/", handlers.NewListItemsHandler(svcs).Execute)
		r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
		r.Put("/{id}", handlers.NewPutItemHandler(svcs).Execute)
	})
}
