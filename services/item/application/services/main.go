package services

import (
	"fmt"

	"github.com/ghuser/itemservice/pkg/app"
	"github.com/ghuser/itemservice/pkg/config"
	"github.com/ghuser/itemservice/services/item/domain/repositories"
	"github.com/ghuser/itemservice/services/item/infrastructure/persistence"
	"github.com/ghuser/itemservice/services/item/infrastructure/persistence/memory"
	"github.com/ghuser/itemservice/services/item/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item *ItemService
}

// New wires all item application services with infrastructure from the
// Application container. cfg.ItemStore picks the store implementation.
func New(a *app.Application) (*Services, error) {
	repo, err := newItemRepository(a)
	if err != nil {
		return nil, err
	}

	var publisher EventPublisher
	if a.EventBus != nil {
		publisher = a.EventBus
	}

	return &Services{
		Item: NewItemService(repo, publisher, a.Logger),
	}, nil
}

func newItemRepository(a *app.Application) (repositories.ItemRepository, error) {
	store := a.Config.ItemStore

	var repo repositories.ItemRepository
	if store == config.StoreMemory {
		repo = memory.NewItemRepository()
	} else {
		if a.Db == nil {
			return nil, fmt.Errorf("item store %q needs a database", store)
		}
		strategy, err := postgres.ParseStrategy(store)
		if err != nil {
			return nil, err
		}
		pg, err := postgres.NewItemRepository(a.Db.DB(), strategy, a.Logger)
		if err != nil {
			return nil, fmt.Errorf("create item repository: %w", err)
		}
		repo = pg
	}

	instrumented, err := persistence.NewInstrumentedRepository(repo, store)
	if err != nil {
		return nil, fmt.Errorf("instrument item repository: %w", err)
	}
	return instrumented, nil
}
