// Package memory provides a process-local ItemRepository for development
// and tests. Nothing survives a restart.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ghuser/itemservice/services/item/domain/models"
)

// ItemRepository keeps items in a map keyed by id. Safe for concurrent use.
type ItemRepository struct {
	mu     sync.RWMutex
	items  map[int64]models.Item
	nextID int64
}

// NewItemRepository returns an empty repository; the first saved item gets id 1.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{
		items:  make(map[int64]models.Item),
		nextID: 1,
	}
}

// Save assigns the next id to item and stores a copy of it.
func (r *ItemRepository) Save(_ context.Context, item *models.Item) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = *item
	return item, nil
}

// Update overwrites the stored item with id. An unknown id is a no-op.
func (r *ItemRepository) Update(_ context.Context, id int64, fields models.UpdateFields) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil
	}
	item.Apply(fields)
	r.items[id] = item
	return nil
}

// FindByID returns a copy of the item with id.
func (r *ItemRepository) FindByID(_ context.Context, id int64) (*models.Item, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, false, nil
	}
	return &item, true, nil
}

// FindAll returns copies of the matching items ordered by id.
func (r *ItemRepository) FindAll(_ context.Context, cond models.SearchCondition) ([]*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Item, 0, len(r.items))
	for _, item := range r.items {
		if cond.Matches(&item) {
			out = append(out, &item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Clear removes every item and restarts the id sequence.
func (r *ItemRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make(map[int64]models.Item)
	r.nextID = 1
}
