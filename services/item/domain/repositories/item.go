package repositories

import (
	"context"

	"github.com/ghuser/itemservice/services/item/domain/models"
)

// ItemRepository is the persistence contract for Items.
// The domain layer owns this interface; infrastructure implements it.
//
// Every call is a self-contained round trip with no cross-call state or
// transaction. Storage errors are returned wrapped, never translated.
type ItemRepository interface {
	// Save inserts item, assigns the database-generated ID and returns it.
	Save(ctx context.Context, item *models.Item) (*models.Item, error)

	// Update overwrites the mutable fields of the item with the given ID.
	// An unknown ID is a no-op, not an error.
	Update(ctx context.Context, id int64, fields models.UpdateFields) error

	// FindByID returns the item and true, or nil and false on a miss.
	FindByID(ctx context.Context, id int64) (*models.Item, bool, error)

	// FindAll returns every item matching cond. Never nil on success.
	FindAll(ctx context.Context, cond models.SearchCondition) ([]*models.Item, error)
}
