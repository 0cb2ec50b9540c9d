package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for item writes.
const (
	TopicItemSaved   = "item.saved"
	TopicItemUpdated = "item.updated"
)

// ItemSavedEvent is published after a new Item is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemSaved).
type ItemSavedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     int64     `json:"item_id"`
	Name       string    `json:"name"`
	Price      int       `json:"price"`
	Quantity   int       `json:"quantity"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemUpdatedEvent is published after an update statement succeeds.
// The store does not report whether the ID matched a row, so consumers may
// see updates for IDs that do not exist.
type ItemUpdatedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     int64     `json:"item_id"`
	Name       string    `json:"name"`
	Price      int       `json:"price"`
	Quantity   int       `json:"quantity"`
	OccurredAt time.Time `json:"occurred_at"`
}
