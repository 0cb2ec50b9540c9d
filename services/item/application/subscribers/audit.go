// Package subscribers holds event handlers for the item bounded context.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/itemservice/pkg/logger"
	itemevents "github.com/ghuser/itemservice/services/item/domain/events"
)

// Handler is the signature events.EventBus.Subscribe expects.
type Handler func(context.Context, *message.Message) error

// Audit writes one structured log line per item write event.
// Handlers are idempotent; redelivery just logs the event again.
type Audit struct {
	log logger.Logger
}

// NewAudit returns an Audit logging through log.
func NewAudit(log logger.Logger) *Audit {
	return &Audit{log: log.With("component", "item_audit")}
}

// Topics maps each subscribed topic to its handler.
func (a *Audit) Topics() map[string]Handler {
	return map[string]Handler{
		itemevents.TopicItemSaved:   a.ItemSaved,
		itemevents.TopicItemUpdated: a.ItemUpdated,
	}
}

// ItemSaved handles item.saved events.
func (a *Audit) ItemSaved(ctx context.Context, msg *message.Message) error {
	var evt itemevents.ItemSavedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return fmt.Errorf("decode %s: %w", itemevents.TopicItemSaved, err)
	}
	a.log.InfoContext(ctx, "item saved",
		"event_id", evt.EventID,
		"item_id", evt.ItemID,
		"item_name", evt.Name,
		"price", evt.Price,
		"quantity", evt.Quantity,
		"occurred_at", evt.OccurredAt,
	)
	return nil
}

// ItemUpdated handles item.updated events.
func (a *Audit) ItemUpdated(ctx context.Context, msg *message.Message) error {
	var evt itemevents.ItemUpdatedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return fmt.Errorf("decode %s: %w", itemevents.TopicItemUpdated, err)
	}
	a.log.InfoContext(ctx, "item updated",
		"event_id", evt.EventID,
		"item_id", evt.ItemID,
		"item_name", evt.Name,
		"price", evt.Price,
		"quantity", evt.Quantity,
		"occurred_at", evt.OccurredAt,
	)
	return nil
}
