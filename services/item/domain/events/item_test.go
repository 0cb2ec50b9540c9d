package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/itemservice/services/item/domain/events"
)

func TestItemSavedEvent_JSONFieldNames(t *testing.T) {
	evt := events.ItemSavedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     1,
		Name:       "apple",
		Price:      500,
		Quantity:   10,
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "item_id", "name", "price", "quantity", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
	if raw["item_id"] != float64(1) {
		t.Errorf("item_id: got %v, want 1", raw["item_id"])
	}
}

func TestItemUpdatedEvent_Decode(t *testing.T) {
	payload := []byte(`{"event_id":"550e8400-e29b-41d4-a716-446655440001","version":1,"item_id":42,` +
		`"name":"itemB","price":20000,"quantity":20,"occurred_at":"2025-01-15T12:00:00Z"}`)

	var evt events.ItemUpdatedEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	if evt.ItemID != 42 || evt.Name != "itemB" || evt.Price != 20000 || evt.Quantity != 20 {
		t.Errorf("unexpected event: %+v", evt)
	}
	if !evt.OccurredAt.Equal(time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("OccurredAt: got %v", evt.OccurredAt)
	}
}

func TestTopics_Distinct(t *testing.T) {
	if events.TopicItemSaved != "item.saved" {
		t.Errorf("expected %q, got %q", "item.saved", events.TopicItemSaved)
	}
	if events.TopicItemUpdated != "item.updated" {
		t.Errorf("expected %q, got %q", "item.updated", events.TopicItemUpdated)
	}
}
