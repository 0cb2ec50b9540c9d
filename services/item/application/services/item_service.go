package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/itemservice/pkg/logger"
	itemdomain "github.com/ghuser/itemservice/services/item/domain"
	"github.com/ghuser/itemservice/services/item/domain/events"
	"github.com/ghuser/itemservice/services/item/domain/models"
	"github.com/ghuser/itemservice/services/item/domain/repositories"
	domainsvcs "github.com/ghuser/itemservice/services/item/domain/services"
)

const eventVersion = 1

// EventPublisher is the part of events.EventBus the service needs.
type EventPublisher interface {
	PublishJSON(ctx context.Context, topic, id string, payload any) error
}

// ItemService validates item writes, delegates to the store and announces
// successful writes on the event bus.
// Publishing happens after the store call and is best effort: a failed
// publish is logged and the write still succeeds.
type ItemService struct {
	repo      repositories.ItemRepository
	publisher EventPublisher
	log       logger.Logger
	now       func() time.Time
}

// NewItemService returns an ItemService. publisher may be nil when no event
// bus is configured.
func NewItemService(repo repositories.ItemRepository, publisher EventPublisher, log logger.Logger) *ItemService {
	return &ItemService{
		repo:      repo,
		publisher: publisher,
		log:       log.With("component", "item_service"),
		now:       time.Now,
	}
}

// Create validates and persists a new Item and publishes ItemSavedEvent.
func (s *ItemService) Create(ctx context.Context, name string, price, quantity int) (*models.Item, error) {
	item := models.NewItem(name, price, quantity)
	if err := domainsvcs.ValidateItemForCreation(item); err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}

	saved, err := s.repo.Save(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}

	eventID := uuid.New()
	s.publish(ctx, events.TopicItemSaved, eventID, saved.ID, events.ItemSavedEvent{
		EventID:    eventID,
		Version:    eventVersion,
		ItemID:     saved.ID,
		Name:       saved.Name,
		Price:      saved.Price,
		Quantity:   saved.Quantity,
		OccurredAt: s.now().UTC(),
	})
	return saved, nil
}

// Update overwrites every mutable field of the item with id.
// An unknown id is a silent no-op, as in the store, and publishes nothing.
func (s *ItemService) Update(ctx context.Context, id int64, fields models.UpdateFields) error {
	if err := domainsvcs.ValidateUpdate(fields); err != nil {
		return fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}

	_, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if !found {
		s.log.DebugContext(ctx, "update skipped, item not found", "item_id", id)
		return nil
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	eventID := uuid.New()
	s.publish(ctx, events.TopicItemUpdated, eventID, id, events.ItemUpdatedEvent{
		EventID:    eventID,
		Version:    eventVersion,
		ItemID:     id,
		Name:       fields.Name,
		Price:      fields.Price,
		Quantity:   fields.Quantity,
		OccurredAt: s.now().UTC(),
	})
	return nil
}

// Get returns the item with id, or ErrItemNotFound.
func (s *ItemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	item, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if !found {
		return nil, itemdomain.ErrItemNotFound
	}
	return item, nil
}

// List returns every item matching cond.
func (s *ItemService) List(ctx context.Context, cond models.SearchCondition) ([]*models.Item, error) {
	items, err := s.repo.FindAll(ctx, cond)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// SeedTestData inserts the two demo items used in local development.
// It does nothing when the store already holds items, so restarts against
// a persistent database do not duplicate them.
func (s *ItemService) SeedTestData(ctx context.Context) error {
	existing, err := s.repo.FindAll(ctx, models.SearchCondition{})
	if err != nil {
		return fmt.Errorf("seed items: %w", err)
	}
	if len(existing) > 0 {
		s.log.InfoContext(ctx, "seed skipped, store not empty", "items", len(existing))
		return nil
	}

	seed := []struct {
		name            string
		price, quantity int
	}{
		{"itemA", 10000, 10},
		{"itemB", 20000, 20},
	}
	for _, it := range seed {
		if _, err := s.Create(ctx, it.name, it.price, it.quantity); err != nil {
			return fmt.Errorf("seed %s: %w", it.name, err)
		}
	}
	s.log.InfoContext(ctx, "seeded test items", "items", len(seed))
	return nil
}

func (s *ItemService) publish(ctx context.Context, topic string, eventID uuid.UUID, itemID int64, event any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishJSON(ctx, topic, eventID.String(), event); err != nil {
		s.log.ErrorContext(ctx, "failed to publish item event",
			"topic", topic,
			"item_id", itemID,
			"error", err,
		)
	}
}
