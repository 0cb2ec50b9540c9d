package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/ghuser/itemservice/services/item/domain/models"
	"github.com/ghuser/itemservice/services/item/domain/repositories"
	"github.com/ghuser/itemservice/services/item/infrastructure/persistence/storetest"
)

func TestItemRepository_Contract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) repositories.ItemRepository {
		return NewItemRepository()
	})
}

func TestItemRepository_ReturnsCopies(t *testing.T) {
	repo := NewItemRepository()
	saved, _ := repo.Save(context.Background(), models.NewItem("apple", 500, 10))

	got, _, _ := repo.FindByID(context.Background(), saved.ID)
	got.Name = "mutated"

	again, _, _ := repo.FindByID(context.Background(), saved.ID)
	if again.Name != "apple" {
		t.Fatalf("stored item changed through returned pointer: %q", again.Name)
	}
}

func TestItemRepository_Clear(t *testing.T) {
	repo := NewItemRepository()
	repo.Save(context.Background(), models.NewItem("apple", 500, 10))
	repo.Save(context.Background(), models.NewItem("pear", 300, 1))

	repo.Clear()

	all, err := repo.FindAll(context.Background(), models.SearchCondition{})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty repository, got %d items", len(all))
	}
	item, _ := repo.Save(context.Background(), models.NewItem("kiwi", 100, 1))
	if item.ID != 1 {
		t.Fatalf("id sequence not reset, got %d", item.ID)
	}
}

func TestItemRepository_ConcurrentSave(t *testing.T) {
	repo := NewItemRepository()
	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			repo.Save(context.Background(), models.NewItem(fmt.Sprintf("item-%d", i), i, i))
		}(i)
	}
	wg.Wait()

	all, _ := repo.FindAll(context.Background(), models.SearchCondition{})
	if len(all) != n {
		t.Fatalf("expected %d items, got %d", n, len(all))
	}
	for i, it := range all {
		if it.ID != int64(i+1) {
			t.Fatalf("ids not unique and dense: position %d has id %d", i, it.ID)
		}
	}
}
