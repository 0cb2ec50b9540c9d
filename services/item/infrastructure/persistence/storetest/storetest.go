// Package storetest holds behavioural checks shared by every
// repositories.ItemRepository implementation.
package storetest

import (
	"context"
	"testing"

	"github.com/ghuser/itemservice/services/item/domain/models"
	"github.com/ghuser/itemservice/services/item/domain/repositories"
)

// Factory returns an empty repository whose id sequence starts at 1.
type Factory func(t *testing.T) repositories.ItemRepository

// Run exercises repo construction through newRepo against the store contract.
func Run(t *testing.T, newRepo Factory) {
	t.Run("SaveThenFind", func(t *testing.T) { testSaveThenFind(t, newRepo(t)) })
	t.Run("FindByIDMiss", func(t *testing.T) { testFindByIDMiss(t, newRepo(t)) })
	t.Run("UpdateThenFind", func(t *testing.T) { testUpdateThenFind(t, newRepo(t)) })
	t.Run("UpdateUnknownID", func(t *testing.T) { testUpdateUnknownID(t, newRepo(t)) })
	t.Run("FindAllFilters", func(t *testing.T) { testFindAllFilters(t, newRepo(t)) })
	t.Run("Scenario", func(t *testing.T) { testScenario(t, newRepo(t)) })
}

func save(t *testing.T, repo repositories.ItemRepository, name string, price, quantity int) *models.Item {
	t.Helper()
	item, err := repo.Save(context.Background(), models.NewItem(name, price, quantity))
	if err != nil {
		t.Fatalf("Save(%q): %v", name, err)
	}
	return item
}

func names(items []*models.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func testSaveThenFind(t *testing.T, repo repositories.ItemRepository) {
	saved := save(t, repo, "apple", 500, 10)
	if !saved.Persisted() {
		t.Fatal("saved item has no id")
	}

	got, found, err := repo.FindByID(context.Background(), saved.ID)
	if err != nil || !found {
		t.Fatalf("FindByID(%d) = found %v, err %v", saved.ID, found, err)
	}
	if *got != *saved {
		t.Errorf("got %+v, want %+v", *got, *saved)
	}
}

func testFindByIDMiss(t *testing.T, repo repositories.ItemRepository) {
	save(t, repo, "apple", 500, 10)

	got, found, err := repo.FindByID(context.Background(), 9999)
	if err != nil {
		t.Fatalf("a miss must not be an error, got %v", err)
	}
	if found || got != nil {
		t.Fatalf("expected (nil, false), got (%v, %v)", got, found)
	}
}

func testUpdateThenFind(t *testing.T, repo repositories.ItemRepository) {
	saved := save(t, repo, "apple", 500, 10)
	fields := models.UpdateFields{Name: "green apple", Price: 650, Quantity: 4}

	if err := repo.Update(context.Background(), saved.ID, fields); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, found, err := repo.FindByID(context.Background(), saved.ID)
	if err != nil || !found {
		t.Fatalf("FindByID after update: found %v, err %v", found, err)
	}
	want := models.Item{ID: saved.ID, Name: fields.Name, Price: fields.Price, Quantity: fields.Quantity}
	if *got != want {
		t.Errorf("got %+v, want %+v", *got, want)
	}
}

func testUpdateUnknownID(t *testing.T, repo repositories.ItemRepository) {
	saved := save(t, repo, "apple", 500, 10)

	if err := repo.Update(context.Background(), 9999, models.UpdateFields{Name: "ghost", Price: 1, Quantity: 1}); err != nil {
		t.Fatalf("Update of unknown id should be a no-op, got %v", err)
	}
	all, err := repo.FindAll(context.Background(), models.SearchCondition{})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 1 || *all[0] != *saved {
		t.Fatalf("storage changed by no-op update: %+v", all)
	}
}

func testFindAllFilters(t *testing.T, repo repositories.ItemRepository) {
	save(t, repo, "apple", 500, 10)
	save(t, repo, "pineapple", 2000, 5)
	save(t, repo, "pear", 1000, 7)

	tests := []struct {
		name string
		cond models.SearchCondition
		want []string
	}{
		{"no filter", models.SearchCondition{}, []string{"apple", "pineapple", "pear"}},
		{"empty name", models.SearchCondition{NameContains: ""}, []string{"apple", "pineapple", "pear"}},
		{"whitespace name", models.SearchCondition{NameContains: "  "}, []string{"apple", "pineapple", "pear"}},
		{"name substring", models.SearchCondition{NameContains: "apple"}, []string{"apple", "pineapple"}},
		{"price ceiling inclusive", models.SearchCondition{MaxPrice: models.MaxPrice(1000)}, []string{"apple", "pear"}},
		{"intersection", models.SearchCondition{NameContains: "pea", MaxPrice: models.MaxPrice(1000)}, []string{"pear"}},
		{"nothing matches", models.SearchCondition{NameContains: "kiwi"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := repo.FindAll(context.Background(), tt.cond)
			if err != nil {
				t.Fatalf("FindAll: %v", err)
			}
			if items == nil {
				t.Fatal("FindAll must return a non-nil slice")
			}
			got := names(items)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func testScenario(t *testing.T, repo repositories.ItemRepository) {
	apple := save(t, repo, "apple", 500, 10)
	pineapple := save(t, repo, "pineapple", 2000, 5)
	if apple.ID != 1 || pineapple.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", apple.ID, pineapple.ID)
	}

	items, err := repo.FindAll(context.Background(), models.SearchCondition{NameContains: "apple", MaxPrice: models.MaxPrice(1000)})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	want := models.Item{ID: 1, Name: "apple", Price: 500, Quantity: 10}
	if len(items) != 1 || *items[0] != want {
		t.Fatalf("got %+v, want [%+v]", items, want)
	}
}
