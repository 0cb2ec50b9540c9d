package models

import "testing"

func TestNewItem(t *testing.T) {
	item := NewItem("apple", 500, 10)

	t.Run("is not persisted", func(t *testing.T) {
		if item.Persisted() {
			t.Fatal("expected new item to have no ID")
		}
	})

	t.Run("sets fields", func(t *testing.T) {
		if item.Name != "apple" || item.Price != 500 || item.Quantity != 10 {
			t.Fatalf("unexpected item: %+v", item)
		}
	})
}

func TestItem_Apply(t *testing.T) {
	item := &Item{ID: 7, Name: "old", Price: 1, Quantity: 2}
	item.Apply(UpdateFields{Name: "new", Price: 3, Quantity: 4})

	if item.ID != 7 {
		t.Fatalf("Apply must keep the ID, got %d", item.ID)
	}
	if item.Name != "new" || item.Price != 3 || item.Quantity != 4 {
		t.Fatalf("unexpected item after Apply: %+v", item)
	}
}

func TestSearchCondition_HasName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"spaces only", "   ", false},
		{"tabs and newline", "\t\n", false},
		{"text", "abc", true},
		{"text with spaces", " a ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := SearchCondition{NameContains: tt.in}
			if got := c.HasName(); got != tt.want {
				t.Fatalf("HasName(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSearchCondition_Empty(t *testing.T) {
	if !(SearchCondition{}).Empty() {
		t.Fatal("zero condition must be empty")
	}
	if !(SearchCondition{NameContains: "  "}).Empty() {
		t.Fatal("whitespace-only name must be empty")
	}
	if (SearchCondition{MaxPrice: MaxPrice(0)}).Empty() {
		t.Fatal("zero max price is still a filter")
	}
}

func TestSearchCondition_Matches(t *testing.T) {
	apple := &Item{ID: 1, Name: "apple", Price: 500, Quantity: 10}
	pineapple := &Item{ID: 2, Name: "pineapple", Price: 2000, Quantity: 5}

	tests := []struct {
		name string
		cond SearchCondition
		item *Item
		want bool
	}{
		{"no filter", SearchCondition{}, pineapple, true},
		{"name substring", SearchCondition{NameContains: "apple"}, pineapple, true},
		{"name case sensitive", SearchCondition{NameContains: "Apple"}, apple, false},
		{"price at ceiling", SearchCondition{MaxPrice: MaxPrice(500)}, apple, true},
		{"price above ceiling", SearchCondition{MaxPrice: MaxPrice(1000)}, pineapple, false},
		{"both match", SearchCondition{NameContains: "apple", MaxPrice: MaxPrice(1000)}, apple, true},
		{"name matches price does not", SearchCondition{NameContains: "apple", MaxPrice: MaxPrice(1000)}, pineapple, false},
		{"whitespace name ignored", SearchCondition{NameContains: " "}, apple, true},
		{"percent is literal", SearchCondition{NameContains: "a%e"}, apple, false},
		{"underscore is literal", SearchCondition{NameContains: "app_e"}, apple, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cond.Matches(tt.item); got != tt.want {
				t.Fatalf("Matches = %v, want %v", got, tt.want)
			}
		})
	}
}
