package postgres

import (
	"errors"
	"testing"
)

// fakeRow assigns fixed values to Scan destinations by position.
type fakeRow struct {
	values []any
	err    error
}

func (f fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = f.values[i].(int64)
		case *string:
			*p = f.values[i].(string)
		case *int:
			*p = f.values[i].(int)
		}
	}
	return nil
}

func TestItemMapper_ByColumnName(t *testing.T) {
	t.Run("natural order", func(t *testing.T) {
		m, err := newItemMapper([]string{"id", "item_name", "price", "quantity"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		item, err := m.mapRow(fakeRow{values: []any{int64(1), "apple", 500, 10}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != 1 || item.Name != "apple" || item.Price != 500 || item.Quantity != 10 {
			t.Fatalf("unexpected item: %+v", item)
		}
	})

	t.Run("shuffled order", func(t *testing.T) {
		m, err := newItemMapper([]string{"quantity", "item_name", "id", "price"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		item, err := m.mapRow(fakeRow{values: []any{10, "apple", int64(1), 500}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != 1 || item.Name != "apple" || item.Price != 500 || item.Quantity != 10 {
			t.Fatalf("unexpected item: %+v", item)
		}
	})

	t.Run("subset of columns", func(t *testing.T) {
		m, err := newItemMapper([]string{"id"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		item, err := m.mapRow(fakeRow{values: []any{int64(3)}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != 3 || item.Name != "" {
			t.Fatalf("unexpected item: %+v", item)
		}
	})
}

func TestItemMapper_UnknownColumn(t *testing.T) {
	if _, err := newItemMapper([]string{"id", "name"}); err == nil {
		t.Fatal("expected error for column without a field mapping")
	}
}

func TestItemMapper_ScanError(t *testing.T) {
	m, err := newItemMapper([]string{"id"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	boom := errors.New("boom")
	if _, err := m.mapRow(fakeRow{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped scan error, got %v", err)
	}
}

func TestItemColumns_SingleKey(t *testing.T) {
	keys := 0
	for _, c := range itemColumns {
		if c.key {
			keys++
			if c.value != nil {
				t.Errorf("key column %q must not have an insert value", c.name)
			}
			continue
		}
		if c.value == nil {
			t.Errorf("column %q has no insert value", c.name)
		}
	}
	if keys != 1 {
		t.Fatalf("expected exactly one generated key column, got %d", keys)
	}
}
