package postgres

import (
	"reflect"
	"testing"
)

func TestBindNamed(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		params   []param
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "single parameter",
			query:    "SELECT * FROM item WHERE id = :id",
			params:   []param{{"id", int64(7)}},
			wantSQL:  "SELECT * FROM item WHERE id = $1",
			wantArgs: []any{int64(7)},
		},
		{
			name:     "ordinals follow placeholder order not param order",
			query:    "UPDATE item SET price = :price WHERE id = :id",
			params:   []param{{"id", int64(1)}, {"price", 100}},
			wantSQL:  "UPDATE item SET price = $1 WHERE id = $2",
			wantArgs: []any{100, int64(1)},
		},
		{
			name:     "repeated name reuses ordinal",
			query:    "SELECT :a, :b, :a",
			params:   []param{{"a", 1}, {"b", 2}},
			wantSQL:  "SELECT $1, $2, $1",
			wantArgs: []any{1, 2},
		},
		{
			name:     "quoted literal untouched",
			query:    "SELECT ':notaparam', 'it''s :x' WHERE name = :name",
			params:   []param{{"name", "n"}},
			wantSQL:  "SELECT ':notaparam', 'it''s :x' WHERE name = $1",
			wantArgs: []any{"n"},
		},
		{
			name:     "cast untouched",
			query:    "SELECT :v::text",
			params:   []param{{"v", "x"}},
			wantSQL:  "SELECT $1::text",
			wantArgs: []any{"x"},
		},
		{
			name:     "unused params ignored",
			query:    "SELECT 1",
			params:   []param{{"id", 1}},
			wantSQL:  "SELECT 1",
			wantArgs: nil,
		},
		{
			name:     "identifier with digits and underscore",
			query:    "WHERE a = :max_price2",
			params:   []param{{"max_price2", 9}},
			wantSQL:  "WHERE a = $1",
			wantArgs: []any{9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSQL, gotArgs, err := bindNamed(tt.query, tt.params)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotSQL != tt.wantSQL {
				t.Errorf("sql:\n got  %q\n want %q", gotSQL, tt.wantSQL)
			}
			if !reflect.DeepEqual(gotArgs, tt.wantArgs) {
				t.Errorf("args: got %v, want %v", gotArgs, tt.wantArgs)
			}
		})
	}
}

func TestBindNamed_Errors(t *testing.T) {
	t.Run("unbound name", func(t *testing.T) {
		if _, _, err := bindNamed("SELECT :missing", nil); err == nil {
			t.Fatal("expected error for unbound parameter")
		}
	})

	t.Run("unterminated literal", func(t *testing.T) {
		if _, _, err := bindNamed("SELECT 'open", nil); err == nil {
			t.Fatal("expected error for unterminated literal")
		}
	})
}
