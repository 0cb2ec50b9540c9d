package postgres

import (
	"fmt"

	"github.com/ghuser/itemservice/services/item/domain/models"
)

const itemTable = "item"

// column binds one item table column to its Item field.
// value is nil for the database-generated key.
type column struct {
	name  string
	key   bool
	value func(*models.Item) any
	dest  func(*models.Item) any
}

// itemColumns is the field-to-column table for Item. Column names are
// snake_case; item_name is the only one that differs from its field.
var itemColumns = []column{
	{
		name: "id",
		key:  true,
		dest: func(i *models.Item) any { return &i.ID },
	},
	{
		name:  "item_name",
		value: func(i *models.Item) any { return i.Name },
		dest:  func(i *models.Item) any { return &i.Name },
	},
	{
		name:  "price",
		value: func(i *models.Item) any { return i.Price },
		dest:  func(i *models.Item) any { return &i.Price },
	},
	{
		name:  "quantity",
		value: func(i *models.Item) any { return i.Quantity },
		dest:  func(i *models.Item) any { return &i.Quantity },
	},
}

var itemColumnsByName = func() map[string]column {
	m := make(map[string]column, len(itemColumns))
	for _, c := range itemColumns {
		m[c.name] = c
	}
	return m
}()

// rowScanner is the subset of *sql.Rows the mapper needs.
type rowScanner interface {
	Scan(dest ...any) error
}

// itemMapper maps result rows to Items by column name. It is built once per
// result set from the column list the driver reports.
type itemMapper struct {
	dests []func(*models.Item) any
}

func newItemMapper(columns []string) (*itemMapper, error) {
	m := &itemMapper{dests: make([]func(*models.Item) any, len(columns))}
	for i, name := range columns {
		c, ok := itemColumnsByName[name]
		if !ok {
			return nil, fmt.Errorf("map item row: unknown column %q", name)
		}
		m.dests[i] = c.dest
	}
	return m, nil
}

func (m *itemMapper) mapRow(row rowScanner) (*models.Item, error) {
	item := &models.Item{}
	dest := make([]any, len(m.dests))
	for i, d := range m.dests {
		dest[i] = d(item)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, fmt.Errorf("scan item row: %w", err)
	}
	return item, nil
}
