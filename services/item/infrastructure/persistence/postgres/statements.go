package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ghuser/itemservice/services/item/domain/models"
)

// Strategy selects how the store writes and binds its SQL statements.
type Strategy string

const (
	// Positional writes every statement by hand with $n placeholders.
	Positional Strategy = "positional"
	// Named writes every statement with :name placeholders bound from
	// explicit parameter lists.
	Named Strategy = "named"
	// Generated builds the insert from the column table and uses named
	// statements for everything else.
	Generated Strategy = "generated"
)

// ParseStrategy converts a config value to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(s); st {
	case Positional, Named, Generated:
		return st, nil
	default:
		return "", fmt.Errorf("unknown item store strategy %q", s)
	}
}

const selectItems = "SELECT id, item_name, price, quantity FROM item"

// statement is a ready-to-execute query and its positional arguments.
type statement struct {
	sql  string
	args []any
}

// statements is the policy a strategy supplies to ItemRepository.
type statements interface {
	insert(item *models.Item) (statement, error)
	update(id int64, fields models.UpdateFields) (statement, error)
	findByID(id int64) (statement, error)
	findAll(cond models.SearchCondition) (statement, error)
}

func newStatements(s Strategy) (statements, error) {
	switch s {
	case Positional:
		return positionalStatements{}, nil
	case Named:
		return namedStatements{}, nil
	case Generated:
		return newGeneratedStatements(itemTable, itemColumns), nil
	default:
		return nil, fmt.Errorf("unknown item store strategy %q", s)
	}
}

// placeholder renders the marker for the n-th bound value called name.
type placeholder func(n int, name string) string

func dollar(n int, _ string) string { return "$" + strconv.Itoa(n) }

func colon(_ int, name string) string { return ":" + name }

// buildSearch renders the filtered select for cond:
// WHERE only when a filter is present, the name predicate first, and AND
// only when both predicates are emitted.
func buildSearch(cond models.SearchCondition, ph placeholder) (string, []param) {
	var (
		sb        strings.Builder
		params    []param
		andNeeded bool
	)
	sb.WriteString(selectItems)

	if cond.HasName() || cond.HasMaxPrice() {
		sb.WriteString(" WHERE")
	}
	if cond.HasName() {
		params = append(params, param{name: "itemName", value: cond.NameContains})
		fmt.Fprintf(&sb, " item_name LIKE '%%' || CAST(%s AS text) || '%%'", ph(len(params), "itemName"))
		andNeeded = true
	}
	if cond.HasMaxPrice() {
		if andNeeded {
			sb.WriteString(" AND")
		}
		params = append(params, param{name: "maxPrice", value: *cond.MaxPrice})
		fmt.Fprintf(&sb, " price <= %s", ph(len(params), "maxPrice"))
	}
	return sb.String(), params
}

func values(params []param) []any {
	out := make([]any, len(params))
	for i, p := range params {
		out[i] = p.value
	}
	return out
}

type positionalStatements struct{}

func (positionalStatements) insert(item *models.Item) (statement, error) {
	return statement{
		sql:  "INSERT INTO item (item_name, price, quantity) VALUES ($1, $2, $3) RETURNING id",
		args: []any{item.Name, item.Price, item.Quantity},
	}, nil
}

func (positionalStatements) update(id int64, f models.UpdateFields) (statement, error) {
	return statement{
		sql:  "UPDATE item SET item_name = $1, price = $2, quantity = $3 WHERE id = $4",
		args: []any{f.Name, f.Price, f.Quantity, id},
	}, nil
}

func (positionalStatements) findByID(id int64) (statement, error) {
	return statement{sql: selectItems + " WHERE id = $1", args: []any{id}}, nil
}

func (positionalStatements) findAll(cond models.SearchCondition) (statement, error) {
	query, params := buildSearch(cond, dollar)
	return statement{sql: query, args: values(params)}, nil
}

type namedStatements struct{}

func (namedStatements) insert(item *models.Item) (statement, error) {
	return named(
		"INSERT INTO item (item_name, price, quantity) VALUES (:itemName, :price, :quantity) RETURNING id",
		param{"itemName", item.Name},
		param{"price", item.Price},
		param{"quantity", item.Quantity},
	)
}

func (namedStatements) update(id int64, f models.UpdateFields) (statement, error) {
	return named(
		"UPDATE item SET item_name = :itemName, price = :price, quantity = :quantity WHERE id = :id",
		param{"itemName", f.Name},
		param{"price", f.Price},
		param{"quantity", f.Quantity},
		param{"id", id},
	)
}

func (namedStatements) findByID(id int64) (statement, error) {
	return named(selectItems+" WHERE id = :id", param{"id", id})
}

func (namedStatements) findAll(cond models.SearchCondition) (statement, error) {
	query, params := buildSearch(cond, colon)
	return named(query, params...)
}

func named(query string, params ...param) (statement, error) {
	bound, args, err := bindNamed(query, params)
	if err != nil {
		return statement{}, err
	}
	return statement{sql: bound, args: args}, nil
}

// generatedStatements derives its insert from the column table once, at
// construction, and delegates reads and updates to namedStatements.
type generatedStatements struct {
	namedStatements
	insertSQL    string
	insertValues []func(*models.Item) any
}

func newGeneratedStatements(table string, columns []column) *generatedStatements {
	var (
		names, markers, keys []string
		vals                 []func(*models.Item) any
	)
	for _, c := range columns {
		if c.key {
			keys = append(keys, c.name)
			continue
		}
		names = append(names, c.name)
		vals = append(vals, c.value)
		markers = append(markers, dollar(len(vals), c.name))
	}
	return &generatedStatements{
		insertSQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			table, strings.Join(names, ", "), strings.Join(markers, ", "), strings.Join(keys, ", ")),
		insertValues: vals,
	}
}

func (g *generatedStatements) insert(item *models.Item) (statement, error) {
	args := make([]any, len(g.insertValues))
	for i, v := range g.insertValues {
		args[i] = v(item)
	}
	return statement{sql: g.insertSQL, args: args}, nil
}
