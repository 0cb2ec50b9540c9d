package models

import "strings"

// Item is the persisted catalog record.
// ID is zero until a store assigns the database-generated key on Save.
type Item struct {
	ID       int64
	Name     string
	Price    int
	Quantity int
}

// NewItem constructs a transient, not yet persisted Item.
func NewItem(name string, price, quantity int) *Item {
	return &Item{
		Name:     name,
		Price:    price,
		Quantity: quantity,
	}
}

// Persisted reports whether a store has assigned an identifier.
func (i *Item) Persisted() bool {
	return i.ID != 0
}

// Apply overwrites the mutable fields with fields. The identifier is kept.
func (i *Item) Apply(fields UpdateFields) {
	i.Name = fields.Name
	i.Price = fields.Price
	i.Quantity = fields.Quantity
}

// UpdateFields carries the full set of mutable Item fields for an update.
// Partial updates are not supported; every field is written.
type UpdateFields struct {
	Name     string
	Price    int
	Quantity int
}

// SearchCondition filters FindAll. Zero value means "no filter".
type SearchCondition struct {
	NameContains string // empty or whitespace-only is treated as absent
	MaxPrice     *int   // nil is absent
}

// HasName reports whether NameContains holds meaningful text.
func (c SearchCondition) HasName() bool {
	return strings.TrimSpace(c.NameContains) != ""
}

// HasMaxPrice reports whether a price ceiling is set.
func (c SearchCondition) HasMaxPrice() bool {
	return c.MaxPrice != nil
}

// Empty reports whether the condition filters nothing.
func (c SearchCondition) Empty() bool {
	return !c.HasName() && !c.HasMaxPrice()
}

// Matches applies the condition to item in memory, with the same semantics
// the SQL stores use: substring match on name, inclusive ceiling on price.
// The name match is literal. The SQL stores pass NameContains into LIKE
// unescaped, so a '%' or '_' there acts as a wildcard and results can differ.
func (c SearchCondition) Matches(item *Item) bool {
	if c.HasName() && !strings.Contains(item.Name, c.NameContains) {
		return false
	}
	if c.HasMaxPrice() && item.Price > *c.MaxPrice {
		return false
	}
	return true
}

// MaxPrice returns a pointer to v for building a SearchCondition inline.
func MaxPrice(v int) *int {
	return &v
}
