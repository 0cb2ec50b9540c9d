// Package services contains stateless domain services for the item bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ghuser/itemservice/services/item/domain/models"
)

const (
	minItemNameLength = 1
	maxItemNameLength = 255
)

// ValidateName enforces the business rules for an item name.
//
// Business rules:
//   - 1 to 255 characters
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - Must not be only whitespace characters
func ValidateName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < minItemNameLength {
		return fmt.Errorf("item name must be at least %d character", minItemNameLength)
	}
	if n > maxItemNameLength {
		return fmt.Errorf("item name must not exceed %d characters", maxItemNameLength)
	}

	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("item name must not be only whitespace")
	}

	if name != strings.TrimSpace(name) {
		return fmt.Errorf("item name must not have leading or trailing whitespace")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("item name must not contain control characters")
		}
	}

	return nil
}

// ValidateAmounts rejects negative price or quantity. The stores accept any
// integer; the rule lives here so every write path through the application
// layer applies it.
func ValidateAmounts(price, quantity int) error {
	if price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	return nil
}

// ValidateItemForCreation checks a transient Item before it is saved.
func ValidateItemForCreation(item *models.Item) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}

	if item.Persisted() {
		return fmt.Errorf("id must not be set before save")
	}

	if err := ValidateName(item.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	return ValidateAmounts(item.Price, item.Quantity)
}

// ValidateUpdate checks a full set of update fields.
func ValidateUpdate(fields models.UpdateFields) error {
	if err := ValidateName(fields.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}
	return ValidateAmounts(fields.Price, fields.Quantity)
}
