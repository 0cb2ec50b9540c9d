package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_NonNil(t *testing.T) {
	if ErrItemNotFound == nil {
		t.Fatal("ErrItemNotFound must not be nil")
	}
	if ErrInvalidItem == nil {
		t.Fatal("ErrInvalidItem must not be nil")
	}
	if ErrGeneratedKeyMissing == nil {
		t.Fatal("ErrGeneratedKeyMissing must not be nil")
	}
}

func TestSentinelErrors_Messages(t *testing.T) {
	if ErrItemNotFound.Error() != "item not found" {
		t.Fatalf("unexpected message: %q", ErrItemNotFound.Error())
	}
	if ErrInvalidItem.Error() != "invalid item" {
		t.Fatalf("unexpected message: %q", ErrInvalidItem.Error())
	}
	if ErrGeneratedKeyMissing.Error() != "generated key missing" {
		t.Fatalf("unexpected message: %q", ErrGeneratedKeyMissing.Error())
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("get item: %w", ErrItemNotFound)
	if !errors.Is(wrapped, ErrItemNotFound) {
		t.Fatal("errors.Is must match wrapped ErrItemNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrInvalidItem, errors.New("negative price"))
	if !errors.Is(wrapped2, ErrInvalidItem) {
		t.Fatal("errors.Is must match double-wrapped ErrInvalidItem")
	}

	wrapped3 := fmt.Errorf("insert item: %w", ErrGeneratedKeyMissing)
	if errors.Is(wrapped3, ErrItemNotFound) {
		t.Fatal("distinct sentinels must not match each other")
	}
}
