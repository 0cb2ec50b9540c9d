package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/ghuser/itemservice/pkg/database"
	"github.com/ghuser/itemservice/pkg/logger"
	"github.com/ghuser/itemservice/services/item/domain/repositories"
	"github.com/ghuser/itemservice/services/item/infrastructure/persistence/storetest"
)

// Runs the shared store checks against a real PostgreSQL.
// Requires DATABASE_URL; the item table is dropped and recreated per test.
func TestItemRepository_Integration(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	schema, err := os.ReadFile("testdata/schema.sql")
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}

	db, err := database.NewPool(context.Background(), url, logger.Discard())
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	for _, s := range allStrategies {
		t.Run(string(s), func(t *testing.T) {
			storetest.Run(t, func(t *testing.T) repositories.ItemRepository {
				if _, err := db.DB().ExecContext(context.Background(), string(schema)); err != nil {
					t.Fatalf("apply schema: %v", err)
				}
				repo, err := NewItemRepository(db.DB(), s, logger.Discard())
				if err != nil {
					t.Fatalf("NewItemRepository: %v", err)
				}
				return repo
			})
		})
	}
}
