package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ghuser/itemservice/pkg/logger"
	itemdomain "github.com/ghuser/itemservice/services/item/domain"
	"github.com/ghuser/itemservice/services/item/domain/models"
)

// DBTX is the connection provider the repository runs statements on.
// *sql.DB satisfies it; each call borrows a pooled connection and returns it
// when the statement (or its rows) is closed.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db    DBTX
	stmts statements
	log   logger.Logger
}

// NewItemRepository returns an ItemRepository that builds its statements
// with the given strategy.
func NewItemRepository(db DBTX, strategy Strategy, log logger.Logger) (*ItemRepository, error) {
	stmts, err := newStatements(strategy)
	if err != nil {
		return nil, err
	}
	return &ItemRepository{
		db:    db,
		stmts: stmts,
		log:   log.With("component", "item_repository", "strategy", string(strategy)),
	}, nil
}

// Save inserts item and sets the ID generated by the database on it.
// The key comes back from the insert itself; a missing key is fatal.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) (*models.Item, error) {
	st, err := r.stmts.insert(item)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, st.sql, st.args...)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("insert item: %w", err)
		}
		return nil, fmt.Errorf("insert item: %w", itemdomain.ErrGeneratedKeyMissing)
	}

	var id sql.NullInt64
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("read generated key: %w", err)
	}
	if !id.Valid {
		return nil, fmt.Errorf("insert item: %w", itemdomain.ErrGeneratedKeyMissing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}

	item.ID = id.Int64
	return item, nil
}

// Update overwrites name, price and quantity of the row with id.
// The affected row count is not checked; an unknown id is a no-op.
func (r *ItemRepository) Update(ctx context.Context, id int64, fields models.UpdateFields) error {
	st, err := r.stmts.update(id, fields)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, st.sql, st.args...); err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// FindByID returns the item with id, or (nil, false, nil) when none exists.
func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*models.Item, bool, error) {
	st, err := r.stmts.findByID(id)
	if err != nil {
		return nil, false, fmt.Errorf("query item: %w", err)
	}

	items, err := r.query(ctx, st)
	if err != nil {
		return nil, false, fmt.Errorf("query item: %w", err)
	}
	if len(items) == 0 {
		return nil, false, nil
	}
	return items[0], true, nil
}

// FindAll returns the items matching cond in storage order.
func (r *ItemRepository) FindAll(ctx context.Context, cond models.SearchCondition) ([]*models.Item, error) {
	st, err := r.stmts.findAll(cond)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	r.log.DebugContext(ctx, "item search", "sql", st.sql)

	items, err := r.query(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	return items, nil
}

// query runs st and maps every row. The result is never nil on success.
func (r *ItemRepository) query(ctx context.Context, st statement) ([]*models.Item, error) {
	rows, err := r.db.QueryContext(ctx, st.sql, st.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	mapper, err := newItemMapper(columns)
	if err != nil {
		return nil, err
	}

	items := make([]*models.Item, 0)
	for rows.Next() {
		item, err := mapper.mapRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
