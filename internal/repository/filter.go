package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/best-life-api/internal/database"
)

// psql builds statements with Postgres-style $n placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Filter is one optional equality condition. An empty Value means the
// condition is absent.
type Filter struct {
	Column string
	Value  string
}

// FoldFilters appends one "column = $n" clause per present filter, in the
// order given, so argument positions always follow clause positions.
func FoldFilters(b sq.SelectBuilder, filters ...Filter) sq.SelectBuilder {
	for _, f := range filters {
		if f.Value == "" {
			continue
		}
		b = b.Where(sq.Eq{f.Column: f.Value})
	}
	return b
}

// queryRows renders b and runs it; the caller owns rows.Close
func queryRows(ctx context.Context, db *database.DB, b sq.Sqlizer) (*sql.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return db.QueryContext(ctx, query, args...)
}

// queryRow renders b and runs it expecting at most one row
func queryRow(ctx context.Context, db *database.DB, b sq.Sqlizer) (*sql.Row, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return db.QueryRowContext(ctx, query, args...), nil
}
