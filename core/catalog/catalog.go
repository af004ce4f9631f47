package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	apperrors "github.com/Kalysbe/quik-api/core/shared/errors"
)

// columnsQuery fetches the column set of a table from the read store's
// metadata catalog, in ordinal order.
const columnsQuery = `
SELECT column_name
FROM information_schema.columns
WHERE table_schema = $1
  AND table_name = $2
ORDER BY ordinal_position;
`

// Catalog is the resolved column set of one table. It is fetched fresh
// per request: schema changes must be visible without a restart, so
// nothing here is cached.
type Catalog struct {
	Table   string
	Columns []string

	set map[string]struct{}
}

// Resolver fetches table catalogs from the read store.
type Resolver struct {
	db *sql.DB
}

// NewResolver creates a catalog resolver over the read store pool.
func NewResolver(db *sql.DB) *Resolver {
	return &Resolver{db: db}
}

// Columns returns the column catalog of a table, or a TABLE_NOT_FOUND
// error when the metadata query yields zero rows. Schema defaults to
// "public" when empty.
func (r *Resolver) Columns(ctx context.Context, table, schema string) (*Catalog, error) {
	if schema == "" {
		schema = "public"
	}

	rows, err := r.db.QueryContext(ctx, columnsQuery, schema, table)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog for table %q: %w", table, err)
	}
	defer rows.Close()

	cat := &Catalog{Table: table, set: make(map[string]struct{})}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}
		cat.Columns = append(cat.Columns, name)
		cat.set[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog rows: %w", err)
	}

	if len(cat.Columns) == 0 {
		return nil, apperrors.NewAppError(
			apperrors.ErrCodeTableNotFound,
			fmt.Sprintf("Таблица %q не найдена в схеме %s", table, schema),
			nil,
		)
	}

	return cat, nil
}

// NewCatalog builds a catalog from an explicit column list. Used by tests
// and by call sites that already hold the column set.
func NewCatalog(table string, columns ...string) *Catalog {
	cat := &Catalog{Table: table, Columns: columns, set: make(map[string]struct{}, len(columns))}
	for _, c := range columns {
		cat.set[c] = struct{}{}
	}
	return cat
}

// Has reports whether the table has a column with the exact name.
func (c *Catalog) Has(name string) bool {
	_, ok := c.set[name]
	return ok
}

// Resolve picks the physical column for a logical field from an ordered
// list of historically-used name variants. Exact matches win; a
// case-insensitive pass over the full candidate list is the fallback.
func (c *Catalog) Resolve(candidates ...string) (string, bool) {
	for _, cand := range candidates {
		if c.Has(cand) {
			return cand, true
		}
	}
	for _, cand := range candidates {
		for _, col := range c.Columns {
			if strings.EqualFold(col, cand) {
				return col, true
			}
		}
	}
	return "", false
}

// QuoteIdent quotes an identifier so mixed-case and reserved-word column
// names survive; values never go through this path, they are always bound
// positionally.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
