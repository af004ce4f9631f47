package http

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Kalysbe/quik-api/core/catalog"
	"github.com/Kalysbe/quik-api/core/infrastructure/logging"
	"github.com/Kalysbe/quik-api/core/infrastructure/transport/http/dto"
	"github.com/Kalysbe/quik-api/core/operations"
	apperrors "github.com/Kalysbe/quik-api/core/shared/errors"
)

// reader serves the dynamic table read endpoints over the read store.
type reader struct {
	db       *sql.DB
	resolver *catalog.Resolver
	log      logging.Logger
}

func newReader(db *sql.DB) *reader {
	return &reader{
		db:       db,
		resolver: catalog.NewResolver(db),
		log:      logging.New("reads"),
	}
}

// handle builds the handler for one table read: fetch the live column
// catalog, compile query-string filters against it and return the rows
// as a bare array.
func (rd *reader) handle(tr *operations.TableRead) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, err := rd.resolver.Columns(r.Context(), tr.Table, "")
		if err != nil {
			rd.writeError(w, tr.Table, err)
			return
		}

		query := r.URL.Query()
		direct := make(map[string]string, len(query))
		for key, values := range query {
			if key == "filters" || len(values) == 0 {
				continue
			}
			direct[key] = values[0]
		}

		filters, err := catalog.MergeFilters(direct, query.Get("filters"))
		if err != nil {
			rd.writeError(w, tr.Table, err)
			return
		}

		compiled := catalog.Compile(cat, filters)

		sqlText := fmt.Sprintf("SELECT %s FROM public.%s%s%s",
			selectList(cat, tr.Select),
			catalog.QuoteIdent(tr.Table),
			compiled.Where,
			orderClause(cat, tr))

		rows, err := rd.db.QueryContext(r.Context(), sqlText, compiled.Args...)
		if err != nil {
			rd.log.Error(fmt.Sprintf("Read query failed for table %s", tr.Table), err)
			writeJSON(w, http.StatusInternalServerError, dto.NewErrorResponse("Ошибка выполнения запроса к базе данных"))
			return
		}
		defer rows.Close()

		records, err := scanRecords(rows)
		if err != nil {
			rd.log.Error(fmt.Sprintf("Failed to scan rows for table %s", tr.Table), err)
			writeJSON(w, http.StatusInternalServerError, dto.NewErrorResponse("Ошибка чтения данных из базы"))
			return
		}

		writeJSON(w, http.StatusOK, records)
	}
}

func (rd *reader) writeError(w http.ResponseWriter, table string, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.Status, dto.NewErrorResponse(appErr.Message))
		return
	}
	rd.log.Error(fmt.Sprintf("Catalog lookup failed for table %s", table), err)
	writeJSON(w, http.StatusInternalServerError, dto.NewErrorResponse("Ошибка доступа к каталогу таблиц"))
}

// selectList builds the projection. With no declared output columns the
// whole catalog is selected; declared columns resolve through their
// candidate name lists and alias back to the logical name. Unresolvable
// columns are skipped, the schemas differ between deployments.
func selectList(cat *catalog.Catalog, outputs []operations.OutputColumn) string {
	if len(outputs) == 0 {
		quoted := make([]string, len(cat.Columns))
		for i, c := range cat.Columns {
			quoted[i] = catalog.QuoteIdent(c)
		}
		return strings.Join(quoted, ", ")
	}

	var parts []string
	for _, out := range outputs {
		resolved, ok := cat.Resolve(out.Candidates...)
		if !ok {
			continue
		}
		if resolved == out.Name {
			parts = append(parts, catalog.QuoteIdent(resolved))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s AS %s", catalog.QuoteIdent(resolved), catalog.QuoteIdent(out.Name)))
	}
	if len(parts) == 0 {
		return "*"
	}
	return strings.Join(parts, ", ")
}

// orderClause picks the first order candidate present in the catalog.
func orderClause(cat *catalog.Catalog, tr *operations.TableRead) string {
	col, ok := cat.Resolve(tr.OrderBy...)
	if !ok {
		return ""
	}
	clause := " ORDER BY " + catalog.QuoteIdent(col)
	if tr.OrderDesc {
		clause += " DESC"
	}
	return clause
}

// scanRecords drains a result set into ordered row maps, with byte
// slices stringified for JSON.
func scanRecords(rows *sql.Rows) ([]map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	records := []map[string]any{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		record := make(map[string]any, len(cols))
		for i, col := range cols {
			v := values[i]
			if b, ok := v.([]byte); ok {
				record[col] = string(b)
				continue
			}
			record[col] = v
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
