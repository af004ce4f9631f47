package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	apperrors "github.com/Kalysbe/quik-api/core/shared/errors"
)

// CompiledFilter is the outcome of compiling a filter map against a
// table catalog: a WHERE clause (possibly empty) and its positional
// arguments.
type CompiledFilter struct {
	Where string
	Args  []any
}

// MergeFilters combines direct query parameters with the decoded
// `filters` JSON blob. On key collision the blob wins; this policy is
// applied uniformly across every read endpoint.
func MergeFilters(direct map[string]string, filtersParam string) (map[string]any, error) {
	merged := make(map[string]any, len(direct))
	for k, v := range direct {
		// An empty direct parameter means "no filter on this column".
		if v == "" {
			continue
		}
		merged[k] = v
	}

	if filtersParam != "" {
		var blob map[string]any
		if err := json.Unmarshal([]byte(filtersParam), &blob); err != nil {
			return nil, apperrors.NewAppError(
				apperrors.ErrCodeValidationError,
				"Не удалось распарсить JSON в параметре filters",
				err,
			)
		}
		for k, v := range blob {
			merged[k] = v
		}
	}

	return merged, nil
}

// Compile turns a flat key/value map into a parameterized WHERE clause.
// Keys without a matching catalog column are silently dropped: unknown
// query parameters never fail a read. Predicates are emitted in catalog
// column order, so the compiled SQL is deterministic. Zero matching keys
// produce no WHERE clause at all.
func Compile(cat *Catalog, filters map[string]any) CompiledFilter {
	var (
		conditions []string
		args       []any
	)

	for _, col := range cat.Columns {
		value, ok := filters[col]
		if !ok {
			continue
		}
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", QuoteIdent(col), len(args)))
	}

	if len(conditions) == 0 {
		return CompiledFilter{}
	}
	return CompiledFilter{
		Where: " WHERE " + strings.Join(conditions, " AND "),
		Args:  args,
	}
}
