package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Kalysbe/quik-api/core/shared/errors"
)

func TestMergeFiltersSkipsEmptyDirectParams(t *testing.T) {
	merged, err := MergeFilters(map[string]string{
		"FirmId":     "F1",
		"ClientCode": "",
	}, "")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"FirmId": "F1"}, merged)
}

func TestMergeFiltersBlobWinsOnCollision(t *testing.T) {
	merged, err := MergeFilters(
		map[string]string{"FirmId": "F1", "SecCode": "SBER"},
		`{"FirmId":"F2","TradeDate":20260831}`,
	)
	require.NoError(t, err)

	assert.Equal(t, "F2", merged["FirmId"])
	assert.Equal(t, "SBER", merged["SecCode"])
	assert.Equal(t, float64(20260831), merged["TradeDate"])
}

func TestMergeFiltersInvalidJSON(t *testing.T) {
	_, err := MergeFilters(nil, "{not json")
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeValidationError, appErr.Code)
}

func TestCompileDropsUnknownKeys(t *testing.T) {
	cat := NewCatalog("Firms", "FirmId", "FirmName")

	compiled := Compile(cat, map[string]any{
		"FirmId":  "F1",
		"Unknown": "x",
	})

	assert.Equal(t, ` WHERE "FirmId" = $1`, compiled.Where)
	assert.Equal(t, []any{"F1"}, compiled.Args)
}

func TestCompileNoPredicates(t *testing.T) {
	cat := NewCatalog("Firms", "FirmId")

	compiled := Compile(cat, map[string]any{"Unknown": "x"})
	assert.Empty(t, compiled.Where)
	assert.Empty(t, compiled.Args)
}

func TestCompileEmitsCatalogColumnOrder(t *testing.T) {
	cat := NewCatalog("Trades", "TradeDate", "SecCode", "FirmId")

	// Filter key insertion order must not leak into the SQL.
	compiled := Compile(cat, map[string]any{
		"FirmId":    "F1",
		"TradeDate": 20260831,
	})

	assert.Equal(t, ` WHERE "TradeDate" = $1 AND "FirmId" = $2`, compiled.Where)
	assert.Equal(t, []any{20260831, "F1"}, compiled.Args)
}
