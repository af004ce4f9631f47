package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kalysbe/quik-api/core/limfile"
	"github.com/Kalysbe/quik-api/core/operations"
	"github.com/Kalysbe/quik-api/core/schema"
)

func TestLimLine(t *testing.T) {
	fields := []string{"FIRM_ID", "SECCODE", "OPEN_BALANCE", "LEVERAGE"}

	line := limLine(fields, map[string]any{
		"FIRM_ID":      "2002",
		"SECCODE":      "GD0528",
		"OPEN_BALANCE": "0",
	})

	// Field order is fixed; absent optional fields drop out.
	assert.Equal(t, "FIRM_ID=2002;SECCODE=GD0528;OPEN_BALANCE=0;", line)
}

func newTestPipeline(t *testing.T) *limitPipeline {
	t.Helper()
	dir := t.TempDir()
	return newLimitPipeline(limfile.NewWriter(dir), limfile.NewRunner(dir))
}

func depoImport() *operations.LimitImport {
	return &operations.LimitImport{
		Path:   "/api/depolimits",
		Prefix: "depo",
		Schema: schema.New(
			schema.Str("FIRM_ID", 16),
			schema.Str("SECCODE", 16),
		),
		LineFields: []string{"FIRM_ID", "SECCODE"},
	}
}

func TestLimitHandlerRejectsNonArray(t *testing.T) {
	h := newTestPipeline(t).handle(depoImport())

	req := httptest.NewRequest(http.MethodPost, "/api/depolimits", strings.NewReader(`{"FIRM_ID":"2002"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLimitHandlerRejectsEmptyArray(t *testing.T) {
	h := newTestPipeline(t).handle(depoImport())

	req := httptest.NewRequest(http.MethodPost, "/api/depolimits", strings.NewReader(`[]`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLimitHandlerValidatesEveryRecord(t *testing.T) {
	h := newTestPipeline(t).handle(depoImport())

	body := `[{"FIRM_ID":"2002","SECCODE":"GD0528"},{"FIRM_ID":"2002"}]`
	req := httptest.NewRequest(http.MethodPost, "/api/depolimits", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Success bool                `json:"success"`
		Details []schema.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "[1].SECCODE", resp.Details[0].Field)
}
