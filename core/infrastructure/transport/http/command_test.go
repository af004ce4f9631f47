package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kalysbe/quik-api/core/operations"
	"github.com/Kalysbe/quik-api/core/procedure"
	"github.com/Kalysbe/quik-api/core/schema"
)

// fakeRunner returns a canned result and records what it was asked to run.
type fakeRunner struct {
	result *procedure.Result
	err    error

	proc   string
	params *procedure.ParamSet
}

func (f *fakeRunner) Invoke(_ context.Context, proc string, params *procedure.ParamSet) (*procedure.Result, error) {
	f.proc = proc
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newClientOp() *operations.Operation {
	return &operations.Operation{
		Procedure: "NewClient",
		Method:    http.MethodPost,
		Path:      "/api/clients",
		Schema: schema.New(
			schema.Str("FirmCode", 12),
			schema.Str("ClientCode", 12),
		),
		Types: map[string]procedure.Decl{
			"FirmCode":   procedure.VarChar(12),
			"ClientCode": procedure.VarChar(12),
		},
		SuccessMessage: "Клиент успешно добавлен",
	}
}

func zeroReturn() *int32 {
	var v int32
	return &v
}

func doRequest(t *testing.T, runner procedure.Runner, op *operations.Operation, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.Method(op.Method, op.Path, handleOperation(runner, op, true))

	var reqBody *strings.Reader
	if body == "" {
		reqBody = strings.NewReader("")
	} else {
		reqBody = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reqBody)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleOperationSuccess(t *testing.T) {
	runner := &fakeRunner{result: &procedure.Result{
		ReturnCode: zeroReturn(),
		Output:     map[string]any{},
	}}

	rec := doRequest(t, runner, newClientOp(), http.MethodPost, "/api/clients",
		`{"FirmCode":"F1","ClientCode":"C1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "NewClient", runner.proc)
	assert.Equal(t, []string{"FirmCode", "ClientCode"}, runner.params.Names())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Клиент успешно добавлен", resp["message"])
	assert.Equal(t, float64(0), resp["returnValue"])
}

func TestHandleOperationValidationFailure(t *testing.T) {
	runner := &fakeRunner{}

	rec := doRequest(t, runner, newClientOp(), http.MethodPost, "/api/clients",
		`{"FirmCode":"F1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// Nothing must reach the database on validation failure.
	assert.Empty(t, runner.proc)

	var resp struct {
		Success bool                `json:"success"`
		Details []schema.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "ClientCode", resp.Details[0].Field)
}

func TestHandleOperationInvalidJSON(t *testing.T) {
	rec := doRequest(t, &fakeRunner{}, newClientOp(), http.MethodPost, "/api/clients", "{broken")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleOperationBusinessFailure(t *testing.T) {
	runner := &fakeRunner{result: &procedure.Result{
		ReturnCode: zeroReturn(),
		Output:     map[string]any{},
		Notices:    []procedure.Notice{{Message: "Client already exists", Number: 50000}},
	}}

	rec := doRequest(t, runner, newClientOp(), http.MethodPost, "/api/clients",
		`{"FirmCode":"F1","ClientCode":"C1"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Процедура NewClient вернула ошибку", resp["message"])
	assert.Equal(t, "Client already exists", resp["reason"])
	// The raw diagnostics ride along for debugging.
	assert.Contains(t, resp, "info")
	assert.Contains(t, resp, "returnValue")
}

func TestHandleOperationTransportError(t *testing.T) {
	runner := &fakeRunner{err: &procedure.TransportError{
		Procedure: "NewClient",
		Diag:      procedure.SQLDiag{Message: "login failed", Number: 18456},
		Err:       errors.New("login failed"),
	}}

	rec := doRequest(t, runner, newClientOp(), http.MethodPost, "/api/clients",
		`{"FirmCode":"F1","ClientCode":"C1"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp struct {
		Success bool               `json:"success"`
		SQLErr  *procedure.SQLDiag `json:"sqlError"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.SQLErr)
	assert.Equal(t, int32(18456), resp.SQLErr.Number)
}

func TestHandleOperationQueryKind(t *testing.T) {
	runner := &fakeRunner{result: &procedure.Result{
		ReturnCode: zeroReturn(),
		Output:     map[string]any{},
		Rows: []map[string]any{
			{"CalendarName": "MOEX", "Enabled": true},
		},
	}}

	op := &operations.Operation{
		Procedure:      "GetCalendar",
		Method:         http.MethodGet,
		Path:           "/api/calendars/{CalendarName}",
		Kind:           operations.KindQuery,
		Schema:         schema.New(schema.Str("CalendarName", 255)),
		PathParam:      "CalendarName",
		SuccessMessage: "Даты календаря получены",
	}

	rec := doRequest(t, runner, op, http.MethodGet, "/api/calendars/MOEX", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	// The path parameter feeds the procedure call.
	assert.Equal(t, []string{"CalendarName"}, runner.params.Names())

	var resp struct {
		Success bool             `json:"success"`
		Data    []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "MOEX", resp.Data[0]["CalendarName"])
}

func TestHandleOperationNullBody(t *testing.T) {
	// json.Decode turns a literal null into a nil map without error;
	// the handler must treat it as an empty payload and fail field
	// validation, not write into the nil map.
	runner := &fakeRunner{}

	rec := doRequest(t, runner, newClientOp(), http.MethodPost, "/api/clients", "null")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, runner.proc)

	var resp struct {
		Success bool                `json:"success"`
		Details []schema.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Len(t, resp.Details, 2)
}

func TestHandleOperationNullBodyWithPathParam(t *testing.T) {
	runner := &fakeRunner{result: &procedure.Result{
		ReturnCode: zeroReturn(),
		Output:     map[string]any{},
	}}

	op := &operations.Operation{
		Procedure: "GetCalendar",
		Method:    http.MethodGet,
		Path:      "/api/calendars/{CalendarName}",
		Kind:      operations.KindQuery,
		Schema:    schema.New(schema.Str("CalendarName", 255)),
		PathParam: "CalendarName",
	}

	rec := doRequest(t, runner, op, http.MethodGet, "/api/calendars/MOEX", "null")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"CalendarName"}, runner.params.Names())
}

func TestHandleOperationQueryParams(t *testing.T) {
	runner := &fakeRunner{result: &procedure.Result{
		ReturnCode: zeroReturn(),
		Output:     map[string]any{},
	}}

	op := &operations.Operation{
		Procedure: "GetCrossrates",
		Method:    http.MethodGet,
		Path:      "/api/crossrates",
		Kind:      operations.KindQuery,
		Schema:    schema.New(schema.Int("Date").Opt()),
		Types: map[string]procedure.Decl{
			"Date": procedure.Int,
		},
		QueryParams: []string{"Date"},
	}

	rec := doRequest(t, runner, op, http.MethodGet, "/api/crossrates?Date=20260101", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	// The query value is coerced per the schema type before binding.
	assert.Equal(t, []string{"Date"}, runner.params.Names())

	// An absent optional query parameter binds nothing.
	rec = doRequest(t, runner, op, http.MethodGet, "/api/crossrates", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, runner.params.Names())
}

func TestHandleOperationErrorDetailByMode(t *testing.T) {
	run := func(production bool) map[string]any {
		runner := &fakeRunner{err: errors.New("dial tcp: connection refused")}

		r := chi.NewRouter()
		op := newClientOp()
		r.Method(op.Method, op.Path, handleOperation(runner, op, production))

		req := httptest.NewRequest(http.MethodPost, "/api/clients",
			strings.NewReader(`{"FirmCode":"F1","ClientCode":"C1"}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	resp := run(false)
	assert.Equal(t, "dial tcp: connection refused", resp["detail"])

	resp = run(true)
	assert.NotContains(t, resp, "detail")
}
