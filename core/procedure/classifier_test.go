package procedure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int32) *int32 { return &v }

func TestClassifyAllClear(t *testing.T) {
	result := &Result{
		ReturnCode: intPtr(0),
		Output:     map[string]any{"Status": "OK"},
		Notices:    []Notice{{Message: "Клиент добавлен"}},
		Rows:       []map[string]any{{"Success": true}},
	}

	outcome := Classify(result)
	assert.False(t, outcome.Failed)
	assert.Empty(t, outcome.Reason)
}

func TestClassifySingleSignals(t *testing.T) {
	tests := []struct {
		name           string
		result         *Result
		expectedReason string
	}{
		{
			name: "non-zero return code",
			result: &Result{
				ReturnCode: intPtr(8),
				Output:     map[string]any{},
			},
			expectedReason: "Stored procedure returned non-zero code: 8",
		},
		{
			name: "error notice",
			result: &Result{
				ReturnCode: intPtr(0),
				Output:     map[string]any{},
				Notices:    []Notice{{Message: "Client already exists"}},
			},
			expectedReason: "Client already exists",
		},
		{
			name: "cyrillic error notice",
			result: &Result{
				ReturnCode: intPtr(0),
				Output:     map[string]any{},
				Notices:    []Notice{{Message: "Ошибка: неверный код клиента"}},
			},
			expectedReason: "Ошибка: неверный код клиента",
		},
		{
			name: "recordset success flag false",
			result: &Result{
				ReturnCode: intPtr(0),
				Output:     map[string]any{},
				Rows:       []map[string]any{{"Success": false}},
			},
			expectedReason: "Stored procedure reported failure via recordset",
		},
		{
			name: "recordset serialized error text",
			result: &Result{
				ReturnCode: intPtr(0),
				Output:     map[string]any{},
				Rows:       []map[string]any{{"Status": "record not found"}},
			},
			expectedReason: "Stored procedure reported failure via recordset",
		},
		{
			name: "output param error text",
			result: &Result{
				ReturnCode: intPtr(0),
				Output:     map[string]any{"Result": "unable to insert row"},
			},
			expectedReason: "Stored procedure reported failure via output params",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := Classify(tt.result)
			assert.True(t, outcome.Failed)
			assert.Equal(t, tt.expectedReason, outcome.Reason)
		})
	}
}

func TestClassifyReasonPrecedence(t *testing.T) {
	// All four signals at once: the notice text wins.
	result := &Result{
		ReturnCode: intPtr(4),
		Output:     map[string]any{"Result": "invalid state"},
		Notices:    []Notice{{Message: "всё в порядке"}, {Message: "Duplicate key"}},
		Rows:       []map[string]any{{"Success": false}},
	}

	outcome := Classify(result)
	assert.True(t, outcome.Failed)
	assert.Equal(t, "Duplicate key", outcome.Reason)

	// Without matching notices the recordset explanation ranks next.
	result.Notices = nil
	outcome = Classify(result)
	assert.Equal(t, "Stored procedure reported failure via recordset", outcome.Reason)

	// Then the output params, then the return code.
	result.Rows = nil
	outcome = Classify(result)
	assert.Equal(t, "Stored procedure reported failure via output params", outcome.Reason)

	result.Output = map[string]any{}
	outcome = Classify(result)
	assert.Equal(t, "Stored procedure returned non-zero code: 4", outcome.Reason)
}

func TestClassifyNilReturnCode(t *testing.T) {
	// A missing return status alone is not a failure signal.
	outcome := Classify(&Result{Output: map[string]any{}})
	assert.False(t, outcome.Failed)
}

func TestMatchesErrTextIsCaseInsensitive(t *testing.T) {
	assert.True(t, matchesErrText("Record NOT FOUND in table"))
	assert.True(t, matchesErrText("ОШИБКА доступа"))
	assert.False(t, matchesErrText("operation completed"))
}
