package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequiredFields(t *testing.T) {
	s := New(
		Str("FirmCode", 12),
		Str("ClientCode", 12),
	)

	data, errs := s.Validate(map[string]any{"FirmCode": "F1"})
	require.Len(t, errs, 1)
	assert.Nil(t, data)
	assert.Equal(t, "ClientCode", errs[0].Field)
	assert.Equal(t, "Required", errs[0].Message)
}

func TestValidateStripsUnknownKeys(t *testing.T) {
	s := New(Str("FirmCode", 12))

	data, errs := s.Validate(map[string]any{
		"FirmCode": "F1",
		"Extra":    "dropped",
	})
	require.Empty(t, errs)
	assert.Equal(t, map[string]any{"FirmCode": "F1"}, data)
}

func TestValidateCoercion(t *testing.T) {
	s := New(
		Int("Date"),
		Num("Price"),
	)

	data, errs := s.Validate(map[string]any{
		// JSON numbers decode as float64.
		"Date":  float64(20260831),
		"Price": float64(10.5),
	})
	require.Empty(t, errs)
	assert.Equal(t, int64(20260831), data["Date"])
	assert.Equal(t, 10.5, data["Price"])
}

func TestValidateRejectsFractionalInt(t *testing.T) {
	s := New(Int("Date"))

	_, errs := s.Validate(map[string]any{"Date": 2026.5})
	require.Len(t, errs, 1)
	assert.Equal(t, "Date", errs[0].Field)
}

func TestValidateTypeMismatch(t *testing.T) {
	s := New(Str("FirmCode", 12))

	_, errs := s.Validate(map[string]any{"FirmCode": float64(42)})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "Expected string")
}

func TestValidateRules(t *testing.T) {
	s := New(
		Str("FirmCode", 4),
		Flag("Enabled"),
	)

	_, errs := s.Validate(map[string]any{
		"FirmCode": "TOOLONG",
		"Enabled":  float64(2),
	})
	require.Len(t, errs, 2)
	assert.Equal(t, "FirmCode", errs[0].Field)
	assert.Equal(t, "Enabled", errs[1].Field)
}

func TestValidateOptionalAndNullable(t *testing.T) {
	s := New(
		Str("FirmCode", 12),
		Str("Comment", 255).Opt(),
		Str("RegNumber", 64).Null(),
	)

	data, errs := s.Validate(map[string]any{
		"FirmCode":  "F1",
		"RegNumber": nil,
	})
	require.Empty(t, errs)
	assert.NotContains(t, data, "Comment")

	v, present := data["RegNumber"]
	assert.True(t, present)
	assert.Nil(t, v)
}

func TestValidateNullRejectedWhenNotNullable(t *testing.T) {
	s := New(Str("FirmCode", 12))

	_, errs := s.Validate(map[string]any{"FirmCode": nil})
	require.Len(t, errs, 1)
	assert.Equal(t, "Expected non-null value", errs[0].Message)
}

func TestNormalizeNullables(t *testing.T) {
	data := map[string]any{
		"FirmCode":  "F1",
		"RegNumber": "",
		"ISIN":      "RU000A0JX0J2",
	}

	out := NormalizeNullables(data, []string{"RegNumber", "ISIN", "Missing"})

	assert.Equal(t, "F1", out["FirmCode"])
	assert.Nil(t, out["RegNumber"])
	assert.Equal(t, "RU000A0JX0J2", out["ISIN"])
	// Absent nullable keys surface as explicit NULLs.
	v, present := out["Missing"]
	assert.True(t, present)
	assert.Nil(t, v)

	// The input map is left untouched.
	assert.Equal(t, "", data["RegNumber"])
}
