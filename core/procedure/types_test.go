package procedure

import (
	"database/sql"
	"testing"

	mssql "github.com/microsoft/go-mssqldb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamSetPreservesOrder(t *testing.T) {
	ps := NewParamSet().
		Add("FirmCode", NVarChar(12), "F1").
		Add("ClientCode", NVarChar(12), "C1").
		Add("Enabled", Bit, int64(1))

	assert.Equal(t, []string{"FirmCode", "ClientCode", "Enabled"}, ps.Names())
	assert.Equal(t, 3, ps.Len())
}

func TestDriverArgsExplicitTypes(t *testing.T) {
	ps := NewParamSet().
		Add("Code", VarChar(12), "ABC").
		Add("Name", NVarChar(255), "Тест").
		Add("Count", Int, int64(7)).
		Add("BigCount", BigInt, int64(9000000000)).
		Add("Price", Float, 10.5).
		Add("Enabled", Bit, int64(1)).
		Add("Comment", NVarChar(255), nil)

	args, err := ps.driverArgs()
	require.NoError(t, err)
	require.Len(t, args, 7)

	named := make(map[string]any, len(args))
	for _, a := range args {
		n, ok := a.(sql.NamedArg)
		require.True(t, ok)
		named[n.Name] = n.Value
	}

	assert.Equal(t, mssql.VarChar("ABC"), named["Code"])
	assert.Equal(t, "Тест", named["Name"])
	assert.Equal(t, int32(7), named["Count"])
	assert.Equal(t, int64(9000000000), named["BigCount"])
	assert.Equal(t, 10.5, named["Price"])
	assert.Equal(t, true, named["Enabled"])
	assert.Nil(t, named["Comment"])
}

func TestDriverArgsTypeMismatch(t *testing.T) {
	ps := NewParamSet().Add("Code", VarChar(12), 42)

	_, err := ps.driverArgs()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parameter "Code"`)
}

func TestOutputParameters(t *testing.T) {
	ps := NewParamSet().
		Add("Code", VarChar(12), "ABC").
		AddOutput("ResultCode", Int).
		AddOutput("ResultText", NVarChar(255))

	args, err := ps.driverArgs()
	require.NoError(t, err)
	require.Len(t, args, 3)

	// Output parameters bind as sql.Out with a typed destination.
	out, ok := args[1].(sql.NamedArg).Value.(sql.Out)
	require.True(t, ok)
	code, ok := out.Dest.(*int64)
	require.True(t, ok)

	text := args[2].(sql.NamedArg).Value.(sql.Out).Dest.(*string)

	// Simulate the driver writing the values during execution.
	*code = 5
	*text = "already exists"

	values := ps.OutputValues()
	assert.Equal(t, int64(5), values["ResultCode"])
	assert.Equal(t, "already exists", values["ResultText"])
}

func TestOutputValuesBeforeExecution(t *testing.T) {
	ps := NewParamSet().AddOutput("ResultCode", Int)
	assert.Empty(t, ps.OutputValues())
}
