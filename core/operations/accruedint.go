package operations

import (
	"net/http"

	"github.com/Kalysbe/quik-api/core/procedure"
	"github.com/Kalysbe/quik-api/core/schema"
)

var accruedIntOperations = []*Operation{
	{
		Procedure: "AddAccruedInt",
		Method:    http.MethodPost,
		Path:      "/api/accrued-int",
		Schema: schema.New(
			schema.Str("SecCode", 12),
			schema.Int("Date"),
			schema.Num("ACI"),
			schema.Str("CurrencyCode", 4).Opt().Null(),
		),
		Types: map[string]procedure.Decl{
			"SecCode":      procedure.VarChar(12),
			"Date":         procedure.Int,
			"ACI":          procedure.Float,
			"CurrencyCode": procedure.VarChar(4),
		},
		NullableKeys:   []string{"CurrencyCode"},
		SuccessMessage: "НКД успешно добавлен",
	},
	{
		Procedure: "DelAccruedInt",
		Method:    http.MethodDelete,
		Path:      "/api/accrued-int",
		Schema: schema.New(
			schema.Str("SecCode", 12),
			schema.Int("Date"),
			schema.Str("CurrencyCode", 4).Opt().Null(),
		),
		Types: map[string]procedure.Decl{
			"SecCode":      procedure.VarChar(12),
			"Date":         procedure.Int,
			"CurrencyCode": procedure.VarChar(4),
		},
		NullableKeys:   []string{"CurrencyCode"},
		SuccessMessage: "НКД успешно удалён",
	},
	{
		Procedure: "SetAccruedIntCalculateMode",
		Method:    http.MethodPost,
		Path:      "/api/accrued-int/calculate-mode",
		Schema: schema.New(
			schema.Str("AssetCode", 12),
			schema.Int("CalcModeACI").Opt().Null(),
		),
		Types: map[string]procedure.Decl{
			"AssetCode":   procedure.VarChar(12),
			"CalcModeACI": procedure.Int,
		},
		NullableKeys:   []string{"CalcModeACI"},
		SuccessMessage: "Режим расчета НКД установлен",
	},
}
