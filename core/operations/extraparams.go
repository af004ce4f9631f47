package operations

import (
	"net/http"

	"github.com/Kalysbe/quik-api/core/procedure"
	"github.com/Kalysbe/quik-api/core/schema"
)

var extraParamOperations = []*Operation{
	{
		Procedure: "GetSecurityExtraParamsValues",
		Method:    http.MethodGet,
		Path:      "/api/extra-params",
		Kind:      KindQuery,
		Schema: schema.New(
			schema.Str("ClassCode", 12),
			schema.Str("SecCode", 12),
		),
		Types: map[string]procedure.Decl{
			"ClassCode": procedure.VarChar(12),
			"SecCode":   procedure.VarChar(12),
		},
		QueryParams:    []string{"ClassCode", "SecCode"},
		SuccessMessage: "Дополнительные параметры получены",
	},
	{
		Procedure: "EditSecurityExtraParamsValue",
		Method:    http.MethodPost,
		Path:      "/api/extra-params",
		Schema: schema.New(
			schema.Int("Action").WithRules("min=0,max=2"),
			schema.Str("ClassCode", 12),
			schema.Str("SecCode", 12),
			schema.Str("ParamDbName", 16),
			schema.Int("Value"),
		),
		Types: map[string]procedure.Decl{
			"Action":      procedure.Int,
			"ClassCode":   procedure.VarChar(12),
			"SecCode":     procedure.VarChar(12),
			"ParamDbName": procedure.VarChar(16),
			"Value":       procedure.BigInt,
		},
		SuccessMessage: "Дополнительный параметр успешно обработан",
	},
}
