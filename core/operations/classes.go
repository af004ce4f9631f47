package operations

import (
	"net/http"

	"github.com/Kalysbe/quik-api/core/procedure"
	"github.com/Kalysbe/quik-api/core/schema"
)

// Most class-creation procedures take the class code alone; the bond
// and spread variants additionally select the order matching mode
// (0 continuous double auction, 1 one-sided auction).

var classOperations = []*Operation{
	{
		Procedure: "NewClass",
		Method:    http.MethodPost,
		Path:      "/api/classes",
		Schema: schema.New(
			schema.Str("ClassCode", 12),
		),
		Types: map[string]procedure.Decl{
			"ClassCode": procedure.VarChar(12),
		},
		SuccessMessage: "Класс успешно добавлен",
	},
	{
		Procedure: "NewBondClass",
		Method:    http.MethodPost,
		Path:      "/api/classes/bond",
		Schema: schema.New(
			schema.Str("ClassCode", 12),
			schema.Int("MatchingMode").WithRules("min=0,max=1"),
		),
		Types: map[string]procedure.Decl{
			"ClassCode":    procedure.VarChar(12),
			"MatchingMode": procedure.Int,
		},
		SuccessMessage: "Класс облигаций успешно добавлен",
	},
	{
		Procedure: "NewFutClass",
		Method:    http.MethodPost,
		Path:      "/api/classes/futures",
		Schema: schema.New(
			schema.Str("ClassCode", 12),
		),
		Types: map[string]procedure.Decl{
			"ClassCode": procedure.VarChar(12),
		},
		SuccessMessage: "Класс фьючерсов успешно добавлен",
	},
	{
		Procedure: "NewFxClass",
		Method:    http.MethodPost,
		Path:      "/api/classes/fx",
		Schema: schema.New(
			schema.Str("ClassCode", 12),
		),
		Types: map[string]procedure.Decl{
			"ClassCode": procedure.VarChar(12),
		},
		SuccessMessage: "Класс валютообмена успешно добавлен",
	},
	{
		Procedure: "NewOptClass",
		Method:    http.MethodPost,
		Path:      "/api/classes/options",
		Schema: schema.New(
			schema.Str("ClassCode", 12),
		),
		Types: map[string]procedure.Decl{
			"ClassCode": procedure.VarChar(12),
		},
		SuccessMessage: "Класс опционов успешно добавлен",
	},
	{
		Procedure: "NewSpreadClass",
		Method:    http.MethodPost,
		Path:      "/api/classes/spread",
		Schema: schema.New(
			schema.Str("ClassCode", 12),
			schema.Int("MatchingMode").WithRules("min=0,max=1"),
			schema.Int("ZeroOrNegativePriceAllowed").Opt(),
		),
		Types: map[string]procedure.Decl{
			"ClassCode":                  procedure.VarChar(12),
			"MatchingMode":               procedure.Int,
			"ZeroOrNegativePriceAllowed": procedure.Int,
		},
		SuccessMessage: "Класс спредов успешно добавлен",
	},
	{
		Procedure: "NewCertificateClass",
		Method:    http.MethodPost,
		Path:      "/api/classes/certificate",
		Schema: schema.New(
			schema.Str("ClassCode", 12),
		),
		Types: map[string]procedure.Decl{
			"ClassCode": procedure.VarChar(12),
		},
		SuccessMessage: "Класс цифровых свидетельств успешно добавлен",
	},
}
