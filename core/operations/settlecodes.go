package operations

import (
	"net/http"

	"github.com/Kalysbe/quik-api/core/procedure"
	"github.com/Kalysbe/quik-api/core/schema"
)

var settleCodeOperations = []*Operation{
	{
		Procedure: "NewSettleCode",
		Method:    http.MethodPost,
		Path:      "/api/settlecodes",
		Schema: schema.New(
			schema.Str("SettleCode", 12),
			schema.Int("SettleDays"),
		),
		Types: map[string]procedure.Decl{
			"SettleCode": procedure.VarChar(12),
			"SettleDays": procedure.Int,
		},
		SuccessMessage: "Код расчетов успешно добавлен или изменён",
	},
	{
		Procedure: "DelSettleCode",
		Method:    http.MethodDelete,
		Path:      "/api/settlecodes",
		Schema: schema.New(
			schema.Str("SettleCode", 12),
		),
		Types: map[string]procedure.Decl{
			"SettleCode": procedure.VarChar(12),
		},
		SuccessMessage: "Код расчетов успешно удалён",
	},
	{
		Procedure: "SetClassSettleCode",
		Method:    http.MethodPost,
		Path:      "/api/settlecodes/class",
		Schema: schema.New(
			schema.Str("ClassCode", 12),
			schema.Str("SettleCode", 12),
		),
		Types: map[string]procedure.Decl{
			"ClassCode":  procedure.VarChar(12),
			"SettleCode": procedure.VarChar(12),
		},
		SuccessMessage: "Код расчетов успешно привязан к классу",
	},
	{
		Procedure: "SetSecuritySettleCode",
		Method:    http.MethodPost,
		Path:      "/api/settlecodes/security",
		Schema: schema.New(
			schema.Str("ClassCode", 12),
			schema.Str("SecCode", 12),
			schema.Str("SettleCode", 12),
		),
		Types: map[string]procedure.Decl{
			"ClassCode":  procedure.VarChar(12),
			"SecCode":    procedure.VarChar(12),
			"SettleCode": procedure.VarChar(12),
		},
		SuccessMessage: "Код расчетов успешно привязан к инструменту",
	},
}

var tradeAccountOperations = []*Operation{
	{
		Procedure: "NewTradeAccount",
		Method:    http.MethodPost,
		Path:      "/api/tradeaccounts",
		Schema: schema.New(
			schema.Str("FirmCode", 12),
			schema.Str("Account", 12),
		),
		Types: map[string]procedure.Decl{
			"FirmCode": procedure.VarChar(12),
			"Account":  procedure.VarChar(12),
		},
		SuccessMessage: "Торговый счет успешно добавлен",
	},
	{
		Procedure: "AddAccountToClass",
		Method:    http.MethodPost,
		Path:      "/api/tradeaccounts/class",
		Schema: schema.New(
			schema.Str("FirmCode", 12),
			schema.Str("Account", 12),
			schema.Str("ClassCode", 12),
		),
		Types: map[string]procedure.Decl{
			"FirmCode":  procedure.VarChar(12),
			"Account":   procedure.VarChar(12),
			"ClassCode": procedure.VarChar(12),
		},
		SuccessMessage: "Торговый счет успешно привязан к классу",
	},
}

var groupOperations = []*Operation{
	{
		Procedure: "NewCoreGroup",
		Method:    http.MethodPost,
		Path:      "/api/coregroups",
		Schema: schema.New(
			schema.Str("GroupName", 255),
		),
		Types: map[string]procedure.Decl{
			"GroupName": procedure.NVarChar(255),
		},
		SuccessMessage: "Группа мэтчинговых ядер успешно добавлена",
	},
	{
		Procedure: "NewTag",
		Method:    http.MethodPost,
		Path:      "/api/tags",
		Schema: schema.New(
			schema.Str("Tag", 4),
		),
		Types: map[string]procedure.Decl{
			"Tag": procedure.VarChar(4),
		},
		SuccessMessage: "Код позиции успешно добавлен",
	},
	{
		Procedure: "AddTagToClass",
		Method:    http.MethodPost,
		Path:      "/api/tags/class",
		Schema: schema.New(
			schema.Str("Tag", 4),
			schema.Str("ClassCode", 12),
		),
		Types: map[string]procedure.Decl{
			"Tag":       procedure.VarChar(4),
			"ClassCode": procedure.VarChar(12),
		},
		SuccessMessage: "Код позиции успешно привязан к классу",
	},
}
