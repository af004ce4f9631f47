package operations

import (
	"net/http"

	"github.com/Kalysbe/quik-api/core/procedure"
	"github.com/Kalysbe/quik-api/core/schema"
)

// NewSecurity is the widest schema in the registry; several trailing
// attributes are optional and bind as NULL when sent empty.

var securityOperations = []*Operation{
	{
		Procedure: "NewSecurity",
		Method:    http.MethodPost,
		Path:      "/api/securities/stock",
		Schema: schema.New(
			schema.Str("ClassCode", 12),
			schema.Str("GroupName", 255),
			schema.Str("SecCode", 12),
			schema.Str("ShortName", 32),
			schema.Str("FullName", 128),
			schema.Str("ISIN", 12),
			schema.Int("MinStep"),
			schema.Num("FaceValue"),
			schema.Str("FaceUnit", 4),
			schema.Int("Scale"),
			schema.Int("MatDate"),
			schema.Int("LotSize"),
			schema.Str("SettleCode", 12),
			schema.Str("CalendarName", 255),
			schema.Str("ShortNameEng", 32).Opt(),
			schema.Str("FullNameEng", 128).Opt(),
			schema.Str("CFI", 6).Opt(),
			schema.Int("ListLevel").Opt(),
			schema.Int("SubType").Opt().Null(),
			schema.Str("StockCode", 12).Opt(),
			schema.Str("SedolCode", 7).Opt(),
			schema.Str("RicCode", 32).Opt(),
			schema.Str("CusipCode", 9).Opt(),
			schema.Str("FigiCode", 20).Opt(),
			schema.Int("QtyScale").Opt().Null(),
			schema.Int("QtyMultiplier").Opt().Null(),
			schema.Flag("Enabled").Opt(),
			schema.Str("RegNumber", 30).Opt().Null(),
			schema.Int("ComplexProduct").Opt().Null(),
		),
		Types: map[string]procedure.Decl{
			"ClassCode":      procedure.VarChar(12),
			"GroupName":      procedure.NVarChar(255),
			"SecCode":        procedure.VarChar(12),
			"ShortName":      procedure.NVarChar(32),
			"FullName":       procedure.NVarChar(128),
			"ISIN":           procedure.VarChar(12),
			"MinStep":        procedure.Int,
			"FaceValue":      procedure.Float,
			"FaceUnit":       procedure.VarChar(4),
			"Scale":          procedure.Int,
			"MatDate":        procedure.Int,
			"LotSize":        procedure.Int,
			"SettleCode":     procedure.VarChar(12),
			"CalendarName":   procedure.NVarChar(255),
			"ShortNameEng":   procedure.VarChar(32),
			"FullNameEng":    procedure.VarChar(128),
			"CFI":            procedure.VarChar(6),
			"ListLevel":      procedure.Int,
			"SubType":        procedure.Int,
			"StockCode":      procedure.VarChar(12),
			"SedolCode":      procedure.VarChar(7),
			"RicCode":        procedure.VarChar(32),
			"CusipCode":      procedure.VarChar(9),
			"FigiCode":       procedure.VarChar(20),
			"QtyScale":       procedure.Int,
			"QtyMultiplier":  procedure.Int,
			"Enabled":        procedure.Bit,
			"RegNumber":      procedure.VarChar(30),
			"ComplexProduct": procedure.Int,
		},
		NullableKeys:   []string{"SubType", "QtyScale", "QtyMultiplier", "RegNumber", "ComplexProduct"},
		SuccessMessage: "Инструмент (акция) успешно добавлен или обновлён",
	},
}

var priceLimitOperations = []*Operation{
	{
		Procedure: "NewSecurityPriceLimitByRange",
		Method:    http.MethodPost,
		Path:      "/api/pricelimits/range",
		Schema: schema.New(
			schema.Str("ClassCode", 12),
			schema.Str("SecCode", 12),
			schema.Num("MinPrice"),
			schema.Num("MaxPrice"),
		),
		Types: map[string]procedure.Decl{
			"ClassCode": procedure.VarChar(12),
			"SecCode":   procedure.VarChar(12),
			"MinPrice":  procedure.Float,
			"MaxPrice":  procedure.Float,
		},
		SuccessMessage: "Ценовое ограничение по диапазону успешно установлено",
	},
	{
		Procedure: "NewSecurityPriceLimitByMiddlePrice",
		Method:    http.MethodPost,
		Path:      "/api/pricelimits/middle",
		Schema: schema.New(
			schema.Str("ClassCode", 12),
			schema.Str("SecCode", 12),
			schema.Num("MiddlePrice"),
			schema.Num("LPercent"),
		),
		Types: map[string]procedure.Decl{
			"ClassCode":   procedure.VarChar(12),
			"SecCode":     procedure.VarChar(12),
			"MiddlePrice": procedure.Float,
			"LPercent":    procedure.Float,
		},
		SuccessMessage: "Ценовое ограничение по среднему значению успешно установлено",
	},
	{
		Procedure: "DelSecurityPriceLimit",
		Method:    http.MethodDelete,
		Path:      "/api/pricelimits",
		Schema: schema.New(
			schema.Str("ClassCode", 12),
			schema.Str("SecCode", 12),
		),
		Types: map[string]procedure.Decl{
			"ClassCode": procedure.VarChar(12),
			"SecCode":   procedure.VarChar(12),
		},
		SuccessMessage: "Ценовое ограничение успешно удалено",
	},
}

var faceValueOperations = []*Operation{
	{
		Procedure:      "GetFaceValues",
		Method:         http.MethodGet,
		Path:           "/api/facevalues",
		Kind:           KindQuery,
		Schema:         schema.New(schema.Str("SecCode", 12).Opt()),
		Types:          map[string]procedure.Decl{"SecCode": procedure.VarChar(12)},
		QueryParams:    []string{"SecCode"},
		SuccessMessage: "Номиналы получены",
	},
	{
		Procedure:      "GetFaceValues",
		Method:         http.MethodGet,
		Path:           "/api/facevalues/{SecCode}",
		Kind:           KindQuery,
		Schema:         schema.New(schema.Str("SecCode", 12)),
		Types:          map[string]procedure.Decl{"SecCode": procedure.VarChar(12)},
		PathParam:      "SecCode",
		SuccessMessage: "Номиналы получены",
	},
	{
		Procedure: "AddFaceValue",
		Method:    http.MethodPost,
		Path:      "/api/facevalues",
		Schema: schema.New(
			schema.Str("SecCode", 12),
			schema.Int("Date"),
			schema.Num("FaceValue"),
			schema.Str("FaceUnit", 4).Opt().Null(),
		),
		Types: map[string]procedure.Decl{
			"SecCode":   procedure.VarChar(12),
			"Date":      procedure.Int,
			"FaceValue": procedure.Float,
			"FaceUnit":  procedure.VarChar(4),
		},
		NullableKeys:   []string{"FaceUnit"},
		SuccessMessage: "Номинал успешно добавлен",
	},
	{
		Procedure: "DelFaceValue",
		Method:    http.MethodDelete,
		Path:      "/api/facevalues",
		Schema: schema.New(
			schema.Str("SecCode", 12),
			schema.Int("Date"),
			schema.Str("FaceUnit", 4).Opt().Null(),
		),
		Types: map[string]procedure.Decl{
			"SecCode":  procedure.VarChar(12),
			"Date":     procedure.Int,
			"FaceUnit": procedure.VarChar(4),
		},
		NullableKeys:   []string{"FaceUnit"},
		SuccessMessage: "Номинал успешно удалён",
	},
}
