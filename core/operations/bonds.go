package operations

import (
	"net/http"

	"github.com/Kalysbe/quik-api/core/procedure"
	"github.com/Kalysbe/quik-api/core/schema"
)

// NewBondSecurity predates NewSecurity and keeps its own field naming
// (ShortNameRus/FullNameRus instead of ShortName/FullName) plus the
// coupon calculation attributes the stock variant has no use for.

var bondOperations = []*Operation{
	{
		Procedure: "NewBondSecurity",
		Method:    http.MethodPost,
		Path:      "/api/securities/bond",
		Schema: schema.New(
			schema.Str("ClassCode", 12),
			schema.Str("GroupName", 255),
			schema.Str("SecCode", 12),
			schema.Str("ShortNameRus", 32),
			schema.Str("FullNameRus", 128),
			schema.Str("ISIN", 12),
			schema.Num("MinStep"),
			schema.Num("FaceValue"),
			schema.Str("Currency", 4),
			schema.Str("TradeCurrency", 4),
			schema.Str("MarketCode", 4),
			schema.Int("BasisType"),
			schema.Int("BondInterestType"),
			schema.Int("CouponFrequency"),
			schema.Int("EmissionDate"),
			schema.Int("CalcModeACI"),
			schema.Int("YieldMatCalcMethod"),
			schema.Int("Scale"),
			schema.Int("MatDate"),
			schema.Int("LotSize"),
			schema.Str("SettleCode", 12),
			schema.Str("CalendarName", 255),
			schema.Str("ShortNameEng", 32),
			schema.Str("FullNameEng", 128),
			schema.Str("CFI", 6),
			schema.Int("SubType").Null(),
			schema.Int("QtyMultiplier").Null(),
			schema.Int("Enabled"),
			schema.Str("RegNumber", 30).Null(),
		),
		Types: map[string]procedure.Decl{
			"ClassCode":          procedure.VarChar(12),
			"GroupName":          procedure.NVarChar(255),
			"SecCode":            procedure.VarChar(12),
			"ShortNameRus":       procedure.NVarChar(32),
			"FullNameRus":        procedure.NVarChar(128),
			"ISIN":               procedure.VarChar(12),
			"MinStep":            procedure.Float,
			"FaceValue":          procedure.Float,
			"Currency":           procedure.VarChar(4),
			"TradeCurrency":      procedure.VarChar(4),
			"MarketCode":         procedure.VarChar(4),
			"BasisType":          procedure.Int,
			"BondInterestType":   procedure.Int,
			"CouponFrequency":    procedure.Int,
			"EmissionDate":       procedure.Int,
			"CalcModeACI":        procedure.Int,
			"YieldMatCalcMethod": procedure.Int,
			"Scale":              procedure.Int,
			"MatDate":            procedure.Int,
			"LotSize":            procedure.Int,
			"SettleCode":         procedure.VarChar(12),
			"CalendarName":       procedure.NVarChar(255),
			"ShortNameEng":       procedure.VarChar(32),
			"FullNameEng":        procedure.VarChar(128),
			"CFI":                procedure.VarChar(6),
			"SubType":            procedure.Int,
			"QtyMultiplier":      procedure.Int,
			"Enabled":            procedure.Int,
			"RegNumber":          procedure.VarChar(30),
		},
		NullableKeys:   []string{"SubType", "QtyMultiplier", "RegNumber"},
		SuccessMessage: "Инструмент успешно добавлен или обновлён",
	},
}
