package operations

import (
	"net/http"

	"github.com/Kalysbe/quik-api/core/procedure"
	"github.com/Kalysbe/quik-api/core/schema"
)

// Coupon and crossrate editors multiplex insert/update/delete through
// an Action selector (0 insert, 1 update, 2 delete) instead of
// separate procedures.

var couponOperations = []*Operation{
	{
		Procedure:      "GetCoupons",
		Method:         http.MethodGet,
		Path:           "/api/coupons",
		Kind:           KindQuery,
		Schema:         schema.New(schema.Str("AssetCode", 12).Opt()),
		Types:          map[string]procedure.Decl{"AssetCode": procedure.VarChar(12)},
		QueryParams:    []string{"AssetCode"},
		SuccessMessage: "Купоны получены",
	},
	{
		Procedure:      "GetCoupons",
		Method:         http.MethodGet,
		Path:           "/api/coupons/{AssetCode}",
		Kind:           KindQuery,
		Schema:         schema.New(schema.Str("AssetCode", 12)),
		Types:          map[string]procedure.Decl{"AssetCode": procedure.VarChar(12)},
		PathParam:      "AssetCode",
		SuccessMessage: "Купоны получены",
	},
	{
		Procedure: "EditCoupon",
		Method:    http.MethodPost,
		Path:      "/api/coupons",
		Schema: schema.New(
			schema.Int("Action").WithRules("min=0,max=2"),
			schema.Str("AssetCode", 12),
			schema.Int("EmitDate"),
			schema.Int("ExpireDate"),
			schema.Num("Value").Opt().Null(),
			schema.Int("ValueUnits").Opt().Null(),
		),
		Types: map[string]procedure.Decl{
			"Action":     procedure.Int,
			"AssetCode":  procedure.VarChar(12),
			"EmitDate":   procedure.Int,
			"ExpireDate": procedure.Int,
			"Value":      procedure.Float,
			"ValueUnits": procedure.Int,
		},
		NullableKeys:   []string{"Value", "ValueUnits"},
		SuccessMessage: "Купон успешно обработан",
	},
	{
		Procedure:      "GetCrossrates",
		Method:         http.MethodGet,
		Path:           "/api/crossrates",
		Kind:           KindQuery,
		Schema:         schema.New(schema.Int("Date").Opt()),
		Types:          map[string]procedure.Decl{"Date": procedure.Int},
		QueryParams:    []string{"Date"},
		SuccessMessage: "Кросс-курсы получены",
	},
	{
		Procedure: "EditCrossrate",
		Method:    http.MethodPost,
		Path:      "/api/crossrates",
		Schema: schema.New(
			schema.Int("Action").WithRules("min=0,max=2"),
			schema.Str("CurrencyCode", 4),
			schema.Num("Rate"),
			schema.Int("Date").Opt().Null(),
			schema.Flag("IsMainCurrency").Opt().Null(),
		),
		Types: map[string]procedure.Decl{
			"Action":         procedure.Int,
			"CurrencyCode":   procedure.VarChar(4),
			"Rate":           procedure.Float,
			"Date":           procedure.Int,
			"IsMainCurrency": procedure.Int,
		},
		NullableKeys:   []string{"Date", "IsMainCurrency"},
		SuccessMessage: "Кросс-курс успешно обработан",
	},
	{
		Procedure:      "GetLastTradingDateTime",
		Method:         http.MethodGet,
		Path:           "/api/last-trading-date-time",
		Kind:           KindQuery,
		Schema:         schema.New(),
		SuccessMessage: "Дата и время последней транзакции получены",
	},
}
