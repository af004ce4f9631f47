package operations

import (
	"net/http"

	"github.com/Kalysbe/quik-api/core/procedure"
	"github.com/Kalysbe/quik-api/core/schema"
)

// secParamOp builds one per-security parameter operation. The step
// price, collateral and clearing quote setters exist in three variants
// (futures, options, spreads) that differ only in procedure name; the
// request shape within each trio is identical.
func secParamOp(proc, path, message string, fields []schema.Field, types map[string]procedure.Decl) *Operation {
	return &Operation{
		Procedure:      proc,
		Method:         http.MethodPost,
		Path:           path,
		Schema:         schema.New(fields...),
		Types:          types,
		SuccessMessage: message,
	}
}

func stepPriceFields() []schema.Field {
	return []schema.Field{
		schema.Str("ClassCode", 12),
		schema.Str("SecCode", 12),
		schema.Num("StepPrice"),
	}
}

func collateralFields() []schema.Field {
	return []schema.Field{
		schema.Str("ClassCode", 12),
		schema.Str("SecCode", 12),
		schema.Num("SellDepo"),
		schema.Num("BuyDepo"),
	}
}

func clPriceFields() []schema.Field {
	return []schema.Field{
		schema.Str("ClassCode", 12),
		schema.Str("SecCode", 12),
		schema.Num("ClPrice"),
	}
}

func secParamTypes(valueKeys ...string) map[string]procedure.Decl {
	types := map[string]procedure.Decl{
		"ClassCode": procedure.VarChar(12),
		"SecCode":   procedure.VarChar(12),
	}
	for _, k := range valueKeys {
		types[k] = procedure.Float
	}
	return types
}

var securityParamOperations = []*Operation{
	secParamOp("SetFutSecurityStepPrice", "/api/security-params/fut-step-price",
		"Стоимость шага цены (фьючерс) установлена", stepPriceFields(), secParamTypes("StepPrice")),
	secParamOp("SetOptSecurityStepPrice", "/api/security-params/opt-step-price",
		"Стоимость шага цены (опцион) установлена", stepPriceFields(), secParamTypes("StepPrice")),
	secParamOp("SetSpreadSecurityStepPrice", "/api/security-params/spread-step-price",
		"Стоимость шага цены (спред) установлена", stepPriceFields(), secParamTypes("StepPrice")),
	secParamOp("SetSecurityPrevPrice", "/api/security-params/prev-price",
		"Цена закрытия установлена",
		[]schema.Field{
			schema.Str("ClassCode", 12),
			schema.Str("SecCode", 12),
			schema.Num("PrevPrice"),
		},
		secParamTypes("PrevPrice")),
	secParamOp("SetFutSecurityCollateral", "/api/security-params/fut-collateral",
		"ГО (фьючерс) установлено", collateralFields(), secParamTypes("SellDepo", "BuyDepo")),
	secParamOp("SetOptSecurityCollateral", "/api/security-params/opt-collateral",
		"ГО (опцион) установлено", collateralFields(), secParamTypes("SellDepo", "BuyDepo")),
	secParamOp("SetSpreadSecurityCollateral", "/api/security-params/spread-collateral",
		"ГО (спред) установлено", collateralFields(), secParamTypes("SellDepo", "BuyDepo")),
	secParamOp("SetFutSecurityClPrice", "/api/security-params/fut-cl-price",
		"Котировка клиринга (фьючерс) установлена", clPriceFields(), secParamTypes("ClPrice")),
	secParamOp("SetOptSecurityClPrice", "/api/security-params/opt-cl-price",
		"Котировка клиринга (опцион) установлена", clPriceFields(), secParamTypes("ClPrice")),
	secParamOp("SetSpreadSecurityClPrice", "/api/security-params/spread-cl-price",
		"Котировка клиринга (спред) установлена", clPriceFields(), secParamTypes("ClPrice")),
	{
		// The complex product marker accepts long structured codes, so
		// SecCode is wider here than everywhere else.
		Procedure: "SetComplexProduct",
		Method:    http.MethodPost,
		Path:      "/api/complex-product",
		Schema: schema.New(
			schema.Str("ClassCode", 12),
			schema.Str("SecCode", 30),
			schema.Int("ComplexProduct"),
		),
		Types: map[string]procedure.Decl{
			"ClassCode":      procedure.VarChar(12),
			"SecCode":        procedure.VarChar(30),
			"ComplexProduct": procedure.Int,
		},
		SuccessMessage: "Тип сложного финансового продукта успешно установлен",
	},
}
