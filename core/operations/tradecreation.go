package operations

import (
	"net/http"

	"github.com/Kalysbe/quik-api/core/procedure"
	"github.com/Kalysbe/quik-api/core/schema"
)

var tradeCreationOperations = []*Operation{
	{
		Procedure: "SetClassNormalTradeCreationMode",
		Method:    http.MethodPost,
		Path:      "/api/trade-creation/normal-mode",
		Schema: schema.New(
			schema.Str("FirmCode", 12),
			schema.Str("ClassCode", 12),
		),
		Types: map[string]procedure.Decl{
			"FirmCode":  procedure.VarChar(12),
			"ClassCode": procedure.VarChar(12),
		},
		SuccessMessage: "Обычный режим генерации сделок установлен",
	},
	{
		Procedure: "SetClassLayerTradeCreationParams",
		Method:    http.MethodPost,
		Path:      "/api/trade-creation/layer-params",
		Schema: schema.New(
			schema.Str("FirmCode", 12),
			schema.Str("ClassCode", 12),
			schema.Str("BrokerFirmCode", 12),
			schema.Str("BrokerAccount", 12),
			schema.Str("BrokerClientCode", 12),
		),
		Types: map[string]procedure.Decl{
			"FirmCode":         procedure.VarChar(12),
			"ClassCode":        procedure.VarChar(12),
			"BrokerFirmCode":   procedure.VarChar(12),
			"BrokerAccount":    procedure.VarChar(12),
			"BrokerClientCode": procedure.VarChar(12),
		},
		SuccessMessage: "Параметры генерации сделок с брокером установлены",
	},
	{
		Procedure: "SetClassByBrokerQuotesTradeCreationMode",
		Method:    http.MethodPost,
		Path:      "/api/trade-creation/broker-quotes-mode",
		Schema: schema.New(
			schema.Str("ClassCode", 12),
			schema.Str("BrokerFirmCode", 12),
			schema.Str("BrokerClientCode", 12),
		),
		Types: map[string]procedure.Decl{
			"ClassCode":        procedure.VarChar(12),
			"BrokerFirmCode":   procedure.VarChar(12),
			"BrokerClientCode": procedure.VarChar(12),
		},
		SuccessMessage: "Режим исполнения заявок по котировкам брокера установлен",
	},
}
