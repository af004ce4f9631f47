package operations

import (
	"net/http"

	"github.com/Kalysbe/quik-api/core/procedure"
	"github.com/Kalysbe/quik-api/core/schema"
)

var auctionOperations = []*Operation{
	{
		Procedure: "AddAuctionSchedule",
		Method:    http.MethodPost,
		Path:      "/api/auctions/schedule",
		Schema: schema.New(
			schema.Str("ClassCode", 12),
			schema.Str("SecCode", 12),
			schema.Str("IssuerCode", 12),
			schema.Str("IssuerClientCode", 12).Opt().Null(),
			schema.Str("OperatorCode", 12),
			schema.Int("AuctionKind"),
			schema.Int("CustomAuctionId"),
			schema.Int("ParentCustomAuctionId").Opt().Null(),
			schema.Int("AuctionQty"),
			schema.Flag("BuySell"),
			schema.Int("AuctionDate"),
			schema.Int("OrderEntryPhaseStartTime"),
			schema.Int("OrderEntryPhaseDuration"),
			schema.Int("FulfillmentPhaseDuration"),
			schema.Flag("OrderEntryNonCompetitiveEnabled"),
			schema.Flag("OrderExecutionModeByCutOffPriceEnabled"),
			schema.Flag("OrderPartialFulfillmentEnabled"),
			schema.Flag("OrderBooksDisabled"),
			schema.Num("NoncompetitiveOrdersPercent"),
			schema.Num("MinAllowedPrice"),
			schema.Num("MaxAllowedPrice").Opt(),
			schema.Flag("IssuerOrderInOrderEntryPeriodEnabled").Opt(),
		),
		Types: map[string]procedure.Decl{
			"ClassCode":                              procedure.VarChar(12),
			"SecCode":                                procedure.VarChar(12),
			"IssuerCode":                             procedure.VarChar(12),
			"IssuerClientCode":                       procedure.VarChar(12),
			"OperatorCode":                           procedure.VarChar(12),
			"AuctionKind":                            procedure.Int,
			"CustomAuctionId":                        procedure.BigInt,
			"ParentCustomAuctionId":                  procedure.BigInt,
			"AuctionQty":                             procedure.BigInt,
			"BuySell":                                procedure.Int,
			"AuctionDate":                            procedure.Int,
			"OrderEntryPhaseStartTime":               procedure.Int,
			"OrderEntryPhaseDuration":                procedure.Int,
			"FulfillmentPhaseDuration":               procedure.Int,
			"OrderEntryNonCompetitiveEnabled":        procedure.Int,
			"OrderExecutionModeByCutOffPriceEnabled": procedure.Int,
			"OrderPartialFulfillmentEnabled":         procedure.Int,
			"OrderBooksDisabled":                     procedure.Int,
			"NoncompetitiveOrdersPercent":            procedure.Float,
			"MinAllowedPrice":                        procedure.Float,
			"MaxAllowedPrice":                        procedure.Float,
			"IssuerOrderInOrderEntryPeriodEnabled":   procedure.Int,
		},
		NullableKeys:   []string{"IssuerClientCode", "ParentCustomAuctionId", "MaxAllowedPrice", "IssuerOrderInOrderEntryPeriodEnabled"},
		SuccessMessage: "Аукцион успешно добавлен",
	},
	{
		Procedure: "EditAuctionSchedule",
		Method:    http.MethodPut,
		Path:      "/api/auctions/schedule",
		Schema: schema.New(
			schema.Int("CustomAuctionId"),
			schema.Str("IssuerCode", 12),
			schema.Str("IssuerClientCode", 12).Opt().Null(),
			schema.Str("OperatorCode", 12),
			schema.Int("AuctionDate"),
			schema.Int("AuctionQty"),
			schema.Int("OrderEntryPhaseStartTime"),
			schema.Int("OrderEntryPhaseDuration"),
			schema.Int("FulfillmentPhaseDuration"),
			schema.Flag("OrderEntryNonCompetitiveEnabled"),
			schema.Flag("OrderExecutionModeByCutOffPriceEnabled"),
			schema.Flag("OrderPartialFulfillmentEnabled"),
			schema.Flag("OrderBooksDisabled"),
			schema.Num("NoncompetitiveOrdersPercent"),
			schema.Num("MinAllowedPrice"),
			schema.Num("MaxAllowedPrice"),
			schema.Flag("IssuerOrderInOrderEntryPeriodEnabled").Opt(),
		),
		Types: map[string]procedure.Decl{
			"CustomAuctionId":                        procedure.BigInt,
			"IssuerCode":                             procedure.VarChar(12),
			"IssuerClientCode":                       procedure.VarChar(12),
			"OperatorCode":                           procedure.VarChar(12),
			"AuctionDate":                            procedure.Int,
			"AuctionQty":                             procedure.BigInt,
			"OrderEntryPhaseStartTime":               procedure.Int,
			"OrderEntryPhaseDuration":                procedure.Int,
			"FulfillmentPhaseDuration":               procedure.Int,
			"OrderEntryNonCompetitiveEnabled":        procedure.Int,
			"OrderExecutionModeByCutOffPriceEnabled": procedure.Int,
			"OrderPartialFulfillmentEnabled":         procedure.Int,
			"OrderBooksDisabled":                     procedure.Int,
			"NoncompetitiveOrdersPercent":            procedure.Float,
			"MinAllowedPrice":                        procedure.Float,
			"MaxAllowedPrice":                        procedure.Float,
			"IssuerOrderInOrderEntryPeriodEnabled":   procedure.Int,
		},
		NullableKeys:   []string{"IssuerClientCode", "IssuerOrderInOrderEntryPeriodEnabled"},
		SuccessMessage: "Аукцион успешно изменён",
	},
	{
		Procedure: "DeleteAuctionSchedule",
		Method:    http.MethodDelete,
		Path:      "/api/auctions/schedule",
		Schema: schema.New(
			schema.Int("CustomAuctionId"),
		),
		Types: map[string]procedure.Decl{
			"CustomAuctionId": procedure.Int,
		},
		SuccessMessage: "Аукцион успешно удалён",
	},
	{
		Procedure: "ChangeAuctionNotificationTime",
		Method:    http.MethodPost,
		Path:      "/api/auctions/notificationtime",
		Schema: schema.New(
			schema.Int("AuctionId"),
			schema.Int("Action").WithRules("min=1,max=2"),
			schema.Int("Time"),
			schema.Int("TemplateId"),
		),
		Types: map[string]procedure.Decl{
			"AuctionId":  procedure.Int,
			"Action":     procedure.Int,
			"Time":       procedure.Int,
			"TemplateId": procedure.Int,
		},
		SuccessMessage: "Время нотификации изменено",
	},
	{
		Procedure: "ChangeAuctionDateAndTime",
		Method:    http.MethodPost,
		Path:      "/api/auctions/datetime",
		Schema: schema.New(
			schema.Int("AuctionId"),
			schema.Int("AuctionDate"),
			schema.Int("OrderEntryPhaseStartTime"),
			schema.Int("OrderEntryPhaseDuration"),
			schema.Int("IssuerPhaseDuration"),
		),
		Types: map[string]procedure.Decl{
			"AuctionId":                procedure.Int,
			"AuctionDate":              procedure.Int,
			"OrderEntryPhaseStartTime": procedure.Int,
			"OrderEntryPhaseDuration":  procedure.Int,
			"IssuerPhaseDuration":      procedure.Int,
		},
		SuccessMessage: "Расписание аукциона изменено",
	},
	{
		Procedure: "ChangeAuctionTime",
		Method:    http.MethodPost,
		Path:      "/api/auctions/time",
		Schema: schema.New(
			schema.Int("AuctionId"),
			schema.Int("Action").WithRules("min=1,max=3"),
			schema.Int("Value"),
		),
		Types: map[string]procedure.Decl{
			"AuctionId": procedure.Int,
			"Action":    procedure.Int,
			"Value":     procedure.Int,
		},
		SuccessMessage: "Время аукциона изменено",
	},
}
