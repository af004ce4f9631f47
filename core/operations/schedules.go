package operations

import (
	"net/http"

	"github.com/Kalysbe/quik-api/core/procedure"
	"github.com/Kalysbe/quik-api/core/schema"
)

var scheduleOperations = []*Operation{
	{
		// Event codes: O open, C close, S suspend, A auction, P
		// pre-trading, L last. Omitting SecCode applies the event to
		// the whole class.
		Procedure: "NewScheduleAction",
		Method:    http.MethodPost,
		Path:      "/api/schedules",
		Schema: schema.New(
			schema.Str("ClassCode", 12),
			schema.Str("SecCode", 12).Opt(),
			schema.Str("EventCode", 9),
			schema.Str("EventTime", 9), // HH:MM:SS
			schema.Flag("CancelOrders").Opt(),
			schema.Int("ApplyTradesStopOrders").WithRules("min=0,max=2").Opt(),
		),
		Types: map[string]procedure.Decl{
			"ClassCode":             procedure.VarChar(12),
			"SecCode":               procedure.VarChar(12),
			"EventCode":             procedure.VarChar(9),
			"EventTime":             procedure.VarChar(9),
			"CancelOrders":          procedure.Bit,
			"ApplyTradesStopOrders": procedure.Int,
		},
		NullableKeys:   []string{"SecCode"},
		SuccessMessage: "Событие расписания успешно добавлено",
	},
}
