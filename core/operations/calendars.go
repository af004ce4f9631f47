package operations

import (
	"net/http"

	"github.com/Kalysbe/quik-api/core/procedure"
	"github.com/Kalysbe/quik-api/core/schema"
)

var calendarOperations = []*Operation{
	{
		Procedure: "NewCalendar",
		Method:    http.MethodPost,
		Path:      "/api/calendars",
		Schema: schema.New(
			schema.Str("CalendarName", 255),
			schema.Flag("Enabled"),
		),
		Types: map[string]procedure.Decl{
			"CalendarName": procedure.NVarChar(255),
			"Enabled":      procedure.Bit,
		},
		SuccessMessage: "Календарь успешно добавлен или изменён",
	},
	{
		Procedure: "NewCalendarDate",
		Method:    http.MethodPost,
		Path:      "/api/calendars/date",
		Schema: schema.New(
			schema.Str("CalendarName", 255),
			schema.Int("Date"), // YYYYMMDD
			schema.Flag("TradeIndicator"),
		),
		Types: map[string]procedure.Decl{
			"CalendarName":   procedure.NVarChar(255),
			"Date":           procedure.Int,
			"TradeIndicator": procedure.Bit,
		},
		SuccessMessage: "Дата календаря успешно добавлена или изменена",
	},
	{
		Procedure:      "GetCalendars",
		Method:         http.MethodGet,
		Path:           "/api/calendars",
		Kind:           KindQuery,
		Schema:         schema.New(),
		SuccessMessage: "Список календарей получен",
	},
	{
		Procedure: "GetCalendar",
		Method:    http.MethodGet,
		Path:      "/api/calendars/{CalendarName}",
		Kind:      KindQuery,
		Schema: schema.New(
			schema.Str("CalendarName", 255),
		),
		Types: map[string]procedure.Decl{
			"CalendarName": procedure.NVarChar(255),
		},
		PathParam:      "CalendarName",
		SuccessMessage: "Даты календаря получены",
	},
	{
		Procedure: "DelCalendarDate",
		Method:    http.MethodDelete,
		Path:      "/api/calendars/date",
		Schema: schema.New(
			schema.Str("CalendarName", 255),
			schema.Int("Date"), // YYYYMMDD
		),
		Types: map[string]procedure.Decl{
			"CalendarName": procedure.NVarChar(255),
			"Date":         procedure.Int,
		},
		SuccessMessage: "Дата календаря успешно удалена",
	},
	{
		Procedure: "DelCalendar",
		Method:    http.MethodDelete,
		Path:      "/api/calendars",
		Schema: schema.New(
			schema.Str("CalendarName", 255),
		),
		Types: map[string]procedure.Decl{
			"CalendarName": procedure.NVarChar(255),
		},
		SuccessMessage: "Календарь успешно удалён",
	},
	{
		Procedure: "LinkCalendarToClass",
		Method:    http.MethodPost,
		Path:      "/api/calendars/link-to-class",
		Schema: schema.New(
			schema.Str("ClassCode", 12),
			schema.Str("CalendarName", 255),
		),
		Types: map[string]procedure.Decl{
			"ClassCode":    procedure.VarChar(12),
			"CalendarName": procedure.NVarChar(255),
		},
		SuccessMessage: "Календарь успешно привязан к классу",
	},
	{
		Procedure: "LinkCalendarToSecurity",
		Method:    http.MethodPost,
		Path:      "/api/calendars/link-to-security",
		Schema: schema.New(
			schema.Str("ClassCode", 12),
			schema.Str("SecCode", 12),
			schema.Str("CalendarName", 255),
		),
		Types: map[string]procedure.Decl{
			"ClassCode":    procedure.VarChar(12),
			"SecCode":      procedure.VarChar(12),
			"CalendarName": procedure.NVarChar(255),
		},
		SuccessMessage: "Календарь успешно привязан к инструменту",
	},
}
