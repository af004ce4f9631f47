package operations

import (
	"net/http"

	"github.com/Kalysbe/quik-api/core/procedure"
	"github.com/Kalysbe/quik-api/core/schema"
)

// Client accounts live in the procedure host and are managed through
// the NewClient/DelClient pair.

var clientOperations = []*Operation{
	{
		Procedure: "NewClient",
		Method:    http.MethodPost,
		Path:      "/api/clients",
		Schema: schema.New(
			schema.Str("FirmCode", 12),
			schema.Str("ClientCode", 12),
		),
		Types: map[string]procedure.Decl{
			"FirmCode":   procedure.VarChar(12),
			"ClientCode": procedure.VarChar(12),
		},
		SuccessMessage: "Клиент успешно добавлен",
	},
	{
		Procedure: "DelClient",
		Method:    http.MethodDelete,
		Path:      "/api/clients",
		Schema: schema.New(
			schema.Str("FirmCode", 12),
			schema.Str("ClientCode", 12),
		),
		Types: map[string]procedure.Decl{
			"FirmCode":   procedure.VarChar(12),
			"ClientCode": procedure.VarChar(12),
		},
		SuccessMessage: "Клиент успешно удалён",
	},
	{
		Procedure: "NewBroker",
		Method:    http.MethodPost,
		Path:      "/api/brokers",
		Schema: schema.New(
			schema.Str("FirmCode", 12),
			schema.Str("BrokerCode", 12),
		),
		Types: map[string]procedure.Decl{
			"FirmCode":   procedure.VarChar(12),
			"BrokerCode": procedure.VarChar(12),
		},
		SuccessMessage: "Брокер успешно добавлен",
	},
}

// Natural persons and their linkage to client codes.

var personOperations = []*Operation{
	{
		Procedure: "NewPerson",
		Method:    http.MethodPost,
		Path:      "/api/persons",
		Schema: schema.New(
			schema.Int("PersonId").Opt().Null(),
			schema.Str("FirstName", 128),
			schema.Str("MiddleName", 128),
			schema.Str("LastName", 128),
		),
		Types: map[string]procedure.Decl{
			"PersonId":   procedure.Int,
			"FirstName":  procedure.NVarChar(128),
			"MiddleName": procedure.NVarChar(128),
			"LastName":   procedure.NVarChar(128),
		},
		NullableKeys:   []string{"PersonId"},
		SuccessMessage: "Физическое лицо успешно добавлено/изменено",
	},
	{
		Procedure: "DelPerson",
		Method:    http.MethodDelete,
		Path:      "/api/persons",
		Schema: schema.New(
			schema.Int("PersonId"),
		),
		Types: map[string]procedure.Decl{
			"PersonId": procedure.Int,
		},
		SuccessMessage: "Физическое лицо успешно удалено",
	},
	{
		Procedure: "LinkPersonToClient",
		Method:    http.MethodPost,
		Path:      "/api/persons/client",
		Schema: schema.New(
			schema.Str("FirmCode", 12),
			schema.Str("ClientCode", 12),
			schema.Int("PersonId").Opt().Null(),
		),
		Types: map[string]procedure.Decl{
			"FirmCode":   procedure.VarChar(12),
			"ClientCode": procedure.VarChar(12),
			"PersonId":   procedure.Int,
		},
		NullableKeys:   []string{"PersonId"},
		SuccessMessage: "Физическое лицо успешно привязано к клиенту",
	},
}
