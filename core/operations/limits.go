package operations

import (
	"github.com/Kalysbe/quik-api/core/schema"
)

// Limit updates do not go through stored procedures: the request body is
// an array of limit records that get serialized into a lim file and
// handed to the external FillLimits importer, which talks to the trading
// server directly. Field names follow the importer's key vocabulary.
var limitImports = []*LimitImport{
	{
		Path:   "/api/depolimits",
		Prefix: "depo",
		Schema: schema.New(
			schema.Str("FIRM_ID", 16),
			schema.Str("SECCODE", 16),
			schema.Str("CLIENT_CODE", 16),
			schema.Str("TRDACCID", 16),
			schema.Str("LIMIT_KIND", 8),
			schema.Str("OPEN_BALANCE", 32),
			schema.Str("OPEN_LIMIT", 32),
		),
		LineFields: []string{
			"FIRM_ID", "SECCODE", "CLIENT_CODE", "TRDACCID",
			"LIMIT_KIND", "OPEN_BALANCE", "OPEN_LIMIT",
		},
	},
	{
		Path:   "/api/moneylimits",
		Prefix: "money",
		Schema: schema.New(
			schema.Str("FIRM_ID", 16),
			schema.Str("TAG", 8),
			schema.Str("CURR_CODE", 8),
			schema.Str("CLIENT_CODE", 16),
			schema.Str("LIMIT_KIND", 8),
			schema.Str("OPEN_BALANCE", 32),
			schema.Str("OPEN_LIMIT", 32),
			schema.Str("LEVERAGE", 16).Opt(),
		),
		LineFields: []string{
			"FIRM_ID", "TAG", "CURR_CODE", "CLIENT_CODE",
			"LIMIT_KIND", "OPEN_BALANCE", "OPEN_LIMIT", "LEVERAGE",
		},
	},
}

// LimitImports returns the limit-ingestion descriptors.
func LimitImports() []*LimitImport {
	return limitImports
}
