package operations

// tableReads lists the dynamic-table read endpoints over the read
// store. Every endpoint accepts arbitrary query-string filters plus a
// `filters` JSON parameter; unknown keys are dropped by the filter
// compiler.
var tableReads = []*TableRead{
	{
		Path:    "/api/firms",
		Table:   "Firms",
		OrderBy: []string{"FirmId"},
	},
	{
		Path:    "/api/depolimits",
		Table:   "DepoLimits",
		OrderBy: []string{"FirmId"},
	},
	{
		Path:    "/api/moneylimits",
		Table:   "MoneyLimits",
		OrderBy: []string{"FirmId"},
	},
	{
		Path:    "/api/trdaccs",
		Table:   "Trdaccs",
		OrderBy: []string{"FirmId"},
	},
	{
		Path:  "/api/params",
		Table: "Params",
	},
	{
		Path:      "/api/securities",
		Table:     "Securities",
		OrderBy:   []string{"TradeDate", "ClassCode"},
		OrderDesc: true,
		Select: []OutputColumn{
			{Name: "TradeDate", Candidates: []string{"TradeDate"}},
			{Name: "ClassCode", Candidates: []string{"ClassCode"}},
			{Name: "SecCode", Candidates: []string{"SecCode"}},
			{Name: "FaceUnit", Candidates: []string{"FaceUnit"}},
			// The display names migrated over time; older tables still
			// carry the unprefixed physical columns.
			{Name: "SecShortName", Candidates: []string{"SecShortName", "ShortName"}},
			{Name: "SecFullName", Candidates: []string{"SecFullName", "FullName"}},
		},
	},
	{
		Path:      "/api/orders",
		Table:     "Orders",
		OrderBy:   []string{"TradeDate", "OrderNum"},
		OrderDesc: true,
	},
	{
		Path:      "/api/trades",
		Table:     "Trades",
		OrderBy:   []string{"TradeDate", "TradeNum"},
		OrderDesc: true,
	},
}

// TableReads returns the read descriptors.
func TableReads() []*TableRead {
	return tableReads
}
