package operations

import (
	"strconv"

	"github.com/Kalysbe/quik-api/core/procedure"
	"github.com/Kalysbe/quik-api/core/schema"
)

// Kind distinguishes command operations (success envelope) from
// procedure-backed reads (data envelope).
type Kind int

const (
	KindCommand Kind = iota
	KindQuery
)

// Operation describes one administrative operation end to end: the
// route, the request schema, the target procedure and how its
// parameters are typed. Descriptors are immutable and shared across
// invocations; one generic handler processes all of them.
type Operation struct {
	Procedure string
	Method    string
	Path      string
	Kind      Kind

	Schema *schema.Schema
	// Types maps field names to explicit SQL parameter types; fields
	// without an entry bind as NVARCHAR.
	Types map[string]procedure.Decl
	// NullableKeys lists fields whose empty-string value binds as NULL.
	NullableKeys []string
	// PathParam, when set, names a chi URL parameter merged into the
	// payload before validation (as the field of the same name).
	PathParam string
	// QueryParams lists URL query keys merged into the payload before
	// validation, converted per the schema type of the same field.
	// Empty values are left out, so optional fields stay absent.
	QueryParams []string
	// Outputs declares OUTPUT parameters of the procedure; their final
	// values are reported in the response envelope's output object.
	Outputs map[string]procedure.Decl

	SuccessMessage string
}

// BuildParams turns validated input into an ordered, explicitly typed
// parameter set, normalizing designated empty strings to NULL. Field
// order follows the schema declaration.
func (op *Operation) BuildParams(data map[string]any) *procedure.ParamSet {
	normalized := schema.NormalizeNullables(data, op.NullableKeys)

	ps := procedure.NewParamSet()
	for _, f := range op.Schema.Fields() {
		value, ok := normalized[f.Name]
		if !ok {
			continue
		}
		decl, declared := op.Types[f.Name]
		if !declared {
			decl = procedure.NVarChar(255)
		}
		ps.Add(f.Name, decl, value)
	}
	for name, decl := range op.Outputs {
		ps.AddOutput(name, decl)
	}
	return ps
}

// QueryValue converts one raw query-string value according to the
// schema type of the named field, so query and body parameters
// validate identically. Unparseable numbers pass through as strings
// and fail schema validation with the usual field error.
func (op *Operation) QueryValue(name, raw string) any {
	for _, f := range op.Schema.Fields() {
		if f.Name != name {
			continue
		}
		switch f.Type {
		case schema.TypeInt, schema.TypeFloat:
			if n, err := strconv.ParseFloat(raw, 64); err == nil {
				return n
			}
		}
		break
	}
	return raw
}

// OutputColumn is one column of a dynamic read's select list, resolved
// against the live catalog from an ordered list of historically-used
// physical names. Unresolvable columns are skipped silently.
type OutputColumn struct {
	Name       string
	Candidates []string
}

// TableRead describes one dynamic-table read endpoint over the read
// store. Filtering over arbitrary columns comes for free from the
// filter compiler.
type TableRead struct {
	Path  string
	Table string
	// OrderBy lists candidate order columns; the first one present in
	// the catalog is used.
	OrderBy   []string
	OrderDesc bool
	// Select, when empty, selects all columns.
	Select []OutputColumn
}

// LimitImport describes one limit-file ingestion endpoint: records are
// validated, serialized into a lim file and handed to the external
// importer.
type LimitImport struct {
	Path   string
	Prefix string
	// Schema validates each record of the request's Limits array.
	Schema *schema.Schema
	// LineFields is the serialization order of record fields within a
	// lim file line.
	LineFields []string
}
