package procedure

import (
	"database/sql"
	"fmt"

	mssql "github.com/microsoft/go-mssqldb"
)

// Kind enumerates the SQL parameter types the procedure host understands.
// Binding is always explicit: the TDS protocol cannot infer fixed-width
// character types or integer widths from native values, and a wrong guess
// truncates silently.
type Kind int

const (
	KindNVarChar Kind = iota
	KindVarChar
	KindInt
	KindBigInt
	KindFloat
	KindBit
)

// Decl declares the SQL type of one procedure parameter.
type Decl struct {
	Kind   Kind
	Length int
}

// VarChar declares a fixed-length VARCHAR(n) parameter.
func VarChar(n int) Decl { return Decl{Kind: KindVarChar, Length: n} }

// NVarChar declares a fixed-length NVARCHAR(n) parameter.
func NVarChar(n int) Decl { return Decl{Kind: KindNVarChar, Length: n} }

// Fixed-width scalar declarations.
var (
	Int    = Decl{Kind: KindInt}
	BigInt = Decl{Kind: KindBigInt}
	Float  = Decl{Kind: KindFloat}
	Bit    = Decl{Kind: KindBit}
)

// Param is one named, explicitly-typed procedure parameter. Output
// parameters carry no input value; the driver writes their final value
// into dest during execution.
type Param struct {
	Name   string
	Decl   Decl
	Value  any
	Output bool

	dest any
}

// ParamSet is an ordered parameter set, built fresh per request from
// validated input. Order is preserved through to the wire.
type ParamSet struct {
	params []Param
}

// NewParamSet creates an empty parameter set.
func NewParamSet() *ParamSet {
	return &ParamSet{}
}

// Add appends a parameter. Nil values bind as SQL NULL.
func (ps *ParamSet) Add(name string, decl Decl, value any) *ParamSet {
	ps.params = append(ps.params, Param{Name: name, Decl: decl, Value: value})
	return ps
}

// AddOutput declares an OUTPUT parameter. Its value after execution is
// available through OutputValues.
func (ps *ParamSet) AddOutput(name string, decl Decl) *ParamSet {
	ps.params = append(ps.params, Param{Name: name, Decl: decl, Output: true})
	return ps
}

// OutputValues returns the captured OUTPUT parameter values by name.
// Before execution every value is the type's zero value.
func (ps *ParamSet) OutputValues() map[string]any {
	out := make(map[string]any)
	for _, p := range ps.params {
		if !p.Output || p.dest == nil {
			continue
		}
		switch d := p.dest.(type) {
		case *string:
			out[p.Name] = *d
		case *int64:
			out[p.Name] = *d
		case *float64:
			out[p.Name] = *d
		case *bool:
			out[p.Name] = *d
		}
	}
	return out
}

// Len returns the number of parameters.
func (ps *ParamSet) Len() int {
	return len(ps.params)
}

// Names returns parameter names in insertion order.
func (ps *ParamSet) Names() []string {
	names := make([]string, len(ps.params))
	for i, p := range ps.params {
		names[i] = p.Name
	}
	return names
}

// driverArgs converts the set into driver arguments with explicit types.
func (ps *ParamSet) driverArgs() ([]any, error) {
	args := make([]any, 0, len(ps.params))
	for i := range ps.params {
		p := &ps.params[i]
		if p.Output {
			p.dest = outputDest(p.Decl)
			args = append(args, sql.Named(p.Name, sql.Out{Dest: p.dest}))
			continue
		}
		v, err := driverValue(p.Decl, p.Value)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
		}
		args = append(args, sql.Named(p.Name, v))
	}
	return args, nil
}

func outputDest(decl Decl) any {
	switch decl.Kind {
	case KindInt, KindBigInt:
		return new(int64)
	case KindFloat:
		return new(float64)
	case KindBit:
		return new(bool)
	default:
		return new(string)
	}
}

func driverValue(decl Decl, value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	switch decl.Kind {
	case KindVarChar:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected string for VarChar, got %T", value)
		}
		return mssql.VarChar(s), nil
	case KindNVarChar:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected string for NVarChar, got %T", value)
		}
		return s, nil
	case KindInt:
		n, err := asInt64(value)
		if err != nil {
			return nil, err
		}
		return int32(n), nil
	case KindBigInt:
		return asInt64(value)
	case KindFloat:
		switch v := value.(type) {
		case float64:
			return v, nil
		case int64:
			return float64(v), nil
		default:
			return nil, fmt.Errorf("expected number for Float, got %T", value)
		}
	case KindBit:
		n, err := asInt64(value)
		if err != nil {
			return nil, err
		}
		return n != 0, nil
	default:
		return nil, fmt.Errorf("unknown parameter kind %d", decl.Kind)
	}
}

func asInt64(value any) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", value)
	}
}
