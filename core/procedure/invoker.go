package procedure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-sql/sqlexp"
	mssql "github.com/microsoft/go-mssqldb"

	"github.com/Kalysbe/quik-api/core/infrastructure/logging"
)

// Notice is one informational message emitted asynchronously by a
// procedure during execution. For some procedures this is the only
// channel through which soft validation failures are reported.
type Notice struct {
	Message string `json:"message"`
	Number  int32  `json:"number"`
	State   uint8  `json:"state"`
	Class   uint8  `json:"class"`
	Proc    string `json:"procName,omitempty"`
	Line    int32  `json:"lineNumber,omitempty"`
}

// Result is the normalized envelope of one procedure invocation.
type Result struct {
	// ReturnCode is nil when the driver delivered no return status.
	ReturnCode   *int32
	Output       map[string]any
	Notices      []Notice
	Rows         []map[string]any
	RowsAffected []int64
}

// Messages returns the notice texts in emission order.
func (r *Result) Messages() []string {
	msgs := make([]string, len(r.Notices))
	for i, n := range r.Notices {
		msgs[i] = n.Message
	}
	return msgs
}

// SQLDiag carries sanitized driver diagnostics for transport errors.
type SQLDiag struct {
	Message string `json:"message"`
	Number  int32  `json:"number,omitempty"`
	State   uint8  `json:"state,omitempty"`
	Class   uint8  `json:"class,omitempty"`
	Line    int32  `json:"lineNumber,omitempty"`
	Server  string `json:"serverName,omitempty"`
	Proc    string `json:"procName,omitempty"`
}

// TransportError distinguishes driver/protocol failures from the soft
// business failures that Classify infers from successful invocations.
type TransportError struct {
	Procedure string
	Diag      SQLDiag
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("procedure %s: %v", e.Procedure, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Runner is the invocation surface handlers depend on.
type Runner interface {
	Invoke(ctx context.Context, proc string, params *ParamSet) (*Result, error)
}

// Invoker executes stored procedures over the shared procedure-host
// pool. It performs no serialization of its own: the pool bounds and
// queues concurrent connections.
type Invoker struct {
	db  *sql.DB
	log logging.Logger
}

// NewInvoker creates an invoker over the procedure host pool.
func NewInvoker(db *sql.DB) *Invoker {
	return &Invoker{db: db, log: logging.New("procedure")}
}

// Invoke runs a stored procedure with the given typed parameter set and
// captures its return status, output rows and informational notices in
// emission order. Driver errors come back as *TransportError; a
// completed call is never an error here even when the procedure
// semantically failed; that is Classify's job.
func (inv *Invoker) Invoke(ctx context.Context, proc string, params *ParamSet) (*Result, error) {
	named, err := params.driverArgs()
	if err != nil {
		return nil, &TransportError{Procedure: proc, Diag: SQLDiag{Message: err.Error()}, Err: err}
	}

	retmsg := &sqlexp.ReturnMessage{}
	var status mssql.ReturnStatus

	args := make([]any, 0, len(named)+2)
	args = append(args, retmsg)
	args = append(args, named...)
	args = append(args, &status)

	inv.log.Debugf("Executing procedure %s (%d params)", proc, params.Len())

	rows, err := inv.db.QueryContext(ctx, proc, args...)
	if err != nil {
		return nil, transportError(proc, err)
	}
	defer rows.Close()

	result := &Result{Output: map[string]any{}}
	var execErrs []error

	active := true
	for active {
		msg := retmsg.Message(ctx)
		switch m := msg.(type) {
		case sqlexp.MsgNotice:
			result.Notices = append(result.Notices, toNotice(m.Message))
		case sqlexp.MsgNext:
			if err := collectRows(rows, result); err != nil {
				return nil, transportError(proc, err)
			}
		case sqlexp.MsgNextResultSet:
			active = rows.NextResultSet()
		case sqlexp.MsgError:
			execErrs = append(execErrs, m.Error)
		case sqlexp.MsgRowsAffected:
			result.RowsAffected = append(result.RowsAffected, m.Count)
		}
	}

	if err := rows.Err(); err != nil {
		execErrs = append(execErrs, err)
	}
	if len(execErrs) > 0 {
		return nil, transportError(proc, errors.Join(execErrs...))
	}

	code := int32(status)
	result.ReturnCode = &code

	for name, v := range params.OutputValues() {
		result.Output[name] = v
	}

	inv.log.Debugf("Procedure %s finished, return code %d, %d notice(s), %d row(s)",
		proc, code, len(result.Notices), len(result.Rows))

	return result, nil
}

func collectRows(rows *sql.Rows, result *Result) error {
	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("failed to get columns: %w", err)
	}

	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(map[string]any, len(cols))
		for i, col := range cols {
			v := values[i]
			if b, ok := v.([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = v
		}
		result.Rows = append(result.Rows, row)
	}

	return rows.Err()
}

func toNotice(msg fmt.Stringer) Notice {
	if e, ok := msg.(mssql.Error); ok {
		return Notice{
			Message: e.Message,
			Number:  e.Number,
			State:   e.State,
			Class:   e.Class,
			Proc:    e.ProcName,
			Line:    e.LineNo,
		}
	}
	return Notice{Message: msg.String()}
}

func transportError(proc string, err error) *TransportError {
	diag := SQLDiag{Message: err.Error()}

	var sqlErr mssql.Error
	if errors.As(err, &sqlErr) {
		diag = SQLDiag{
			Message: sqlErr.Message,
			Number:  sqlErr.Number,
			State:   sqlErr.State,
			Class:   sqlErr.Class,
			Line:    sqlErr.LineNo,
			Server:  sqlErr.ServerName,
			Proc:    sqlErr.ProcName,
		}
	}

	return &TransportError{Procedure: proc, Diag: diag, Err: err}
}
