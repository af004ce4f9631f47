package dto

import (
	"github.com/Kalysbe/quik-api/core/limfile"
	"github.com/Kalysbe/quik-api/core/procedure"
	"github.com/Kalysbe/quik-api/core/schema"
)

// CommandResponse is the envelope of every procedure-backed write. The
// raw diagnostic payload (return code, output, notices, rows) is always
// included so operators can debug procedure behavior from the response
// alone.
type CommandResponse struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message,omitempty"`
	Reason      string             `json:"reason,omitempty"`
	ReturnValue *int32             `json:"returnValue"`
	Output      map[string]any     `json:"output"`
	Info        []procedure.Notice `json:"info"`
	Recordset   []map[string]any   `json:"recordset"`
}

// QueryResponse wraps procedure-backed reads.
type QueryResponse struct {
	Success bool             `json:"success"`
	Data    []map[string]any `json:"data"`
}

// ErrorResponse is the uniform failure envelope for validation,
// transport and access errors. Detail carries the underlying error
// text and is populated outside production mode only.
type ErrorResponse struct {
	Success bool                `json:"success"`
	Error   string              `json:"error"`
	Details []schema.FieldError `json:"errors,omitempty"`
	SQLErr  *procedure.SQLDiag  `json:"sqlError,omitempty"`
	Detail  string              `json:"detail,omitempty"`
}

// NewErrorResponse builds a failure envelope with just a message.
func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}

// LimitResponse reports one limit-file ingestion run end to end.
type LimitResponse struct {
	Success      bool            `json:"success"`
	FileName     string          `json:"fileName"`
	LinesWritten int             `json:"linesWritten"`
	Report       *limfile.Report `json:"report"`
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime"`
}
