package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Kalysbe/quik-api/core/infrastructure/logging"
	"github.com/Kalysbe/quik-api/core/infrastructure/transport/http/dto"
	"github.com/Kalysbe/quik-api/core/operations"
	"github.com/Kalysbe/quik-api/core/procedure"
)

// writeJSON encodes v with the given status. Encoding failures are
// logged, there is nothing else to do for a half-written response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.New("http").Errorf("Failed to encode response: %v", err)
	}
}

// decodeBody parses the JSON request body into a flat payload map. An
// empty body is a valid empty payload so parameterless GET operations
// need no special casing. A literal JSON null decodes into a nil map
// without error; it comes back as an empty payload so required-field
// validation rejects it the same way an empty object is rejected.
func decodeBody(r *http.Request) (map[string]any, error) {
	payload := map[string]any{}
	if r.Body == nil {
		return payload, nil
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	if payload == nil {
		return map[string]any{}, nil
	}
	return payload, nil
}

// handleOperation builds the generic handler for one procedure-backed
// operation: decode, validate, invoke, classify, respond. Commands and
// procedure-backed reads share the whole flow and differ only in the
// success envelope. Outside production mode unexpected errors carry
// their text in the response detail.
func handleOperation(runner procedure.Runner, op *operations.Operation, production bool) http.HandlerFunc {
	log := logging.New("handler")

	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := decodeBody(r)
		if err != nil {
			log.Warnf("%s: invalid JSON body: %v", op.Procedure, err)
			writeJSON(w, http.StatusBadRequest, dto.NewErrorResponse("Невалидный JSON в теле запроса"))
			return
		}

		if op.PathParam != "" {
			payload[op.PathParam] = chi.URLParam(r, op.PathParam)
		}
		for _, name := range op.QueryParams {
			if v := r.URL.Query().Get(name); v != "" {
				payload[name] = op.QueryValue(name, v)
			}
		}

		data, fieldErrs := op.Schema.Validate(payload)
		if len(fieldErrs) > 0 {
			log.Warnf("%s: validation failed, %d error(s)", op.Procedure, len(fieldErrs))
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
				Success: false,
				Error:   "Ошибка валидации запроса",
				Details: fieldErrs,
			})
			return
		}

		result, err := runner.Invoke(r.Context(), op.Procedure, op.BuildParams(data))
		if err != nil {
			var terr *procedure.TransportError
			if errors.As(err, &terr) {
				log.Error("Procedure transport error", err)
				writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
					Success: false,
					Error:   "Ошибка выполнения хранимой процедуры",
					SQLErr:  &terr.Diag,
				})
				return
			}
			log.Error("Procedure invocation error", err)
			resp := dto.NewErrorResponse("Внутренняя ошибка сервера")
			if !production {
				resp.Detail = err.Error()
			}
			writeJSON(w, http.StatusInternalServerError, resp)
			return
		}

		outcome := procedure.Classify(result)
		if outcome.Failed {
			log.Warnf("%s: business failure: %s", op.Procedure, outcome.Reason)
			writeJSON(w, http.StatusConflict, dto.CommandResponse{
				Success:     false,
				Message:     "Процедура " + op.Procedure + " вернула ошибку",
				Reason:      outcome.Reason,
				ReturnValue: result.ReturnCode,
				Output:      result.Output,
				Info:        result.Notices,
				Recordset:   result.Rows,
			})
			return
		}

		if op.Kind == operations.KindQuery {
			data := result.Rows
			if data == nil {
				data = []map[string]any{}
			}
			writeJSON(w, http.StatusOK, dto.QueryResponse{Success: true, Data: data})
			return
		}

		writeJSON(w, http.StatusOK, dto.CommandResponse{
			Success:     true,
			Message:     op.SuccessMessage,
			ReturnValue: result.ReturnCode,
			Output:      result.Output,
			Info:        result.Notices,
			Recordset:   result.Rows,
		})
	}
}
