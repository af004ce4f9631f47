package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Kalysbe/quik-api/core/infrastructure/logging"
	"github.com/Kalysbe/quik-api/core/infrastructure/transport/http/dto"
	"github.com/Kalysbe/quik-api/core/limfile"
	"github.com/Kalysbe/quik-api/core/operations"
	"github.com/Kalysbe/quik-api/core/schema"
)

// limitPipeline serves the limit-ingestion endpoints: validate the
// record array, serialize a lim file and run the external importer
// synchronously within the request.
type limitPipeline struct {
	writer *limfile.Writer
	runner *limfile.Runner
	log    logging.Logger
}

func newLimitPipeline(writer *limfile.Writer, runner *limfile.Runner) *limitPipeline {
	return &limitPipeline{
		writer: writer,
		runner: runner,
		log:    logging.New("limits"),
	}
}

func (lp *limitPipeline) handle(imp *operations.LimitImport) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var records []map[string]any
		if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
			writeJSON(w, http.StatusBadRequest, dto.NewErrorResponse("Ожидается JSON-массив записей лимитов"))
			return
		}
		if len(records) == 0 {
			writeJSON(w, http.StatusBadRequest, dto.NewErrorResponse("Массив записей лимитов пуст"))
			return
		}

		var (
			lines     []string
			fieldErrs []schema.FieldError
		)
		for i, record := range records {
			data, errs := imp.Schema.Validate(record)
			if len(errs) > 0 {
				for _, fe := range errs {
					fieldErrs = append(fieldErrs, schema.FieldError{
						Field:   fmt.Sprintf("[%d].%s", i, fe.Field),
						Message: fe.Message,
					})
				}
				continue
			}
			lines = append(lines, limLine(imp.LineFields, data))
		}

		if len(fieldErrs) > 0 {
			lp.log.Warnf("%s: validation failed, %d error(s)", imp.Prefix, len(fieldErrs))
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
				Success: false,
				Error:   "Ошибка валидации записей лимитов",
				Details: fieldErrs,
			})
			return
		}

		file, err := lp.writer.WriteLimFile(lines, imp.Prefix)
		if err != nil {
			lp.log.Error("Failed to write lim file", err)
			writeJSON(w, http.StatusInternalServerError, dto.NewErrorResponse("Не удалось записать lim-файл"))
			return
		}
		lp.log.Infof("Wrote %s (%d line(s))", file.Name, len(lines))

		report, err := lp.runner.Run(r.Context(), file.Name)
		if err != nil {
			lp.log.Error("Failed to launch importer", err)
			writeJSON(w, http.StatusInternalServerError, dto.NewErrorResponse("Не удалось запустить FillLimits"))
			return
		}

		writeJSON(w, http.StatusOK, dto.LimitResponse{
			Success:      report.Success(),
			FileName:     file.Name,
			LinesWritten: len(lines),
			Report:       report,
		})
	}
}

// limLine serializes one validated record as semicolon-joined KEY=value
// pairs in the importer's field order. Absent optional fields are
// omitted.
func limLine(fields []string, data map[string]any) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		v, ok := data[f]
		if !ok || v == nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%v", f, v))
	}
	return strings.Join(parts, ";") + ";"
}
