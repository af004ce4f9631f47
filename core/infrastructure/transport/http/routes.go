package http

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Kalysbe/quik-api/core/infrastructure/logging"
	"github.com/Kalysbe/quik-api/core/infrastructure/transport/http/dto"
	httpmiddleware "github.com/Kalysbe/quik-api/core/infrastructure/transport/http/middleware"
	"github.com/Kalysbe/quik-api/core/limfile"
	"github.com/Kalysbe/quik-api/core/operations"
	"github.com/Kalysbe/quik-api/core/procedure"
)

// Deps carries everything the route handlers need. Pools and runners are
// constructed at startup and injected; nothing here is package state.
type Deps struct {
	Runner    procedure.Runner
	ReadsDB   *sql.DB
	LimWriter *limfile.Writer
	LimRunner *limfile.Runner
	IPFilter  *httpmiddleware.IPFilter
	// Production suppresses error details in failure responses.
	Production bool
}

// RegisterRoutes registers all HTTP routes
func RegisterRoutes(r *chi.Mux, deps Deps) {
	log := logging.New("routes")
	log.Infof("Registering HTTP routes")

	started := time.Now()

	// Health and metrics stay reachable from outside the allowed
	// networks so supervisors and scrapers keep working.
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, dto.HealthResponse{
			Status: "ok",
			Uptime: time.Since(started).Seconds(),
		})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusNotFound, dto.NewErrorResponse("Маршрут не найден"))
	})

	var routeCount int

	r.Group(func(r chi.Router) {
		r.Use(deps.IPFilter.Handler)

		for _, op := range operations.Commands() {
			r.Method(op.Method, op.Path, handleOperation(deps.Runner, op, deps.Production))
			log.Debugf("  %s %s -> %s", op.Method, op.Path, op.Procedure)
			routeCount++
		}

		rd := newReader(deps.ReadsDB)
		for _, tr := range operations.TableReads() {
			r.Get(tr.Path, rd.handle(tr))
			log.Debugf("  GET %s -> table %s", tr.Path, tr.Table)
			routeCount++
		}

		lp := newLimitPipeline(deps.LimWriter, deps.LimRunner)
		for _, imp := range operations.LimitImports() {
			r.Post(imp.Path, lp.handle(imp))
			log.Debugf("  POST %s -> lim prefix %s", imp.Path, imp.Prefix)
			routeCount++
		}
	})

	log.Infof("Routes registered: %d operation(s) plus health and metrics", routeCount)
}
