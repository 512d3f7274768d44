/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/salary/*      Stateless salary computations
  /api/contracts     Contract catalog
  /api/timesheets/*  Timesheet storage + derived computations
  /                  Minimal HTML index

SECURITY NOTE:
  No authentication middleware. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Stateless salary computations
		r.Route("/salary", func(r chi.Router) {
			r.Post("/weekly", h.ComputeWeeklySalary)
			r.Post("/monthly", h.ComputeMonthlySalary)
			r.Post("/monthly/legacy", h.ComputeMonthlyLegacySalary)
			r.Post("/net", h.EstimateNetSalary)
		})

		// Contract catalog
		r.Get("/contracts", h.ListContracts)

		// Timesheet routes
		r.Route("/timesheets", func(r chi.Router) {
			r.Get("/", h.ListTimesheets)
			r.Post("/", h.CreateTimesheet)
			r.Get("/{id}", h.GetTimesheet)
			r.Delete("/{id}", h.DeleteTimesheet)
			r.Get("/{id}/salary", h.GetTimesheetSalary)
			r.Get("/{id}/net", h.GetTimesheetNet)
			r.Get("/{id}/payslip", h.GetTimesheetPayslip)
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Payroll Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Payroll Engine API</h1>
<h2>API Endpoints</h2>
<ul>
<li><code>POST /api/salary/weekly</code> - Weekly gross breakdown</li>
<li><code>POST /api/salary/monthly</code> - Monthly gross from work days</li>
<li><code>POST /api/salary/net</code> - Net salary estimate</li>
<li><a href="/api/contracts">/api/contracts</a> - Contract catalog</li>
<li><a href="/api/timesheets">/api/timesheets</a> - Stored timesheets</li>
</ul>
</body>
</html>`))
	})

	return r
}
