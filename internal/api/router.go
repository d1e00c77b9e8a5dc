package api

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/devices", s.handleListDevices)
		r.Get("/devices/{id}", s.handleGetDevice)
		r.Get("/processes", s.handleListProcesses)
		r.Get("/processes/{id}", s.handleGetProcess)
	})

	return r
}

// handleHealth reports server health plus the state of the transport
// and database connections. A failing component degrades the overall
// status but the endpoint itself stays 200 so monitors can read the
// detail.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	components := map[string]string{}
	status := "ok"

	check := func(name string, hc HealthChecker) {
		if hc == nil {
			return
		}
		if err := hc.HealthCheck(r.Context()); err != nil {
			components[name] = err.Error()
			status = "degraded"
		} else {
			components[name] = "ok"
		}
	}
	check("mqtt", s.mqtt)
	check("database", s.database)

	writeJSON(w, http.StatusOK, map[string]any{
		"status":     status,
		"version":    s.version,
		"components": components,
	})
}

// handleListDevices returns the device catalogue sorted by alias.
func (s *Server) handleListDevices(w http.ResponseWriter, _ *http.Request) {
	devices := s.registry.List()
	sort.Slice(devices, func(i, j int) bool {
		return devices[i].Alias < devices[j].Alias
	})
	writeJSON(w, http.StatusOK, map[string]any{
		"devices": devices,
		"count":   len(devices),
	})
}

// handleGetDevice returns one device by internal ID.
func (s *Server) handleGetDevice(w http.ResponseWriter, r *http.Request) {
	dev, err := s.registry.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		writeNotFound(w, "device not found")
		return
	}
	writeJSON(w, http.StatusOK, dev)
}

// handleListProcesses returns all stored automation processes.
func (s *Server) handleListProcesses(w http.ResponseWriter, r *http.Request) {
	processes, err := s.processRepo.List(r.Context())
	if err != nil {
		s.logger.Error("listing processes failed", "error", err)
		writeInternalError(w, "listing processes failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"processes": processes,
		"count":     len(processes),
	})
}

// handleGetProcess returns one process by ID.
func (s *Server) handleGetProcess(w http.ResponseWriter, r *http.Request) {
	p, err := s.processRepo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeNotFound(w, "process not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}
