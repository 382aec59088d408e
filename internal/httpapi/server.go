// Package httpapi is the REST surface. Handlers are thin request/response
// mapping over the dataset service and job registry; every error is caught
// at this boundary and mapped to a JSON envelope, never a stack trace.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/arshansani/Planetary-Systems-Final-Project/internal/dataset"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/domain"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/registry"
	"github.com/arshansani/Planetary-Systems-Final-Project/internal/store"
)

type Server struct {
	Registry *registry.Registry
	Dataset  *dataset.Service
	Results  store.KV
	Store    *store.Store
	Logger   *slog.Logger
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/healthz", s.handleHealth)
	r.Get("/help", s.handleHelp)

	r.Post("/data", s.handleLoadData)
	r.Get("/data", s.handleGetData)
	r.Delete("/data", s.handleDeleteData)

	r.Get("/exoplanets", s.handleListPlanets)
	r.Get("/exoplanets/{name}", s.handleGetPlanet)
	r.Get("/hosts", s.handleHosts)
	r.Get("/hosts/{hostname}", s.handleHostPlanets)
	r.Get("/facilities", s.handleFacilities)
	r.Get("/facilities/{facility}", s.handleFacilityPlanets)

	r.Post("/jobs", s.handleCreateJob)
	r.Get("/jobs", s.handleListJobs)
	r.Get("/jobs/{id}", s.handleGetJob)
	r.Get("/results/{id}", s.handleGetResult)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.Ping(r.Context()); err != nil {
		s.writeError(w, fmt.Errorf("backing store unreachable: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLoadData(w http.ResponseWriter, r *http.Request) {
	count, err := s.Dataset.Load(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": fmt.Sprintf("loaded %d records", count),
	})
}

func (s *Server) handleGetData(w http.ResponseWriter, r *http.Request) {
	records, err := s.Dataset.Records(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleDeleteData(w http.ResponseWriter, r *http.Request) {
	if err := s.Dataset.Delete(r.Context()); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "dataset deleted",
	})
}

func (s *Server) handleListPlanets(w http.ResponseWriter, r *http.Request) {
	var f dataset.Filter
	var err error
	if f.MinRadius, err = floatParam(r, "min_radius"); err != nil {
		s.writeError(w, err)
		return
	}
	if f.MaxRadius, err = floatParam(r, "max_radius"); err != nil {
		s.writeError(w, err)
		return
	}
	if f.StartYear, err = intParam(r, "start_year"); err != nil {
		s.writeError(w, err)
		return
	}
	if f.EndYear, err = intParam(r, "end_year"); err != nil {
		s.writeError(w, err)
		return
	}
	f.Method = r.URL.Query().Get("method")

	names, err := s.Dataset.Names(r.Context(), f)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

func (s *Server) handleGetPlanet(w http.ResponseWriter, r *http.Request) {
	record, err := s.Dataset.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleHosts(w http.ResponseWriter, r *http.Request) {
	hosts, err := s.Dataset.Hosts(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hosts)
}

func (s *Server) handleHostPlanets(w http.ResponseWriter, r *http.Request) {
	info, err := s.Dataset.HostPlanets(r.Context(), chi.URLParam(r, "hostname"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleFacilities(w http.ResponseWriter, r *http.Request) {
	facilities, err := s.Dataset.Facilities(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, facilities)
}

func (s *Server) handleFacilityPlanets(w http.ResponseWriter, r *http.Request) {
	names, err := s.Dataset.FacilityPlanets(r.Context(), chi.URLParam(r, "facility"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"status": "error", "message": msg})
}

// writeError maps the error taxonomy onto status codes. Anything outside the
// sentinels is a 500 and logged server-side.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeErr(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		writeErr(w, http.StatusBadRequest, err.Error())
	default:
		s.Logger.Error("request failed", "err", err)
		writeErr(w, http.StatusInternalServerError, err.Error())
	}
}

func floatParam(r *http.Request, name string) (*float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q is not a number", domain.ErrInvalidInput, name, raw)
	}
	return &v, nil
}

func intParam(r *http.Request, name string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q is not an integer", domain.ErrInvalidInput, name, raw)
	}
	return &v, nil
}
