// Package rest exposes the analysis service over HTTP.
package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/francois-poidevin/flightsun/internal/app"
	"github.com/francois-poidevin/flightsun/internal/app/airports"
	"github.com/francois-poidevin/flightsun/internal/app/apperr"
	"github.com/francois-poidevin/flightsun/internal/app/metrics"
)

// Configuration settings for the HTTP service
type Configuration struct {
	Listen     string `toml:"listen" default:":8080" comment:"HTTP listen address"`
	BatchLimit int    `toml:"batchLimit" default:"4" comment:"concurrent analyses per batch request"`
}

type handler struct {
	log      *logrus.Logger
	analyzer app.Analyzer
}

type batchRequest struct {
	Queries []app.Query `json:"queries"`
}

type batchResponse struct {
	Count   int             `json:"count"`
	Results []*app.Analysis `json:"results"`
}

type airportsResponse struct {
	Count    int                `json:"count"`
	Airports []airports.Airport `json:"airports"`
}

// NewRouter wires every endpoint under /api/v1 plus /metrics.
func NewRouter(log *logrus.Logger, analyzer app.Analyzer) *mux.Router {
	h := &handler{log: log, analyzer: analyzer}

	r := mux.NewRouter()
	r.Use(withRequestID, metrics.Middleware)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/flight-sun", h.analyzeQuery).Methods(http.MethodGet)
	api.HandleFunc("/flight-sun", h.analyzeBody).Methods(http.MethodPost)
	api.HandleFunc("/flight-sun/batch", h.analyzeBatch).Methods(http.MethodPost)
	api.HandleFunc("/airports", h.listAirports).Methods(http.MethodGet)
	api.HandleFunc("/airports/{code}", h.getAirport).Methods(http.MethodGet)

	return r
}

// analyzeQuery - GET /api/v1/flight-sun?from=DEL&to=JAI&departure=...&durationMinutes=90
func (h *handler) analyzeQuery(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := app.Query{
		From:      query.Get("from"),
		To:        query.Get("to"),
		Departure: query.Get("departure"),
	}

	if raw := query.Get("durationMinutes"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, apperr.WrapInvalidInput(err, "durationMinutes must be an integer, got %q", raw))
			return
		}
		q.DurationMinutes = &d
	}

	h.analyze(w, r, q)
}

// analyzeBody - POST /api/v1/flight-sun
func (h *handler) analyzeBody(w http.ResponseWriter, r *http.Request) {
	var q app.Query
	if err := decodeJSON(w, r, &q); err != nil {
		writeError(w, r, err)
		return
	}
	h.analyze(w, r, q)
}

func (h *handler) analyze(w http.ResponseWriter, r *http.Request, q app.Query) {
	analysis, err := h.analyzer.Analyze(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// analyzeBatch - POST /api/v1/flight-sun/batch
func (h *handler) analyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	results, err := h.analyzer.AnalyzeBatch(r.Context(), req.Queries)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.log.WithContext(r.Context()).WithFields(logrus.Fields{
		"requestId": requestID(r.Context()),
		"queries":   len(req.Queries),
	}).Info("Batch analysed")
	writeJSON(w, http.StatusOK, batchResponse{Count: len(results), Results: results})
}

// listAirports - GET /api/v1/airports
func (h *handler) listAirports(w http.ResponseWriter, r *http.Request) {
	all := airports.All()
	writeJSON(w, http.StatusOK, airportsResponse{Count: len(all), Airports: all})
}

// getAirport - GET /api/v1/airports/{code}
func (h *handler) getAirport(w http.ResponseWriter, r *http.Request) {
	code := airports.Normalize(mux.Vars(r)["code"])
	a, ok := airports.Lookup(code)
	if !ok {
		writeError(w, r, &apperr.Error{
			Code:    apperr.CodeAirportNotFound,
			Message: fmt.Sprintf("airport %s not found", code),
			Details: map[string]any{"missing": []string{code}},
		})
		return
	}
	writeJSON(w, http.StatusOK, a)
}
