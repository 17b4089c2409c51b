package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mammidi-vikram/netflix/internal/movies/client"
	"github.com/mammidi-vikram/netflix/pkg/apperr"
	"github.com/mammidi-vikram/netflix/pkg/logger"
)

// MovieHandler handles movie catalog requests, proxied to the metadata
// provider. No auth: browsing is public.
type MovieHandler struct {
	tmdb *client.TMDBClient

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewMovieHandler creates a new movie handler
func NewMovieHandler(tmdb *client.TMDBClient) *MovieHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movie_service_requests_total",
			Help: "Total number of requests to movie endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movie_service_request_duration_seconds",
			Help:    "Duration of movie endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &MovieHandler{
		tmdb:           tmdb,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (h *MovieHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// GetMovies handles GET /api/movies/{category}
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	movies, err := h.tmdb.CategoryLookup(r.Context(), category)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, movies)
}

// SearchMovies handles GET /api/movies/search?query=
func (h *MovieHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		h.respondError(w, r, apperr.Validation("query is required"))
		return
	}

	movies, err := h.tmdb.Search(r.Context(), query)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, movies)
}

func (h *MovieHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *MovieHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	e := apperr.FromError(err)
	if e.Status >= 500 {
		logger.Error(r.Context()).Err(err).Str("path", r.URL.Path).Msg("provider request failed")
	}
	h.respondJSON(w, e.Status, map[string]interface{}{
		"error": map[string]string{"code": string(e.Code), "message": e.Message},
	})
}

// RegisterRoutes registers movie catalog routes. The search route is
// registered before the category route so "search" is never treated as a
// category name.
func (h *MovieHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/movies/search",
		h.metricsMiddleware("/api/movies/search", h.SearchMovies)).Methods("GET")
	router.HandleFunc("/api/movies/{category}",
		h.metricsMiddleware("/api/movies/{category}", h.GetMovies)).Methods("GET")
}
