package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	userhttp "github.com/mammidi-vikram/netflix/internal/user/delivery/http"
	"github.com/mammidi-vikram/netflix/internal/watchlist/usecase/command"
	"github.com/mammidi-vikram/netflix/internal/watchlist/usecase/query"
	"github.com/mammidi-vikram/netflix/pkg/apperr"
	"github.com/mammidi-vikram/netflix/pkg/auth"
	"github.com/mammidi-vikram/netflix/pkg/logger"
)

// WatchlistHandler handles HTTP requests for the watchlist
type WatchlistHandler struct {
	addHandler    *command.AddEntryHandler
	removeHandler *command.RemoveEntryHandler
	getHandler    *query.GetWatchlistHandler

	tokens *auth.JWT

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewWatchlistHandler creates a new watchlist handler
func NewWatchlistHandler(
	addHandler *command.AddEntryHandler,
	removeHandler *command.RemoveEntryHandler,
	getHandler *query.GetWatchlistHandler,
	tokens *auth.JWT,
) *WatchlistHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "watchlist_service_requests_total",
			Help: "Total number of requests to watchlist endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "watchlist_service_request_duration_seconds",
			Help:    "Duration of watchlist endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &WatchlistHandler{
		addHandler:     addHandler,
		removeHandler:  removeHandler,
		getHandler:     getHandler,
		tokens:         tokens,
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

func (h *WatchlistHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// GetWatchlist handles GET /api/user/watchlist
func (h *WatchlistHandler) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, r, apperr.NotAuthorized())
		return
	}

	entries, err := h.getHandler.Handle(r.Context(), query.GetWatchlistQuery{UserID: userID})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, entries)
}

// AddEntry handles POST /api/user/watchlist
func (h *WatchlistHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, r, apperr.NotAuthorized())
		return
	}

	var req struct {
		TmdbID int    `json:"tmdbId"`
		Title  string `json:"title"`
		Poster string `json:"poster"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, apperr.Validation("invalid request body"))
		return
	}

	cmd := command.AddEntryCommand{
		UserID: userID,
		TmdbID: req.TmdbID,
		Title:  req.Title,
		Poster: req.Poster,
	}

	entries, err := h.addHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, entries)
}

// RemoveEntry handles DELETE /api/user/watchlist/{tmdbId}
func (h *WatchlistHandler) RemoveEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, r, apperr.NotAuthorized())
		return
	}

	tmdbID, err := strconv.Atoi(mux.Vars(r)["tmdbId"])
	if err != nil {
		h.respondError(w, r, apperr.Validation("invalid tmdbId"))
		return
	}

	cmd := command.RemoveEntryCommand{
		UserID: userID,
		TmdbID: tmdbID,
	}

	entries, err := h.removeHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, entries)
}

func (h *WatchlistHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *WatchlistHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	e := apperr.FromError(err)
	if e.Status >= 500 {
		logger.Error(r.Context()).Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	h.respondJSON(w, e.Status, map[string]interface{}{
		"error": map[string]string{"code": string(e.Code), "message": e.Message},
	})
}

// RegisterRoutes registers watchlist routes; every route sits behind the
// session gate.
func (h *WatchlistHandler) RegisterRoutes(router *mux.Router) {
	authMW := userhttp.AuthMiddleware(h.tokens)

	router.HandleFunc("/api/user/watchlist",
		h.metricsMiddleware("/api/user/watchlist", authMW(h.GetWatchlist))).Methods("GET")
	router.HandleFunc("/api/user/watchlist",
		h.metricsMiddleware("/api/user/watchlist", authMW(h.AddEntry))).Methods("POST")
	router.HandleFunc("/api/user/watchlist/{tmdbId:[0-9]+}",
		h.metricsMiddleware("/api/user/watchlist/{tmdbId}", authMW(h.RemoveEntry))).Methods("DELETE")
}
