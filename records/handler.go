package records

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

const defaultResultsLimit = 10

type bestResponse struct {
	BestTime float64 `json:"bestTime"`
	HasBest  bool    `json:"hasBest"`
}

// NewHandler exposes the store read-only over HTTP.
func NewHandler(store Store) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/best", BestTime(store))
	r.Get("/results", ListResults(store))
	r.Get("/health", Health())
	return r
}

func BestTime(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		best, ok, err := store.BestTime()
		if err != nil {
			log.Err(err).Str("request_id", middleware.GetReqID(r.Context())).Msg("read best time")
			http.Error(w, `{"error":"store unavailable"}`, http.StatusInternalServerError)
			return
		}
		if err := json.NewEncoder(w).Encode(bestResponse{BestTime: best, HasBest: ok}); err != nil {
			log.Err(err).Msg("best time encode error")
		}
	}
}

func ListResults(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		limit := defaultResultsLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				http.Error(w, `{"error":"invalid limit"}`, http.StatusBadRequest)
				return
			}
			limit = n
		}

		results, err := store.Results(limit)
		if err != nil {
			log.Err(err).Str("request_id", middleware.GetReqID(r.Context())).Msg("read results")
			http.Error(w, `{"error":"store unavailable"}`, http.StatusInternalServerError)
			return
		}
		if results == nil {
			results = []Result{}
		}
		if err := json.NewEncoder(w).Encode(results); err != nil {
			log.Err(err).Msg("results encode error")
		}
	}
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
