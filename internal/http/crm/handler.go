package crm

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/soletrade/soletrade/internal/crm"
	"github.com/soletrade/soletrade/internal/http/auth"
)

const defaultTopProducts = 10

// Handler serves the sales dashboard rollups. Everything here is
// admin-only and read-only.
type Handler struct {
	svc *crm.Service
}

func NewHandler(svc *crm.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Use(auth.RequireRole(auth.RoleAdmin))
	r.Get("/accounts", h.accountMetrics)
	r.Get("/assignees", h.assigneeMetrics)
	r.Get("/calendar", h.calendar)
	r.Get("/top-products", h.topProducts)
}

func (h *Handler) accountMetrics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.AccountMetrics(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toAccountMetrics(stats)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) assigneeMetrics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.AssigneeMetrics(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toAssigneeMetrics(stats)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) calendar(w http.ResponseWriter, r *http.Request) {
	today := time.Now()

	if s := r.URL.Query().Get("today"); s != "" {
		parsed, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "today must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		today = parsed
	}

	days, err := h.svc.Calendar(r.Context(), today)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toCalendar(days)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) topProducts(w http.ResponseWriter, r *http.Request) {
	limit := defaultTopProducts

	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}

		limit = n
	}

	products, err := h.svc.TopProducts(r.Context(), limit)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toTopProducts(products)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
