package rfq

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/soletrade/soletrade/internal/http/auth"
	"github.com/soletrade/soletrade/internal/lead"
	"github.com/soletrade/soletrade/internal/rfq"
)

// Handler exposes the bulk RFQ draft cart. The draft is keyed by the
// authenticated buyer, so every route needs an actor on the context.
type Handler struct {
	svc *rfq.Service
}

func NewHandler(svc *rfq.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.items)
	r.Get("/count", h.count)
	r.Post("/items", h.addItem)
	r.Delete("/items/{productID}", h.removeItem)
	r.Post("/submit", h.submit)
}

func writeError(w http.ResponseWriter, err error) {
	var vErr *lead.ValidationError

	switch {
	case errors.As(err, &vErr):
		http.Error(w, vErr.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func cartKey(r *http.Request) (string, bool) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		return "", false
	}

	return actor.ID.String(), true
}

func (h *Handler) items(w http.ResponseWriter, r *http.Request) {
	key, ok := cartKey(r)
	if !ok {
		http.Error(w, "missing actor", http.StatusUnauthorized)
		return
	}

	items, err := h.svc.Items(r.Context(), key)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toDraftResponse(items)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) count(w http.ResponseWriter, r *http.Request) {
	key, ok := cartKey(r)
	if !ok {
		http.Error(w, "missing actor", http.StatusUnauthorized)
		return
	}

	n, err := h.svc.Count(r.Context(), key)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(countResponse{Count: n}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	key, ok := cartKey(r)
	if !ok {
		http.Error(w, "missing actor", http.StatusUnauthorized)
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	added, err := h.svc.AddItem(r.Context(), key, req.ProductID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(addItemResponse{Added: added}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	key, ok := cartKey(r)
	if !ok {
		http.Error(w, "missing actor", http.StatusUnauthorized)
		return
	}

	if err := h.svc.RemoveItem(r.Context(), key, chi.URLParam(r, "productID")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type submitRequest struct {
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	City              string     `json:"city"`
	CompanyName       string     `json:"company_name"`
	BusinessType      string     `json:"business_type"`
	BusinessAccountID *uuid.UUID `json:"business_account_id,omitempty"`
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	key, ok := cartKey(r)
	if !ok {
		http.Error(w, "missing actor", http.StatusUnauthorized)
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	l, err := h.svc.Submit(r.Context(), key, rfq.BuyerContact{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		City:              req.City,
		CompanyName:       req.CompanyName,
		BusinessType:      req.BusinessType,
		BusinessAccountID: req.BusinessAccountID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(submitResponse{LeadID: l.ID, Status: string(l.Status)}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
