package quote

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/soletrade/soletrade/internal/credit"
	"github.com/soletrade/soletrade/internal/http/auth"
	"github.com/soletrade/soletrade/internal/order"
	"github.com/soletrade/soletrade/internal/quote"
)

type Handler struct {
	svc *quote.Service
}

func NewHandler(svc *quote.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{id}", h.get)
	r.Post("/{id}/accept", h.accept)
	r.Post("/{id}/reject", h.reject)
	r.Post("/{id}/convert", h.convert)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(auth.RoleAdmin))
		r.Post("/", h.request)
		r.Get("/", h.list)
		r.Post("/{id}/expire", h.expire)
	})
}

func writeError(w http.ResponseWriter, err error) {
	var vErr *quote.ValidationError

	var pErr *quote.PreconditionError

	var tErr *quote.InvalidTransitionError

	var limitErr *credit.LimitExceededError

	switch {
	case errors.Is(err, quote.ErrNotFound):
		http.Error(w, "quote not found", http.StatusNotFound)
	case errors.Is(err, quote.ErrAlreadyConverted):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &vErr):
		http.Error(w, vErr.Error(), http.StatusBadRequest)
	case errors.As(err, &pErr):
		http.Error(w, pErr.Error(), http.StatusConflict)
	case errors.As(err, &tErr):
		http.Error(w, tErr.Error(), http.StatusConflict)
	case errors.As(err, &limitErr):
		http.Error(w, limitErr.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type requestQuoteRequest struct {
	LeadID      uuid.UUID    `json:"lead_id"`
	Items       []quote.Item `json:"items"`
	TotalAmount int64        `json:"total_amount"`
	ValidUntil  *time.Time   `json:"valid_until,omitempty"`
	Terms       string       `json:"terms"`
	Notes       string       `json:"notes"`
}

func (h *Handler) request(w http.ResponseWriter, r *http.Request) {
	var req requestQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q, err := h.svc.Request(r.Context(), quote.RequestParams{
		LeadID:      req.LeadID,
		Items:       req.Items,
		TotalAmount: req.TotalAmount,
		ValidUntil:  req.ValidUntil,
		Terms:       req.Terms,
		Notes:       req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(q)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	q, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(q)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := quote.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(quote.Status(s))
	}

	if s := r.URL.Query().Get("lead_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.InquiryID = new(id)
		}
	}

	quotes, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(quotes)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) accept(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, func(r *http.Request, id uuid.UUID) (*quote.Quote, error) {
		return h.svc.Accept(r.Context(), id)
	})
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.resolve(w, r, func(r *http.Request, id uuid.UUID) (*quote.Quote, error) {
		return h.svc.Reject(r.Context(), id, req.Reason)
	})
}

func (h *Handler) expire(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, func(r *http.Request, id uuid.UUID) (*quote.Quote, error) {
		return h.svc.Expire(r.Context(), id)
	})
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request, apply func(r *http.Request, id uuid.UUID) (*quote.Quote, error)) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	q, err := apply(r, id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(q)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type convertRequest struct {
	BusinessAccountID   uuid.UUID         `json:"business_account_id"`
	PaymentType         order.PaymentType `json:"payment_type"`
	PurchaseOrderNumber string            `json:"purchase_order_number"`
	RequiresApproval    bool              `json:"requires_approval"`
}

func (h *Handler) convert(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	o, err := h.svc.Convert(r.Context(), id, quote.OrderOptions{
		BusinessAccountID:   req.BusinessAccountID,
		PaymentType:         req.PaymentType,
		PurchaseOrderNumber: req.PurchaseOrderNumber,
		RequiresApproval:    req.RequiresApproval,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toOrderResponse(o)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
