package lead

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/soletrade/soletrade/internal/http/auth"
	"github.com/soletrade/soletrade/internal/lead"
)

type Handler struct {
	svc *lead.Service
}

func NewHandler(svc *lead.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.submit)
	r.Get("/{id}", h.get)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(auth.RoleAdmin))
		r.Get("/", h.list)
		r.Patch("/{id}/status", h.transition)
		r.Patch("/{id}/assign", h.assign)
		r.Patch("/{id}/follow-up", h.scheduleFollowUp)
		r.Delete("/{id}", h.delete)
	})
}

func writeError(w http.ResponseWriter, err error) {
	var vErr *lead.ValidationError

	var tErr *lead.InvalidTransitionError

	switch {
	case errors.Is(err, lead.ErrNotFound):
		http.Error(w, "lead not found", http.StatusNotFound)
	case errors.As(err, &vErr):
		http.Error(w, vErr.Error(), http.StatusBadRequest)
	case errors.As(err, &tErr):
		http.Error(w, tErr.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type submitLeadRequest struct {
	BuyerName         string             `json:"buyer_name"`
	BuyerEmail        string             `json:"buyer_email"`
	BuyerPhone        string             `json:"buyer_phone"`
	CompanyName       string             `json:"company_name"`
	City              string             `json:"city"`
	BusinessAccountID *uuid.UUID         `json:"business_account_id,omitempty"`
	ProductID         string             `json:"product_id"`
	QuantityRequired  int                `json:"quantity_required"`
	BusinessType      string             `json:"business_type"`
	InquiryType       string             `json:"inquiry_type"`
	Priority          lead.Priority      `json:"priority"`
	Products          []lead.ProductLine `json:"products,omitempty"`
	Notes             string             `json:"notes"`
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var req submitLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	l, err := h.svc.Submit(r.Context(), lead.SubmitParams{
		BuyerName:         req.BuyerName,
		BuyerEmail:        req.BuyerEmail,
		BuyerPhone:        req.BuyerPhone,
		CompanyName:       req.CompanyName,
		City:              req.City,
		BusinessAccountID: req.BusinessAccountID,
		ProductID:         req.ProductID,
		QuantityRequired:  req.QuantityRequired,
		BusinessType:      req.BusinessType,
		InquiryType:       req.InquiryType,
		Priority:          req.Priority,
		Products:          req.Products,
		Notes:             req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(l)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := lead.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(lead.Status(s))
	}

	if s := r.URL.Query().Get("assigned_to"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.AssignedTo = new(id)
		}
	}

	if s := r.URL.Query().Get("account_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.AccountID = new(id)
		}
	}

	leads, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(leads)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	l, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(l)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type transitionRequest struct {
	Status lead.Status `json:"status"`
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	actor, _ := auth.ActorFromContext(r.Context())

	l, err := h.svc.Transition(r.Context(), id, req.Status, actor.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(l)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type assignRequest struct {
	AdminID uuid.UUID `json:"admin_id"`
}

func (h *Handler) assign(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Assign(r.Context(), id, req.AdminID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type followUpRequest struct {
	Date  time.Time `json:"date"`
	Notes string    `json:"notes"`
}

func (h *Handler) scheduleFollowUp(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req followUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.ScheduleFollowUp(r.Context(), id, req.Date, req.Notes); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
