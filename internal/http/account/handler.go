package account

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/soletrade/soletrade/internal/account"
	"github.com/soletrade/soletrade/internal/http/auth"
)

type Handler struct {
	svc *account.Service
}

func NewHandler(svc *account.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/{id}", h.get)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(auth.RoleAdmin))
		r.Get("/", h.list)
		r.Post("/{id}/activate", h.activate)
		r.Post("/{id}/suspend", h.suspend)
		r.Patch("/{id}/credit-limit", h.setCreditLimit)
	})
}

func writeError(w http.ResponseWriter, err error) {
	var vErr *account.ValidationError

	switch {
	case errors.Is(err, account.ErrNotFound):
		http.Error(w, "account not found", http.StatusNotFound)
	case errors.As(err, &vErr):
		http.Error(w, vErr.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type createAccountRequest struct {
	CompanyName  string               `json:"company_name"`
	BusinessType account.BusinessType `json:"business_type"`
	CreditLimit  int64                `json:"credit_limit"`
	PaymentTerms account.PaymentTerms `json:"payment_terms"`
	ContactName  string               `json:"contact_name"`
	ContactEmail string               `json:"contact_email"`
	ContactPhone string               `json:"contact_phone"`
}

type accountResponse struct {
	ID              uuid.UUID            `json:"id"`
	CompanyName     string               `json:"company_name"`
	BusinessType    account.BusinessType `json:"business_type"`
	Status          account.Status       `json:"status"`
	CreditLimit     int64                `json:"credit_limit"`
	CreditUsed      int64                `json:"credit_used"`
	AvailableCredit int64                `json:"available_credit"`
	PaymentTerms    account.PaymentTerms `json:"payment_terms"`
	ContactName     string               `json:"contact_name,omitempty"`
	ContactEmail    string               `json:"contact_email,omitempty"`
	ContactPhone    string               `json:"contact_phone,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       *time.Time           `json:"updated_at,omitempty"`
}

func toResponse(a *account.BusinessAccount) accountResponse {
	return accountResponse{
		ID:              a.ID,
		CompanyName:     a.CompanyName,
		BusinessType:    a.BusinessType,
		Status:          a.Status,
		CreditLimit:     a.CreditLimit,
		CreditUsed:      a.CreditUsed,
		AvailableCredit: a.AvailableCredit(),
		PaymentTerms:    a.PaymentTerms,
		ContactName:     a.ContactName,
		ContactEmail:    a.ContactEmail,
		ContactPhone:    a.ContactPhone,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.svc.Create(r.Context(), account.CreateParams{
		CompanyName:  req.CompanyName,
		BusinessType: req.BusinessType,
		CreditLimit:  req.CreditLimit,
		PaymentTerms: req.PaymentTerms,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(a)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(a)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := account.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(account.Status(s))
	}

	accounts, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = toResponse(a)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.svc.Activate)
}

func (h *Handler) suspend(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.svc.Suspend)
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, id uuid.UUID) error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := apply(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type creditLimitRequest struct {
	CreditLimit int64 `json:"credit_limit"`
}

func (h *Handler) setCreditLimit(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req creditLimitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.SetCreditLimit(r.Context(), id, req.CreditLimit); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
