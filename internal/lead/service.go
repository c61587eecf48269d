package lead

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/soletrade/soletrade/internal/catalog"
	"github.com/soletrade/soletrade/internal/event"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=lead
type Repository interface {
	CreateLead(ctx context.Context, l *Lead) error
	GetLead(ctx context.Context, id uuid.UUID) (*Lead, error)
	ListLeads(ctx context.Context, filter ListFilter) ([]*Lead, error)
	// UpdateStatus applies the transition only if the lead still holds the
	// expected current status. ErrNotFound means the guard did not match.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) error
	UpdateAssignee(ctx context.Context, id, adminID uuid.UUID) error
	UpdateFollowUp(ctx context.Context, id uuid.UUID, date time.Time, notes string) error
	DeleteLead(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo    Repository
	catalog catalog.Resolver
	events  event.Emitter
}

func NewService(repo Repository, resolver catalog.Resolver, events event.Emitter) *Service {
	return &Service{repo: repo, catalog: resolver, events: events}
}

type SubmitParams struct {
	BuyerName         string
	BuyerEmail        string
	BuyerPhone        string
	CompanyName       string
	City              string
	BusinessAccountID *uuid.UUID
	ProductID         string
	QuantityRequired  int
	BusinessType      string
	InquiryType       string
	Priority          Priority
	Products          []ProductLine
	Notes             string
}

type ListFilter struct {
	Status     *Status
	AssignedTo *uuid.UUID
	AccountID  *uuid.UUID
}

// Submit captures a buyer inquiry. A failed product lookup is reported but
// does not block capture: losing buyer intent over a catalog outage is
// worse than a degraded lead.
func (s *Service) Submit(ctx context.Context, params SubmitParams) (*Lead, error) {
	var missing []string

	if params.BuyerName == "" {
		missing = append(missing, "buyerName")
	}

	if params.BuyerEmail == "" {
		missing = append(missing, "buyerEmail")
	}

	if params.BuyerPhone == "" {
		missing = append(missing, "buyerPhone")
	}

	if params.QuantityRequired <= 0 {
		missing = append(missing, "quantityRequired")
	}

	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	if params.Priority == "" {
		params.Priority = PriorityMedium
	}

	if s.catalog != nil && params.ProductID != "" {
		if _, err := s.catalog.Resolve(ctx, params.ProductID); err != nil {
			slog.Warn("product lookup failed, capturing lead in degraded form",
				"product_id", params.ProductID, "error", err)
		}
	}

	l := &Lead{
		BuyerName:         params.BuyerName,
		BuyerEmail:        params.BuyerEmail,
		BuyerPhone:        params.BuyerPhone,
		CompanyName:       params.CompanyName,
		City:              params.City,
		BusinessAccountID: params.BusinessAccountID,
		ProductID:         params.ProductID,
		QuantityRequired:  params.QuantityRequired,
		BusinessType:      params.BusinessType,
		InquiryType:       params.InquiryType,
		Priority:          params.Priority,
		Status:            StatusNew,
		Products:          params.Products,
		Notes:             params.Notes,
	}
	if err := s.repo.CreateLead(ctx, l); err != nil {
		return nil, err
	}

	s.events.Emit(ctx, event.Change{Entity: "lead", ID: l.ID, State: string(l.Status)})

	return l, nil
}

// Transition moves a lead to a new status. Any non-terminal status may move
// to any valid status; terminal statuses are final.
func (s *Service) Transition(ctx context.Context, id uuid.UUID, target Status, actorID uuid.UUID) (*Lead, error) {
	if !target.Valid() {
		return nil, &InvalidTransitionError{To: target}
	}

	l, err := s.repo.GetLead(ctx, id)
	if err != nil {
		return nil, err
	}

	if l.Status.Terminal() {
		return nil, &InvalidTransitionError{From: l.Status, To: target}
	}

	if err := s.repo.UpdateStatus(ctx, id, l.Status, target); err != nil {
		// Guard mismatch: someone else moved the lead first.
		if errors.Is(err, ErrNotFound) {
			return nil, &InvalidTransitionError{From: l.Status, To: target}
		}

		return nil, err
	}

	l.Status = target

	s.events.Emit(ctx, event.Change{Entity: "lead", ID: l.ID, State: string(target)})

	slog.Info("lead transitioned", "lead_id", id, "status", target, "actor_id", actorID)

	return l, nil
}

// Assign sets the responsible admin. Idempotent, no effect on status.
func (s *Service) Assign(ctx context.Context, id, adminID uuid.UUID) error {
	return s.repo.UpdateAssignee(ctx, id, adminID)
}

func (s *Service) ScheduleFollowUp(ctx context.Context, id uuid.UUID, date time.Time, notes string) error {
	return s.repo.UpdateFollowUp(ctx, id, date, notes)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Lead, error) {
	return s.repo.GetLead(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Lead, error) {
	return s.repo.ListLeads(ctx, filter)
}

// Delete is an administrative override; leads are never removed in the
// normal flow.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteLead(ctx, id)
}
