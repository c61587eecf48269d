package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/soletrade/soletrade/internal/event"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	CreateAccount(ctx context.Context, a *BusinessAccount) error
	GetAccount(ctx context.Context, id uuid.UUID) (*BusinessAccount, error)
	ListAccounts(ctx context.Context, filter ListFilter) ([]*BusinessAccount, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	UpdateCreditLimit(ctx context.Context, id uuid.UUID, limit int64) error
}

type Service struct {
	repo   Repository
	events event.Emitter
}

func NewService(repo Repository, events event.Emitter) *Service {
	return &Service{repo: repo, events: events}
}

type CreateParams struct {
	CompanyName  string
	BusinessType BusinessType
	CreditLimit  int64
	PaymentTerms PaymentTerms
	ContactName  string
	ContactEmail string
	ContactPhone string
}

type ListFilter struct {
	Status *Status
}

// Create registers a buyer application. New accounts start pending until an
// admin activates them.
func (s *Service) Create(ctx context.Context, params CreateParams) (*BusinessAccount, error) {
	var missing []string

	if params.CompanyName == "" {
		missing = append(missing, "companyName")
	}

	if !params.BusinessType.Valid() {
		missing = append(missing, "businessType")
	}

	if !params.PaymentTerms.Valid() {
		missing = append(missing, "paymentTerms")
	}

	if params.CreditLimit < 0 {
		missing = append(missing, "creditLimit")
	}

	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	a := &BusinessAccount{
		CompanyName:  params.CompanyName,
		BusinessType: params.BusinessType,
		Status:       StatusPending,
		CreditLimit:  params.CreditLimit,
		PaymentTerms: params.PaymentTerms,
		ContactName:  params.ContactName,
		ContactEmail: params.ContactEmail,
		ContactPhone: params.ContactPhone,
	}
	if err := s.repo.CreateAccount(ctx, a); err != nil {
		return nil, err
	}

	s.events.Emit(ctx, event.Change{Entity: "account", ID: a.ID, State: string(a.Status)})

	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*BusinessAccount, error) {
	return s.repo.GetAccount(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*BusinessAccount, error) {
	return s.repo.ListAccounts(ctx, filter)
}

func (s *Service) Activate(ctx context.Context, id uuid.UUID) error {
	return s.setStatus(ctx, id, StatusActive)
}

func (s *Service) Suspend(ctx context.Context, id uuid.UUID) error {
	return s.setStatus(ctx, id, StatusSuspended)
}

func (s *Service) setStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.events.Emit(ctx, event.Change{Entity: "account", ID: id, State: string(status)})

	return nil
}

// SetCreditLimit adjusts the approved limit. Lowering it below the amount
// already consumed would break the ledger invariant, so that is refused.
func (s *Service) SetCreditLimit(ctx context.Context, id uuid.UUID, limit int64) error {
	if limit < 0 {
		return &ValidationError{Fields: []string{"creditLimit"}}
	}

	a, err := s.repo.GetAccount(ctx, id)
	if err != nil {
		return err
	}

	if limit < a.CreditUsed {
		return &ValidationError{Fields: []string{fmt.Sprintf("creditLimit below creditUsed (%d)", a.CreditUsed)}}
	}

	return s.repo.UpdateCreditLimit(ctx, id, limit)
}
