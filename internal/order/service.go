package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/soletrade/soletrade/internal/account"
	"github.com/soletrade/soletrade/internal/credit"
	"github.com/soletrade/soletrade/internal/event"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=order
type Repository interface {
	CreateOrder(ctx context.Context, o *Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (*Order, error)
	ListOrders(ctx context.Context, filter ListFilter) ([]*Order, error)
	// UpdateStatus applies the transition only if the order still holds the
	// expected current status. ErrNotFound means the guard did not match.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status PaymentStatus) error
}

// AccountDirectory is the slice of the account service checkout needs.
type AccountDirectory interface {
	Get(ctx context.Context, id uuid.UUID) (*account.BusinessAccount, error)
}

type Service struct {
	repo     Repository
	accounts AccountDirectory
	credits  *credit.Service
	events   event.Emitter
}

func NewService(repo Repository, accounts AccountDirectory, credits *credit.Service, events event.Emitter) *Service {
	return &Service{repo: repo, accounts: accounts, credits: credits, events: events}
}

type CreateParams struct {
	BusinessAccountID   uuid.UUID
	Lines               []Line
	TotalAmount         int64
	PaymentType         PaymentType
	PurchaseOrderNumber string
	RequiresApproval    bool
}

type ListFilter struct {
	AccountID *uuid.UUID
	Status    *Status
}

// Create handles the direct checkout path. Credit orders reserve ledger
// capacity first; if persisting the order then fails, the reservation is
// released again so no capacity leaks.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Order, error) {
	if len(params.Lines) == 0 {
		return nil, &ValidationError{Reason: "order requires at least one line"}
	}

	if !params.PaymentType.Valid() {
		return nil, &ValidationError{Reason: fmt.Sprintf("unknown payment type %q", params.PaymentType)}
	}

	total := Total(params.Lines)
	if params.TotalAmount != 0 && params.TotalAmount != total {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("totalAmount %d does not match line extensions %d", params.TotalAmount, total),
		}
	}

	acc, err := s.accounts.Get(ctx, params.BusinessAccountID)
	if err != nil {
		return nil, err
	}

	if acc.Status != account.StatusActive {
		return nil, &ValidationError{Reason: fmt.Sprintf("account %s is %s, not active", acc.ID, acc.Status)}
	}

	o := &Order{
		BusinessAccountID:   params.BusinessAccountID,
		Lines:               params.Lines,
		TotalAmount:         total,
		OrderStatus:         StatusPending,
		PaymentType:         params.PaymentType,
		PaymentStatus:       PaymentPending,
		IsB2BOrder:          true,
		PurchaseOrderNumber: params.PurchaseOrderNumber,
		RequiresApproval:    params.RequiresApproval,
	}

	if params.PaymentType == PaymentCredit {
		receipt, err := s.credits.Reserve(ctx, params.BusinessAccountID, total)
		if err != nil {
			return nil, err
		}

		o.CreditReceiptID = &receipt.ID
	}

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		if o.CreditReceiptID != nil {
			if relErr := s.credits.Release(ctx, *o.CreditReceiptID); relErr != nil {
				return nil, errors.Join(err, fmt.Errorf("releasing reservation: %w", relErr))
			}
		}

		return nil, err
	}

	s.events.Emit(ctx, event.Change{Entity: "order", ID: o.ID, State: string(o.OrderStatus)})

	return o, nil
}

// Transition moves an order through fulfillment. Use Cancel for
// cancellation so credit reversal is not skipped.
func (s *Service) Transition(ctx context.Context, id uuid.UUID, target Status) (*Order, error) {
	if target == StatusCancelled {
		return s.Cancel(ctx, id)
	}

	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(o.OrderStatus, target) {
		return nil, &InvalidTransitionError{From: o.OrderStatus, To: target}
	}

	if err := s.repo.UpdateStatus(ctx, id, o.OrderStatus, target); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &InvalidTransitionError{From: o.OrderStatus, To: target}
		}

		return nil, err
	}

	o.OrderStatus = target

	s.events.Emit(ctx, event.Change{Entity: "order", ID: id, State: string(target)})

	return o, nil
}

// Cancel cancels a non-terminal order and returns any reserved credit to
// the account.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*Order, error) {
	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(o.OrderStatus, StatusCancelled) {
		return nil, &InvalidTransitionError{From: o.OrderStatus, To: StatusCancelled}
	}

	if err := s.repo.UpdateStatus(ctx, id, o.OrderStatus, StatusCancelled); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &InvalidTransitionError{From: o.OrderStatus, To: StatusCancelled}
		}

		return nil, err
	}

	o.OrderStatus = StatusCancelled

	if o.CreditReceiptID != nil {
		// Release is idempotent, so a retried cancel cannot double-refund.
		if err := s.credits.Release(ctx, *o.CreditReceiptID); err != nil {
			return nil, fmt.Errorf("releasing credit for order %s: %w", id, err)
		}
	}

	s.events.Emit(ctx, event.Change{Entity: "order", ID: id, State: string(StatusCancelled)})

	return o, nil
}

// MarkPaid records settlement of the order.
func (s *Service) MarkPaid(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.UpdatePaymentStatus(ctx, id, PaymentPaid); err != nil {
		return err
	}

	s.events.Emit(ctx, event.Change{Entity: "order", ID: id, State: "paid"})

	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Order, error) {
	return s.repo.ListOrders(ctx, filter)
}
