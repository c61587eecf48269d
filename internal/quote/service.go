package quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/soletrade/soletrade/internal/catalog"
	"github.com/soletrade/soletrade/internal/event"
	"github.com/soletrade/soletrade/internal/lead"
	"github.com/soletrade/soletrade/internal/order"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=quote
type Repository interface {
	// CreateQuote inserts the quote and moves the owning lead to quoted in
	// the same transaction, guarded by the lead's expected status.
	// ErrLeadMoved means the lead changed state under us.
	CreateQuote(ctx context.Context, q *Quote, leadFrom lead.Status) error
	GetQuote(ctx context.Context, id uuid.UUID) (*Quote, error)
	ListQuotes(ctx context.Context, filter ListFilter) ([]*Quote, error)
	// Resolve applies a terminal status guarded by status = pending.
	// ErrNotFound means the guard did not match.
	Resolve(ctx context.Context, id uuid.UUID, to Status, reason string) error
	BeginConvert(ctx context.Context, quoteID uuid.UUID) (ConvertTx, error)
}

// ConvertTx scopes the quote-to-order conversion to a single atomic unit:
// locked quote read, order insert, one-shot link, optional credit debit.
type ConvertTx interface {
	Quote(ctx context.Context) (*Quote, error)
	CreateOrder(ctx context.Context, o *order.Order) error
	// LinkOrder fails with ErrAlreadyConverted if the quote is already
	// linked to an order.
	LinkOrder(ctx context.Context, orderID uuid.UUID) error
	ReserveCredit(ctx context.Context, accountID uuid.UUID, amount int64) (uuid.UUID, error)
	Commit() error
	Rollback() error
}

// LeadDirectory is the slice of the lead service the quote flow needs.
type LeadDirectory interface {
	Get(ctx context.Context, id uuid.UUID) (*lead.Lead, error)
}

type Service struct {
	repo    Repository
	leads   LeadDirectory
	catalog catalog.Resolver
	events  event.Emitter
}

func NewService(repo Repository, leads LeadDirectory, resolver catalog.Resolver, events event.Emitter) *Service {
	return &Service{repo: repo, leads: leads, catalog: resolver, events: events}
}

type RequestParams struct {
	LeadID      uuid.UUID
	Items       []Item
	TotalAmount int64
	ValidUntil  *time.Time
	Terms       string
	Notes       string
}

type ListFilter struct {
	Status    *Status
	InquiryID *uuid.UUID
}

// Request creates a quote for a lead that is still new or contacted, and
// moves the lead to quoted. Items missing a price or name are resolved
// against the catalog; unlike lead capture, a failed lookup here is fatal —
// a quote cannot carry unresolved pricing.
func (s *Service) Request(ctx context.Context, params RequestParams) (*Quote, error) {
	if len(params.Items) == 0 {
		return nil, &ValidationError{Reason: "quote requires at least one item"}
	}

	items := make([]Item, len(params.Items))
	copy(items, params.Items)

	for i := range items {
		if items[i].Quantity <= 0 {
			return nil, &ValidationError{Reason: fmt.Sprintf("item %d: quantity must be positive", i)}
		}

		if items[i].Price > 0 && items[i].ProductName != "" {
			continue
		}

		p, err := s.catalog.Resolve(ctx, items[i].ProductID)
		if err != nil {
			return nil, fmt.Errorf("resolving pricing for %s: %w", items[i].ProductID, err)
		}

		if items[i].Price <= 0 {
			items[i].Price = p.Price
		}

		if items[i].ProductName == "" {
			items[i].ProductName = p.Name
		}
	}

	total := Total(items)
	if params.TotalAmount != 0 && params.TotalAmount != total {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("totalAmount %d does not match line extensions %d", params.TotalAmount, total),
		}
	}

	l, err := s.leads.Get(ctx, params.LeadID)
	if err != nil {
		return nil, err
	}

	if !leadQuotable(l.Status) {
		return nil, &PreconditionError{
			Reason: fmt.Sprintf("lead %s is %s; quotes can only be requested while new or contacted", l.ID, l.Status),
		}
	}

	q := &Quote{
		InquiryID:   l.ID,
		ProductID:   l.ProductID,
		Items:       items,
		TotalAmount: total,
		Status:      StatusPending,
		ValidUntil:  params.ValidUntil,
		Terms:       params.Terms,
		Notes:       params.Notes,
	}
	if err := s.repo.CreateQuote(ctx, q, l.Status); err != nil {
		if errors.Is(err, ErrLeadMoved) {
			return nil, &PreconditionError{
				Reason: fmt.Sprintf("lead %s changed state during quote creation", l.ID),
			}
		}

		return nil, err
	}

	s.events.Emit(ctx, event.Change{Entity: "quote", ID: q.ID, State: string(q.Status)})
	s.events.Emit(ctx, event.Change{Entity: "lead", ID: l.ID, State: string(lead.StatusQuoted)})

	return q, nil
}

// Accept moves a pending quote to accepted.
func (s *Service) Accept(ctx context.Context, id uuid.UUID) (*Quote, error) {
	return s.resolve(ctx, id, StatusAccepted, "")
}

// Reject moves a pending quote to rejected. A reason is mandatory and
// retained.
func (s *Service) Reject(ctx context.Context, id uuid.UUID, reason string) (*Quote, error) {
	if reason == "" {
		return nil, &ValidationError{Reason: "rejection requires a reason"}
	}

	return s.resolve(ctx, id, StatusRejected, reason)
}

// Expire marks a pending quote whose validity window has lapsed.
func (s *Service) Expire(ctx context.Context, id uuid.UUID) (*Quote, error) {
	return s.resolve(ctx, id, StatusExpired, "")
}

func (s *Service) resolve(ctx context.Context, id uuid.UUID, to Status, reason string) (*Quote, error) {
	q, err := s.repo.GetQuote(ctx, id)
	if err != nil {
		return nil, err
	}

	if q.Status != StatusPending {
		return nil, &InvalidTransitionError{From: q.Status, To: to}
	}

	if err := s.repo.Resolve(ctx, id, to, reason); err != nil {
		if errors.Is(err, ErrNotFound) {
			// Lost the race against another resolver.
			return nil, &InvalidTransitionError{From: q.Status, To: to}
		}

		return nil, err
	}

	s.events.Emit(ctx, event.Change{Entity: "quote", ID: id, State: string(to)})

	return s.repo.GetQuote(ctx, id)
}

type OrderOptions struct {
	BusinessAccountID   uuid.UUID
	PaymentType         order.PaymentType
	PurchaseOrderNumber string
	RequiresApproval    bool
}

// Convert turns an accepted quote into an order, exactly once. The order is
// billed from the quote's locked items so the buyer pays the price they
// accepted. Credit-type orders debit the account ledger inside the same
// transaction; if the limit check fails nothing is created.
func (s *Service) Convert(ctx context.Context, quoteID uuid.UUID, opts OrderOptions) (*order.Order, error) {
	tx, err := s.repo.BeginConvert(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	q, err := tx.Quote(ctx)
	if err != nil {
		return nil, err
	}

	if q.Status != StatusAccepted {
		return nil, &PreconditionError{
			Reason: fmt.Sprintf("quote %s is %s; only accepted quotes convert", q.ID, q.Status),
		}
	}

	if q.OrderID != nil {
		return nil, ErrAlreadyConverted
	}

	lines := make([]order.Line, len(q.Items))
	for i, it := range q.Items {
		lines[i] = order.Line{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		}
	}

	o := &order.Order{
		BusinessAccountID:   opts.BusinessAccountID,
		QuoteID:             &q.ID,
		Lines:               lines,
		TotalAmount:         q.TotalAmount,
		OrderStatus:         order.StatusPending,
		PaymentType:         opts.PaymentType,
		PaymentStatus:       order.PaymentPending,
		IsB2BOrder:          true,
		PurchaseOrderNumber: opts.PurchaseOrderNumber,
		RequiresApproval:    opts.RequiresApproval,
	}

	if opts.PaymentType == order.PaymentCredit {
		receiptID, err := tx.ReserveCredit(ctx, opts.BusinessAccountID, q.TotalAmount)
		if err != nil {
			return nil, err
		}

		o.CreditReceiptID = &receiptID
	}

	if err := tx.CreateOrder(ctx, o); err != nil {
		return nil, err
	}

	if err := tx.LinkOrder(ctx, o.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing conversion: %w", err)
	}

	s.events.Emit(ctx, event.Change{Entity: "order", ID: o.ID, State: string(o.OrderStatus)})
	s.events.Emit(ctx, event.Change{Entity: "quote", ID: q.ID, State: "converted"})

	return o, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Quote, error) {
	return s.repo.GetQuote(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Quote, error) {
	return s.repo.ListQuotes(ctx, filter)
}
