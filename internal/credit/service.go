package credit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/soletrade/soletrade/internal/event"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=credit
type Repository interface {
	// Reserve atomically checks the account limit and increments usage,
	// serialized per account.
	Reserve(ctx context.Context, accountID uuid.UUID, amount int64) (*Receipt, error)
	// Release reverses a reservation and reports the amount freed. An
	// already-released receipt frees 0.
	Release(ctx context.Context, receiptID uuid.UUID) (int64, error)
	GetReceipt(ctx context.Context, id uuid.UUID) (*Receipt, error)
}

type Service struct {
	repo   Repository
	events event.Emitter
}

func NewService(repo Repository, events event.Emitter) *Service {
	return &Service{repo: repo, events: events}
}

// Reserve consumes credit capacity for an invoice order. Either the whole
// amount fits or nothing is reserved.
func (s *Service) Reserve(ctx context.Context, accountID uuid.UUID, amount int64) (*Receipt, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("reserve amount must be positive, got %d", amount)
	}

	r, err := s.repo.Reserve(ctx, accountID, amount)
	if err != nil {
		return nil, err
	}

	s.events.Emit(ctx, event.Change{Entity: "credit_reservation", ID: r.ID, State: "reserved"})

	return r, nil
}

// Release returns reserved capacity to the account. Releasing the same
// receipt twice is a no-op so callers can retry safely.
func (s *Service) Release(ctx context.Context, receiptID uuid.UUID) error {
	freed, err := s.repo.Release(ctx, receiptID)
	if err != nil {
		return err
	}

	if freed > 0 {
		s.events.Emit(ctx, event.Change{Entity: "credit_reservation", ID: receiptID, State: "released"})
	}

	return nil
}

func (s *Service) GetReceipt(ctx context.Context, id uuid.UUID) (*Receipt, error) {
	return s.repo.GetReceipt(ctx, id)
}
