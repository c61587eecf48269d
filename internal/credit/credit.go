package credit

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Receipt records a single committed credit reservation. Holding the receipt
// is what entitles the caller to release the amount later.
type Receipt struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	Amount     int64 // cents
	Released   bool
	CreatedAt  time.Time
	ReleasedAt *time.Time
}

// LimitExceededError reports by how much a reservation would overdraw the
// account's approved limit. The reservation is not applied, even partially.
type LimitExceededError struct {
	AccountID uuid.UUID
	Shortfall int64
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("credit limit exceeded for account %s: short by %d", e.AccountID, e.Shortfall)
}

var ErrNotFound = errors.New("credit receipt not found")

// Check validates that reserving amount on top of used stays within limit.
// Stores run this under a per-account row lock so concurrent reservations
// cannot jointly overdraw.
func Check(accountID uuid.UUID, limit, used, amount int64) error {
	if used+amount > limit {
		return &LimitExceededError{AccountID: accountID, Shortfall: used + amount - limit}
	}

	return nil
}
