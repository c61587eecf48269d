package quote

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/soletrade/soletrade/internal/lead"
)

// Status represents the lifecycle state of a quote. accepted, rejected and
// expired are terminal; an accepted quote may additionally be converted into
// an order exactly once.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

// Item is one priced line. Prices are locked at quote creation; conversion
// bills these values, never live catalog pricing.
type Item struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"` // unit price in cents
}

// Quote is a priced offer generated in response to a lead.
type Quote struct {
	ID           uuid.UUID
	InquiryID    uuid.UUID
	ProductID    string
	Items        []Item
	TotalAmount  int64 // cents; always equals the sum of line extensions
	Status       Status
	ValidUntil   *time.Time
	Terms        string
	Notes        string
	RejectReason string
	OrderID      *uuid.UUID // set once on conversion
	CreatedAt    time.Time
	AcceptedAt   *time.Time
	RejectedAt   *time.Time
}

// Total is the sum of line extensions.
func Total(items []Item) int64 {
	var sum int64
	for _, it := range items {
		sum += int64(it.Quantity) * it.Price
	}

	return sum
}

var (
	ErrNotFound         = errors.New("quote not found")
	ErrAlreadyConverted = errors.New("quote already converted to an order")
	// ErrLeadMoved is returned by stores when the owning lead left the
	// quotable state between the service's read and the guarded write.
	ErrLeadMoved = errors.New("lead status changed during quote creation")
)

// ValidationError reports malformed quote input, such as a total that does
// not match the line extensions or a rejection without a reason.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid quote: " + e.Reason
}

// PreconditionError means the input was fine but the entities are in the
// wrong state, for example requesting a quote on a lead that is already
// past the contacted stage.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return "precondition failed: " + e.Reason
}

// InvalidTransitionError is an illegal quote state-machine edge.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid quote transition: %s -> %s", e.From, e.To)
}

func leadQuotable(s lead.Status) bool {
	return s == lead.StatusNew || s == lead.StatusContacted
}
