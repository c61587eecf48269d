package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status represents the fulfillment state of an order.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// Fulfillment moves strictly forward; cancellation is allowed from any
// non-terminal state.
var transitions = map[Status]map[Status]struct{}{
	StatusPending:    {StatusConfirmed: {}, StatusCancelled: {}},
	StatusConfirmed:  {StatusProcessing: {}, StatusCancelled: {}},
	StatusProcessing: {StatusShipped: {}, StatusCancelled: {}},
	StatusShipped:    {StatusDelivered: {}, StatusCancelled: {}},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

// CanTransition returns whether an order may move from one status to another.
func CanTransition(from, to Status) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}

	_, ok = allowed[to]

	return ok
}

func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// PaymentType is how the order is settled.
type PaymentType string

const (
	PaymentCOD    PaymentType = "cod"
	PaymentCredit PaymentType = "credit" // invoice against the account's credit line
	PaymentOnline PaymentType = "online"
)

func (t PaymentType) Valid() bool {
	switch t {
	case PaymentCOD, PaymentCredit, PaymentOnline:
		return true
	}

	return false
}

// PaymentStatus tracks settlement.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Line is one purchased line item.
type Line struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"` // unit price in cents
	Size      string `json:"size,omitempty"`
}

// Order is a confirmed purchase, created from a quote conversion or direct
// checkout.
type Order struct {
	ID                  uuid.UUID
	BusinessAccountID   uuid.UUID
	QuoteID             *uuid.UUID // weak back-reference to the originating quote
	CreditReceiptID     *uuid.UUID // set for credit orders; released on cancellation
	Lines               []Line
	TotalAmount         int64 // cents
	OrderStatus         Status
	PaymentType         PaymentType
	PaymentStatus       PaymentStatus
	IsB2BOrder          bool
	PurchaseOrderNumber string
	RequiresApproval    bool
	CreatedAt           time.Time
	UpdatedAt           *time.Time
}

// Total is the sum of line extensions.
func Total(lines []Line) int64 {
	var sum int64
	for _, l := range lines {
		sum += int64(l.Quantity) * l.Price
	}

	return sum
}

var ErrNotFound = errors.New("order not found")

// ValidationError reports malformed order input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid order: " + e.Reason
}

// InvalidTransitionError is an illegal fulfillment edge.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order transition: %s -> %s", e.From, e.To)
}
