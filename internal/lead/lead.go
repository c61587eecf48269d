package lead

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of an inquiry. Admin workflow is
// permissive: any non-terminal status may move to any other valid status.
// Terminal states are final.
type Status string

const (
	StatusNew         Status = "new"
	StatusContacted   Status = "contacted"
	StatusInterested  Status = "interested"
	StatusQuoted      Status = "quoted"
	StatusNegotiating Status = "negotiating"
	StatusClosed      Status = "closed"
	StatusRejected    Status = "rejected"
	StatusLost        Status = "lost"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusInterested, StatusQuoted,
		StatusNegotiating, StatusClosed, StatusRejected, StatusLost:
		return true
	}

	return false
}

// Terminal reports whether the status is final. Terminal leads accept no
// further transitions.
func (s Status) Terminal() bool {
	return s == StatusClosed || s == StatusRejected || s == StatusLost
}

// Open is the dashboard classification: anything not yet finished.
func (s Status) Open() bool {
	return !s.Terminal()
}

// Contacted reports whether the lead counts toward the contacted rollup.
func (s Status) Contacted() bool {
	switch s {
	case StatusContacted, StatusInterested, StatusQuoted, StatusNegotiating, StatusClosed:
		return true
	}

	return false
}

// Priority of an inquiry as chosen by the buyer or triaging admin.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ProductLine is one product/quantity pair on a composite (bulk RFQ) lead.
type ProductLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Lead represents a buyer inquiry.
type Lead struct {
	ID                uuid.UUID
	BuyerName         string
	BuyerEmail        string
	BuyerPhone        string
	CompanyName       string
	City              string
	BusinessAccountID *uuid.UUID // weak reference, lookup only
	ProductID         string
	QuantityRequired  int
	BusinessType      string
	InquiryType       string
	Priority          Priority
	Status            Status
	Products          []ProductLine // extra lines beyond ProductID for bulk RFQs
	Notes             string
	FollowUpDate      *time.Time
	FollowUpNotes     string
	AssignedTo        *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// Overdue is derived, never stored: the follow-up day has passed and the
// deal is not closed.
func (l *Lead) Overdue(today time.Time) bool {
	if l.FollowUpDate == nil || l.Status == StatusClosed {
		return false
	}

	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}

	return day(*l.FollowUpDate).Before(day(today))
}

var ErrNotFound = errors.New("lead not found")

// ValidationError reports every missing or malformed field, not just the
// first one found.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid lead: %s", strings.Join(e.Fields, ", "))
}

// InvalidTransitionError is returned for illegal state-machine edges,
// including any attempt to leave a terminal status.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid lead transition: %s -> %s", e.From, e.To)
}
