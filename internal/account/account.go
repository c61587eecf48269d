package account

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BusinessType classifies the buyer's trade.
type BusinessType string

const (
	TypeRetailer         BusinessType = "retailer"
	TypeWholesaler       BusinessType = "wholesaler"
	TypeDistributor      BusinessType = "distributor"
	TypeManufacturer     BusinessType = "manufacturer"
	TypeBusinessCustomer BusinessType = "business_customer"
	TypeOther            BusinessType = "other"
)

func (t BusinessType) Valid() bool {
	switch t {
	case TypeRetailer, TypeWholesaler, TypeDistributor, TypeManufacturer, TypeBusinessCustomer, TypeOther:
		return true
	}

	return false
}

// Status represents the lifecycle state of a business account.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

// PaymentTerms is the negotiated settlement window for invoice orders.
type PaymentTerms string

const (
	TermsNet15   PaymentTerms = "net15"
	TermsNet30   PaymentTerms = "net30"
	TermsNet45   PaymentTerms = "net45"
	TermsNet60   PaymentTerms = "net60"
	TermsCOD     PaymentTerms = "cod"
	TermsPrepaid PaymentTerms = "prepaid"
)

func (t PaymentTerms) Valid() bool {
	switch t {
	case TermsNet15, TermsNet30, TermsNet45, TermsNet60, TermsCOD, TermsPrepaid:
		return true
	}

	return false
}

// BusinessAccount represents a wholesale buyer.
type BusinessAccount struct {
	ID           uuid.UUID
	CompanyName  string
	BusinessType BusinessType
	Status       Status
	CreditLimit  int64 // cents
	CreditUsed   int64 // cents
	PaymentTerms PaymentTerms
	ContactName  string
	ContactEmail string
	ContactPhone string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// AvailableCredit is the headroom left for invoice orders. It is never
// negative after a committed ledger operation.
func (a *BusinessAccount) AvailableCredit() int64 {
	return a.CreditLimit - a.CreditUsed
}

var ErrNotFound = errors.New("account not found")

// ValidationError reports every missing or malformed field at once.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid account: %s", strings.Join(e.Fields, ", "))
}
