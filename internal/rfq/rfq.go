package rfq

import (
	"github.com/google/uuid"
)

// DraftItem is one product line in a buyer's pending RFQ cart. MOQ is
// captured at add time so submission can re-validate without another
// catalog round-trip.
type DraftItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	MOQ       int    `json:"moq"`
}

// BuyerContact identifies the submitting buyer. Name, email, phone and city
// are all required at submission.
type BuyerContact struct {
	Name              string
	Email             string
	Phone             string
	City              string
	CompanyName       string
	BusinessType      string
	BusinessAccountID *uuid.UUID
}
