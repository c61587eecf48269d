package quote

import (
	"time"

	"github.com/google/uuid"

	"github.com/soletrade/soletrade/internal/order"
	"github.com/soletrade/soletrade/internal/quote"
)

type quoteResponse struct {
	ID           uuid.UUID    `json:"id"`
	LeadID       uuid.UUID    `json:"lead_id"`
	ProductID    string       `json:"product_id,omitempty"`
	Items        []quote.Item `json:"items"`
	TotalAmount  int64        `json:"total_amount"`
	Status       quote.Status `json:"status"`
	ValidUntil   *time.Time   `json:"valid_until,omitempty"`
	Terms        string       `json:"terms,omitempty"`
	Notes        string       `json:"notes,omitempty"`
	RejectReason string       `json:"reject_reason,omitempty"`
	OrderID      *uuid.UUID   `json:"order_id,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	AcceptedAt   *time.Time   `json:"accepted_at,omitempty"`
	RejectedAt   *time.Time   `json:"rejected_at,omitempty"`
}

func toResponse(q *quote.Quote) quoteResponse {
	return quoteResponse{
		ID:           q.ID,
		LeadID:       q.InquiryID,
		ProductID:    q.ProductID,
		Items:        q.Items,
		TotalAmount:  q.TotalAmount,
		Status:       q.Status,
		ValidUntil:   q.ValidUntil,
		Terms:        q.Terms,
		Notes:        q.Notes,
		RejectReason: q.RejectReason,
		OrderID:      q.OrderID,
		CreatedAt:    q.CreatedAt,
		AcceptedAt:   q.AcceptedAt,
		RejectedAt:   q.RejectedAt,
	}
}

func toResponseList(quotes []*quote.Quote) []quoteResponse {
	resp := make([]quoteResponse, len(quotes))
	for i, q := range quotes {
		resp[i] = toResponse(q)
	}

	return resp
}

type orderResponse struct {
	ID                  uuid.UUID           `json:"id"`
	BusinessAccountID   uuid.UUID           `json:"business_account_id"`
	QuoteID             *uuid.UUID          `json:"quote_id,omitempty"`
	Lines               []order.Line        `json:"lines"`
	TotalAmount         int64               `json:"total_amount"`
	OrderStatus         order.Status        `json:"order_status"`
	PaymentType         order.PaymentType   `json:"payment_type"`
	PaymentStatus       order.PaymentStatus `json:"payment_status"`
	PurchaseOrderNumber string              `json:"purchase_order_number,omitempty"`
	RequiresApproval    bool                `json:"requires_approval"`
	CreatedAt           time.Time           `json:"created_at"`
}

func toOrderResponse(o *order.Order) orderResponse {
	return orderResponse{
		ID:                  o.ID,
		BusinessAccountID:   o.BusinessAccountID,
		QuoteID:             o.QuoteID,
		Lines:               o.Lines,
		TotalAmount:         o.TotalAmount,
		OrderStatus:         o.OrderStatus,
		PaymentType:         o.PaymentType,
		PaymentStatus:       o.PaymentStatus,
		PurchaseOrderNumber: o.PurchaseOrderNumber,
		RequiresApproval:    o.RequiresApproval,
		CreatedAt:           o.CreatedAt,
	}
}
