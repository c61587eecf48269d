package order

import (
	"time"

	"github.com/google/uuid"

	"github.com/soletrade/soletrade/internal/order"
)

type orderResponse struct {
	ID                  uuid.UUID           `json:"id"`
	BusinessAccountID   uuid.UUID           `json:"business_account_id"`
	QuoteID             *uuid.UUID          `json:"quote_id,omitempty"`
	Lines               []order.Line        `json:"lines"`
	TotalAmount         int64               `json:"total_amount"`
	OrderStatus         order.Status        `json:"order_status"`
	PaymentType         order.PaymentType   `json:"payment_type"`
	PaymentStatus       order.PaymentStatus `json:"payment_status"`
	IsB2BOrder          bool                `json:"is_b2b_order"`
	PurchaseOrderNumber string              `json:"purchase_order_number,omitempty"`
	RequiresApproval    bool                `json:"requires_approval"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           *time.Time          `json:"updated_at,omitempty"`
}

func toResponse(o *order.Order) orderResponse {
	return orderResponse{
		ID:                  o.ID,
		BusinessAccountID:   o.BusinessAccountID,
		QuoteID:             o.QuoteID,
		Lines:               o.Lines,
		TotalAmount:         o.TotalAmount,
		OrderStatus:         o.OrderStatus,
		PaymentType:         o.PaymentType,
		PaymentStatus:       o.PaymentStatus,
		IsB2BOrder:          o.IsB2BOrder,
		PurchaseOrderNumber: o.PurchaseOrderNumber,
		RequiresApproval:    o.RequiresApproval,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

func toResponseList(orders []*order.Order) []orderResponse {
	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toResponse(o)
	}

	return resp
}
