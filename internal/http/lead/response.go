package lead

import (
	"time"

	"github.com/google/uuid"

	"github.com/soletrade/soletrade/internal/lead"
)

type leadResponse struct {
	ID                uuid.UUID          `json:"id"`
	BuyerName         string             `json:"buyer_name"`
	BuyerEmail        string             `json:"buyer_email"`
	BuyerPhone        string             `json:"buyer_phone"`
	CompanyName       string             `json:"company_name,omitempty"`
	City              string             `json:"city,omitempty"`
	BusinessAccountID *uuid.UUID         `json:"business_account_id,omitempty"`
	ProductID         string             `json:"product_id,omitempty"`
	QuantityRequired  int                `json:"quantity_required"`
	BusinessType      string             `json:"business_type,omitempty"`
	InquiryType       string             `json:"inquiry_type,omitempty"`
	Priority          lead.Priority      `json:"priority"`
	Status            lead.Status        `json:"status"`
	Products          []lead.ProductLine `json:"products,omitempty"`
	Notes             string             `json:"notes,omitempty"`
	FollowUpDate      *time.Time         `json:"follow_up_date,omitempty"`
	FollowUpNotes     string             `json:"follow_up_notes,omitempty"`
	AssignedTo        *uuid.UUID         `json:"assigned_to,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         *time.Time         `json:"updated_at,omitempty"`
}

func toResponse(l *lead.Lead) leadResponse {
	return leadResponse{
		ID:                l.ID,
		BuyerName:         l.BuyerName,
		BuyerEmail:        l.BuyerEmail,
		BuyerPhone:        l.BuyerPhone,
		CompanyName:       l.CompanyName,
		City:              l.City,
		BusinessAccountID: l.BusinessAccountID,
		ProductID:         l.ProductID,
		QuantityRequired:  l.QuantityRequired,
		BusinessType:      l.BusinessType,
		InquiryType:       l.InquiryType,
		Priority:          l.Priority,
		Status:            l.Status,
		Products:          l.Products,
		Notes:             l.Notes,
		FollowUpDate:      l.FollowUpDate,
		FollowUpNotes:     l.FollowUpNotes,
		AssignedTo:        l.AssignedTo,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

func toResponseList(leads []*lead.Lead) []leadResponse {
	resp := make([]leadResponse, len(leads))
	for i, l := range leads {
		resp[i] = toResponse(l)
	}

	return resp
}
