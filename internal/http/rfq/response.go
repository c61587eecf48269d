package rfq

import (
	"github.com/google/uuid"

	"github.com/soletrade/soletrade/internal/rfq"
)

type draftItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	MOQ       int    `json:"moq"`
}

func toDraftResponse(items []rfq.DraftItem) []draftItemResponse {
	resp := make([]draftItemResponse, len(items))
	for i, it := range items {
		resp[i] = draftItemResponse{ProductID: it.ProductID, Quantity: it.Quantity, MOQ: it.MOQ}
	}

	return resp
}

type countResponse struct {
	Count int `json:"count"`
}

type addItemResponse struct {
	Added bool `json:"added"`
}

type submitResponse struct {
	LeadID uuid.UUID `json:"lead_id"`
	Status string    `json:"status"`
}
