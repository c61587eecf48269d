package crm

import (
	"time"

	"github.com/google/uuid"

	"github.com/soletrade/soletrade/internal/crm"
)

type accountStatsResponse struct {
	AccountID   uuid.UUID `json:"account_id"`
	TotalLeads  int       `json:"total_leads"`
	OpenLeads   int       `json:"open_leads"`
	ClosedDeals int       `json:"closed_deals"`
}

func toAccountMetrics(stats map[uuid.UUID]*crm.LeadStats) []accountStatsResponse {
	resp := make([]accountStatsResponse, 0, len(stats))
	for id, s := range stats {
		resp = append(resp, accountStatsResponse{
			AccountID:   id,
			TotalLeads:  s.TotalLeads,
			OpenLeads:   s.OpenLeads,
			ClosedDeals: s.ClosedDeals,
		})
	}

	return resp
}

type assigneeStatsResponse struct {
	AssigneeID     uuid.UUID `json:"assignee_id"`
	TotalLeads     int       `json:"total_leads"`
	OpenLeads      int       `json:"open_leads"`
	ClosedDeals    int       `json:"closed_deals"`
	Contacted      int       `json:"contacted"`
	ConversionRate int       `json:"conversion_rate"`
}

func toAssigneeMetrics(stats map[uuid.UUID]*crm.AssigneeStats) []assigneeStatsResponse {
	resp := make([]assigneeStatsResponse, 0, len(stats))
	for id, s := range stats {
		resp = append(resp, assigneeStatsResponse{
			AssigneeID:     id,
			TotalLeads:     s.TotalLeads,
			OpenLeads:      s.OpenLeads,
			ClosedDeals:    s.ClosedDeals,
			Contacted:      s.Contacted,
			ConversionRate: s.ConversionRate,
		})
	}

	return resp
}

type calendarEntryResponse struct {
	LeadID    uuid.UUID `json:"lead_id"`
	BuyerName string    `json:"buyer_name"`
	Notes     string    `json:"notes,omitempty"`
	Overdue   bool      `json:"overdue"`
}

type dayScheduleResponse struct {
	Date    string                  `json:"date"`
	Entries []calendarEntryResponse `json:"entries"`
}

func toCalendar(days []crm.DaySchedule) []dayScheduleResponse {
	resp := make([]dayScheduleResponse, len(days))
	for i, d := range days {
		entries := make([]calendarEntryResponse, len(d.Entries))
		for j, e := range d.Entries {
			entries[j] = calendarEntryResponse{
				LeadID:    e.Lead.ID,
				BuyerName: e.Lead.BuyerName,
				Notes:     e.Lead.FollowUpNotes,
				Overdue:   e.Overdue,
			}
		}

		resp[i] = dayScheduleResponse{
			Date:    d.Date.Format(time.DateOnly),
			Entries: entries,
		}
	}

	return resp
}

type productCountResponse struct {
	ProductID string `json:"product_id"`
	Count     int    `json:"count"`
}

func toTopProducts(products []crm.ProductCount) []productCountResponse {
	resp := make([]productCountResponse, len(products))
	for i, p := range products {
		resp[i] = productCountResponse{ProductID: p.ProductID, Count: p.Count}
	}

	return resp
}
