// Package crm derives dashboard rollups from the lead collection. All
// aggregation is pure and runs over a snapshot slice, so readers never
// block writers and never observe a torn collection.
package crm

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/soletrade/soletrade/internal/lead"
)

// LeadStats is the per-account rollup.
type LeadStats struct {
	TotalLeads  int
	OpenLeads   int
	ClosedDeals int
}

// AssigneeStats is the per-team-member rollup.
type AssigneeStats struct {
	TotalLeads     int
	OpenLeads      int
	ClosedDeals    int
	Contacted      int
	ConversionRate int // contacted/total, nearest integer percent
}

// MetricsByAccount buckets leads by business account in a single pass.
// Leads without a resolvable account are excluded entirely; they are not
// counted anywhere.
func MetricsByAccount(leads []*lead.Lead) map[uuid.UUID]*LeadStats {
	out := make(map[uuid.UUID]*LeadStats)

	for _, l := range leads {
		if l.BusinessAccountID == nil {
			continue
		}

		stats := out[*l.BusinessAccountID]
		if stats == nil {
			stats = &LeadStats{}
			out[*l.BusinessAccountID] = stats
		}

		stats.TotalLeads++

		if l.Status.Open() {
			stats.OpenLeads++
		}

		if l.Status == lead.StatusClosed {
			stats.ClosedDeals++
		}
	}

	return out
}

// MetricsByAssignee buckets leads by responsible admin, adding the
// contacted rollup and its conversion percentage. Unassigned leads are
// excluded.
func MetricsByAssignee(leads []*lead.Lead) map[uuid.UUID]*AssigneeStats {
	out := make(map[uuid.UUID]*AssigneeStats)

	for _, l := range leads {
		if l.AssignedTo == nil {
			continue
		}

		stats := out[*l.AssignedTo]
		if stats == nil {
			stats = &AssigneeStats{}
			out[*l.AssignedTo] = stats
		}

		stats.TotalLeads++

		if l.Status.Open() {
			stats.OpenLeads++
		}

		if l.Status == lead.StatusClosed {
			stats.ClosedDeals++
		}

		if l.Status.Contacted() {
			stats.Contacted++
		}
	}

	for _, stats := range out {
		stats.ConversionRate = roundPercent(stats.Contacted, stats.TotalLeads)
	}

	return out
}

// ConversionRate is the closed-deal percentage, rounded half up. It is 0,
// never NaN, when there are no leads or no closed deals.
func ConversionRate(totalLeads, closedDeals int) int {
	if totalLeads == 0 || closedDeals == 0 {
		return 0
	}

	return roundPercent(closedDeals, totalLeads)
}

func roundPercent(part, total int) int {
	if total == 0 {
		return 0
	}

	return int(math.Round(float64(part) / float64(total) * 100))
}

// CalendarEntry is one lead on the follow-up schedule.
type CalendarEntry struct {
	Lead    *lead.Lead
	Overdue bool
}

// DaySchedule groups a day's follow-ups. Date carries the date portion
// only.
type DaySchedule struct {
	Date    time.Time
	Entries []CalendarEntry
}

// FollowUpCalendar groups leads by the calendar day of their follow-up
// date, ascending. Time-of-day is ignored for both grouping and overdue
// classification; a lead is overdue iff its day is strictly before today
// and the deal is not closed.
func FollowUpCalendar(leads []*lead.Lead, today time.Time) []DaySchedule {
	byDay := make(map[time.Time][]CalendarEntry)

	for _, l := range leads {
		if l.FollowUpDate == nil {
			continue
		}

		day := truncateDay(*l.FollowUpDate)
		byDay[day] = append(byDay[day], CalendarEntry{
			Lead:    l,
			Overdue: l.Overdue(today),
		})
	}

	out := make([]DaySchedule, 0, len(byDay))
	for day, entries := range byDay {
		out = append(out, DaySchedule{Date: day, Entries: entries})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	return out
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ProductCount is one entry of the top-products ranking.
type ProductCount struct {
	ProductID string
	Count     int
}

// TopProducts ranks products by lead count, descending, ties broken by
// first appearance in the input. Composite leads contribute every product
// line.
func TopProducts(leads []*lead.Lead, limit int) []ProductCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	seq := 0

	record := func(productID string) {
		if productID == "" {
			return
		}

		if _, ok := counts[productID]; !ok {
			firstSeen[productID] = seq
			seq++
		}

		counts[productID]++
	}

	for _, l := range leads {
		if len(l.Products) > 0 {
			for _, p := range l.Products {
				record(p.ProductID)
			}

			continue
		}

		record(l.ProductID)
	}

	out := make([]ProductCount, 0, len(counts))
	for id, n := range counts {
		out = append(out, ProductCount{ProductID: id, Count: n})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}

		return firstSeen[out[i].ProductID] < firstSeen[out[j].ProductID]
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}
