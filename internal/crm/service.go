package crm

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/soletrade/soletrade/internal/lead"
)

// LeadSource supplies the lead snapshot the aggregations run over.
type LeadSource interface {
	List(ctx context.Context, filter lead.ListFilter) ([]*lead.Lead, error)
}

type Service struct {
	leads LeadSource
}

func NewService(leads LeadSource) *Service {
	return &Service{leads: leads}
}

func (s *Service) AccountMetrics(ctx context.Context) (map[uuid.UUID]*LeadStats, error) {
	leads, err := s.leads.List(ctx, lead.ListFilter{})
	if err != nil {
		return nil, err
	}

	return MetricsByAccount(leads), nil
}

func (s *Service) AssigneeMetrics(ctx context.Context) (map[uuid.UUID]*AssigneeStats, error) {
	leads, err := s.leads.List(ctx, lead.ListFilter{})
	if err != nil {
		return nil, err
	}

	return MetricsByAssignee(leads), nil
}

func (s *Service) Calendar(ctx context.Context, today time.Time) ([]DaySchedule, error) {
	leads, err := s.leads.List(ctx, lead.ListFilter{})
	if err != nil {
		return nil, err
	}

	return FollowUpCalendar(leads, today), nil
}

func (s *Service) TopProducts(ctx context.Context, limit int) ([]ProductCount, error) {
	leads, err := s.leads.List(ctx, lead.ListFilter{})
	if err != nil {
		return nil, err
	}

	return TopProducts(leads, limit), nil
}
