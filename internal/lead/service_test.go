package lead_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/soletrade/soletrade/internal/catalog"
	"github.com/soletrade/soletrade/internal/event"
	"github.com/soletrade/soletrade/internal/lead"
)

func newService(repo *lead.MockRepository, resolver *catalog.MockResolver) *lead.Service {
	return lead.NewService(repo, resolver, event.Noop{})
}

func TestService_Submit(t *testing.T) {
	type testCase struct {
		name       string
		params     lead.SubmitParams
		setupMocks func(repo *lead.MockRepository, resolver *catalog.MockResolver)
		wantErr    bool
		wantFields []string
	}

	tests := []testCase{
		{
			name: "Success",
			params: lead.SubmitParams{
				BuyerName:        "Ravi Kumar",
				BuyerEmail:       "ravi@kumarshoes.example",
				BuyerPhone:       "+91-9000000001",
				ProductID:        "sku-casual-01",
				QuantityRequired: 120,
				Priority:         lead.PriorityHigh,
			},
			setupMocks: func(repo *lead.MockRepository, resolver *catalog.MockResolver) {
				resolver.EXPECT().
					Resolve(gomock.Any(), "sku-casual-01").
					Return(&catalog.Product{ID: "sku-casual-01", Name: "Casual Sneaker"}, nil)
				repo.EXPECT().
					CreateLead(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, l *lead.Lead) error {
						l.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:       "AllContactFieldsMissing",
			params:     lead.SubmitParams{ProductID: "sku-casual-01"},
			wantErr:    true,
			wantFields: []string{"buyerName", "buyerEmail", "buyerPhone", "quantityRequired"},
		},
		{
			name: "ZeroQuantity",
			params: lead.SubmitParams{
				BuyerName:  "Ravi Kumar",
				BuyerEmail: "ravi@kumarshoes.example",
				BuyerPhone: "+91-9000000001",
			},
			wantErr:    true,
			wantFields: []string{"quantityRequired"},
		},
		{
			name: "CatalogDownStillCaptures",
			params: lead.SubmitParams{
				BuyerName:        "Ravi Kumar",
				BuyerEmail:       "ravi@kumarshoes.example",
				BuyerPhone:       "+91-9000000001",
				ProductID:        "sku-gone",
				QuantityRequired: 50,
			},
			setupMocks: func(repo *lead.MockRepository, resolver *catalog.MockResolver) {
				resolver.EXPECT().
					Resolve(gomock.Any(), "sku-gone").
					Return(nil, errors.New("catalog unreachable"))
				repo.EXPECT().
					CreateLead(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, l *lead.Lead) error {
						l.ID = uuid.New()
						return nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := lead.NewMockRepository(ctrl)
			resolver := catalog.NewMockResolver(ctrl)

			if tt.setupMocks != nil {
				tt.setupMocks(repo, resolver)
			}

			svc := newService(repo, resolver)
			got, err := svc.Submit(context.Background(), tt.params)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)

				if tt.wantFields != nil {
					var vErr *lead.ValidationError

					require.ErrorAs(t, err, &vErr)
					assert.ElementsMatch(t, tt.wantFields, vErr.Fields)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, lead.StatusNew, got.Status)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_Submit_DefaultPriority(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := lead.NewMockRepository(ctrl)
	repo.EXPECT().CreateLead(gomock.Any(), gomock.Any()).Return(nil)

	svc := lead.NewService(repo, nil, event.Noop{})

	got, err := svc.Submit(context.Background(), lead.SubmitParams{
		BuyerName:        "Meera Shah",
		BuyerEmail:       "meera@shahfootwear.example",
		BuyerPhone:       "+91-9000000002",
		QuantityRequired: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, lead.PriorityMedium, got.Priority)
}

func TestService_Transition(t *testing.T) {
	leadID := uuid.New()
	actorID := uuid.New()

	type testCase struct {
		name      string
		target    lead.Status
		setupMock func(m *lead.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name:   "Forward",
			target: lead.StatusContacted,
			setupMock: func(m *lead.MockRepository) {
				m.EXPECT().
					GetLead(gomock.Any(), leadID).
					Return(&lead.Lead{ID: leadID, Status: lead.StatusNew}, nil)
				m.EXPECT().
					UpdateStatus(gomock.Any(), leadID, lead.StatusNew, lead.StatusContacted).
					Return(nil)
			},
		},
		{
			name:   "BackwardAllowed",
			target: lead.StatusNew,
			setupMock: func(m *lead.MockRepository) {
				m.EXPECT().
					GetLead(gomock.Any(), leadID).
					Return(&lead.Lead{ID: leadID, Status: lead.StatusNegotiating}, nil)
				m.EXPECT().
					UpdateStatus(gomock.Any(), leadID, lead.StatusNegotiating, lead.StatusNew).
					Return(nil)
			},
		},
		{
			name:   "TerminalIsFinal",
			target: lead.StatusContacted,
			setupMock: func(m *lead.MockRepository) {
				m.EXPECT().
					GetLead(gomock.Any(), leadID).
					Return(&lead.Lead{ID: leadID, Status: lead.StatusClosed}, nil)
			},
			wantErr: true,
		},
		{
			name:    "UnknownStatus",
			target:  lead.Status("archived"),
			wantErr: true,
		},
		{
			name:   "LostRaceToAnotherAdmin",
			target: lead.StatusQuoted,
			setupMock: func(m *lead.MockRepository) {
				m.EXPECT().
					GetLead(gomock.Any(), leadID).
					Return(&lead.Lead{ID: leadID, Status: lead.StatusContacted}, nil)
				m.EXPECT().
					UpdateStatus(gomock.Any(), leadID, lead.StatusContacted, lead.StatusQuoted).
					Return(lead.ErrNotFound)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := lead.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := lead.NewService(repo, nil, event.Noop{})
			got, err := svc.Transition(context.Background(), leadID, tt.target, actorID)

			if tt.wantErr {
				var tErr *lead.InvalidTransitionError

				require.ErrorAs(t, err, &tErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.target, got.Status)
		})
	}
}

func TestService_Assign_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	leadID := uuid.New()
	adminID := uuid.New()

	repo := lead.NewMockRepository(ctrl)
	repo.EXPECT().UpdateAssignee(gomock.Any(), leadID, adminID).Return(nil).Times(2)

	svc := lead.NewService(repo, nil, event.Noop{})

	require.NoError(t, svc.Assign(context.Background(), leadID, adminID))
	require.NoError(t, svc.Assign(context.Background(), leadID, adminID))
}
