package credit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/soletrade/soletrade/internal/credit"
	"github.com/soletrade/soletrade/internal/event"
)

func TestService_Reserve(t *testing.T) {
	accountID := uuid.New()

	type testCase struct {
		name      string
		amount    int64
		setupMock func(m *credit.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name:   "Success",
			amount: 50000,
			setupMock: func(m *credit.MockRepository) {
				m.EXPECT().
					Reserve(gomock.Any(), accountID, int64(50000)).
					Return(&credit.Receipt{ID: uuid.New(), AccountID: accountID, Amount: 50000}, nil)
			},
		},
		{
			name:    "ZeroAmount",
			amount:  0,
			wantErr: true,
		},
		{
			name:    "NegativeAmount",
			amount:  -100,
			wantErr: true,
		},
		{
			name:   "LimitExceeded",
			amount: 50000,
			setupMock: func(m *credit.MockRepository) {
				m.EXPECT().
					Reserve(gomock.Any(), accountID, int64(50000)).
					Return(nil, &credit.LimitExceededError{AccountID: accountID, Shortfall: 10000})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := credit.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := credit.NewService(repo, event.Noop{})
			got, err := svc.Reserve(context.Background(), accountID, tt.amount)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.amount, got.Amount)
		})
	}
}

func TestService_Release_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	receiptID := uuid.New()
	repo := credit.NewMockRepository(ctrl)
	svc := credit.NewService(repo, event.Noop{})

	// First release frees the full amount, the retry frees nothing. Both
	// succeed.
	gomock.InOrder(
		repo.EXPECT().Release(gomock.Any(), receiptID).Return(int64(50000), nil),
		repo.EXPECT().Release(gomock.Any(), receiptID).Return(int64(0), nil),
	)

	require.NoError(t, svc.Release(context.Background(), receiptID))
	require.NoError(t, svc.Release(context.Background(), receiptID))
}

func TestService_Release_UnknownReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	receiptID := uuid.New()
	repo := credit.NewMockRepository(ctrl)
	svc := credit.NewService(repo, event.Noop{})

	repo.EXPECT().Release(gomock.Any(), receiptID).Return(int64(0), credit.ErrNotFound)

	err := svc.Release(context.Background(), receiptID)
	assert.True(t, errors.Is(err, credit.ErrNotFound))
}
