package order_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/soletrade/soletrade/internal/account"
	"github.com/soletrade/soletrade/internal/credit"
	"github.com/soletrade/soletrade/internal/event"
	"github.com/soletrade/soletrade/internal/order"
)

type fixture struct {
	repo     *order.MockRepository
	accounts *order.MockAccountDirectory
	credits  *credit.MockRepository
	svc      *order.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		repo:     order.NewMockRepository(ctrl),
		accounts: order.NewMockAccountDirectory(ctrl),
		credits:  credit.NewMockRepository(ctrl),
	}
	f.svc = order.NewService(f.repo, f.accounts, credit.NewService(f.credits, event.Noop{}), event.Noop{})

	return f
}

func activeAccount(id uuid.UUID) *account.BusinessAccount {
	return &account.BusinessAccount{
		ID:          id,
		CompanyName: "Acme Footwear Traders",
		Status:      account.StatusActive,
		CreditLimit: 500000,
	}
}

func TestService_Create_CODOrder(t *testing.T) {
	f := newFixture(t)
	accountID := uuid.New()

	f.accounts.EXPECT().Get(gomock.Any(), accountID).Return(activeAccount(accountID), nil)
	f.repo.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *order.Order) error {
			o.ID = uuid.New()
			return nil
		})

	got, err := f.svc.Create(context.Background(), order.CreateParams{
		BusinessAccountID: accountID,
		Lines:             []order.Line{{ProductID: "sku-01", Quantity: 100, Price: 2500}},
		PaymentType:       order.PaymentCOD,
	})
	require.NoError(t, err)
	assert.Equal(t, order.StatusPending, got.OrderStatus)
	assert.Equal(t, order.PaymentPending, got.PaymentStatus)
	assert.Equal(t, int64(250000), got.TotalAmount)
	assert.True(t, got.IsB2BOrder)
	assert.Nil(t, got.CreditReceiptID)
}

func TestService_Create_CreditOrderReserves(t *testing.T) {
	f := newFixture(t)
	accountID := uuid.New()
	receiptID := uuid.New()

	f.accounts.EXPECT().Get(gomock.Any(), accountID).Return(activeAccount(accountID), nil)
	f.credits.EXPECT().
		Reserve(gomock.Any(), accountID, int64(250000)).
		Return(&credit.Receipt{ID: receiptID, AccountID: accountID, Amount: 250000}, nil)
	f.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil)

	got, err := f.svc.Create(context.Background(), order.CreateParams{
		BusinessAccountID: accountID,
		Lines:             []order.Line{{ProductID: "sku-01", Quantity: 100, Price: 2500}},
		PaymentType:       order.PaymentCredit,
	})
	require.NoError(t, err)
	require.NotNil(t, got.CreditReceiptID)
	assert.Equal(t, receiptID, *got.CreditReceiptID)
}

func TestService_Create_CreditLimitBlocks(t *testing.T) {
	f := newFixture(t)
	accountID := uuid.New()

	f.accounts.EXPECT().Get(gomock.Any(), accountID).Return(activeAccount(accountID), nil)
	f.credits.EXPECT().
		Reserve(gomock.Any(), accountID, int64(250000)).
		Return(nil, &credit.LimitExceededError{AccountID: accountID, Shortfall: 50000})

	_, err := f.svc.Create(context.Background(), order.CreateParams{
		BusinessAccountID: accountID,
		Lines:             []order.Line{{ProductID: "sku-01", Quantity: 100, Price: 2500}},
		PaymentType:       order.PaymentCredit,
	})

	var limitErr *credit.LimitExceededError

	require.ErrorAs(t, err, &limitErr)
}

func TestService_Create_ReleasesReservationOnPersistFailure(t *testing.T) {
	f := newFixture(t)
	accountID := uuid.New()
	receiptID := uuid.New()

	f.accounts.EXPECT().Get(gomock.Any(), accountID).Return(activeAccount(accountID), nil)
	f.credits.EXPECT().
		Reserve(gomock.Any(), accountID, int64(250000)).
		Return(&credit.Receipt{ID: receiptID, AccountID: accountID, Amount: 250000}, nil)
	f.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
	f.credits.EXPECT().Release(gomock.Any(), receiptID).Return(int64(250000), nil)

	_, err := f.svc.Create(context.Background(), order.CreateParams{
		BusinessAccountID: accountID,
		Lines:             []order.Line{{ProductID: "sku-01", Quantity: 100, Price: 2500}},
		PaymentType:       order.PaymentCredit,
	})
	assert.Error(t, err)
}

func TestService_Create_Validation(t *testing.T) {
	type testCase struct {
		name      string
		params    order.CreateParams
		setupMock func(f *fixture)
	}

	accountID := uuid.New()

	tests := []testCase{
		{
			name: "NoLines",
			params: order.CreateParams{
				BusinessAccountID: accountID,
				PaymentType:       order.PaymentCOD,
			},
		},
		{
			name: "BadPaymentType",
			params: order.CreateParams{
				BusinessAccountID: accountID,
				Lines:             []order.Line{{ProductID: "sku-01", Quantity: 1, Price: 100}},
				PaymentType:       order.PaymentType("barter"),
			},
		},
		{
			name: "TotalMismatch",
			params: order.CreateParams{
				BusinessAccountID: accountID,
				Lines:             []order.Line{{ProductID: "sku-01", Quantity: 2, Price: 100}},
				TotalAmount:       300,
				PaymentType:       order.PaymentCOD,
			},
		},
		{
			name: "SuspendedAccount",
			params: order.CreateParams{
				BusinessAccountID: accountID,
				Lines:             []order.Line{{ProductID: "sku-01", Quantity: 1, Price: 100}},
				PaymentType:       order.PaymentCOD,
			},
			setupMock: func(f *fixture) {
				f.accounts.EXPECT().
					Get(gomock.Any(), accountID).
					Return(&account.BusinessAccount{ID: accountID, Status: account.StatusSuspended}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			_, err := f.svc.Create(context.Background(), tt.params)

			var vErr *order.ValidationError

			require.ErrorAs(t, err, &vErr)
		})
	}
}

func TestService_Transition(t *testing.T) {
	orderID := uuid.New()

	type testCase struct {
		name      string
		target    order.Status
		setupMock func(m *order.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name:   "Forward",
			target: order.StatusConfirmed,
			setupMock: func(m *order.MockRepository) {
				m.EXPECT().
					GetOrder(gomock.Any(), orderID).
					Return(&order.Order{ID: orderID, OrderStatus: order.StatusPending}, nil)
				m.EXPECT().
					UpdateStatus(gomock.Any(), orderID, order.StatusPending, order.StatusConfirmed).
					Return(nil)
			},
		},
		{
			name:   "SkippingStagesRefused",
			target: order.StatusShipped,
			setupMock: func(m *order.MockRepository) {
				m.EXPECT().
					GetOrder(gomock.Any(), orderID).
					Return(&order.Order{ID: orderID, OrderStatus: order.StatusPending}, nil)
			},
			wantErr: true,
		},
		{
			name:   "BackwardRefused",
			target: order.StatusConfirmed,
			setupMock: func(m *order.MockRepository) {
				m.EXPECT().
					GetOrder(gomock.Any(), orderID).
					Return(&order.Order{ID: orderID, OrderStatus: order.StatusShipped}, nil)
			},
			wantErr: true,
		},
		{
			name:   "DeliveredIsFinal",
			target: order.StatusCancelled,
			setupMock: func(m *order.MockRepository) {
				m.EXPECT().
					GetOrder(gomock.Any(), orderID).
					Return(&order.Order{ID: orderID, OrderStatus: order.StatusDelivered}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setupMock != nil {
				tt.setupMock(f.repo)
			}

			got, err := f.svc.Transition(context.Background(), orderID, tt.target)

			if tt.wantErr {
				var tErr *order.InvalidTransitionError

				require.ErrorAs(t, err, &tErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.target, got.OrderStatus)
		})
	}
}

func TestService_Cancel_ReleasesCredit(t *testing.T) {
	f := newFixture(t)
	orderID := uuid.New()
	receiptID := uuid.New()

	f.repo.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(&order.Order{
			ID:              orderID,
			OrderStatus:     order.StatusConfirmed,
			PaymentType:     order.PaymentCredit,
			CreditReceiptID: &receiptID,
		}, nil)
	f.repo.EXPECT().
		UpdateStatus(gomock.Any(), orderID, order.StatusConfirmed, order.StatusCancelled).
		Return(nil)
	f.credits.EXPECT().Release(gomock.Any(), receiptID).Return(int64(250000), nil)

	got, err := f.svc.Cancel(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, got.OrderStatus)
}

func TestService_Cancel_NoCreditToRelease(t *testing.T) {
	f := newFixture(t)
	orderID := uuid.New()

	f.repo.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(&order.Order{ID: orderID, OrderStatus: order.StatusPending, PaymentType: order.PaymentCOD}, nil)
	f.repo.EXPECT().
		UpdateStatus(gomock.Any(), orderID, order.StatusPending, order.StatusCancelled).
		Return(nil)

	got, err := f.svc.Cancel(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, got.OrderStatus)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, order.CanTransition(order.StatusPending, order.StatusConfirmed))
	assert.True(t, order.CanTransition(order.StatusShipped, order.StatusDelivered))
	assert.True(t, order.CanTransition(order.StatusShipped, order.StatusCancelled))
	assert.False(t, order.CanTransition(order.StatusPending, order.StatusShipped))
	assert.False(t, order.CanTransition(order.StatusDelivered, order.StatusCancelled))
	assert.False(t, order.CanTransition(order.StatusCancelled, order.StatusPending))
}
