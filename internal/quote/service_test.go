package quote_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/soletrade/soletrade/internal/catalog"
	"github.com/soletrade/soletrade/internal/credit"
	"github.com/soletrade/soletrade/internal/event"
	"github.com/soletrade/soletrade/internal/lead"
	"github.com/soletrade/soletrade/internal/order"
	"github.com/soletrade/soletrade/internal/quote"
)

type fixture struct {
	repo     *quote.MockRepository
	leads    *quote.MockLeadDirectory
	resolver *catalog.MockResolver
	svc      *quote.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		repo:     quote.NewMockRepository(ctrl),
		leads:    quote.NewMockLeadDirectory(ctrl),
		resolver: catalog.NewMockResolver(ctrl),
	}
	f.svc = quote.NewService(f.repo, f.leads, f.resolver, event.Noop{})

	return f
}

func TestService_Request_Success(t *testing.T) {
	f := newFixture(t)
	leadID := uuid.New()

	f.leads.EXPECT().
		Get(gomock.Any(), leadID).
		Return(&lead.Lead{ID: leadID, Status: lead.StatusContacted}, nil)
	f.repo.EXPECT().
		CreateQuote(gomock.Any(), gomock.Any(), lead.StatusContacted).
		DoAndReturn(func(_ context.Context, q *quote.Quote, _ lead.Status) error {
			q.ID = uuid.New()
			return nil
		})

	got, err := f.svc.Request(context.Background(), quote.RequestParams{
		LeadID: leadID,
		Items: []quote.Item{
			{ProductID: "sku-01", ProductName: "Casual Sneaker", Quantity: 100, Price: 2500},
			{ProductID: "sku-02", ProductName: "Formal Oxford", Quantity: 50, Price: 4000},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, quote.StatusPending, got.Status)
	assert.Equal(t, int64(100*2500+50*4000), got.TotalAmount)
}

func TestService_Request_TotalMismatch(t *testing.T) {
	f := newFixture(t)

	// 2 x 100 + 3 x 50 = 350, the stated total of 400 is refused.
	_, err := f.svc.Request(context.Background(), quote.RequestParams{
		LeadID: uuid.New(),
		Items: []quote.Item{
			{ProductID: "sku-01", ProductName: "A", Quantity: 2, Price: 100},
			{ProductID: "sku-02", ProductName: "B", Quantity: 3, Price: 50},
		},
		TotalAmount: 400,
	})

	var vErr *quote.ValidationError

	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Error(), "350")
}

func TestService_Request_ResolvesPricing(t *testing.T) {
	f := newFixture(t)
	leadID := uuid.New()

	f.resolver.EXPECT().
		Resolve(gomock.Any(), "sku-01").
		Return(&catalog.Product{ID: "sku-01", Name: "Casual Sneaker", Price: 2500}, nil)
	f.leads.EXPECT().
		Get(gomock.Any(), leadID).
		Return(&lead.Lead{ID: leadID, Status: lead.StatusNew}, nil)
	f.repo.EXPECT().
		CreateQuote(gomock.Any(), gomock.Any(), lead.StatusNew).
		Return(nil)

	got, err := f.svc.Request(context.Background(), quote.RequestParams{
		LeadID: leadID,
		Items:  []quote.Item{{ProductID: "sku-01", Quantity: 10}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(25000), got.TotalAmount)
	assert.Equal(t, "Casual Sneaker", got.Items[0].ProductName)
}

func TestService_Request_CatalogFailureIsFatal(t *testing.T) {
	f := newFixture(t)

	f.resolver.EXPECT().
		Resolve(gomock.Any(), "sku-01").
		Return(nil, errors.New("catalog unreachable"))

	_, err := f.svc.Request(context.Background(), quote.RequestParams{
		LeadID: uuid.New(),
		Items:  []quote.Item{{ProductID: "sku-01", Quantity: 10}},
	})
	assert.Error(t, err)
}

func TestService_Request_LeadPastQuotableStage(t *testing.T) {
	f := newFixture(t)
	leadID := uuid.New()

	f.leads.EXPECT().
		Get(gomock.Any(), leadID).
		Return(&lead.Lead{ID: leadID, Status: lead.StatusNegotiating}, nil)

	_, err := f.svc.Request(context.Background(), quote.RequestParams{
		LeadID: leadID,
		Items:  []quote.Item{{ProductID: "sku-01", ProductName: "A", Quantity: 1, Price: 100}},
	})

	var pErr *quote.PreconditionError

	require.ErrorAs(t, err, &pErr)
}

func TestService_Request_LeadMovedDuringCreate(t *testing.T) {
	f := newFixture(t)
	leadID := uuid.New()

	f.leads.EXPECT().
		Get(gomock.Any(), leadID).
		Return(&lead.Lead{ID: leadID, Status: lead.StatusNew}, nil)
	f.repo.EXPECT().
		CreateQuote(gomock.Any(), gomock.Any(), lead.StatusNew).
		Return(quote.ErrLeadMoved)

	_, err := f.svc.Request(context.Background(), quote.RequestParams{
		LeadID: leadID,
		Items:  []quote.Item{{ProductID: "sku-01", ProductName: "A", Quantity: 1, Price: 100}},
	})

	var pErr *quote.PreconditionError

	require.ErrorAs(t, err, &pErr)
}

func TestService_Reject_RequiresReason(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Reject(context.Background(), uuid.New(), "")

	var vErr *quote.ValidationError

	require.ErrorAs(t, err, &vErr)
}

func TestService_Resolve_OnlyFromPending(t *testing.T) {
	f := newFixture(t)
	quoteID := uuid.New()

	f.repo.EXPECT().
		GetQuote(gomock.Any(), quoteID).
		Return(&quote.Quote{ID: quoteID, Status: quote.StatusRejected}, nil)

	_, err := f.svc.Accept(context.Background(), quoteID)

	var tErr *quote.InvalidTransitionError

	require.ErrorAs(t, err, &tErr)
}

func TestService_Accept(t *testing.T) {
	f := newFixture(t)
	quoteID := uuid.New()

	gomock.InOrder(
		f.repo.EXPECT().
			GetQuote(gomock.Any(), quoteID).
			Return(&quote.Quote{ID: quoteID, Status: quote.StatusPending}, nil),
		f.repo.EXPECT().
			Resolve(gomock.Any(), quoteID, quote.StatusAccepted, "").
			Return(nil),
		f.repo.EXPECT().
			GetQuote(gomock.Any(), quoteID).
			Return(&quote.Quote{ID: quoteID, Status: quote.StatusAccepted}, nil),
	)

	got, err := f.svc.Accept(context.Background(), quoteID)
	require.NoError(t, err)
	assert.Equal(t, quote.StatusAccepted, got.Status)
}

func acceptedQuote(quoteID uuid.UUID) *quote.Quote {
	return &quote.Quote{
		ID:        quoteID,
		InquiryID: uuid.New(),
		Items: []quote.Item{
			{ProductID: "sku-01", ProductName: "Casual Sneaker", Quantity: 100, Price: 2500},
		},
		TotalAmount: 250000,
		Status:      quote.StatusAccepted,
	}
}

func TestService_Convert_CreditOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quoteID := uuid.New()
	accountID := uuid.New()
	receiptID := uuid.New()

	repo := quote.NewMockRepository(ctrl)
	tx := quote.NewMockConvertTx(ctrl)
	svc := quote.NewService(repo, quote.NewMockLeadDirectory(ctrl), catalog.NewMockResolver(ctrl), event.Noop{})

	repo.EXPECT().BeginConvert(gomock.Any(), quoteID).Return(tx, nil)
	tx.EXPECT().Quote(gomock.Any()).Return(acceptedQuote(quoteID), nil)
	tx.EXPECT().ReserveCredit(gomock.Any(), accountID, int64(250000)).Return(receiptID, nil)
	tx.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *order.Order) error {
			o.ID = uuid.New()
			return nil
		})
	tx.EXPECT().LinkOrder(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	got, err := svc.Convert(context.Background(), quoteID, quote.OrderOptions{
		BusinessAccountID: accountID,
		PaymentType:       order.PaymentCredit,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(250000), got.TotalAmount)
	assert.Equal(t, order.StatusPending, got.OrderStatus)
	require.NotNil(t, got.CreditReceiptID)
	assert.Equal(t, receiptID, *got.CreditReceiptID)
	require.NotNil(t, got.QuoteID)
	assert.Equal(t, quoteID, *got.QuoteID)
}

func TestService_Convert_CreditLimitBlocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quoteID := uuid.New()
	accountID := uuid.New()

	repo := quote.NewMockRepository(ctrl)
	tx := quote.NewMockConvertTx(ctrl)
	svc := quote.NewService(repo, quote.NewMockLeadDirectory(ctrl), catalog.NewMockResolver(ctrl), event.Noop{})

	repo.EXPECT().BeginConvert(gomock.Any(), quoteID).Return(tx, nil)
	tx.EXPECT().Quote(gomock.Any()).Return(acceptedQuote(quoteID), nil)
	tx.EXPECT().
		ReserveCredit(gomock.Any(), accountID, int64(250000)).
		Return(uuid.Nil, &credit.LimitExceededError{AccountID: accountID, Shortfall: 50000})
	tx.EXPECT().Rollback().Return(nil)

	_, err := svc.Convert(context.Background(), quoteID, quote.OrderOptions{
		BusinessAccountID: accountID,
		PaymentType:       order.PaymentCredit,
	})

	var limitErr *credit.LimitExceededError

	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, int64(50000), limitErr.Shortfall)
}

func TestService_Convert_ExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quoteID := uuid.New()
	orderID := uuid.New()

	repo := quote.NewMockRepository(ctrl)
	tx := quote.NewMockConvertTx(ctrl)
	svc := quote.NewService(repo, quote.NewMockLeadDirectory(ctrl), catalog.NewMockResolver(ctrl), event.Noop{})

	q := acceptedQuote(quoteID)
	q.OrderID = &orderID

	repo.EXPECT().BeginConvert(gomock.Any(), quoteID).Return(tx, nil)
	tx.EXPECT().Quote(gomock.Any()).Return(q, nil)
	tx.EXPECT().Rollback().Return(nil)

	_, err := svc.Convert(context.Background(), quoteID, quote.OrderOptions{
		BusinessAccountID: uuid.New(),
		PaymentType:       order.PaymentCOD,
	})
	assert.ErrorIs(t, err, quote.ErrAlreadyConverted)
}

func TestService_Convert_RequiresAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quoteID := uuid.New()

	repo := quote.NewMockRepository(ctrl)
	tx := quote.NewMockConvertTx(ctrl)
	svc := quote.NewService(repo, quote.NewMockLeadDirectory(ctrl), catalog.NewMockResolver(ctrl), event.Noop{})

	q := acceptedQuote(quoteID)
	q.Status = quote.StatusPending

	repo.EXPECT().BeginConvert(gomock.Any(), quoteID).Return(tx, nil)
	tx.EXPECT().Quote(gomock.Any()).Return(q, nil)
	tx.EXPECT().Rollback().Return(nil)

	_, err := svc.Convert(context.Background(), quoteID, quote.OrderOptions{
		BusinessAccountID: uuid.New(),
		PaymentType:       order.PaymentCOD,
	})

	var pErr *quote.PreconditionError

	require.ErrorAs(t, err, &pErr)
}
