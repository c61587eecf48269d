package rfq_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/soletrade/soletrade/internal/catalog"
	"github.com/soletrade/soletrade/internal/lead"
	"github.com/soletrade/soletrade/internal/rfq"
)

const cartKey = "buyer-1"

type fixture struct {
	cart     *rfq.MockCart
	resolver *catalog.MockResolver
	leads    *rfq.MockLeadSubmitter
	svc      *rfq.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		cart:     rfq.NewMockCart(ctrl),
		resolver: catalog.NewMockResolver(ctrl),
		leads:    rfq.NewMockLeadSubmitter(ctrl),
	}
	f.svc = rfq.NewService(f.cart, f.resolver, f.leads)

	return f
}

func TestService_AddItem(t *testing.T) {
	type testCase struct {
		name       string
		productID  string
		quantity   int
		setupMocks func(f *fixture)
		wantAdded  bool
		wantErr    bool
	}

	tests := []testCase{
		{
			name:      "DefaultsToMOQ",
			productID: "sku-01",
			quantity:  0,
			setupMocks: func(f *fixture) {
				f.cart.EXPECT().Items(gomock.Any(), cartKey).Return(nil, nil)
				f.resolver.EXPECT().
					Resolve(gomock.Any(), "sku-01").
					Return(&catalog.Product{ID: "sku-01", MOQ: 50}, nil)
				f.cart.EXPECT().
					Save(gomock.Any(), cartKey, []rfq.DraftItem{{ProductID: "sku-01", Quantity: 50, MOQ: 50}}).
					Return(nil)
			},
			wantAdded: true,
		},
		{
			name:      "BelowMOQRefused",
			productID: "sku-01",
			quantity:  30,
			setupMocks: func(f *fixture) {
				f.cart.EXPECT().Items(gomock.Any(), cartKey).Return(nil, nil)
				f.resolver.EXPECT().
					Resolve(gomock.Any(), "sku-01").
					Return(&catalog.Product{ID: "sku-01", MOQ: 50}, nil)
			},
			wantErr: true,
		},
		{
			name:      "AtMOQAccepted",
			productID: "sku-01",
			quantity:  50,
			setupMocks: func(f *fixture) {
				f.cart.EXPECT().Items(gomock.Any(), cartKey).Return(nil, nil)
				f.resolver.EXPECT().
					Resolve(gomock.Any(), "sku-01").
					Return(&catalog.Product{ID: "sku-01", MOQ: 50}, nil)
				f.cart.EXPECT().
					Save(gomock.Any(), cartKey, []rfq.DraftItem{{ProductID: "sku-01", Quantity: 50, MOQ: 50}}).
					Return(nil)
			},
			wantAdded: true,
		},
		{
			name:      "DuplicateIgnored",
			productID: "sku-01",
			quantity:  100,
			setupMocks: func(f *fixture) {
				f.cart.EXPECT().
					Items(gomock.Any(), cartKey).
					Return([]rfq.DraftItem{{ProductID: "sku-01", Quantity: 50, MOQ: 50}}, nil)
			},
			wantAdded: false,
		},
		{
			name:      "CatalogDownExplicitQuantityKept",
			productID: "sku-01",
			quantity:  10,
			setupMocks: func(f *fixture) {
				f.cart.EXPECT().Items(gomock.Any(), cartKey).Return(nil, nil)
				f.resolver.EXPECT().
					Resolve(gomock.Any(), "sku-01").
					Return(nil, errors.New("catalog unreachable"))
				f.cart.EXPECT().
					Save(gomock.Any(), cartKey, []rfq.DraftItem{{ProductID: "sku-01", Quantity: 10, MOQ: 0}}).
					Return(nil)
			},
			wantAdded: true,
		},
		{
			name:      "CatalogDownNoQuantityRefused",
			productID: "sku-01",
			quantity:  0,
			setupMocks: func(f *fixture) {
				f.cart.EXPECT().Items(gomock.Any(), cartKey).Return(nil, nil)
				f.resolver.EXPECT().
					Resolve(gomock.Any(), "sku-01").
					Return(nil, errors.New("catalog unreachable"))
			},
			wantErr: true,
		},
		{
			name:      "EmptyProductID",
			productID: "",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setupMocks != nil {
				tt.setupMocks(f)
			}

			added, err := f.svc.AddItem(context.Background(), cartKey, tt.productID, tt.quantity)

			if tt.wantErr {
				var vErr *lead.ValidationError

				require.ErrorAs(t, err, &vErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAdded, added)
		})
	}
}

func TestService_RemoveItem(t *testing.T) {
	f := newFixture(t)

	f.cart.EXPECT().
		Items(gomock.Any(), cartKey).
		Return([]rfq.DraftItem{
			{ProductID: "sku-01", Quantity: 50, MOQ: 50},
			{ProductID: "sku-02", Quantity: 80, MOQ: 40},
		}, nil)
	f.cart.EXPECT().
		Save(gomock.Any(), cartKey, []rfq.DraftItem{{ProductID: "sku-02", Quantity: 80, MOQ: 40}}).
		Return(nil)

	require.NoError(t, f.svc.RemoveItem(context.Background(), cartKey, "sku-01"))
}

func validContact() rfq.BuyerContact {
	return rfq.BuyerContact{
		Name:  "Ravi Kumar",
		Email: "ravi@kumarshoes.example",
		Phone: "+91-9000000001",
		City:  "Agra",
	}
}

func TestService_Submit_CompositeLead(t *testing.T) {
	f := newFixture(t)

	items := []rfq.DraftItem{
		{ProductID: "sku-01", Quantity: 100, MOQ: 50},
		{ProductID: "sku-02", Quantity: 80, MOQ: 40},
	}

	f.cart.EXPECT().Items(gomock.Any(), cartKey).Return(items, nil)
	f.leads.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params lead.SubmitParams) (*lead.Lead, error) {
			assert.Equal(t, "bulk_rfq", params.InquiryType)
			assert.Equal(t, lead.PriorityMedium, params.Priority)
			assert.Equal(t, "sku-01", params.ProductID)
			assert.Equal(t, 100, params.QuantityRequired)
			assert.Len(t, params.Products, 2)
			assert.Contains(t, params.Notes, "Bulk RFQ with 2 products")
			assert.Contains(t, params.Notes, "sku-02 x80")

			return &lead.Lead{Status: lead.StatusNew}, nil
		})
	f.cart.EXPECT().Clear(gomock.Any(), cartKey).Return(nil)

	l, err := f.svc.Submit(context.Background(), cartKey, validContact())
	require.NoError(t, err)
	assert.Equal(t, lead.StatusNew, l.Status)
}

func TestService_Submit_ReportsEveryProblemAtOnce(t *testing.T) {
	f := newFixture(t)

	// Draft has one under-MOQ line; the contact is missing everything.
	f.cart.EXPECT().
		Items(gomock.Any(), cartKey).
		Return([]rfq.DraftItem{{ProductID: "sku-01", Quantity: 30, MOQ: 50}}, nil)

	_, err := f.svc.Submit(context.Background(), cartKey, rfq.BuyerContact{})

	var vErr *lead.ValidationError

	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 5)
	assert.Contains(t, vErr.Fields, "name")
	assert.Contains(t, vErr.Fields, "email")
	assert.Contains(t, vErr.Fields, "phone")
	assert.Contains(t, vErr.Fields, "city")
}

func TestService_Submit_EmptyDraft(t *testing.T) {
	f := newFixture(t)

	f.cart.EXPECT().Items(gomock.Any(), cartKey).Return(nil, nil)

	_, err := f.svc.Submit(context.Background(), cartKey, validContact())

	var vErr *lead.ValidationError

	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "products")
}

func TestService_Submit_ClearFailureDoesNotFail(t *testing.T) {
	f := newFixture(t)

	f.cart.EXPECT().
		Items(gomock.Any(), cartKey).
		Return([]rfq.DraftItem{{ProductID: "sku-01", Quantity: 50, MOQ: 50}}, nil)
	f.leads.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		Return(&lead.Lead{Status: lead.StatusNew}, nil)
	f.cart.EXPECT().Clear(gomock.Any(), cartKey).Return(errors.New("redis down"))

	_, err := f.svc.Submit(context.Background(), cartKey, validContact())
	assert.NoError(t, err)
}

func TestService_Count(t *testing.T) {
	f := newFixture(t)

	f.cart.EXPECT().
		Items(gomock.Any(), cartKey).
		Return([]rfq.DraftItem{{ProductID: "sku-01"}, {ProductID: "sku-02"}}, nil)

	n, err := f.svc.Count(context.Background(), cartKey)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
