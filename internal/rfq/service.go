package rfq

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/soletrade/soletrade/internal/catalog"
	"github.com/soletrade/soletrade/internal/lead"
)

//go:generate mockgen -source=service.go -destination=cart_mock.go -package=rfq

// Cart is the draft-cart persistence collaborator, keyed per buyer. Drafts
// survive page reloads; the schema is just the item list.
type Cart interface {
	Items(ctx context.Context, key string) ([]DraftItem, error)
	Save(ctx context.Context, key string, items []DraftItem) error
	Clear(ctx context.Context, key string) error
}

// LeadSubmitter is the slice of the lead service the RFQ flow needs.
type LeadSubmitter interface {
	Submit(ctx context.Context, params lead.SubmitParams) (*lead.Lead, error)
}

type Service struct {
	cart    Cart
	catalog catalog.Resolver
	leads   LeadSubmitter
}

func NewService(cart Cart, resolver catalog.Resolver, leads LeadSubmitter) *Service {
	return &Service{cart: cart, catalog: resolver, leads: leads}
}

// AddItem puts a product on the draft. Quantity defaults to the product's
// MOQ when unspecified (zero); an explicit quantity below MOQ is refused.
// A product already on the draft is reported (added=false) and ignored
// rather than treated as an error.
func (s *Service) AddItem(ctx context.Context, key, productID string, quantity int) (added bool, err error) {
	if productID == "" {
		return false, &lead.ValidationError{Fields: []string{"productId"}}
	}

	items, err := s.cart.Items(ctx, key)
	if err != nil {
		return false, err
	}

	for _, it := range items {
		if it.ProductID == productID {
			return false, nil
		}
	}

	moq := 0

	p, err := s.catalog.Resolve(ctx, productID)
	if err != nil {
		// MOQ unknown; keep the buyer's draft rather than lose it.
		slog.Warn("product lookup failed while adding draft item", "product_id", productID, "error", err)
	} else {
		moq = p.MOQ
	}

	if quantity == 0 {
		if moq == 0 {
			return false, &lead.ValidationError{Fields: []string{"quantity"}}
		}

		quantity = moq
	}

	if quantity < moq {
		return false, &lead.ValidationError{
			Fields: []string{fmt.Sprintf("quantity %d below MOQ %d for product %s", quantity, moq, productID)},
		}
	}

	items = append(items, DraftItem{ProductID: productID, Quantity: quantity, MOQ: moq})

	return true, s.cart.Save(ctx, key, items)
}

func (s *Service) RemoveItem(ctx context.Context, key, productID string) error {
	items, err := s.cart.Items(ctx, key)
	if err != nil {
		return err
	}

	kept := items[:0]

	for _, it := range items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}

	return s.cart.Save(ctx, key, kept)
}

func (s *Service) Items(ctx context.Context, key string) ([]DraftItem, error) {
	return s.cart.Items(ctx, key)
}

// Count is the item-count signal the storefront badge observes.
func (s *Service) Count(ctx context.Context, key string) (int, error) {
	items, err := s.cart.Items(ctx, key)
	if err != nil {
		return 0, err
	}

	return len(items), nil
}

// Submit materializes the draft as a single composite lead carrying every
// product line, then clears the draft. Validation reports every missing
// field at once, not just the first.
func (s *Service) Submit(ctx context.Context, key string, contact BuyerContact) (*lead.Lead, error) {
	items, err := s.cart.Items(ctx, key)
	if err != nil {
		return nil, err
	}

	var missing []string

	if contact.Name == "" {
		missing = append(missing, "name")
	}

	if contact.Email == "" {
		missing = append(missing, "email")
	}

	if contact.Phone == "" {
		missing = append(missing, "phone")
	}

	if contact.City == "" {
		missing = append(missing, "city")
	}

	if len(items) == 0 {
		missing = append(missing, "products")
	}

	for _, it := range items {
		if it.MOQ > 0 && it.Quantity < it.MOQ {
			missing = append(missing, fmt.Sprintf("quantity %d below MOQ %d for product %s", it.Quantity, it.MOQ, it.ProductID))
		}
	}

	if len(missing) > 0 {
		return nil, &lead.ValidationError{Fields: missing}
	}

	lines := make([]lead.ProductLine, len(items))
	for i, it := range items {
		lines[i] = lead.ProductLine{ProductID: it.ProductID, Quantity: it.Quantity}
	}

	l, err := s.leads.Submit(ctx, lead.SubmitParams{
		BuyerName:         contact.Name,
		BuyerEmail:        contact.Email,
		BuyerPhone:        contact.Phone,
		CompanyName:       contact.CompanyName,
		City:              contact.City,
		BusinessAccountID: contact.BusinessAccountID,
		ProductID:         items[0].ProductID,
		QuantityRequired:  items[0].Quantity,
		BusinessType:      contact.BusinessType,
		InquiryType:       "bulk_rfq",
		Priority:          lead.PriorityMedium,
		Products:          lines,
		Notes:             summarize(items),
	})
	if err != nil {
		return nil, err
	}

	if err := s.cart.Clear(ctx, key); err != nil {
		// The lead is already captured; a stale draft is recoverable.
		slog.Warn("failed to clear draft cart after submission", "key", key, "error", err)
	}

	return l, nil
}

func summarize(items []DraftItem) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%s x%d", it.ProductID, it.Quantity)
	}

	return fmt.Sprintf("Bulk RFQ with %d products: %s", len(items), strings.Join(parts, ", "))
}
