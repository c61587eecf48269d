package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/soletrade/soletrade/internal/order"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectOrderColumns = `
	id, business_account_id, quote_id, credit_receipt_id, lines, total_amount,
	order_status, payment_type, payment_status, is_b2b_order,
	purchase_order_number, requires_approval, created_at, updated_at
`

func scanOrder(s scanner) (*order.Order, error) {
	var o order.Order

	var status, paymentType, paymentStatus string

	var lines []byte

	if err := s.Scan(
		&o.ID, &o.BusinessAccountID, &o.QuoteID, &o.CreditReceiptID, &lines, &o.TotalAmount,
		&status, &paymentType, &paymentStatus, &o.IsB2BOrder,
		&o.PurchaseOrderNumber, &o.RequiresApproval, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}

	o.OrderStatus = order.Status(status)
	o.PaymentType = order.PaymentType(paymentType)
	o.PaymentStatus = order.PaymentStatus(paymentStatus)

	if len(lines) > 0 {
		if err := json.Unmarshal(lines, &o.Lines); err != nil {
			return nil, fmt.Errorf("decoding order lines: %w", err)
		}
	}

	return &o, nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// InsertTx writes the order using the caller's transaction. The quote
// conversion flow uses this to keep order creation atomic with the quote
// link and the credit debit.
func InsertTx(ctx context.Context, db execer, o *order.Order) error {
	lines, err := json.Marshal(o.Lines)
	if err != nil {
		return fmt.Errorf("encoding order lines: %w", err)
	}

	query := `
		INSERT INTO orders
			(business_account_id, quote_id, credit_receipt_id, lines, total_amount,
			 order_status, payment_type, payment_status, is_b2b_order,
			 purchase_order_number, requires_approval, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = db.QueryRowContext(ctx, query,
		o.BusinessAccountID, o.QuoteID, o.CreditReceiptID, lines, o.TotalAmount,
		o.OrderStatus, o.PaymentType, o.PaymentStatus, o.IsB2BOrder,
		o.PurchaseOrderNumber, o.RequiresApproval,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating order: %w", err)
	}

	return nil
}

func (s *Store) CreateOrder(ctx context.Context, o *order.Order) error {
	return InsertTx(ctx, s.db, o)
}

func (s *Store) GetOrder(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	query := `SELECT ` + selectOrderColumns + ` FROM orders WHERE id = $1`

	o, err := scanOrder(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, order.ErrNotFound
		}

		return nil, fmt.Errorf("getting order: %w", err)
	}

	return o, nil
}

func (s *Store) ListOrders(ctx context.Context, filter order.ListFilter) ([]*order.Order, error) {
	query := `SELECT ` + selectOrderColumns + ` FROM orders WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.AccountID != nil {
		query += fmt.Sprintf(" AND business_account_id = $%d", argIdx)

		args = append(args, *filter.AccountID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND order_status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []*order.Order

	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}

		orders = append(orders, o)
	}

	return orders, rows.Err()
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, from, to order.Status) error {
	query := `
		UPDATE orders
		SET order_status = $1, updated_at = NOW()
		WHERE id = $2 AND order_status = $3
	`

	res, err := s.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return order.ErrNotFound
	}

	return nil
}

func (s *Store) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status order.PaymentStatus) error {
	query := `
		UPDATE orders
		SET payment_status = $1, updated_at = NOW()
		WHERE id = $2
	`

	res, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating payment status: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return order.ErrNotFound
	}

	return nil
}
