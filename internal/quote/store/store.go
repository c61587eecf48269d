package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	creditstore "github.com/soletrade/soletrade/internal/credit/store"
	"github.com/soletrade/soletrade/internal/lead"
	"github.com/soletrade/soletrade/internal/order"
	orderstore "github.com/soletrade/soletrade/internal/order/store"
	"github.com/soletrade/soletrade/internal/quote"
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

const selectQuoteColumns = `
	id, inquiry_id, product_id, items, total_amount, status, valid_until,
	terms, notes, reject_reason, order_id, created_at, accepted_at, rejected_at
`

func scanQuote(s scanner) (*quote.Quote, error) {
	var q quote.Quote

	var status string

	var items []byte

	if err := s.Scan(
		&q.ID, &q.InquiryID, &q.ProductID, &items, &q.TotalAmount, &status, &q.ValidUntil,
		&q.Terms, &q.Notes, &q.RejectReason, &q.OrderID, &q.CreatedAt, &q.AcceptedAt, &q.RejectedAt,
	); err != nil {
		return nil, err
	}

	q.Status = quote.Status(status)

	if len(items) > 0 {
		if err := json.Unmarshal(items, &q.Items); err != nil {
			return nil, fmt.Errorf("decoding quote items: %w", err)
		}
	}

	return &q, nil
}

// CreateQuote inserts the quote and flips the owning lead to quoted in one
// transaction. The lead update is guarded by its expected status; zero rows
// means the lead moved and the whole creation is abandoned.
func (s *Store) CreateQuote(ctx context.Context, q *quote.Quote, leadFrom lead.Status) error {
	items, err := json.Marshal(q.Items)
	if err != nil {
		return fmt.Errorf("encoding quote items: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning quote tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE leads SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		lead.StatusQuoted, q.InquiryID, leadFrom,
	)
	if err != nil {
		return fmt.Errorf("marking lead quoted: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return quote.ErrLeadMoved
	}

	query := `
		INSERT INTO quotes
			(inquiry_id, product_id, items, total_amount, status, valid_until,
			 terms, notes, reject_reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, '', NOW())
		RETURNING id, created_at
	`

	err = tx.QueryRowContext(ctx, query,
		q.InquiryID, q.ProductID, items, q.TotalAmount, q.Status, q.ValidUntil,
		q.Terms, q.Notes,
	).Scan(&q.ID, &q.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating quote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing quote: %w", err)
	}

	return nil
}

func (s *Store) GetQuote(ctx context.Context, id uuid.UUID) (*quote.Quote, error) {
	query := `SELECT ` + selectQuoteColumns + ` FROM quotes WHERE id = $1`

	q, err := scanQuote(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, quote.ErrNotFound
		}

		return nil, fmt.Errorf("getting quote: %w", err)
	}

	return q, nil
}

func (s *Store) ListQuotes(ctx context.Context, filter quote.ListFilter) ([]*quote.Quote, error) {
	query := `SELECT ` + selectQuoteColumns + ` FROM quotes WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.InquiryID != nil {
		query += fmt.Sprintf(" AND inquiry_id = $%d", argIdx)

		args = append(args, *filter.InquiryID)
		argIdx++
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}
	defer rows.Close()

	var quotes []*quote.Quote

	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning quote: %w", err)
		}

		quotes = append(quotes, q)
	}

	return quotes, rows.Err()
}

// Resolve applies a terminal status guarded by status = pending, stamping
// the matching timestamp column.
func (s *Store) Resolve(ctx context.Context, id uuid.UUID, to quote.Status, reason string) error {
	var query string

	switch to {
	case quote.StatusAccepted:
		query = `UPDATE quotes SET status = $1, accepted_at = NOW() WHERE id = $2 AND status = 'pending'`
	case quote.StatusRejected:
		query = `UPDATE quotes SET status = $1, rejected_at = NOW(), reject_reason = $3 WHERE id = $2 AND status = 'pending'`
	case quote.StatusExpired:
		query = `UPDATE quotes SET status = $1 WHERE id = $2 AND status = 'pending'`
	default:
		return &quote.InvalidTransitionError{From: quote.StatusPending, To: to}
	}

	args := []any{to, id}
	if to == quote.StatusRejected {
		args = append(args, reason)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("resolving quote: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return quote.ErrNotFound
	}

	return nil
}

type convertTx struct {
	tx      *sql.Tx
	quoteID uuid.UUID
}

// BeginConvert opens the conversion transaction. The quote row is locked on
// first read, so two concurrent conversions serialize and the loser sees
// the order link.
func (s *Store) BeginConvert(ctx context.Context, quoteID uuid.UUID) (quote.ConvertTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning convert tx: %w", err)
	}

	return &convertTx{tx: tx, quoteID: quoteID}, nil
}

func (c *convertTx) Commit() error   { return c.tx.Commit() }
func (c *convertTx) Rollback() error { return c.tx.Rollback() }

func (c *convertTx) Quote(ctx context.Context) (*quote.Quote, error) {
	query := `SELECT ` + selectQuoteColumns + ` FROM quotes WHERE id = $1 FOR UPDATE`

	q, err := scanQuote(c.tx.QueryRowContext(ctx, query, c.quoteID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, quote.ErrNotFound
		}

		return nil, fmt.Errorf("locking quote: %w", err)
	}

	return q, nil
}

func (c *convertTx) CreateOrder(ctx context.Context, o *order.Order) error {
	return orderstore.InsertTx(ctx, c.tx, o)
}

func (c *convertTx) LinkOrder(ctx context.Context, orderID uuid.UUID) error {
	res, err := c.tx.ExecContext(ctx,
		`UPDATE quotes SET order_id = $1 WHERE id = $2 AND order_id IS NULL`,
		orderID, c.quoteID,
	)
	if err != nil {
		return fmt.Errorf("linking order: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return quote.ErrAlreadyConverted
	}

	return nil
}

func (c *convertTx) ReserveCredit(ctx context.Context, accountID uuid.UUID, amount int64) (uuid.UUID, error) {
	r, err := creditstore.ReserveTx(ctx, c.tx, accountID, amount)
	if err != nil {
		return uuid.Nil, err
	}

	return r.ID, nil
}
