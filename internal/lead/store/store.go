package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/soletrade/soletrade/internal/lead"
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

const selectLeadColumns = `
	id, buyer_name, buyer_email, buyer_phone, company_name, city,
	business_account_id, product_id, quantity_required, business_type,
	inquiry_type, priority, status, products, notes,
	follow_up_date, follow_up_notes, assigned_to, created_at, updated_at
`

func scanLead(s scanner) (*lead.Lead, error) {
	var l lead.Lead

	var priority, status string

	var products []byte

	if err := s.Scan(
		&l.ID, &l.BuyerName, &l.BuyerEmail, &l.BuyerPhone, &l.CompanyName, &l.City,
		&l.BusinessAccountID, &l.ProductID, &l.QuantityRequired, &l.BusinessType,
		&l.InquiryType, &priority, &status, &products, &l.Notes,
		&l.FollowUpDate, &l.FollowUpNotes, &l.AssignedTo, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}

	l.Priority = lead.Priority(priority)
	l.Status = lead.Status(status)

	if len(products) > 0 {
		if err := json.Unmarshal(products, &l.Products); err != nil {
			return nil, fmt.Errorf("decoding lead products: %w", err)
		}
	}

	return &l, nil
}

func (s *Store) CreateLead(ctx context.Context, l *lead.Lead) error {
	products, err := json.Marshal(l.Products)
	if err != nil {
		return fmt.Errorf("encoding lead products: %w", err)
	}

	query := `
		INSERT INTO leads
			(buyer_name, buyer_email, buyer_phone, company_name, city,
			 business_account_id, product_id, quantity_required, business_type,
			 inquiry_type, priority, status, products, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = s.db.QueryRowContext(ctx, query,
		l.BuyerName, l.BuyerEmail, l.BuyerPhone, l.CompanyName, l.City,
		l.BusinessAccountID, l.ProductID, l.QuantityRequired, l.BusinessType,
		l.InquiryType, l.Priority, l.Status, products, l.Notes,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating lead: %w", err)
	}

	return nil
}

func (s *Store) GetLead(ctx context.Context, id uuid.UUID) (*lead.Lead, error) {
	query := `SELECT ` + selectLeadColumns + ` FROM leads WHERE id = $1`

	l, err := scanLead(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, lead.ErrNotFound
		}

		return nil, fmt.Errorf("getting lead: %w", err)
	}

	return l, nil
}

func (s *Store) ListLeads(ctx context.Context, filter lead.ListFilter) ([]*lead.Lead, error) {
	query := `SELECT ` + selectLeadColumns + ` FROM leads WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.AssignedTo != nil {
		query += fmt.Sprintf(" AND assigned_to = $%d", argIdx)

		args = append(args, *filter.AssignedTo)
		argIdx++
	}

	if filter.AccountID != nil {
		query += fmt.Sprintf(" AND business_account_id = $%d", argIdx)

		args = append(args, *filter.AccountID)
		argIdx++
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	defer rows.Close()

	var leads []*lead.Lead

	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning lead: %w", err)
		}

		leads = append(leads, l)
	}

	return leads, rows.Err()
}

// UpdateStatus is guarded by the expected current status so concurrent
// admin actions cannot stack transitions on a stale read.
func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, from, to lead.Status) error {
	query := `
		UPDATE leads
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	res, err := s.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return fmt.Errorf("updating lead status: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return lead.ErrNotFound
	}

	return nil
}

func (s *Store) UpdateAssignee(ctx context.Context, id, adminID uuid.UUID) error {
	query := `
		UPDATE leads
		SET assigned_to = $1, updated_at = NOW()
		WHERE id = $2
	`

	res, err := s.db.ExecContext(ctx, query, adminID, id)
	if err != nil {
		return fmt.Errorf("assigning lead: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return lead.ErrNotFound
	}

	return nil
}

func (s *Store) UpdateFollowUp(ctx context.Context, id uuid.UUID, date time.Time, notes string) error {
	query := `
		UPDATE leads
		SET follow_up_date = $1, follow_up_notes = $2, updated_at = NOW()
		WHERE id = $3
	`

	res, err := s.db.ExecContext(ctx, query, date, notes, id)
	if err != nil {
		return fmt.Errorf("scheduling follow-up: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return lead.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteLead(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting lead: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return lead.ErrNotFound
	}

	return nil
}
