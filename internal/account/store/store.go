package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/soletrade/soletrade/internal/account"
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

const selectAccountColumns = `
	id, company_name, business_type, status, credit_limit, credit_used,
	payment_terms, contact_name, contact_email, contact_phone, created_at, updated_at
`

func scanAccount(s scanner) (*account.BusinessAccount, error) {
	var a account.BusinessAccount

	var businessType, status, terms string

	if err := s.Scan(
		&a.ID, &a.CompanyName, &businessType, &status, &a.CreditLimit, &a.CreditUsed,
		&terms, &a.ContactName, &a.ContactEmail, &a.ContactPhone, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	a.BusinessType = account.BusinessType(businessType)
	a.Status = account.Status(status)
	a.PaymentTerms = account.PaymentTerms(terms)

	return &a, nil
}

func (s *Store) CreateAccount(ctx context.Context, a *account.BusinessAccount) error {
	query := `
		INSERT INTO business_accounts
			(company_name, business_type, status, credit_limit, credit_used,
			 payment_terms, contact_name, contact_email, contact_phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		a.CompanyName,
		a.BusinessType,
		a.Status,
		a.CreditLimit,
		a.PaymentTerms,
		a.ContactName,
		a.ContactEmail,
		a.ContactPhone,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*account.BusinessAccount, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM business_accounts WHERE id = $1`

	a, err := scanAccount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return a, nil
}

func (s *Store) ListAccounts(ctx context.Context, filter account.ListFilter) ([]*account.BusinessAccount, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM business_accounts`

	var args []any

	if filter.Status != nil {
		query += " WHERE status = $1"

		args = append(args, *filter.Status)
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*account.BusinessAccount

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status account.Status) error {
	query := `
		UPDATE business_accounts
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	res, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating account status: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return account.ErrNotFound
	}

	return nil
}

// UpdateCreditLimit refuses to drop the limit below the credit already in
// use, keeping the ledger invariant intact under concurrent reservations.
func (s *Store) UpdateCreditLimit(ctx context.Context, id uuid.UUID, limit int64) error {
	query := `
		UPDATE business_accounts
		SET credit_limit = $1, updated_at = NOW()
		WHERE id = $2 AND credit_used <= $1
	`

	res, err := s.db.ExecContext(ctx, query, limit, id)
	if err != nil {
		return fmt.Errorf("updating credit limit: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return account.ErrNotFound
	}

	return nil
}
