package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/soletrade/soletrade/internal/account"
	"github.com/soletrade/soletrade/internal/credit"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Reserve(ctx context.Context, accountID uuid.UUID, amount int64) (*credit.Receipt, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning reserve tx: %w", err)
	}
	defer tx.Rollback()

	r, err := ReserveTx(ctx, tx, accountID, amount)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing reserve: %w", err)
	}

	return r, nil
}

// ReserveTx runs the reservation inside the caller's transaction. The
// SELECT ... FOR UPDATE serializes reservations per account so two
// concurrent reserves cannot both pass the limit check.
func ReserveTx(ctx context.Context, tx *sql.Tx, accountID uuid.UUID, amount int64) (*credit.Receipt, error) {
	var limit, used int64

	err := tx.QueryRowContext(ctx,
		`SELECT credit_limit, credit_used FROM business_accounts WHERE id = $1 FOR UPDATE`,
		accountID,
	).Scan(&limit, &used)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("locking account: %w", err)
	}

	if err := credit.Check(accountID, limit, used, amount); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE business_accounts SET credit_used = credit_used + $1, updated_at = NOW() WHERE id = $2`,
		amount, accountID,
	); err != nil {
		return nil, fmt.Errorf("incrementing credit used: %w", err)
	}

	r := &credit.Receipt{AccountID: accountID, Amount: amount}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO credit_reservations (account_id, amount, released, created_at)
		 VALUES ($1, $2, FALSE, NOW())
		 RETURNING id, created_at`,
		accountID, amount,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting reservation: %w", err)
	}

	return r, nil
}

// Release flips the receipt exactly once; the released guard makes a second
// release affect zero rows, so retries are harmless.
func (s *Store) Release(ctx context.Context, receiptID uuid.UUID) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning release tx: %w", err)
	}
	defer tx.Rollback()

	var accountID uuid.UUID

	var amount int64

	err = tx.QueryRowContext(ctx,
		`UPDATE credit_reservations
		 SET released = TRUE, released_at = NOW()
		 WHERE id = $1 AND released = FALSE
		 RETURNING account_id, amount`,
		receiptID,
	).Scan(&accountID, &amount)
	if err != nil {
		if err == sql.ErrNoRows {
			// Already released, or unknown. Distinguish so callers still
			// learn about bad receipt ids.
			var exists bool
			if err := tx.QueryRowContext(ctx,
				`SELECT TRUE FROM credit_reservations WHERE id = $1`, receiptID,
			).Scan(&exists); err != nil {
				if err == sql.ErrNoRows {
					return 0, credit.ErrNotFound
				}

				return 0, fmt.Errorf("checking reservation: %w", err)
			}

			return 0, tx.Commit()
		}

		return 0, fmt.Errorf("releasing reservation: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE business_accounts SET credit_used = credit_used - $1, updated_at = NOW() WHERE id = $2`,
		amount, accountID,
	); err != nil {
		return 0, fmt.Errorf("decrementing credit used: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing release: %w", err)
	}

	return amount, nil
}

func (s *Store) GetReceipt(ctx context.Context, id uuid.UUID) (*credit.Receipt, error) {
	query := `
		SELECT id, account_id, amount, released, created_at, released_at
		FROM credit_reservations
		WHERE id = $1
	`

	var r credit.Receipt
	if err := s.db.QueryRowContext(ctx, query, id).Scan(
		&r.ID, &r.AccountID, &r.Amount, &r.Released, &r.CreatedAt, &r.ReleasedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, credit.ErrNotFound
		}

		return nil, fmt.Errorf("getting reservation: %w", err)
	}

	return &r, nil
}
