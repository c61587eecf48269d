package credit_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soletrade/soletrade/internal/credit"
)

func TestCheck(t *testing.T) {
	accountID := uuid.New()

	type testCase struct {
		name          string
		limit         int64
		used          int64
		amount        int64
		wantErr       bool
		wantShortfall int64
	}

	tests := []testCase{
		{
			name:   "WithinLimit",
			limit:  100000,
			used:   20000,
			amount: 50000,
		},
		{
			name:   "ExactlyAtLimit",
			limit:  100000,
			used:   40000,
			amount: 60000,
		},
		{
			name:          "OverLimit",
			limit:         100000,
			used:          99500,
			amount:        1500,
			wantErr:       true,
			wantShortfall: 1000,
		},
		{
			name:   "ZeroUsed",
			limit:  100000,
			used:   0,
			amount: 100000,
		},
		{
			name:          "ZeroLimit",
			limit:         0,
			used:          0,
			amount:        1,
			wantErr:       true,
			wantShortfall: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := credit.Check(accountID, tt.limit, tt.used, tt.amount)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var limitErr *credit.LimitExceededError

			require.ErrorAs(t, err, &limitErr)
			assert.Equal(t, accountID, limitErr.AccountID)
			assert.Equal(t, tt.wantShortfall, limitErr.Shortfall)
		})
	}
}

func TestLimitExceededError_Message(t *testing.T) {
	accountID := uuid.New()
	err := credit.Check(accountID, 100, 50, 100)

	var limitErr *credit.LimitExceededError

	require.True(t, errors.As(err, &limitErr))
	assert.Contains(t, limitErr.Error(), "short by 50")
}
