//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"
	"time"

	"hotel-backoffice/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericToDecimal(t *testing.T) {
	testCases := []struct {
		name    string
		in      pgtype.Numeric
		want    string
		wantErr bool
	}{
		{name: "scaled value", in: pgtype.Numeric{Int: big.NewInt(33600), Exp: -2, Valid: true}, want: "336"},
		{name: "null becomes zero", in: pgtype.Numeric{}, want: "0"},
		{name: "NaN rejected", in: pgtype.Numeric{NaN: true, Valid: true}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pgconv.NumericToDecimal(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, pgconv.ErrInvalidNumeric)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "got %s", got)
		})
	}
}

func TestDecimalNumericRoundTripKeepsScale(t *testing.T) {
	d := decimal.RequireFromString("1234.50")
	back, err := pgconv.NumericToDecimal(pgconv.DecimalToNumeric(d))
	require.NoError(t, err)
	assert.Equal(t, "1234.50", back.StringFixed(2))
}

func TestDateToPgtypeDropsClock(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	pd := pgconv.DateToPgtype(time.Date(2026, 3, 14, 23, 30, 0, 0, loc))
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), pgconv.DateFromPgtype(pd))
}
