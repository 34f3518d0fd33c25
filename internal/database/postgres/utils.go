package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/osse101/ShopBot_Go/internal/database/generated"
	"github.com/osse101/ShopBot_Go/internal/domain"
)

// store holds the pool shared by the repositories
type store struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

func newStore(db *pgxpool.Pool) store {
	return store{
		db: db,
		q:  generated.New(db),
	}
}

// begin starts a transaction and returns a unit of work bound to it
func (s store) begin(ctx context.Context) (*unitOfWork, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &unitOfWork{
		tx: tx,
		q:  s.q.WithTx(tx),
	}, nil
}

// ---- Type conversion helpers ----

func textToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

// ptrToText converts a string pointer to pgtype.Text
func ptrToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// strToText converts a string to pgtype.Text
func strToText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

// decimalToNumeric converts a decimal into a valid pgtype.Numeric
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

// decimalPtrToNumeric converts an optional decimal; nil becomes SQL NULL
func decimalPtrToNumeric(d *decimal.Decimal) pgtype.Numeric {
	if d == nil {
		return pgtype.Numeric{Valid: false}
	}
	return decimalToNumeric(*d)
}

// numericToDecimal converts a NOT NULL numeric column
func numericToDecimal(n pgtype.Numeric) (decimal.Decimal, error) {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite {
		return decimal.Zero, fmt.Errorf("%s: %v", ErrMsgInvalidNumeric, n)
	}
	if n.Int == nil {
		return decimal.Zero, nil
	}
	return decimal.NewFromBigInt(n.Int, n.Exp), nil
}

// numericToDecimalPtr converts a nullable numeric column
func numericToDecimalPtr(n pgtype.Numeric) (*decimal.Decimal, error) {
	if !n.Valid {
		return nil, nil
	}
	d, err := numericToDecimal(n)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// quantityToInt4 narrows a quantity to the column type
func quantityToInt4(q int) (int32, error) {
	if q < math.MinInt32 || q > math.MaxInt32 {
		return 0, fmt.Errorf("%s: %w", ErrMsgQuantityOutOfRange, domain.ErrInvalidQuantity)
	}
	return int32(q), nil
}

// pgErrorCode returns the SQLSTATE of err, or "" when err is not a server error
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
