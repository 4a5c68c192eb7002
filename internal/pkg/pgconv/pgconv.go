package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

var ErrInvalidNumeric = errors.New("numeric value is NaN or infinite")

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
)

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func StringFromPgtype(pt pgtype.Text) string {
	if !pt.Valid {
		return ""
	}
	return pt.String
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	t := pt.Time
	return &t
}

// TimeOfDayFromPgtype places a postgres time on the zero date in UTC.
func TimeOfDayFromPgtype(pt pgtype.Time) time.Time {
	return time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(pt.Microseconds) * time.Microsecond)
}

func TimeOfDayToPgtype(t time.Time) pgtype.Time {
	h, m, s := t.Clock()
	us := (int64(h)*3600+int64(m)*60+int64(s))*1_000_000 + int64(t.Nanosecond()/1000)
	return pgtype.Time{Microseconds: us, Valid: true}
}

func DecimalFromNumeric(pn pgtype.Numeric) (decimal.Decimal, error) {
	if !pn.Valid {
		return decimal.Zero, nil
	}
	if pn.NaN || pn.InfinityModifier != pgtype.Finite {
		return decimal.Zero, ErrInvalidNumeric
	}
	if pn.Int == nil {
		return decimal.Zero, nil
	}
	return decimal.NewFromBigInt(pn.Int, pn.Exp), nil
}

func DecimalPtrFromNumeric(pn pgtype.Numeric) (*decimal.Decimal, error) {
	if !pn.Valid {
		return nil, nil
	}
	d, err := DecimalFromNumeric(pn)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func NumericFromDecimal(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func UUIDsToPgtype(ids []uuid.UUID) []pgtype.UUID {
	out := make([]pgtype.UUID, len(ids))
	for i, id := range ids {
		out[i] = UUIDToPgtype(id)
	}
	return out
}

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

func IsUniqueViolation(err error) bool {
	return hasCode(err, pgErrUniqueViolation)
}

func IsForeignKeyViolation(err error) bool {
	return hasCode(err, pgErrForeignKeyViolation)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
