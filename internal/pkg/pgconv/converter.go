package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const (
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeCheckViolation      = "23514"
)

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// DecimalPtrFromNumeric keeps the exact scale stored in PostgreSQL.
func DecimalPtrFromNumeric(pn pgtype.Numeric) *decimal.Decimal {
	if !pn.Valid || pn.NaN || pn.Int == nil {
		return nil
	}
	d := decimal.NewFromBigInt(pn.Int, pn.Exp)
	return &d
}

func DecimalPtrToNumeric(d *decimal.Decimal) pgtype.Numeric {
	if d == nil {
		return pgtype.Numeric{Valid: false}
	}
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

// DateFromPgtype returns the calendar components of a DATE column.
func DateFromPgtype(pd pgtype.Date) (year int, month time.Month, day int, ok bool) {
	if !pd.Valid || pd.InfinityModifier != pgtype.Finite {
		return 0, 0, 0, false
	}
	y, m, d := pd.Time.Date()
	return y, m, d, true
}

func DateToPgtype(year int, month time.Month, day int) pgtype.Date {
	return pgtype.Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

// SecondsFromPgtypeTime converts a TIME column to seconds since midnight.
func SecondsFromPgtypeTime(pt pgtype.Time) (int32, bool) {
	if !pt.Valid {
		return 0, false
	}
	return int32(pt.Microseconds / int64(time.Second/time.Microsecond)), true
}

func SecondsToPgtypeTime(seconds int32) pgtype.Time {
	return pgtype.Time{Microseconds: int64(seconds) * int64(time.Second/time.Microsecond), Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

func IsForeignKeyViolation(err error) bool {
	return hasPgCode(err, pgErrCodeForeignKeyViolation)
}

func IsUniqueViolation(err error) bool {
	return hasPgCode(err, pgErrCodeUniqueViolation)
}

func IsCheckViolation(err error) bool {
	return hasPgCode(err, pgErrCodeCheckViolation)
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
