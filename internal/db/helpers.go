package db

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// NullIfEmpty helps store optional strings without wiping existing data.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// NullIfZero stores an optional integer foreign key as NULL when unset.
func NullIfZero(n int64) any {
	if n == 0 {
		return nil
	}
	return n
}

// NullFloatPtr converts sql.NullFloat64 into a nil-able pointer.
func NullFloatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

// MySQL error numbers for constraint violations.
const (
	mysqlErrDuplicateEntry = 1062
	mysqlErrRowIsReferenced = 1451
	mysqlErrNoReferencedRow = 1452
)

// IsDuplicateEntry reports a unique-key violation (phone, email, license,
// vehicle number).
func IsDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlErrDuplicateEntry
}

// IsForeignKeyViolation reports a missing or still-referenced row.
func IsForeignKeyViolation(err error) bool {
	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return false
	}
	return me.Number == mysqlErrRowIsReferenced || me.Number == mysqlErrNoReferencedRow
}
