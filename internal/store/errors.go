package store

import (
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mmcdole/disctrackr/internal/domain"
)

func constraintError(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrConstraint, msg)
}

// mapSQLError translates driver constraint failures to domain.ErrConstraint
func mapSQLError(err error) error {
	if isConstraintError(err) {
		return fmt.Errorf("%w: %v", domain.ErrConstraint, err)
	}
	return err
}

// isConstraintError matches SQLITE_CONSTRAINT and its extended codes
// (CHECK, NOT NULL, UNIQUE, PRIMARY KEY)
func isConstraintError(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}
