package repositories

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// ErrDuplicate is returned when an insert collides with a unique constraint
var ErrDuplicate = errors.New("duplicate record")

func wrapInsertError(what string, err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) &&
		(sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique || sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey) {
		return fmt.Errorf("error creating %s: %w: %v", what, ErrDuplicate, err)
	}
	return fmt.Errorf("error creating %s: %w", what, err)
}
