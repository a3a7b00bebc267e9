package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	// InsufficientPrivilegeCode is raised when the master user may not run a statement.
	InsufficientPrivilegeCode = "42501"
	// UndefinedObjectCode is raised e.g. by GRANT with an unknown role.
	UndefinedObjectCode = "42704"
)

func AsPgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
