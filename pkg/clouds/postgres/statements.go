package postgres

import (
	"github.com/jackc/pgx/v5"
)

const (
	createExtensionSQL  = "CREATE EXTENSION IF NOT EXISTS vector"
	extensionVersionSQL = "SELECT extversion FROM pg_extension WHERE extname = 'vector'"
	vectorRoundTripSQL  = "SELECT $1::vector"
	roleExistsSQL       = "SELECT EXISTS (SELECT 1 FROM pg_roles WHERE rolname = $1)"
)

// createRoleSQL expects the password as $1. Utility statements take no bind parameters,
// so it must be executed with the simple protocol, which interpolates $1 client side.
func createRoleSQL(role string) string {
	return "CREATE ROLE " + quoteIdent(role) + " WITH CREATEDB LOGIN INHERIT PASSWORD $1"
}

func grantRoleSQL(grantRole, role string) string {
	return "GRANT " + quoteIdent(grantRole) + " TO " + quoteIdent(role)
}

func quoteIdent(name string) string {
	return pgx.Identifier{name}.Sanitize()
}
