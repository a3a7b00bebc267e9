package postgres

import (
	"context"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/pgvector/pgvector-go"
	"github.com/pkg/errors"

	"github.com/simple-container-com/pg-init/pkg/api"
	"github.com/simple-container-com/pg-init/pkg/api/logger"
)

var testVector = []float32{1, 2, 3}

type Params struct {
	Connection   ConnectParams
	RoleName     string
	RolePassword string
	GrantRole    string
	VerifyVector bool
}

type Result struct {
	ExtensionVersion string
	RoleCreated      bool
}

type Initializer struct {
	dialer Dialer
	log    logger.Logger
}

func NewInitializer(dialer Dialer, log logger.Logger) *Initializer {
	return &Initializer{
		dialer: dialer,
		log:    log,
	}
}

// Run opens one connection and executes the bootstrap statements in order. The first failing
// step aborts the run; the optional pgvector check comes after the grant. The connection,
// once opened, is closed before Run returns.
func (i *Initializer) Run(ctx context.Context, p Params) (*Result, error) {
	conn, err := i.dialer.Connect(ctx, p.Connection)
	if err != nil {
		return nil, &api.ConnectionError{Host: p.Connection.Host, Port: p.Connection.Port, Err: err}
	}
	defer func() {
		if err := conn.Close(ctx); err != nil {
			i.log.Warn(ctx, "failed to close PostgreSQL connection: %v", err)
			return
		}
		i.log.Info(ctx, "PostgreSQL connection closed")
	}()
	i.log.Info(ctx, "connected to %s:%d/%s as %q", p.Connection.Host, p.Connection.Port, p.Connection.Database, p.Connection.User)

	res := &Result{}

	if _, err := conn.Exec(ctx, createExtensionSQL); err != nil {
		return nil, i.sqlError(ctx, "failed to create pgvector extension", err)
	}
	i.log.Info(ctx, "Created pgvector extension")

	var exists bool
	if err := conn.QueryRow(ctx, roleExistsSQL, p.RoleName).Scan(&exists); err != nil {
		return nil, i.sqlError(ctx, "failed to check role existence", err)
	}
	if !exists {
		if _, err := conn.Exec(ctx, createRoleSQL(p.RoleName), pgx.QueryExecModeSimpleProtocol, p.RolePassword); err != nil {
			return nil, i.sqlError(ctx, "failed to create role "+p.RoleName, err)
		}
		res.RoleCreated = true
		i.log.Info(ctx, "Created %s role", p.RoleName)
	} else {
		i.log.Info(ctx, "Role %q already exists", p.RoleName)
	}

	if _, err := conn.Exec(ctx, grantRoleSQL(p.GrantRole, p.RoleName)); err != nil {
		return nil, i.sqlError(ctx, "failed to grant "+p.GrantRole+" to "+p.RoleName, err)
	}
	i.log.Info(ctx, "Granted %s to %s role", p.GrantRole, p.RoleName)

	// runs last so that a failing check never leaves the role ungranted
	if p.VerifyVector {
		version, err := i.verifyVector(ctx, conn)
		if err != nil {
			return nil, i.sqlError(ctx, "failed to verify pgvector extension", err)
		}
		res.ExtensionVersion = version
		i.log.Info(ctx, "pgvector %s is usable", version)
	}

	return res, nil
}

func (i *Initializer) verifyVector(ctx context.Context, conn Conn) (string, error) {
	var version string
	if err := conn.QueryRow(ctx, extensionVersionSQL).Scan(&version); err != nil {
		return "", errors.Wrapf(err, "failed to read extension version")
	}
	if err := conn.LoadVectorTypes(ctx); err != nil {
		return "", errors.Wrapf(err, "failed to register vector types")
	}
	var out pgvector.Vector
	if err := conn.QueryRow(ctx, vectorRoundTripSQL, pgvector.NewVector(testVector)).Scan(&out); err != nil {
		return "", errors.Wrapf(err, "failed to round-trip test vector")
	}
	if !slices.Equal(out.Slice(), testVector) {
		return "", errors.Errorf("test vector came back as %v", out.Slice())
	}
	return version, nil
}

func (i *Initializer) sqlError(ctx context.Context, step string, err error) error {
	if pe, ok := AsPgError(err); ok {
		i.log.Error(ctx, "Database error: %s (SQLSTATE %s)", pe.Message, pe.Code)
	} else {
		i.log.Error(ctx, "Database error: %v", err)
	}
	return &api.SQLExecutionError{Step: step, Err: err}
}
