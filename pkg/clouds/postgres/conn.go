package postgres

import (
	"context"
	"net"
	"net/url"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxvec "github.com/pgvector/pgvector-go/pgx"
	"github.com/pkg/errors"
)

//go:generate ../../../bin/mockery --name Conn --output ./mocks --filename conn_mock.go --outpkg postgres_mocks --structname ConnMock
//go:generate ../../../bin/mockery --name Dialer --output ./mocks --filename dialer_mock.go --outpkg postgres_mocks --structname DialerMock

const ApplicationName = "pg-init"

// Conn is the single connection used by one initialization run. Statements run outside of
// any transaction, i.e. in autocommit mode.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	// LoadVectorTypes registers pgvector codecs on the connection; the extension must exist.
	LoadVectorTypes(ctx context.Context) error
	Close(ctx context.Context) error
}

type Dialer interface {
	Connect(ctx context.Context, params ConnectParams) (Conn, error)
}

type ConnectParams struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string
}

// ConnString renders params as a postgres:// URL with credentials escaped.
func (p ConnectParams) ConnString() string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.User, p.Password),
		Host:   net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
		Path:   "/" + p.Database,
	}
	if p.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{p.SSLMode}}.Encode()
	}
	return u.String()
}

type pgxDialer struct{}

func NewDialer() Dialer {
	return &pgxDialer{}
}

func (d *pgxDialer) Connect(ctx context.Context, params ConnectParams) (Conn, error) {
	cfg, err := pgx.ParseConfig(params.ConnString())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse connection config")
	}
	cfg.RuntimeParams["application_name"] = ApplicationName

	conn, err := pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &pgxConn{Conn: conn}, nil
}

type pgxConn struct {
	*pgx.Conn
}

func (c *pgxConn) LoadVectorTypes(ctx context.Context) error {
	return pgxvec.RegisterTypes(ctx, c.Conn)
}
