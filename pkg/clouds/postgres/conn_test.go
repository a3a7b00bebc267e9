package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5"
	. "github.com/onsi/gomega"
)

func TestConnectParams_ConnString(t *testing.T) {
	RegisterTestingT(t)

	p := ConnectParams{
		Host:     "cluster.example.us-east-1.rds.amazonaws.com",
		Port:     5432,
		Database: "rag_api",
		User:     "postgres",
		Password: "p@ss:w/rd?#",
		SSLMode:  "require",
	}

	cfg, err := pgx.ParseConfig(p.ConnString())
	Expect(err).ToNot(HaveOccurred())
	Expect(cfg.Host).To(Equal(p.Host))
	Expect(cfg.Port).To(Equal(uint16(5432)))
	Expect(cfg.Database).To(Equal("rag_api"))
	Expect(cfg.User).To(Equal("postgres"))
	Expect(cfg.Password).To(Equal("p@ss:w/rd?#"))
	Expect(cfg.TLSConfig).ToNot(BeNil())
}

func TestStatements(t *testing.T) {
	RegisterTestingT(t)

	Expect(createRoleSQL("rag")).To(Equal(`CREATE ROLE "rag" WITH CREATEDB LOGIN INHERIT PASSWORD $1`))
	Expect(grantRoleSQL("rds_superuser", "rag")).To(Equal(`GRANT "rds_superuser" TO "rag"`))
	Expect(grantRoleSQL("rds_superuser", `ra"g`)).To(Equal(`GRANT "rds_superuser" TO "ra""g"`))
}
