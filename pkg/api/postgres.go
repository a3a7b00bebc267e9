package api

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	DefaultRoleName        = "rag"
	DefaultGrantRole       = "rds_superuser"
	DefaultSSLMode         = "prefer"
	SecretsProviderSDK     = "secretsmanager"
	SecretsProviderCache   = "secretcache"
	DefaultSecretsProvider = SecretsProviderSDK
)

var (
	roleNameRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]{0,62}$`)
	sslModes       = []string{"disable", "allow", "prefer", "require", "verify-ca", "verify-full"}
)

// PostgresInitConfig is everything a single postgres init invocation needs. It is read
// from the environment once per invocation and passed down explicitly.
type PostgresInitConfig struct {
	MasterSecretArn string
	RoleSecretArn   string
	DatabaseName    string
	Host            string
	Port            int
	RoleName        string
	GrantRole       string
	SSLMode         string
	VerifyVector    bool
	SecretsProvider string
}

// ReadPostgresInitConfig builds the config from the given lookup function (usually os.Getenv).
func ReadPostgresInitConfig(getenv func(string) string) (*PostgresInitConfig, error) {
	env := PostgresInitEnv
	value := func(name string) string {
		return strings.TrimSpace(getenv(name))
	}

	cfg := &PostgresInitConfig{
		MasterSecretArn: value(env.MasterSecretArn),
		RoleSecretArn:   value(env.RoleSecretArn),
		DatabaseName:    value(env.DatabaseName),
		Host:            value(env.ClusterEndpoint),
		RoleName:        lo.Ternary(value(env.RoleName) != "", value(env.RoleName), DefaultRoleName),
		GrantRole:       lo.Ternary(value(env.GrantRole) != "", value(env.GrantRole), DefaultGrantRole),
		SSLMode:         lo.Ternary(value(env.SSLMode) != "", value(env.SSLMode), DefaultSSLMode),
		SecretsProvider: lo.Ternary(value(env.SecretsProvider) != "", value(env.SecretsProvider), DefaultSecretsProvider),
		VerifyVector:    true,
	}

	for _, name := range []string{env.MasterSecretArn, env.RoleSecretArn, env.DatabaseName, env.ClusterEndpoint, env.Port} {
		if value(name) == "" {
			return nil, &ConfigError{Variable: name, Err: errors.New("environment variable is not set")}
		}
	}

	port, err := strconv.Atoi(value(env.Port))
	if err != nil {
		return nil, &ConfigError{Variable: env.Port, Err: errors.Wrapf(err, "port must be an integer")}
	}
	if port <= 0 || port > 65535 {
		return nil, &ConfigError{Variable: env.Port, Err: errors.Errorf("port %d is out of range", port)}
	}
	cfg.Port = port

	if v := value(env.VerifyVector); v != "" {
		verify, err := strconv.ParseBool(v)
		if err != nil {
			return nil, &ConfigError{Variable: env.VerifyVector, Err: errors.Wrapf(err, "expected a boolean")}
		}
		cfg.VerifyVector = verify
	}

	if !lo.Contains(sslModes, cfg.SSLMode) {
		return nil, &ConfigError{Variable: env.SSLMode, Err: errors.Errorf("unsupported sslmode %q", cfg.SSLMode)}
	}
	if !lo.Contains([]string{SecretsProviderSDK, SecretsProviderCache}, cfg.SecretsProvider) {
		return nil, &ConfigError{Variable: env.SecretsProvider, Err: errors.Errorf("unsupported secrets provider %q", cfg.SecretsProvider)}
	}
	if !roleNameRegexp.MatchString(cfg.RoleName) {
		return nil, &ConfigError{Variable: env.RoleName, Err: errors.Errorf("%q is not a valid role name", cfg.RoleName)}
	}
	if !roleNameRegexp.MatchString(cfg.GrantRole) {
		return nil, &ConfigError{Variable: env.GrantRole, Err: errors.Errorf("%q is not a valid role name", cfg.GrantRole)}
	}

	return cfg, nil
}
