package secrets

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/simple-container-com/pg-init/pkg/api"
)

// MasterCredentials is the cluster master user secret as generated by RDS.
type MasterCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c MasterCredentials) Validate() error {
	if c.Username == "" {
		return errors.New(`field "username" is missing`)
	}
	if c.Password == "" {
		return errors.New(`field "password" is missing`)
	}
	return nil
}

// RoleCredentials is the application role secret. Only the password is required; the rest
// is written by the infrastructure for consumers of the role.
type RoleCredentials struct {
	Password string `json:"POSTGRES_PASSWORD"`
	User     string `json:"POSTGRES_USER,omitempty"`
	Host     string `json:"DB_HOST,omitempty"`
	Database string `json:"POSTGRES_DB,omitempty"`
}

func (c RoleCredentials) Validate() error {
	if c.Password == "" {
		return errors.New(`field "POSTGRES_PASSWORD" is missing`)
	}
	return nil
}

type validatable interface {
	Validate() error
}

// Fetch reads the secret and decodes it into T. Any failure is reported as *api.SecretAccessError.
func Fetch[T validatable](ctx context.Context, store Store, secretID string) (*T, error) {
	raw, err := store.GetSecretString(ctx, secretID)
	if err != nil {
		return nil, &api.SecretAccessError{SecretID: secretID, Err: err}
	}
	var res T
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return nil, &api.SecretAccessError{SecretID: secretID, Err: errors.Wrapf(err, "secret is not valid json")}
	}
	if err := res.Validate(); err != nil {
		return nil, &api.SecretAccessError{SecretID: secretID, Err: err}
	}
	return &res, nil
}

func FetchMaster(ctx context.Context, store Store, secretID string) (*MasterCredentials, error) {
	return Fetch[MasterCredentials](ctx, store, secretID)
}

func FetchRole(ctx context.Context, store Store, secretID string) (*RoleCredentials, error) {
	return Fetch[RoleCredentials](ctx, store, secretID)
}
