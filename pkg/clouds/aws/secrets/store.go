package secrets

import (
	"context"

	"github.com/pkg/errors"

	"github.com/simple-container-com/pg-init/pkg/api"
)

//go:generate ../../../../bin/mockery --name Store --output ./mocks --filename store_mock.go --outpkg secrets_mocks --structname StoreMock

// Store resolves a secret id (name or ARN) to its string value.
type Store interface {
	GetSecretString(ctx context.Context, secretID string) (string, error)
}

// New creates a store backed by the given provider. Stores are meant to live for a single
// invocation: nothing fetched through them outlives the store itself.
func New(ctx context.Context, provider string) (Store, error) {
	switch provider {
	case api.SecretsProviderSDK:
		return NewSecretsManagerStore(ctx)
	case api.SecretsProviderCache:
		return NewCacheStore()
	default:
		return nil, errors.Errorf("secrets provider %q is not supported", provider)
	}
}
