package secrets

import (
	"context"

	"github.com/aws/aws-secretsmanager-caching-go/secretcache"
	"github.com/pkg/errors"
)

type cacheStore struct {
	cache *secretcache.Cache
}

// NewCacheStore creates a store on top of a fresh secretcache.Cache.
func NewCacheStore() (Store, error) {
	cache, err := secretcache.New()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to init secrets cache")
	}
	return &cacheStore{cache: cache}, nil
}

func (s *cacheStore) GetSecretString(ctx context.Context, secretID string) (string, error) {
	value, err := s.cache.GetSecretStringWithContext(ctx, secretID)
	if err != nil {
		return "", errors.Wrapf(err, "failed to get secret value")
	}
	return value, nil
}
