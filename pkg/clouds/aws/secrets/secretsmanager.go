package secrets

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/pkg/errors"
)

// SecretsManagerAPI is the subset of the Secrets Manager client used here.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

type secretsManagerStore struct {
	client SecretsManagerAPI
}

func NewSecretsManagerStore(ctx context.Context) (Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load aws config")
	}
	return NewSecretsManagerStoreWithClient(secretsmanager.NewFromConfig(cfg)), nil
}

func NewSecretsManagerStoreWithClient(client SecretsManagerAPI) Store {
	return &secretsManagerStore{client: client}
}

func (s *secretsManagerStore) GetSecretString(ctx context.Context, secretID string) (string, error) {
	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to get secret value")
	}
	if out.SecretString == nil {
		return "", errors.Errorf("secret has no string value")
	}
	return aws.ToString(out.SecretString), nil
}
