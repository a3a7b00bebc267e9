package secrets

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	. "github.com/onsi/gomega"
)

type fakeSecretsManager struct {
	values map[string]*secretsmanager.GetSecretValueOutput
	calls  []string
}

func (f *fakeSecretsManager) GetSecretValue(_ context.Context, params *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	id := aws.ToString(params.SecretId)
	f.calls = append(f.calls, id)
	if out, ok := f.values[id]; ok {
		return out, nil
	}
	return nil, &types.ResourceNotFoundException{Message: aws.String("Secrets Manager can't find the specified secret.")}
}

func TestSecretsManagerStore(t *testing.T) {
	RegisterTestingT(t)

	client := &fakeSecretsManager{values: map[string]*secretsmanager.GetSecretValueOutput{
		"string": {SecretString: aws.String(`{"username":"postgres","password":"pw"}`)},
		"binary": {SecretBinary: []byte{0x1, 0x2}},
	}}
	store := NewSecretsManagerStoreWithClient(client)
	ctx := context.Background()

	value, err := store.GetSecretString(ctx, "string")
	Expect(err).ToNot(HaveOccurred())
	Expect(value).To(Equal(`{"username":"postgres","password":"pw"}`))

	_, err = store.GetSecretString(ctx, "binary")
	Expect(err).To(MatchError(ContainSubstring("secret has no string value")))

	_, err = store.GetSecretString(ctx, "missing")
	Expect(err).To(MatchError(ContainSubstring("can't find the specified secret")))

	Expect(client.calls).To(Equal([]string{"string", "binary", "missing"}))
}

func TestNew_unsupportedProvider(t *testing.T) {
	RegisterTestingT(t)

	_, err := New(context.Background(), "vault")
	Expect(err).To(MatchError(ContainSubstring(`secrets provider "vault" is not supported`)))
}
