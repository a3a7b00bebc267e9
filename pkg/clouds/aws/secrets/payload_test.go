package secrets

import (
	"context"
	"errors"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"

	"github.com/simple-container-com/pg-init/pkg/api"
	secrets_mocks "github.com/simple-container-com/pg-init/pkg/clouds/aws/secrets/mocks"
)

const testSecretArn = "arn:aws:secretsmanager:us-east-1:111111111111:secret:test"

func TestFetchMaster(t *testing.T) {
	RegisterTestingT(t)

	testCases := []struct {
		name      string
		value     string
		getErr    error
		want      *MasterCredentials
		wantErrIn string
	}{
		{
			name:  "happy path",
			value: `{"username":"postgres","password":"s3cr3t","engine":"postgres","port":5432}`,
			want:  &MasterCredentials{Username: "postgres", Password: "s3cr3t"},
		},
		{
			name:      "store failure",
			getErr:    errors.New("ResourceNotFoundException: Secrets Manager can't find the specified secret"),
			wantErrIn: "can't find the specified secret",
		},
		{
			name:      "not json",
			value:     "postgres:s3cr3t",
			wantErrIn: "secret is not valid json",
		},
		{
			name:      "missing password",
			value:     `{"username":"postgres"}`,
			wantErrIn: `field "password" is missing`,
		},
		{
			name:      "missing username",
			value:     `{"password":"s3cr3t"}`,
			wantErrIn: `field "username" is missing`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			store := secrets_mocks.NewStoreMock(t)
			store.On("GetSecretString", mock.Anything, testSecretArn).Return(tc.value, tc.getErr).Once()

			got, err := FetchMaster(ctx, store, testSecretArn)
			if tc.wantErrIn != "" {
				Expect(err).To(HaveOccurred())
				var secretErr *api.SecretAccessError
				Expect(errors.As(err, &secretErr)).To(BeTrue())
				Expect(secretErr.SecretID).To(Equal(testSecretArn))
				Expect(err.Error()).To(ContainSubstring(tc.wantErrIn))
				return
			}
			Expect(err).ToNot(HaveOccurred())
			Expect(got).To(Equal(tc.want))
		})
	}
}

func TestFetchRole(t *testing.T) {
	RegisterTestingT(t)

	t.Run("full secret written by infrastructure", func(t *testing.T) {
		store := secrets_mocks.NewStoreMock(t)
		store.On("GetSecretString", mock.Anything, testSecretArn).
			Return(`{"POSTGRES_USER":"rag","DB_HOST":"cluster.local","DB_PORT":5432,"POSTGRES_DB":"rag_api","POSTGRES_PASSWORD":"abcdefghijklmnopqrst"}`, nil)

		got, err := FetchRole(context.Background(), store, testSecretArn)
		Expect(err).ToNot(HaveOccurred())
		Expect(got.Password).To(Equal("abcdefghijklmnopqrst"))
		Expect(got.User).To(Equal("rag"))
		Expect(got.Database).To(Equal("rag_api"))
	})

	t.Run("password only", func(t *testing.T) {
		store := secrets_mocks.NewStoreMock(t)
		store.On("GetSecretString", mock.Anything, testSecretArn).Return(`{"POSTGRES_PASSWORD":"pw"}`, nil)

		got, err := FetchRole(context.Background(), store, testSecretArn)
		Expect(err).ToNot(HaveOccurred())
		Expect(got.Password).To(Equal("pw"))
	})

	t.Run("password missing", func(t *testing.T) {
		store := secrets_mocks.NewStoreMock(t)
		store.On("GetSecretString", mock.Anything, testSecretArn).Return(`{"POSTGRES_USER":"rag"}`, nil)

		_, err := FetchRole(context.Background(), store, testSecretArn)
		Expect(err).To(MatchError(ContainSubstring(`field "POSTGRES_PASSWORD" is missing`)))
	})
}
