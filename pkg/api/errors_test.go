package api

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

func TestSecretAccessError(t *testing.T) {
	RegisterTestingT(t)

	cause := errors.New("no region configured")

	withID := &SecretAccessError{SecretID: "arn:aws:secretsmanager:us-east-1:1:secret:master", Err: cause}
	Expect(withID.Error()).To(Equal(`failed to access secret "arn:aws:secretsmanager:us-east-1:1:secret:master": no region configured`))
	Expect(errors.Is(withID, cause)).To(BeTrue())

	storeErr := &SecretAccessError{Err: cause}
	Expect(storeErr.Error()).To(Equal("secrets store is unavailable: no region configured"))
	Expect(storeErr.Error()).ToNot(ContainSubstring("arn:"))
}
