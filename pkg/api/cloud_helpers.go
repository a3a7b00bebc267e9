package api

import (
	"context"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/simple-container-com/pg-init/pkg/api/logger"
)

type CloudHelperType string

const ScCloudHelperTypeEnvVariable = "SC_CLOUD_HELPER_TYPE"

type (
	CloudHelperInitFunc     func(opts ...CloudHelperOption) (CloudHelper, error)
	CloudHelpersRegisterMap map[CloudHelperType]CloudHelperInitFunc
)

var cloudHelpersConfigMapping = CloudHelpersRegisterMap{}

type CloudHelper interface {
	Run() error
	SetLogger(l logger.Logger)
	SetContext(ctx context.Context)
}

type CloudHelperOption func(c CloudHelper) error

func WithLogger(l logger.Logger) CloudHelperOption {
	return func(c CloudHelper) error {
		c.SetLogger(l)
		return nil
	}
}

// WithContext sets the base context the helper derives its invocation contexts from.
func WithContext(ctx context.Context) CloudHelperOption {
	return func(c CloudHelper) error {
		c.SetContext(ctx)
		return nil
	}
}

func RegisterCloudHelper(mapping CloudHelpersRegisterMap) {
	cloudHelpersConfigMapping = lo.Assign(cloudHelpersConfigMapping, mapping)
}

// GetRegisteredCloudHelpers returns all registered cloud helper types
func GetRegisteredCloudHelpers() CloudHelpersRegisterMap {
	return cloudHelpersConfigMapping
}

func NewCloudHelper(chType CloudHelperType, opts ...CloudHelperOption) (CloudHelper, error) {
	init, found := cloudHelpersConfigMapping[chType]
	if !found {
		return nil, errors.Errorf("cloud helper of type %q is not supported", chType)
	}
	return init(opts...)
}
