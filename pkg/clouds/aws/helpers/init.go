package helpers

import "github.com/simple-container-com/pg-init/pkg/api"

func init() {
	api.RegisterCloudHelper(api.CloudHelpersRegisterMap{
		CHPostgresInitLambda: NewPostgresInitLambdaHelper,
	})
}
