package main

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/simple-container-com/pg-init/internal/build"
	"github.com/simple-container-com/pg-init/pkg/api"
	"github.com/simple-container-com/pg-init/pkg/api/logger"
	"github.com/simple-container-com/pg-init/pkg/api/logger/color"
	"github.com/simple-container-com/pg-init/pkg/clouds/aws/helpers"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	envType := api.CloudHelperType(os.Getenv(api.ScCloudHelperTypeEnvVariable))
	chType := lo.Ternary(envType != "", envType, helpers.CHPostgresInitLambda)

	handlerCmd := &cobra.Command{
		Use:     "pg-init",
		Version: build.Version,
		Short:   "Bootstraps an Aurora PostgreSQL database for the RAG API: pgvector, application role and its grants.",
		Long:    "Runs as an AWS Lambda function. Credentials are read from AWS Secrets Manager, everything else from the environment.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := api.NewCloudHelper(chType, api.WithLogger(logger.New()), api.WithContext(cmd.Context()))
			if err != nil {
				return errors.Wrapf(err, "failed to init cloud helper, did you pass %q env variable? registered: %v",
					api.ScCloudHelperTypeEnvVariable, lo.Keys(api.GetRegisteredCloudHelpers()))
			}
			return ch.Run()
		},
	}

	handlerCmd.SetContext(ctx)
	handlerCmd.SetVersionTemplate("{{printf \"%s\\n\" .Version}}")

	if err := handlerCmd.Execute(); err != nil {
		_, _ = os.Stderr.WriteString(color.RedFmt("Error executing command: %s\n", err.Error()))
		cancel()
		os.Exit(1)
	}
}
