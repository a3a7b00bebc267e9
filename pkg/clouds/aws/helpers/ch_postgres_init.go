package helpers

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/simple-container-com/pg-init/pkg/api"
	"github.com/simple-container-com/pg-init/pkg/api/logger"
	"github.com/simple-container-com/pg-init/pkg/api/logger/color"
	"github.com/simple-container-com/pg-init/pkg/clouds/aws/secrets"
	"github.com/simple-container-com/pg-init/pkg/clouds/postgres"
)

const CHPostgresInitLambda api.CloudHelperType = "sc-helper-aws-postgres-init-lambda"

const successMessage = "PostgreSQL initialization completed successfully"

// Response mirrors the HTTP-shaped payload returned to the invoking custom resource.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

type messageBody struct {
	Message string `json:"message"`
}

type errorBody struct {
	Error string `json:"error"`
}

func newResponse(statusCode int, body any) Response {
	b, err := json.Marshal(body)
	if err != nil {
		// both body types are plain string structs
		panic(err)
	}
	return Response{StatusCode: statusCode, Body: string(b)}
}

func successResponse() Response {
	return newResponse(http.StatusOK, messageBody{Message: successMessage})
}

func errorResponse(err error) Response {
	return newResponse(http.StatusInternalServerError, errorBody{Error: err.Error()})
}

type postgresInitLambda struct {
	log      logger.Logger
	ctx      context.Context
	canceled *atomic.Bool
	getenv   func(string) string
	newStore func(ctx context.Context, provider string) (secrets.Store, error)
	dialer   postgres.Dialer
}

// handler never fails the invocation itself: every error becomes a 500 response.
func (l *postgresInitLambda) handler(ctx context.Context, event any) (Response, error) {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		ctx = logger.WithPrefix(ctx, lc.AwsRequestID)
	}
	ctx = l.log.SetLogLevel(ctx, logger.ParseLogLevel(l.getenv(api.PostgresInitEnv.LogLevel)))

	if l.canceled.Load() {
		l.log.Warn(ctx, "SIGTERM was received earlier, the runtime is shutting down")
	}
	l.log.Info(ctx, "Starting PostgreSQL initialization...")
	l.log.Debug(ctx, "invoked with event: %v", event)

	res, err := l.initialize(ctx)
	if err != nil {
		l.log.Error(ctx, "Error initializing PostgreSQL: %v", err)
		return errorResponse(err), nil
	}

	l.log.Info(ctx, "%s", color.Green("Successfully initialized PostgreSQL"))
	l.log.Debug(ctx, "role created: %t, pgvector version: %q", res.RoleCreated, res.ExtensionVersion)
	return successResponse(), nil
}

func (l *postgresInitLambda) initialize(ctx context.Context) (*postgres.Result, error) {
	cfg, err := api.ReadPostgresInitConfig(l.getenv)
	if err != nil {
		return nil, err
	}

	store, err := l.newStore(ctx, cfg.SecretsProvider)
	if err != nil {
		return nil, &api.SecretAccessError{Err: errors.Wrapf(err, "failed to init %s secrets store", cfg.SecretsProvider)}
	}

	master, err := secrets.FetchMaster(ctx, store, cfg.MasterSecretArn)
	if err != nil {
		return nil, err
	}
	l.log.Info(ctx, "Retrieved credentials for database")

	role, err := secrets.FetchRole(ctx, store, cfg.RoleSecretArn)
	if err != nil {
		return nil, err
	}
	l.log.Info(ctx, "Retrieved credentials for %s user", cfg.RoleName)
	l.warnOnMismatch(ctx, cfg, role)

	return postgres.NewInitializer(l.dialer, l.log).Run(ctx, postgres.Params{
		Connection: postgres.ConnectParams{
			Host:     cfg.Host,
			Port:     cfg.Port,
			Database: cfg.DatabaseName,
			User:     master.Username,
			Password: master.Password,
			SSLMode:  cfg.SSLMode,
		},
		RoleName:     cfg.RoleName,
		RolePassword: role.Password,
		GrantRole:    cfg.GrantRole,
		VerifyVector: cfg.VerifyVector,
	})
}

// warnOnMismatch reports role secret fields that disagree with what is being provisioned.
// The secret is written by the infrastructure, so a mismatch means consumers of the role
// will connect somewhere else.
func (l *postgresInitLambda) warnOnMismatch(ctx context.Context, cfg *api.PostgresInitConfig, role *secrets.RoleCredentials) {
	if role.User != "" && role.User != cfg.RoleName {
		l.log.Warn(ctx, "role secret is for user %q, but role %q is being provisioned", role.User, cfg.RoleName)
	}
	if role.Host != "" && role.Host != cfg.Host {
		l.log.Warn(ctx, "role secret points to host %q, but %q is being provisioned", role.Host, cfg.Host)
	}
	if role.Database != "" && role.Database != cfg.DatabaseName {
		l.log.Warn(ctx, "role secret points to database %q, but %q is being provisioned", role.Database, cfg.DatabaseName)
	}
}

func (l *postgresInitLambda) onSigterm() {
	l.canceled.Store(true)
	l.log.Warn(l.ctx, "received SIGTERM, lambda runtime is shutting down")
}

func (l *postgresInitLambda) startOptions() []lambda.Option {
	return []lambda.Option{
		lambda.WithContext(l.ctx),
		lambda.WithEnableSIGTERM(l.onSigterm),
	}
}

// Run hands control to the lambda runtime and does not return.
func (l *postgresInitLambda) Run() error {
	l.log.Info(l.ctx, "starting postgres init lambda...")
	lambda.StartWithOptions(l.handler, l.startOptions()...)
	return nil
}

func (l *postgresInitLambda) SetLogger(log logger.Logger) {
	l.log = log
}

func (l *postgresInitLambda) SetContext(ctx context.Context) {
	l.ctx = ctx
}

func NewPostgresInitLambdaHelper(opts ...api.CloudHelperOption) (api.CloudHelper, error) {
	res := &postgresInitLambda{
		log:      logger.New(),
		ctx:      context.Background(),
		canceled: atomic.NewBool(false),
		getenv:   os.Getenv,
		newStore: secrets.New,
		dialer:   postgres.NewDialer(),
	}

	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, errors.Wrapf(err, "failed to apply option on lambda helper")
		}
	}
	return res, nil
}
