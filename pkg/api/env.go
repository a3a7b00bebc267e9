package api

type PostgresInitEnvVariables struct {
	MasterSecretArn string
	RoleSecretArn   string
	DatabaseName    string
	ClusterEndpoint string
	Port            string
	RoleName        string
	GrantRole       string
	SSLMode         string
	VerifyVector    string
	SecretsProvider string
	LogLevel        string
}

var PostgresInitEnv = PostgresInitEnvVariables{
	MasterSecretArn: "POSTGRES_SECRET_ARN",
	RoleSecretArn:   "BEDROCK_USER_SECRET_ARN",
	DatabaseName:    "DATABASE_NAME",
	ClusterEndpoint: "POSTGRES_CLUSTER_ENDPOINT",
	Port:            "POSTGRES_PORT",
	RoleName:        "POSTGRES_ROLE_NAME",
	GrantRole:       "POSTGRES_GRANT_ROLE",
	SSLMode:         "POSTGRES_SSLMODE",
	VerifyVector:    "PGVECTOR_VERIFY",
	SecretsProvider: "SECRETS_PROVIDER",
	LogLevel:        "LOG_LEVEL",
}
