package config

// EnvPrefix is the envconfig prefix shared by every section.
const EnvPrefix = "EDUSPHERE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv   = "EDUSPHERE_APP_ENV"
	EnvPort     = "EDUSPHERE_APP_PORT"
	EnvDBDSN    = "EDUSPHERE_DB_DSN"
	EnvDBHost   = "EDUSPHERE_DB_HOST"
	EnvDBUser   = "EDUSPHERE_DB_USER"
	EnvDBName   = "EDUSPHERE_DB_NAME"
	EnvRedisURL = "EDUSPHERE_REDIS_URL"

	EnvJWTSecret              = "EDUSPHERE_JWT_SECRET"
	EnvJWTIssuer              = "EDUSPHERE_JWT_ISSUER"
	EnvJWTExpMins             = "EDUSPHERE_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "EDUSPHERE_REFRESH_TOKEN_TTL_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
