package config

// EnvPrefix is kept empty because every field carries a fully qualified
// QUOTEPILOT_* tag already.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "QUOTEPILOT_DB_DSN"
	EnvDBHost = "QUOTEPILOT_DB_HOST"
	EnvDBUser = "QUOTEPILOT_DB_USER"
	EnvDBName = "QUOTEPILOT_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
