package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	FeatureFlags  FeatureFlagsConfig
	AuthRateLimit AuthRateLimitConfig
	Gemini        GeminiConfig
	AssistantRate AssistantRateConfig
	Export        ExportConfig
	Share         ShareConfig
	Quote         QuoteConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"QUOTEPILOT_APP_ENV" required:"true"`
	Port         string `envconfig:"QUOTEPILOT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"QUOTEPILOT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"QUOTEPILOT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"QUOTEPILOT_DB_DSN"`
	Driver string `envconfig:"QUOTEPILOT_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"QUOTEPILOT_DB_HOST"`
	LegacyPort     int    `envconfig:"QUOTEPILOT_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"QUOTEPILOT_DB_USER"`
	LegacyPassword string `envconfig:"QUOTEPILOT_DB_PASSWORD"`
	LegacyName     string `envconfig:"QUOTEPILOT_DB_NAME"`
	LegacySSLMode  string `envconfig:"QUOTEPILOT_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"QUOTEPILOT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"QUOTEPILOT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"QUOTEPILOT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"QUOTEPILOT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"QUOTEPILOT_REDIS_URL" required:"true"`
	Address      string        `envconfig:"QUOTEPILOT_REDIS_ADDR"`
	Password     string        `envconfig:"QUOTEPILOT_REDIS_PASSWORD"`
	DB           int           `envconfig:"QUOTEPILOT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"QUOTEPILOT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"QUOTEPILOT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"QUOTEPILOT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"QUOTEPILOT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"QUOTEPILOT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"QUOTEPILOT_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"QUOTEPILOT_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"QUOTEPILOT_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"QUOTEPILOT_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"QUOTEPILOT_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"QUOTEPILOT_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"QUOTEPILOT_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"QUOTEPILOT_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"QUOTEPILOT_ARGON_KEY_LEN" default:"32"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"QUOTEPILOT_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"QUOTEPILOT_AUTO_MIGRATE" default:"false"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"QUOTEPILOT_AUTH_RL_LOGIN_WINDOW" default:"5m"`
	LoginIPLimit       int           `envconfig:"QUOTEPILOT_AUTH_RL_LOGIN_IP_LIMIT" default:"20"`
	LoginEmailLimit    int           `envconfig:"QUOTEPILOT_AUTH_RL_LOGIN_EMAIL_LIMIT" default:"10"`
	RegisterWindow     time.Duration `envconfig:"QUOTEPILOT_AUTH_RL_REGISTER_WINDOW" default:"15m"`
	RegisterIPLimit    int           `envconfig:"QUOTEPILOT_AUTH_RL_REGISTER_IP_LIMIT" default:"10"`
	RegisterEmailLimit int           `envconfig:"QUOTEPILOT_AUTH_RL_REGISTER_EMAIL_LIMIT" default:"5"`
}

type GeminiConfig struct {
	BaseURL     string        `envconfig:"QUOTEPILOT_GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com"`
	SystemKey   string        `envconfig:"QUOTEPILOT_GEMINI_SYSTEM_KEY"`
	CallTimeout time.Duration `envconfig:"QUOTEPILOT_GEMINI_CALL_TIMEOUT" default:"120s"`
}

type AssistantRateConfig struct {
	Window time.Duration `envconfig:"QUOTEPILOT_ASSISTANT_RATE_WINDOW" default:"1m"`
	Limit  int           `envconfig:"QUOTEPILOT_ASSISTANT_RATE_LIMIT" default:"10"`
}

type ExportConfig struct {
	ChromeTimeout time.Duration `envconfig:"QUOTEPILOT_EXPORT_CHROME_TIMEOUT" default:"30s"`
	PNGScale      float64       `envconfig:"QUOTEPILOT_EXPORT_PNG_SCALE" default:"3"`
}

type ShareConfig struct {
	PublicBaseURL string `envconfig:"QUOTEPILOT_SHARE_PUBLIC_BASE_URL" default:"http://localhost:3000"`
}

type QuoteConfig struct {
	DefaultNumber string `envconfig:"QUOTEPILOT_QUOTE_DEFAULT_NUMBER" default:"QT-2026-001"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
