package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the envconfig namespace shared by every binary.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Admin        AdminConfig
	Checkout     CheckoutConfig
	OrderLimit   OrderRateLimitConfig
	FeatureFlags FeatureFlagsConfig
	CORS         CORSConfig
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
	Env          string `envconfig:"GIFTNEST_APP_ENV" required:"true"`
	Port         string `envconfig:"GIFTNEST_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"GIFTNEST_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GIFTNEST_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"GIFTNEST_DB_DSN"`
	Driver string `envconfig:"GIFTNEST_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"GIFTNEST_DB_HOST"`
	Port     int    `envconfig:"GIFTNEST_DB_PORT" default:"5432"`
	User     string `envconfig:"GIFTNEST_DB_USER"`
	Password string `envconfig:"GIFTNEST_DB_PASSWORD"`
	Name     string `envconfig:"GIFTNEST_DB_NAME"`
	SSLMode  string `envconfig:"GIFTNEST_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"GIFTNEST_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GIFTNEST_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GIFTNEST_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GIFTNEST_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// ensureDSN assembles a postgres DSN from discrete fields when no DSN is set.
func (d *DBConfig) ensureDSN() error {
	if d.DSN != "" {
		return nil
	}
	if d.Host == "" || d.User == "" || d.Name == "" {
		return fmt.Errorf("either GIFTNEST_DB_DSN or host/user/name must be provided")
	}
	userInfo := url.User(d.User)
	if d.Password != "" {
		userInfo = url.UserPassword(d.User, d.Password)
	}
	dsn := url.URL{
		Scheme:   "postgres",
		User:     userInfo,
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	d.DSN = dsn.String()
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"GIFTNEST_REDIS_URL"`
	Address      string        `envconfig:"GIFTNEST_REDIS_ADDR"`
	Password     string        `envconfig:"GIFTNEST_REDIS_PASSWORD"`
	DB           int           `envconfig:"GIFTNEST_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GIFTNEST_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GIFTNEST_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GIFTNEST_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GIFTNEST_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GIFTNEST_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// AdminConfig guards the fulfillment console surface. The real admin
// auth/session layer lives outside this service.
type AdminConfig struct {
	APIKey string `envconfig:"GIFTNEST_ADMIN_API_KEY"`
}

type CheckoutConfig struct {
	WhatsAppNumber string `envconfig:"GIFTNEST_WHATSAPP_NUMBER" default:"2348000000000"`
	OrderPrefix    string `envconfig:"GIFTNEST_ORDER_PREFIX" default:"GFT"`
}

type OrderRateLimitConfig struct {
	Window     time.Duration `envconfig:"GIFTNEST_ORDER_LIMIT_WINDOW" default:"1m"`
	IPLimit    int           `envconfig:"GIFTNEST_ORDER_LIMIT_IP" default:"10"`
	PhoneLimit int           `envconfig:"GIFTNEST_ORDER_LIMIT_PHONE" default:"5"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"GIFTNEST_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"GIFTNEST_CORS_ALLOWED_ORIGINS" default:"*"`
}
