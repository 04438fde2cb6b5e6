package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Identity IdentityConfig `mapstructure:"identity"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig HTTP server settings.
type ServerConfig struct {
	Port int        `mapstructure:"port"`
	CORS CORSConfig `mapstructure:"cors"`
}

// CORSConfig cross-origin settings.
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig PostgreSQL settings.
type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Name         string `mapstructure:"name"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	SSLMode      string `mapstructure:"sslmode"`
	Timezone     string `mapstructure:"timezone"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// DSN builds the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RedisConfig Redis settings (rate limiting).
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig JWT settings.
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// IdentityConfig drives business user-ID generation.
//
// The department code table must stay byte-for-byte compatible with the
// existing user base: generated IDs are persisted and used for login.
type IdentityConfig struct {
	// DepartmentCodes maps a department name to its short code.
	DepartmentCodes map[string]string `mapstructure:"department_codes"`
	// DefaultCode is used for departments missing from the table.
	DefaultCode string `mapstructure:"default_code"`
	// OrgPrefix is the fixed organisation prefix of regular IDs.
	OrgPrefix string `mapstructure:"org_prefix"`
	// ManagementDepartment uses the ".{name}-{code}" format.
	ManagementDepartment string `mapstructure:"management_department"`
	// AnalyticsDepartment uses the "{code}-{name}" format.
	AnalyticsDepartment string `mapstructure:"analytics_department"`
}

// LogConfig logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment.
// Precedence: environment > config file > defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 3001)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:3000", "http://localhost:9002"})

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "audit")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "Asia/Ulaanbaatar")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Registered with an empty default so viper's Unmarshal sees the
	// key and picks up AUDIT_AUTH_JWT_SECRET; Validate rejects empty.
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", "24h")

	v.SetDefault("identity.department_codes", map[string]string{
		"Удирдлага":          "DAG",
		"Дата анализын алба": "DAA",
		"Ерөнхий аудитын хэлтэс": "EAH",
		"Зайны аудит чанарын баталгаажуулалтын хэлтэс": "ZAGCHBH",
		"Мэдээллийн технологийн аудитын хэлтэс":        "MTAH",
	})
	v.SetDefault("identity.default_code", "USR")
	v.SetDefault("identity.org_prefix", "DAG")
	v.SetDefault("identity.management_department", "Удирдлага")
	v.SetDefault("identity.analytics_department", "Дата анализын алба")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("AUDIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// no config file: defaults + environment only
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if file := v.ConfigFileUsed(); file != "" {
		codes, err := fileDepartmentCodes(file)
		if err != nil {
			return nil, err
		}
		if codes != nil {
			cfg.Identity.DepartmentCodes = codes
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// fileDepartmentCodes re-reads the department code table straight from
// the config file. Viper folds map keys to lower case, which would
// corrupt the Cyrillic department names the table is keyed by: persisted
// user IDs depend on exact matches. A table in the file replaces the
// default one verbatim.
func fileDepartmentCodes(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var raw struct {
		Identity struct {
			DepartmentCodes map[string]string `yaml:"department_codes"`
		} `yaml:"identity"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return raw.Identity.DepartmentCodes, nil
}

// Validate checks required settings.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("config: auth.jwt_secret is required")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("config: auth.jwt_secret must be at least 16 characters")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port must be between 1 and 65535")
	}
	if c.Identity.DefaultCode == "" || c.Identity.OrgPrefix == "" {
		return fmt.Errorf("config: identity.default_code and identity.org_prefix are required")
	}
	return nil
}
