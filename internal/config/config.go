package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Company   CompanyConfig   `mapstructure:"company"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	// Driver selects the gorm dialector: "sqlite" or "postgres".
	Driver  string `mapstructure:"driver"`
	DSN     string `mapstructure:"dsn"`
	Metrics bool   `mapstructure:"metrics"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AuthConfig struct {
	SessionTTL time.Duration `mapstructure:"session_ttl"`
	// Bootstrap admin credentials, applied once at seed time.
	AdminEmail    string `mapstructure:"admin_email"`
	AdminPassword string `mapstructure:"admin_password"`
	AdminName     string `mapstructure:"admin_name"`
}

type RateLimitConfig struct {
	// ContactLimit is the number of contact submissions allowed per source IP
	// within ContactWindow.
	ContactLimit  int           `mapstructure:"contact_limit"`
	ContactWindow time.Duration `mapstructure:"contact_window"`
}

// CompanyConfig is the agency profile printed on invoice PDFs.
type CompanyConfig struct {
	Name  string `mapstructure:"name"`
	Email string `mapstructure:"email"`
	Phone string `mapstructure:"phone"`
}

// Load reads config.yaml (if present) and NEXCUBE_* environment variables,
// environment taking precedence.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("NEXCUBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "nexcube.db")
	v.SetDefault("database.metrics", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("auth.session_ttl", 24*time.Hour)
	v.SetDefault("auth.admin_email", "admin@nexcube.id")
	v.SetDefault("auth.admin_password", "admin")
	v.SetDefault("auth.admin_name", "Nexcube Admin")
	v.SetDefault("rate_limit.contact_limit", 5)
	v.SetDefault("rate_limit.contact_window", time.Hour)
	v.SetDefault("company.name", "NEXCUBE")
	v.SetDefault("company.email", "nexcubedigital@gmail.com")
	v.SetDefault("company.phone", "")
}
