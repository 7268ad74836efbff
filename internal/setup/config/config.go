package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port               string        `mapstructure:"port"`
	MongoURI           string        `mapstructure:"mongo_uri"`
	DatabaseName       string        `mapstructure:"database_name"`
	RedisURL           string        `mapstructure:"redis_url"`
	SecretJWT          string        `mapstructure:"secret_jwt"`
	AllowedOrigins     []string      `mapstructure:"allowed_origins"`
	PermissionCacheTTL time.Duration `mapstructure:"permission_cache_ttl"`
	EventChannel       string        `mapstructure:"event_channel"`
	LogLevel           string        `mapstructure:"log_level"`
	LogFormat          string        `mapstructure:"log_format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("database_name", "appsmith")
	v.SetDefault("redis_url", "redis://localhost:6379")
	v.SetDefault("allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("permission_cache_ttl", 30*time.Minute)
	v.SetDefault("event_channel", "workspace.membership")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
}

// LoadEnvFile reads configuration from an optional dotenv file, then lets
// environment variables (PORT, MONGO_URI, SECRET_JWT, ...) override it.
func LoadEnvFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"port", "mongo_uri", "database_name", "redis_url", "secret_jwt", "allowed_origins", "permission_cache_ttl", "event_channel", "log_level", "log_format"} {
		_ = v.BindEnv(key, strings.ToUpper(key))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// env values arrive as one comma separated string
	cfg.AllowedOrigins = splitList(strings.Join(cfg.AllowedOrigins, ","))

	if cfg.SecretJWT == "" {
		return nil, errors.New("SECRET_JWT is required")
	}

	return &cfg, nil
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
