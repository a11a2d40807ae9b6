// Package config loads service settings from defaults, an optional config
// file, VIBEBOARD_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "VIBEBOARD"

// Store drivers.
const (
	DriverFile  = "file"
	DriverRedis = "redis"
	DriverMongo = "mongo"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Store    StoreConfig    `mapstructure:"store"`
	Frontend FrontendConfig `mapstructure:"frontend"`
	Docs     DocsConfig     `mapstructure:"docs"`
}

type ServerConfig struct {
	Addr        string   `mapstructure:"addr"`
	Mode        string   `mapstructure:"mode"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type StoreConfig struct {
	Driver string      `mapstructure:"driver"`
	File   FileConfig  `mapstructure:"file"`
	Redis  RedisConfig `mapstructure:"redis"`
	Mongo  MongoConfig `mapstructure:"mongo"`
}

type FileConfig struct {
	Path string `mapstructure:"path"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Key      string `mapstructure:"key"`
}

type MongoConfig struct {
	URI        string `mapstructure:"uri"`
	Database   string `mapstructure:"database"`
	Collection string `mapstructure:"collection"`
}

type FrontendConfig struct {
	// Dist is the directory holding the built single-page app.
	Dist string `mapstructure:"dist"`
}

type DocsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// SetDefaults registers every known key so environment overrides apply
// during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8000")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("store.driver", DriverFile)
	v.SetDefault("store.file.path", "../tasks.json")
	v.SetDefault("store.redis.addr", "localhost:6379")
	v.SetDefault("store.redis.password", "")
	v.SetDefault("store.redis.db", 0)
	v.SetDefault("store.redis.key", "vibeboard:tasks")
	v.SetDefault("store.mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("store.mongo.database", "vibeboard")
	v.SetDefault("store.mongo.collection", "tasks")

	v.SetDefault("frontend.dist", "../frontend/dist")
	v.SetDefault("docs.enabled", true)
}

// Load reads configuration into a Config. When file is empty, vibeboard.yaml
// in the working directory is used if present.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("vibeboard")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverFile:
		if c.Store.File.Path == "" {
			return errors.New("store.file.path must be set")
		}
	case DriverRedis:
		if c.Store.Redis.Key == "" {
			return errors.New("store.redis.key must be set")
		}
	case DriverMongo:
		if c.Store.Mongo.Database == "" || c.Store.Mongo.Collection == "" {
			return errors.New("store.mongo.database and store.mongo.collection must be set")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Server.Addr == "" {
		return errors.New("server.addr must be set")
	}
	return nil
}
