package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// DevSecret 开发占位密钥，生产环境禁止使用
const DevSecret = "default_secret"

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
	CORSOrigin      string
}

type App struct {
	Name string
	Env  string // "development" / "production"
	HTTP HTTP
}

type Log struct {
	Level string
	JSON  bool
}

type JWT struct {
	Secret            string
	Issuer            string
	AccessTokenTTLMin int // 默认 7 天 = 10080
}

type Auth struct {
	BcryptCost int
}

type Redis struct {
	Addr             string `mapstructure:"addr"`
	Password         string `mapstructure:"password"`
	DB               int    `mapstructure:"db"`
	StaffCacheTTLSec int    `mapstructure:"staffCacheTTLSec"`
}

type DB struct {
	Driver             string
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

type Config struct {
	App   App
	Log   Log
	JWT   JWT
	Auth  Auth
	DB    DB
	Redis Redis `mapstructure:"redis"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.JWT.AccessTokenTTLMin <= 0 {
		c.JWT.AccessTokenTTLMin = 7 * 24 * 60
	}
	if c.JWT.Secret == "" && c.App.Env != "production" {
		c.JWT.Secret = DevSecret
	}
	if c.Redis.StaffCacheTTLSec <= 0 {
		c.Redis.StaffCacheTTLSec = 30
	}
}

// Validate 生产配置硬约束：签名密钥必须显式下发，不允许占位值
func (c *Config) Validate() error {
	if c.App.Env == "production" {
		if c.JWT.Secret == "" || c.JWT.Secret == DevSecret {
			return fmt.Errorf("jwt.secret must be set in production")
		}
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is empty")
	}
	return nil
}
