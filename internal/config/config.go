package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HttpAddr       string        `yaml:"http_addr" validate:"required"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	// Https enables Strict-Transport-Security on every response.
	Https          bool          `yaml:"https"`
	Cors           Cors          `yaml:"cors"`
	Log            Log           `yaml:"log"`
	Pg             Pg            `yaml:"pg" validate:"required"`
}

type Cors struct {
	AllowedOrigins []string `yaml:"allowed_origins" validate:"required,min=1"`
}

type Log struct {
	Level string `yaml:"level"`
	Json  bool   `yaml:"json"`
}

type Pg struct {
	Host         string `yaml:"host" validate:"required"`
	Port         int    `yaml:"port" validate:"required"`
	User         string `yaml:"user" validate:"required"`
	Dbname       string `yaml:"dbname" validate:"required"`
	SslMode      string `yaml:"sslmode"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

type Private struct {
	JwtKey     string `yaml:"jwt_key" validate:"required,min=32"`
	PgPassword string `yaml:"pg_password" validate:"required"`
}

const defaultRequestTimeout = 10 * time.Second

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

// DSN builds the lib/pq connection string.
func (c *Config) DSN() string {
	pg := c.Public.Pg
	sslMode := pg.SslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		pg.Host, pg.Port, pg.User, c.Private.PgPassword, pg.Dbname, sslMode)
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	if err := yaml.UnmarshalStrict(configFile, output); err != nil {
		panic(fmt.Sprintf("can't unmarshal config file %s: %v", configPath, err))
	}
}

func mustValidate(cfg *Config) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		panic(fmt.Sprintf("invalid config: %v", err))
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder.
// Any missing file or field is fatal.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	if public.RequestTimeout == 0 {
		public.RequestTimeout = defaultRequestTimeout
	}

	cfg := &Config{Public: public, Private: private}
	mustValidate(cfg)
	return cfg
}
