package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath   = ".env"
	SecretKey = "SecRetKey"
	EnvLocal  = "local"
	EnvDev    = "dev"
	EnvProd   = "prod"

	DriverNone     = "none"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Logger Logger
	Auth   Auth
}

type defaultConfig struct {
	RunAddress    string
	DatabaseURI   string
	Driver        string
	Migrations    string
	JSONPath      string
	ProbeInterval time.Duration
	LogLevel      string
	Secret        string
	TokenTTL      time.Duration
	Env           string
}

type DB struct {
	Driver        string        `env:"DB_DRIVER" envDefault:"none"`
	DatabaseURI   string        `env:"DATABASE_URI"`
	Migrations    string        `env:"MIGRATIONS_PATH"`
	JSONPath      string        `env:"JSON_DB_PATH" envDefault:"data/db.json"`
	ProbeInterval time.Duration `env:"DB_PROBE_INTERVAL" envDefault:"5s"`
}

type Server struct {
	RunAddress string `env:"RUN_ADDRESS" envDefault:":5000"`
}

type Logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type Auth struct {
	Secret   string        `env:"JWT_SECRET"`
	TokenTTL time.Duration `env:"JWT_TTL" envDefault:"720h"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("run_address", ":5000")
	v.SetDefault("db_driver", DriverNone)
	v.SetDefault("migrations_path", "migrations")
	v.SetDefault("json_db_path", "data/db.json")
	v.SetDefault("db_probe_interval", 5*time.Second)
	v.SetDefault("log_level", "info")
	v.SetDefault("jwt_ttl", 30*24*time.Hour)
}

// MustLoad reads .env (if any) and the process environment.
func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return FromViper(viper.GetViper())
}

// FromViper builds the config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	setDefaults(v)
	v.AutomaticEnv()

	d := defaultConfig{
		RunAddress:    v.GetString("run_address"),
		DatabaseURI:   v.GetString("database_uri"),
		Driver:        v.GetString("db_driver"),
		Migrations:    v.GetString("migrations_path"),
		JSONPath:      v.GetString("json_db_path"),
		ProbeInterval: v.GetDuration("db_probe_interval"),
		LogLevel:      v.GetString("log_level"),
		Secret:        v.GetString("jwt_secret"),
		TokenTTL:      v.GetDuration("jwt_ttl"),
		Env:           v.GetString("app_env"),
	}
	if d.Secret == "" {
		d.Secret = SecretKey
	}
	if d.Driver == "" {
		d.Driver = DriverNone
	}

	config := Config{
		Env: d.Env,
		DB: DB{
			Driver:        d.Driver,
			DatabaseURI:   d.DatabaseURI,
			Migrations:    d.Migrations,
			JSONPath:      d.JSONPath,
			ProbeInterval: d.ProbeInterval,
		},
		Server: Server{RunAddress: d.RunAddress},
		Logger: Logger{LogLevel: d.LogLevel},
		Auth: Auth{
			Secret:   d.Secret,
			TokenTTL: d.TokenTTL,
		},
	}

	return &config
}
