package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultRunAddress        = "localhost:8080"
	defaultLogLevel          = "info"
	defaultReconcileInterval = time.Hour
	defaultReconcileBatch    = 200
	defaultReconcileWorkers  = 4
)

type Config struct {
	RunAddress    string
	DatabaseDSN   string
	JWTUserSecret string
	LogLevel      string
	// ReconcileInterval пауза между проходами сверки счетчиков. 0 отключает фоновую сверку.
	ReconcileInterval time.Duration
	ReconcileBatch    uint
	ReconcileWorkers  uint
}

// envConfig указатели позволяют отличить незаданную переменную от явного нуля.
type envConfig struct {
	RunAddress        string         `env:"RUN_ADDRESS"`
	DatabaseDSN       string         `env:"DATABASE_URI"`
	JWTUserSecret     string         `env:"JWT_USER_SECRET"`
	LogLevel          string         `env:"LOG_LEVEL"`
	ReconcileInterval *time.Duration `env:"RECONCILE_INTERVAL"`
	ReconcileBatch    *uint          `env:"RECONCILE_BATCH"`
	ReconcileWorkers  *uint          `env:"RECONCILE_WORKERS"`
}

// LoadConfig собирает конфиг из .env файла (если есть), переменных окружения и флагов.
// Переменные окружения имеют приоритет над флагами.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %s", err.Error())
	}
	return loadConfig(os.Args[0], os.Args[1:])
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadConfig(name string, args []string) (*Config, error) {
	var envConf envConfig
	if envParseErr := env.Parse(&envConf); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	flagsConfig, flagsErr := loadFlags(name, args)
	if flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConf, flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTUserSecret == "" {
		return nil, errors.New("jwt user secret is not set")
	}
	if conf.ReconcileBatch == 0 || conf.ReconcileWorkers == 0 {
		return nil, errors.New("reconcile batch and workers must be positive")
	}
	return conf, nil
}

func loadFlags(name string, args []string) (*Config, error) {
	var flagConfig Config
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	fs.StringVar(&flagConfig.RunAddress, "a", defaultRunAddress, "Run address in format host:port")
	fs.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&flagConfig.JWTUserSecret, "j", "", "JWT secret for user tokens")
	fs.StringVar(&flagConfig.LogLevel, "l", defaultLogLevel, "Log level")
	fs.DurationVar(&flagConfig.ReconcileInterval, "r", defaultReconcileInterval,
		"Interval between counter reconcile passes, 0 disables")
	fs.UintVar(&flagConfig.ReconcileBatch, "rb", defaultReconcileBatch, "Profiles per reconcile page")
	fs.UintVar(&flagConfig.ReconcileWorkers, "rw", defaultReconcileWorkers, "Reconcile workers")

	if err := fs.Parse(args); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &flagConfig, nil
}

func mergeConfig(envConfig *envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:        defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:       defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		JWTUserSecret:     defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret),
		LogLevel:          defaultIfBlank(envConfig.LogLevel, flagsConfig.LogLevel),
		ReconcileInterval: defaultIfNil(envConfig.ReconcileInterval, flagsConfig.ReconcileInterval),
		ReconcileBatch:    defaultIfNil(envConfig.ReconcileBatch, flagsConfig.ReconcileBatch),
		ReconcileWorkers:  defaultIfNil(envConfig.ReconcileWorkers, flagsConfig.ReconcileWorkers),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func defaultIfNil[T any](value *T, defaultValue T) T {
	if value == nil {
		return defaultValue
	}
	return *value
}
