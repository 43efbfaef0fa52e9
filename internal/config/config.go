package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN returns the PostgreSQL connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// ChainConfig holds blockchain RPC settings
type ChainConfig struct {
	// RPCEndpoint is the JSON-RPC URL of the EVM node
	RPCEndpoint string
	// CallTimeout bounds a single eth_call
	CallTimeout time.Duration
}

// NATSConfig holds JetStream publisher settings
type NATSConfig struct {
	Endpoint   string
	StreamName string
	// SubjectPrefix is prepended to event subjects, e.g. marketplace.events
	SubjectPrefix string
}

// AuthConfig holds API authentication settings
type AuthConfig struct {
	// JWTPublicKeyPEM is the RSA public key used to verify bearer tokens
	JWTPublicKeyPEM string
	// APIKeys maps admin API keys to a label for audit logging
	APIKeys []string
}

// SentryConfig holds error reporting settings
type SentryConfig struct {
	DSN string
}

// APIConfig is the configuration for the marketplace API server
type APIConfig struct {
	Debug      bool
	ListenAddr string

	Database DatabaseConfig
	Chain    ChainConfig
	NATS     NATSConfig
	Auth     AuthConfig
	Sentry   SentryConfig
}

// SweeperConfig is the configuration for the ownership reconciliation sweeper
type SweeperConfig struct {
	Debug bool

	Database DatabaseConfig
	Chain    ChainConfig
	NATS     NATSConfig
	Sentry   SentryConfig

	// Interval is the pause between reconciliation rounds
	Interval time.Duration
	// BatchSize is the number of tokens fetched per round
	BatchSize int
	// Concurrency bounds parallel ownerOf calls
	Concurrency int
}

func configureViper() {
	viper.SetEnvPrefix("DEEDLANE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	bindAllEnvVars()
}

// bindAllEnvVars explicitly binds all configuration keys so AutomaticEnv
// resolves them even when no config file sets a default
func bindAllEnvVars() {
	keys := []string{
		"debug",
		"listen_addr",
		"db.host", "db.port", "db.user", "db.password", "db.name", "db.sslmode",
		"db.max_open_conns", "db.max_idle_conns", "db.conn_max_lifetime",
		"chain.rpc_endpoint", "chain.call_timeout",
		"nats.endpoint", "nats.stream_name", "nats.subject_prefix",
		"auth.jwt_public_key", "auth.api_keys",
		"sentry.dsn",
		"sweeper.interval", "sweeper.batch_size", "sweeper.concurrency",
	}
	for _, key := range keys {
		_ = viper.BindEnv(key)
	}
}

// loadEnv loads a .env file if present; missing files are not an error
func loadEnv() {
	_ = godotenv.Load()
}

func loadDatabaseConfig() DatabaseConfig {
	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", 5432)
	viper.SetDefault("db.user", "postgres")
	viper.SetDefault("db.name", "marketplace")
	viper.SetDefault("db.sslmode", "disable")
	viper.SetDefault("db.max_open_conns", 20)
	viper.SetDefault("db.max_idle_conns", 5)
	viper.SetDefault("db.conn_max_lifetime", time.Hour)

	return DatabaseConfig{
		Host:            viper.GetString("db.host"),
		Port:            viper.GetInt("db.port"),
		User:            viper.GetString("db.user"),
		Password:        viper.GetString("db.password"),
		Name:            viper.GetString("db.name"),
		SSLMode:         viper.GetString("db.sslmode"),
		MaxOpenConns:    viper.GetInt("db.max_open_conns"),
		MaxIdleConns:    viper.GetInt("db.max_idle_conns"),
		ConnMaxLifetime: viper.GetDuration("db.conn_max_lifetime"),
	}
}

func loadChainConfig() ChainConfig {
	viper.SetDefault("chain.call_timeout", 5*time.Second)

	return ChainConfig{
		RPCEndpoint: viper.GetString("chain.rpc_endpoint"),
		CallTimeout: viper.GetDuration("chain.call_timeout"),
	}
}

func loadNATSConfig() NATSConfig {
	viper.SetDefault("nats.stream_name", "marketplace")
	viper.SetDefault("nats.subject_prefix", "marketplace.events")

	return NATSConfig{
		Endpoint:      viper.GetString("nats.endpoint"),
		StreamName:    viper.GetString("nats.stream_name"),
		SubjectPrefix: viper.GetString("nats.subject_prefix"),
	}
}

// LoadAPIConfig loads the API server configuration from the environment
func LoadAPIConfig() (*APIConfig, error) {
	loadEnv()
	configureViper()

	viper.SetDefault("listen_addr", ":8080")

	cfg := &APIConfig{
		Debug:      viper.GetBool("debug"),
		ListenAddr: viper.GetString("listen_addr"),
		Database:   loadDatabaseConfig(),
		Chain:      loadChainConfig(),
		NATS:       loadNATSConfig(),
		Auth: AuthConfig{
			JWTPublicKeyPEM: viper.GetString("auth.jwt_public_key"),
			APIKeys:         viper.GetStringSlice("auth.api_keys"),
		},
		Sentry: SentryConfig{
			DSN: viper.GetString("sentry.dsn"),
		},
	}

	if cfg.Chain.RPCEndpoint == "" {
		return nil, fmt.Errorf("chain.rpc_endpoint is required")
	}
	if cfg.Auth.JWTPublicKeyPEM == "" {
		return nil, fmt.Errorf("auth.jwt_public_key is required")
	}

	return cfg, nil
}

// LoadSweeperConfig loads the sweeper configuration from the environment
func LoadSweeperConfig() (*SweeperConfig, error) {
	loadEnv()
	configureViper()

	viper.SetDefault("sweeper.interval", 5*time.Minute)
	viper.SetDefault("sweeper.batch_size", 200)
	viper.SetDefault("sweeper.concurrency", 8)

	cfg := &SweeperConfig{
		Debug:    viper.GetBool("debug"),
		Database: loadDatabaseConfig(),
		Chain:    loadChainConfig(),
		NATS:     loadNATSConfig(),
		Sentry: SentryConfig{
			DSN: viper.GetString("sentry.dsn"),
		},
		Interval:    viper.GetDuration("sweeper.interval"),
		BatchSize:   viper.GetInt("sweeper.batch_size"),
		Concurrency: viper.GetInt("sweeper.concurrency"),
	}

	if cfg.Chain.RPCEndpoint == "" {
		return nil, fmt.Errorf("chain.rpc_endpoint is required")
	}

	return cfg, nil
}
