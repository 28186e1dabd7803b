package config

import "time"

// DefaultSoaDir is the conventional location of per-service configuration.
const DefaultSoaDir = "/etc/service_configs"

// Config represents the complete application configuration
type Config struct {
	General GeneralConfig `mapstructure:"general"`
	Chronos ChronosConfig `mapstructure:"chronos"`
	Cluster string        `mapstructure:"cluster"`
	SoaDir  string        `mapstructure:"soa_dir"`
}

// GeneralConfig contains global application settings
type GeneralConfig struct {
	LogLevel       string        `mapstructure:"log_level"`
	DryRun         bool          `mapstructure:"dry_run"`
	Interval       time.Duration `mapstructure:"interval"`
	Workers        int           `mapstructure:"workers"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// ChronosConfig describes how to reach the Chronos API
type ChronosConfig struct {
	URL             string `mapstructure:"url"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	SSLVerification bool   `mapstructure:"ssl_verification"`
}
