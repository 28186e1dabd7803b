package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Overrides carries command-line values that take precedence over both the
// config file and environment. Zero values leave the config untouched.
type Overrides struct {
	SoaDir  string
	Cluster string
	DryRun  bool
}

// Load reads configuration from file, environment variables and overrides
func Load(configPath string, overrides Overrides) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Configure viper for env vars
	v.SetEnvPrefix("CHRONOS_JANITOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Determine config file path
	if configPath == "" {
		configPath = os.Getenv("CHRONOS_JANITOR_CONFIG")
	}
	if configPath == "" {
		// Try default locations
		defaultPaths := []string{"config.yaml", "config.yml", "/etc/chronos-janitor/config.yaml"}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				configPath = p
				break
			}
		}
	}

	// Read config file if found
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}
	// If no file found, continue with defaults and env vars

	// Apply command-line overrides before validation so flags can satisfy
	// requirements the file leaves unset
	if overrides.SoaDir != "" {
		v.Set("soa_dir", overrides.SoaDir)
	}
	if overrides.Cluster != "" {
		v.Set("cluster", overrides.Cluster)
	}
	if overrides.DryRun {
		v.Set("general.dry_run", true)
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default values for all configuration options
func setDefaults(v *viper.Viper) {
	// General defaults
	v.SetDefault("general.log_level", "info")
	v.SetDefault("general.dry_run", false)
	v.SetDefault("general.interval", 0*time.Second)
	v.SetDefault("general.workers", 1)
	v.SetDefault("general.request_timeout", 30*time.Second)

	// Chronos defaults
	v.SetDefault("chronos.url", "http://localhost:4400")
	v.SetDefault("chronos.user", "")
	v.SetDefault("chronos.password", "")
	v.SetDefault("chronos.ssl_verification", true)

	v.SetDefault("cluster", "")
	v.SetDefault("soa_dir", DefaultSoaDir)
}
