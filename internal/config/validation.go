package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the configuration for errors and inconsistencies
func (c *Config) Validate() error {
	if err := c.validateGeneral(); err != nil {
		return fmt.Errorf("general config: %w", err)
	}

	if err := c.validateChronos(); err != nil {
		return fmt.Errorf("chronos config: %w", err)
	}

	// An empty cluster would match no service config files, leaving the
	// expected set empty and marking every live job for deletion.
	if c.Cluster == "" {
		return fmt.Errorf("cluster must not be empty")
	}

	if c.SoaDir == "" {
		return fmt.Errorf("soa_dir must not be empty")
	}

	return nil
}

func (c *Config) validateGeneral() error {
	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	logLevel := strings.ToLower(c.General.LogLevel)
	valid := false
	for _, level := range validLogLevels {
		if logLevel == level {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("log_level must be one of: %s", strings.Join(validLogLevels, ", "))
	}

	if c.General.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}

	if c.General.Interval < 0 {
		return fmt.Errorf("interval must not be negative")
	}

	if c.General.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive")
	}

	return nil
}

func (c *Config) validateChronos() error {
	if c.Chronos.URL == "" {
		return fmt.Errorf("url must not be empty")
	}

	u, err := url.Parse(c.Chronos.URL)
	if err != nil {
		return fmt.Errorf("url is not valid: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url must use http or https, got %q", u.Scheme)
	}

	// Credentials travel together
	if (c.Chronos.User == "") != (c.Chronos.Password == "") {
		return fmt.Errorf("user and password must both be set or both be empty")
	}

	return nil
}
