package config

import (
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		General: GeneralConfig{
			LogLevel:       "info",
			Workers:        1,
			RequestTimeout: 30 * time.Second,
		},
		Chronos: ChronosConfig{
			URL: "http://chronos.mesos:4400",
		},
		Cluster: "testcluster",
		SoaDir:  "/etc/service_configs",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.General.LogLevel = "verbose" },
			wantErr: true,
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.General.Workers = 0 },
			wantErr: true,
		},
		{
			name:    "negative interval",
			mutate:  func(c *Config) { c.General.Interval = -1 * time.Second },
			wantErr: true,
		},
		{
			name:    "zero request timeout",
			mutate:  func(c *Config) { c.General.RequestTimeout = 0 },
			wantErr: true,
		},
		{
			name:    "missing chronos url",
			mutate:  func(c *Config) { c.Chronos.URL = "" },
			wantErr: true,
		},
		{
			name:    "chronos url with bad scheme",
			mutate:  func(c *Config) { c.Chronos.URL = "ftp://chronos:4400" },
			wantErr: true,
		},
		{
			name:    "user without password",
			mutate:  func(c *Config) { c.Chronos.User = "janitor" },
			wantErr: true,
		},
		{
			name: "user with password",
			mutate: func(c *Config) {
				c.Chronos.User = "janitor"
				c.Chronos.Password = "hunter2"
			},
			wantErr: false,
		},
		{
			name:    "empty cluster",
			mutate:  func(c *Config) { c.Cluster = "" },
			wantErr: true,
		},
		{
			name:    "empty soa dir",
			mutate:  func(c *Config) { c.SoaDir = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
