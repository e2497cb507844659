package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	sharedConfig "accountsforge/internal/shared/config"
)

func validConfig() Config {
	return Config{
		Database: sharedConfig.DatabaseConfig{Driver: "mysql"},
		Workflow: sharedConfig.WorkflowConfig{DefaultRole: "employee"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "default role missing",
			mutate:  func(c *Config) { c.Workflow.DefaultRole = "" },
			wantErr: "workflow.default_role is required",
		},
		{
			name:    "default role outside closed set",
			mutate:  func(c *Config) { c.Workflow.DefaultRole = "superuser" },
			wantErr: "workflow.default_role",
		},
		{
			name:   "sqlite driver accepted",
			mutate: func(c *Config) { c.Database.Driver = "sqlite" },
		},
		{
			name:    "unsupported driver",
			mutate:  func(c *Config) { c.Database.Driver = "postgres" },
			wantErr: "database.driver",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
