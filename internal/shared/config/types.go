// Package config defines the typed configuration structures shared across
// the application. Loading lives in internal/infrastructure/config.
package config

import "fmt"

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// GetAddr returns the listen address in host:port form.
func (c ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds database connection settings.
// Driver is "mysql" or "sqlite"; sqlite is intended for local development
// and tests only.
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// JWTConfig holds token settings.
type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
	RefreshExpDays   int    `mapstructure:"refresh_exp_days"`
}

// PasswordConfig holds password hashing settings.
type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

// AuthConfig groups authentication settings.
type AuthConfig struct {
	JWT      JWTConfig      `mapstructure:"jwt"`
	Password PasswordConfig `mapstructure:"password"`
}

// OAuthProviderConfig holds a single OAuth provider's client settings.
type OAuthProviderConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURL  string `mapstructure:"redirect_url"`
}

// OAuthConfig groups OAuth provider settings.
type OAuthConfig struct {
	Google OAuthProviderConfig `mapstructure:"google"`
}

// RedisConfig holds redis settings for the rate limiter.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the redis address in host:port form.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// EmailConfig holds SMTP settings for notification delivery.
// Delivery is disabled when Enabled is false.
type EmailConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

// WorkflowConfig holds approval workflow settings.
//
// DefaultRole is the role assigned to profiles auto-created on first
// sign-in. It has no built-in default and must be configured explicitly;
// config loading fails when it is missing or not a known role.
type WorkflowConfig struct {
	DefaultRole string `mapstructure:"default_role"`
}

// PermissionConfig holds casbin settings.
type PermissionConfig struct {
	ModelPath      string `mapstructure:"model_path"`
	PolicySeedPath string `mapstructure:"policy_seed_path"`
}
