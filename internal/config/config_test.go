package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func validConfig() *Config {
	return &Config{
		JWTSecret:  "secure-secret-at-least-32-chars-long",
		Port:       "3000",
		DBPassword: "secure-password",
		DBSSLMode:  "require",
		Env:        "development",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"valid development config", func(*Config) {}, false},
		{"missing port", func(c *Config) { c.Port = "" }, true},
		{"missing jwt secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"short secret ok outside production", func(c *Config) { c.JWTSecret = "short" }, false},
		{"production with default secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "your-secret-key-change-in-production"
		}, true},
		{"production with short secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "short"
		}, true},
		{"production with default db password", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "password"
		}, true},
		{"production with empty db password", func(c *Config) {
			c.Env = "production"
			c.DBPassword = ""
		}, true},
		{"valid production config", func(c *Config) { c.Env = "production" }, false},
		{"prod alias is production", func(c *Config) {
			c.Env = "prod"
			c.JWTSecret = "your-secret-key-change-in-production"
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	assert.True(t, (&Config{Env: "production"}).IsProduction())
	assert.True(t, (&Config{Env: "prod"}).IsProduction())
	assert.False(t, (&Config{Env: "development"}).IsProduction())
	assert.False(t, (&Config{Env: ""}).IsProduction())
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer viper.Reset()
	t.Chdir(t.TempDir()) // no config file present

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", c.Port)
	assert.Equal(t, "localhost", c.DBHost)
	assert.Equal(t, "5432", c.DBPort)
	assert.Equal(t, "vitrine", c.DBName)
	assert.Equal(t, "disable", c.DBSSLMode)
	assert.Equal(t, "development", c.Env)
	assert.NotEmpty(t, c.JWTSecret)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	defer viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET", "env-provided-secret-with-enough-length")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, "env-provided-secret-with-enough-length", c.JWTSecret)
}

func TestLoadConfig_ReadsYamlFile(t *testing.T) {
	defer viper.Reset()

	dir := t.TempDir()
	fileConfig := map[string]string{
		"PORT":       "9090",
		"DB_NAME":    "vitrine_test",
		"JWT_SECRET": "file-provided-secret-with-enough-length",
	}
	raw, err := yaml.Marshal(fileConfig)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), raw, 0o600))

	t.Chdir(dir)

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, "vitrine_test", c.DBName)
	assert.Equal(t, "file-provided-secret-with-enough-length", c.JWTSecret)
	// values absent from the file keep their defaults
	assert.Equal(t, "localhost", c.DBHost)
}
