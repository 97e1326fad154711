package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"accessTokenTTL": "15m",
		},
		"admin": map[string]any{
			"userPageSize": 10,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_ACCESSTOKENTTL", want: "auth.accessTokenTTL"},
		{envKey: "ADMIN_USERPAGESIZE", want: "admin.userPageSize"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Database)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	require.NotNil(t, cfg.Admin)
	assert.Equal(t, DefaultUserPageSize, cfg.Admin.UserPageSize)
	assert.Equal(t, DefaultProfilePageSize, cfg.Admin.ProfilePageSize)
	require.NotNil(t, cfg.Metrics)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:    &AuthConfig{BcryptCost: 12, AccessTokenTTL: time.Hour},
		Admin:   &AdminConfig{UserPageSize: 50},
		Metrics: &MetricsConfig{Enabled: true, Path: "/internal/metrics"},
	}

	applyDefaults(cfg)

	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 50, cfg.Admin.UserPageSize)
	assert.Equal(t, DefaultProfilePageSize, cfg.Admin.ProfilePageSize)
	assert.Equal(t, "/internal/metrics", cfg.Metrics.Path)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlConfig := `
env:
  env: test
  serviceName: account
http:
  port: 8080
auth:
  bcryptCost: 10
  accessTokenTTL: 15m
admin:
  userPageSize: 10
secretKey:
  access: from-file
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlConfig), 0o600))
	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("AUTH_ACCESSTOKENTTL", "30m")
	t.Setenv("ADMIN_USERPAGESIZE", "25")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "account", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
	require.NotNil(t, cfg.Admin)
	assert.Equal(t, 25, cfg.Admin.UserPageSize)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")

	assert.ErrorContains(t, err, "config.yaml not found")
}
