package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.BatchSize)
	assert.Equal(t, "profile_staging", cfg.Staging.Table)
	assert.Equal(t, "profile_id_raw", cfg.Staging.KeyColumn)
	assert.Equal(t, 3, cfg.Guard.RestoreRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.Guard.RetryDelay)
	assert.True(t, cfg.AuditEnabled)
	assert.Equal(t, "ALTER TABLE profile_staging DISABLE TRIGGER profile_staging_guard", cfg.Guard.DisableSQL)
	assert.Equal(t, "ALTER TABLE profile_staging ENABLE TRIGGER profile_staging_guard", cfg.Guard.RestoreSQL)
}

func TestLoadGuardDefaults(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantDisable string
		wantRestore string
	}{
		{
			name:        "follows staging table",
			env:         map[string]string{"STAGING_TABLE": "survey_rows"},
			wantDisable: "ALTER TABLE survey_rows DISABLE TRIGGER profile_staging_guard",
			wantRestore: "ALTER TABLE survey_rows ENABLE TRIGGER profile_staging_guard",
		},
		{
			name:        "custom trigger",
			env:         map[string]string{"GUARD_TRIGGER": "lock_canonical"},
			wantDisable: "ALTER TABLE profile_staging DISABLE TRIGGER lock_canonical",
			wantRestore: "ALTER TABLE profile_staging ENABLE TRIGGER lock_canonical",
		},
		{
			name: "switched off",
			env:  map[string]string{"GUARD_ENABLED": "false"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"STAGING_TABLE", "GUARD_ENABLED", "GUARD_TRIGGER", "GUARD_DISABLE_SQL", "GUARD_RESTORE_SQL"} {
				t.Setenv(key, tt.env[key])
			}
			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.wantDisable, cfg.Guard.DisableSQL)
			assert.Equal(t, tt.wantRestore, cfg.Guard.RestoreSQL)
		})
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("BATCH_SIZE", "250")
	t.Setenv("STAGING_TABLE", "survey_rows")
	t.Setenv("GUARD_DISABLE_SQL", "ALTER TABLE survey_rows DISABLE TRIGGER guard")
	t.Setenv("GUARD_RESTORE_SQL", "ALTER TABLE survey_rows ENABLE TRIGGER guard")
	t.Setenv("AUDIT_ENABLED", "off")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.BatchSize)
	assert.Equal(t, "survey_rows", cfg.Staging.Table)
	assert.NotEmpty(t, cfg.Guard.RestoreSQL)
	assert.False(t, cfg.AuditEnabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"batch size zero", func(c *Config) { c.BatchSize = 0 }},
		{"batch size too large", func(c *Config) { c.BatchSize = 1001 }},
		{"quoted table name", func(c *Config) { c.Staging.Table = `profile"; DROP TABLE x; --` }},
		{"upper case column", func(c *Config) { c.Staging.KeyColumn = "ProfileID" }},
		{"disable without restore", func(c *Config) { c.Guard.DisableSQL = "ALTER TABLE t DISABLE TRIGGER g" }},
		{"unknown log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"bad sslmode", func(c *Config) { c.Database.SSLMode = "maybe" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("NORMALIZER_TEST_INT", "abc")
	t.Setenv("NORMALIZER_TEST_BOOL", "yes")

	assert.Equal(t, 7, GetEnvInt("NORMALIZER_TEST_INT", 7))
	assert.True(t, GetEnvBool("NORMALIZER_TEST_BOOL", false))
	assert.Equal(t, "fallback", GetEnv("NORMALIZER_TEST_MISSING", "fallback"))
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", Name: "profiles", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=profiles sslmode=disable", d.DSN())
}
