package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultGuardTrigger is the trigger db init installs on the staging table
const DefaultGuardTrigger = "profile_staging_guard"

// Config holds everything the normalizer commands and the preview server need
type Config struct {
	Database DatabaseConfig
	Staging  StagingConfig
	Guard    GuardConfig
	Log      LogConfig
	Web      WebConfig

	BatchSize    int `validate:"min=1,max=1000"`
	AuditEnabled bool
}

// DatabaseConfig contains Postgres connection settings
type DatabaseConfig struct {
	Host           string `validate:"required"`
	Port           int    `validate:"min=1,max=65535"`
	User           string `validate:"required"`
	Password       string
	Name           string `validate:"required"`
	SSLMode        string `validate:"oneof=disable require verify-ca verify-full"`
	MaxConnections int    `validate:"min=1"`
}

// StagingConfig names the tables the pipeline reads and writes
type StagingConfig struct {
	Table             string `validate:"required,sqlident"`
	KeyColumn         string `validate:"required,sqlident"`
	ProfessionTable   string `validate:"required,sqlident"`
	ProfessionColumn  string `validate:"required,sqlident"`
	DesignationTable  string `validate:"required,sqlident"`
	DesignationColumn string `validate:"required,sqlident"`
}

// GuardConfig describes the statements that lift and restore the bulk-update guard.
// Both empty means no guard is used. Unless GUARD_ENABLED is off they default to
// toggling the guard trigger that db init installs on the staging table.
type GuardConfig struct {
	DisableSQL     string
	RestoreSQL     string `validate:"required_with=DisableSQL"`
	RestoreRetries int    `validate:"min=1,max=10"`
	RetryDelay     time.Duration
}

// LogConfig controls the zerolog output
type LogConfig struct {
	Level  string `validate:"oneof=trace debug info warn error"`
	Format string `validate:"oneof=json console"`
}

// WebConfig contains preview server settings
type WebConfig struct {
	Host       string
	Port       int  `validate:"min=1,max=65535"`
	UseDefault bool // serve built-in vocabularies instead of loading them from the database
}

// Load reads the .env file (if present) and the environment into a validated Config
func Load() (*Config, error) {
	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		Database: DatabaseConfig{
			Host:           GetEnv("PGHOST", "localhost"),
			Port:           GetEnvInt("PGPORT", 5432),
			User:           GetEnv("PGUSER", "postgres"),
			Password:       GetEnv("PGPASSWORD", "postgres"),
			Name:           GetEnv("PGDATABASE", "profiles"),
			SSLMode:        GetEnv("PGSSLMODE", "disable"),
			MaxConnections: GetEnvInt("DB_MAX_CONNECTIONS", 5),
		},
		Staging: StagingConfig{
			Table:             GetEnv("STAGING_TABLE", "profile_staging"),
			KeyColumn:         GetEnv("STAGING_KEY_COLUMN", "profile_id_raw"),
			ProfessionTable:   GetEnv("PROFESSION_TABLE", "professions"),
			ProfessionColumn:  GetEnv("PROFESSION_COLUMN", "name"),
			DesignationTable:  GetEnv("DESIGNATION_TABLE", "designations"),
			DesignationColumn: GetEnv("DESIGNATION_COLUMN", "name"),
		},
		Guard: GuardConfig{
			DisableSQL:     GetEnv("GUARD_DISABLE_SQL", ""),
			RestoreSQL:     GetEnv("GUARD_RESTORE_SQL", ""),
			RestoreRetries: GetEnvInt("GUARD_RESTORE_RETRIES", 3),
			RetryDelay:     time.Duration(GetEnvInt("GUARD_RETRY_DELAY_MS", 500)) * time.Millisecond,
		},
		Log: LogConfig{
			Level:  GetEnv("LOG_LEVEL", "info"),
			Format: GetEnv("LOG_FORMAT", "console"),
		},
		Web: WebConfig{
			Host:       GetEnv("WEB_HOST", "localhost"),
			Port:       GetEnvInt("WEB_PORT", 8080),
			UseDefault: GetEnvBool("WEB_DEFAULT_VOCABULARY", false),
		},
		BatchSize:    GetEnvInt("BATCH_SIZE", 100),
		AuditEnabled: GetEnvBool("AUDIT_ENABLED", true),
	}

	if cfg.Guard.DisableSQL == "" && cfg.Guard.RestoreSQL == "" && GetEnvBool("GUARD_ENABLED", true) {
		cfg.Guard.DisableSQL, cfg.Guard.RestoreSQL = GuardTriggerSQL(cfg.Staging.Table, GetEnv("GUARD_TRIGGER", DefaultGuardTrigger))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags on the whole configuration tree
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("sqlident", isSQLIdentifier); err != nil {
		return fmt.Errorf("failed to register validator: %w", err)
	}
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GuardTriggerSQL returns the statements that disable and re-enable a trigger on table
func GuardTriggerSQL(table, trigger string) (disable, restore string) {
	return fmt.Sprintf("ALTER TABLE %s DISABLE TRIGGER %s", table, trigger),
		fmt.Sprintf("ALTER TABLE %s ENABLE TRIGGER %s", table, trigger)
}

// DSN returns a lib/pq connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// isSQLIdentifier accepts plain lower-case identifiers only, since table and
// column names end up inside generated statements
func isSQLIdentifier(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" || len(s) > 63 {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
