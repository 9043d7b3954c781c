package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
[app]
name = "parking-control"
host = "localhost"
message = "hello"

[server]
http_port = 9090
base_path = "/api/v1/"
shutdown_timeout = 5

[database]
host = "db"
port = 5433
user = "parking"
password = "secret"
dbname = "parking"
max_open_conns = 7

[storage]
driver = "postgres"

[migrations]
enabled = true

[logs]
level = "debug"

[metrics]
enabled = true
service_name = "parking"

[cors]
allowed_origins = ["https://example.com"]

[rate_limit]
enabled = true
rps = 2
burst = 4
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "parking-control", cfg.App.Name)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "/api/v1", cfg.Server.BasePath)
	assert.Equal(t, 5, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 7, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.True(t, cfg.Migrations.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, []string{"https://example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 3600, cfg.CORS.MaxAge)
	assert.Equal(t, 2.0, cfg.RateLimit.RPS)
	assert.Equal(t, "host=db port=5433 user=parking password=secret dbname=parking sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "postgres://parking:secret@db:5433/parking?sslmode=disable", cfg.Database.URL())
}

func TestLoad_MemoryDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[storage]
driver = "memory"
`))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_PasswordFromEnv(t *testing.T) {
	t.Setenv("DATABASE_PASSWORD", "from-env")

	cfg, err := Load(writeConfig(t, `
[database]
dbname = "parking"
password = "from-file"
`))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Password)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown driver", content: "[storage]\ndriver = \"mongo\"\n"},
		{name: "postgres without dbname", content: "[storage]\ndriver = \"postgres\"\n"},
		{name: "bad port", content: "[server]\nhttp_port = 70000\n[storage]\ndriver = \"memory\"\n"},
		{name: "bad log level", content: "[logs]\nlevel = \"loud\"\n[storage]\ndriver = \"memory\"\n"},
		{name: "bad base path", content: "[server]\nbase_path = \"api\"\n[storage]\ndriver = \"memory\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSNQuotesValues(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "parking",
		Password: `p@ss w'rd\`,
		DBName:   "parking",
		SSLMode:  "disable",
	}

	assert.Equal(t, `host=db port=5432 user=parking password='p@ss w\'rd\\' dbname=parking sslmode=disable`, db.DSN())

	db.Password = ""
	assert.Contains(t, db.DSN(), "password='' dbname=parking")
}
