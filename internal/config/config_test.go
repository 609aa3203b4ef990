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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
[database]
host = "localhost"
dbname = "partylab_booking"

[redis]
addr = "localhost:6379"

[admin]
secret = "s3cret"
`

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, 300, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 7, cfg.Redis.DraftTTLDays)
	assert.Equal(t, "usd", cfg.Stripe.Currency)
	assert.Equal(t, 60, cfg.Sweep.IntervalMinutes)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_ExplicitValuesWin(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+`
[server]
http_port = 9090
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing database host",
			content: `
[database]
dbname = "partylab_booking"
[redis]
addr = "localhost:6379"
[admin]
secret = "s3cret"
`,
			wantErr: "database.host",
		},
		{
			name: "missing redis addr",
			content: `
[database]
host = "localhost"
dbname = "partylab_booking"
[admin]
secret = "s3cret"
`,
			wantErr: "redis.addr",
		},
		{
			name: "missing admin secret",
			content: `
[database]
host = "localhost"
dbname = "partylab_booking"
[redis]
addr = "localhost:6379"
`,
			wantErr: "admin.secret",
		},
		{
			name: "sweep enabled without cron secret",
			content: minimalConfig + `
[sweep]
enabled = true
`,
			wantErr: "sweep.cron_secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "partylab",
		Password: "pw",
		DBName:   "partylab_booking",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db.internal port=5432 user=partylab password=pw dbname=partylab_booking sslmode=disable",
		c.DSN())
}
