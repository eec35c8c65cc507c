package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  string
	}{
		{"unset", nil, "fallback"},
		{"empty", ptr(""), "fallback"},
		{"blank", ptr("   "), "fallback"},
		{"set", ptr("postgres"), "postgres"},
		{"padded", ptr("  postgres \n"), "postgres"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != nil {
				t.Setenv("INVOCHAIN_TEST_DRIVER", *tt.value)
			}
			assert.Equal(t, tt.want, GetEnv("INVOCHAIN_TEST_DRIVER", "fallback"))
			assert.Equal(t, tt.want != "fallback", IsEnvSet("INVOCHAIN_TEST_DRIVER"))
		})
	}
}

func TestEnvFile(t *testing.T) {
	t.Setenv(EnvFileVar, "")
	assert.Equal(t, ".env", EnvFile())

	t.Setenv(EnvFileVar, " /etc/invochain/prod.env ")
	assert.Equal(t, "/etc/invochain/prod.env", EnvFile())
}

func TestLoad_BlankDatabaseURLKeepsSQLiteDefault(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("DATABASE_URL", "  ")
	assert.False(t, IsEnvSet("DATABASE_URL"))

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
}

func ptr(s string) *string { return &s }
