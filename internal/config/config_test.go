package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cases := []struct {
		name    string
		env     map[string]string
		args    []string
		want    *Config
		wantErr bool
	}{
		{
			name: "flags only",
			args: []string{"-d", "postgres://flags", "-j", "secret"},
			want: &Config{
				RunAddress:        defaultRunAddress,
				DatabaseDSN:       "postgres://flags",
				JWTUserSecret:     "secret",
				LogLevel:          defaultLogLevel,
				ReconcileInterval: time.Hour,
				ReconcileBatch:    defaultReconcileBatch,
				ReconcileWorkers:  defaultReconcileWorkers,
			},
		},
		{
			name: "env overrides flags",
			env: map[string]string{
				"DATABASE_URI":       "postgres://env",
				"JWT_USER_SECRET":    "env-secret",
				"RUN_ADDRESS":        ":9090",
				"RECONCILE_INTERVAL": "0s",
				"RECONCILE_WORKERS":  "8",
			},
			args: []string{"-d", "postgres://flags", "-j", "secret", "-rw", "2"},
			want: &Config{
				RunAddress:        ":9090",
				DatabaseDSN:       "postgres://env",
				JWTUserSecret:     "env-secret",
				LogLevel:          defaultLogLevel,
				ReconcileInterval: 0,
				ReconcileBatch:    defaultReconcileBatch,
				ReconcileWorkers:  8,
			},
		},
		{
			name:    "missing dsn",
			args:    []string{"-j", "secret"},
			wantErr: true,
		},
		{
			name:    "missing jwt secret",
			args:    []string{"-d", "postgres://flags"},
			wantErr: true,
		},
		{
			name:    "zero workers",
			args:    []string{"-d", "postgres://flags", "-j", "secret", "-rw", "0"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"-unknown"},
			wantErr: true,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{
				"RUN_ADDRESS", "DATABASE_URI", "JWT_USER_SECRET", "LOG_LEVEL",
				"RECONCILE_INTERVAL", "RECONCILE_BATCH", "RECONCILE_WORKERS",
			} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			conf, err := loadConfig("test", tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, conf)
		})
	}
}
