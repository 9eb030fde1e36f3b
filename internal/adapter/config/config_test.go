package config

import (
	"flag"
	"testing"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		environ map[string]string
		check   func(t *testing.T, c *Config)
		wantErr bool
	}{
		{
			name: "defaults",
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "localhost:8080", c.HTTP.HostString)
				assert.Equal(t, AppModeDevelop, c.App.Mode)
				assert.Equal(t, 72*time.Hour, c.Auth.TokenTTL)
				assert.Equal(t, 10*time.Second, c.Gateway.Timeout)
				assert.Equal(t, "https://sandbox.cashfree.com/pg", c.Gateway.Endpoint())
				assert.Equal(t, decimal.MustParse("0.18"), c.Pricing.TaxRate)
				assert.Equal(t, "INR", c.Pricing.Currency)
				assert.Equal(t, 2, c.Sweeper.Workers)
				assert.Empty(t, c.Redis.Address)
			},
		},
		{
			name: "flags",
			args: []string{"-a", ":9090", "-d", "postgres://db", "-m", "PROD", "-l", "info"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, ":9090", c.HTTP.HostString)
				assert.Equal(t, "postgres://db", c.Database.DSN)
				assert.Equal(t, AppModeProduction, c.App.Mode)
				assert.Equal(t, "info", c.App.LogLevel)
			},
		},
		{
			name: "env overrides flags",
			args: []string{"-a", ":9090"},
			environ: map[string]string{
				"RUN_ADDRESS":    ":7070",
				"ADMIN_EMAILS":   "a@example.com,b@example.com",
				"CASHFREE_ENV":   "production",
				"TAX_RATE":       "0.05",
				"SWEEP_INTERVAL": "0s",
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, ":7070", c.HTTP.HostString)
				assert.Equal(t, []string{"a@example.com", "b@example.com"}, c.Auth.AdminEmails)
				assert.Equal(t, "https://api.cashfree.com/pg", c.Gateway.Endpoint())
				assert.Equal(t, decimal.MustParse("0.05"), c.Pricing.TaxRate)
				assert.Equal(t, time.Duration(0), c.Sweeper.Interval)
			},
		},
		{
			name:    "bad tax rate",
			environ: map[string]string{"TAX_RATE": "eighteen"},
			wantErr: true,
		},
		{
			name:    "negative tax rate",
			environ: map[string]string{"TAX_RATE": "-0.1"},
			wantErr: true,
		},
		{
			name:    "unknown gateway env",
			environ: map[string]string{"CASHFREE_ENV": "staging"},
			wantErr: true,
		},
		{
			name:    "bad duration",
			environ: map[string]string{"GATEWAY_TIMEOUT": "soon"},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fs := flag.NewFlagSet(test.name, flag.ContinueOnError)
			environ := test.environ
			if environ == nil {
				environ = map[string]string{}
			}

			c, err := parse(fs, test.args, env.Options{Environment: environ})
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			test.check(t, c)
		})
	}
}
