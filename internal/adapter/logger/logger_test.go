package logger

import (
	"testing"

	"github.com/MikeRez0/enrollment/internal/adapter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		conf      config.App
		wantErr   bool
	}{
		{name: "develop", conf: config.App{LogLevel: "debug", Mode: config.AppModeDevelop}},
		{name: "production", conf: config.App{LogLevel: "error", Mode: config.AppModeProduction}},
		{name: "bad level", conf: config.App{LogLevel: "loud"}, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l, err := NewLogger(&test.conf)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			lvl, _ := zap.ParseAtomicLevel(test.conf.LogLevel)
			assert.True(t, l.Core().Enabled(lvl.Level()))
			assert.False(t, l.Core().Enabled(lvl.Level()-1))
		})
	}
}
