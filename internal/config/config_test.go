package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.True(t, cfg.ShowLineNumbers)
	require.Equal(t, 4, cfg.TabWidth)
	require.True(t, cfg.Cache.Enabled)
	require.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	require.Equal(t, 100*time.Millisecond, cfg.Watch.Debounce)
	require.False(t, cfg.Tracing.Enabled)
	require.Equal(t, "file", cfg.Tracing.Exporter)
	require.NoError(t, cfg.Validate())
}

func TestValidate_TabWidth(t *testing.T) {
	cfg := Defaults()
	cfg.TabWidth = 0
	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "tab_width")

	cfg.TabWidth = 17
	require.Error(t, cfg.Validate())
}

func TestValidate_NegativeDurations(t *testing.T) {
	cfg := Defaults()
	cfg.Cache.TTL = -time.Second
	require.ErrorContains(t, cfg.Validate(), "cache.ttl")

	cfg = Defaults()
	cfg.Watch.Debounce = -time.Second
	require.ErrorContains(t, cfg.Validate(), "watch.debounce")
}

func TestValidateTracing(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "sample rate too high", mutate: func(c *Config) { c.Tracing.SampleRate = 1.5 }, wantErr: "sample_rate"},
		{name: "sample rate negative", mutate: func(c *Config) { c.Tracing.SampleRate = -0.1 }, wantErr: "sample_rate"},
		{name: "unknown exporter", mutate: func(c *Config) { c.Tracing.Exporter = "jaeger" }, wantErr: "tracing.exporter"},
		{
			name: "enabled file without path",
			mutate: func(c *Config) {
				c.Tracing.Enabled = true
				c.Tracing.FilePath = ""
			},
			wantErr: "file_path",
		},
		{
			name: "enabled otlp without endpoint",
			mutate: func(c *Config) {
				c.Tracing.Enabled = true
				c.Tracing.Exporter = "otlp"
				c.Tracing.OTLPEndpoint = ""
			},
			wantErr: "otlp_endpoint",
		},
		{
			name: "disabled file without path",
			mutate: func(c *Config) {
				c.Tracing.FilePath = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestThemeConfig_FlattenedColors(t *testing.T) {
	theme := ThemeConfig{
		Colors: map[string]any{
			"code": map[string]any{
				"tag":    "#FF0000",
				"string": "#00FF00",
			},
			"gutter.line_number": "#0000FF",
			"toolbar": map[any]any{
				"badge": "#123456",
			},
		},
	}

	require.Equal(t, map[string]string{
		"code.tag":           "#FF0000",
		"code.string":        "#00FF00",
		"gutter.line_number": "#0000FF",
		"toolbar.badge":      "#123456",
	}, theme.FlattenedColors())
}

func TestThemeConfig_FlattenedColors_Empty(t *testing.T) {
	require.Empty(t, ThemeConfig{}.FlattenedColors())
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))
}

func TestDefaultConfigTemplate_MatchesDefaults(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(DefaultConfigTemplate())))

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	defaults := Defaults()
	require.Equal(t, defaults.ShowLineNumbers, cfg.ShowLineNumbers)
	require.Equal(t, defaults.TabWidth, cfg.TabWidth)
	require.Equal(t, defaults.Cache, cfg.Cache)
	require.Equal(t, defaults.Watch, cfg.Watch)
	require.Equal(t, defaults.Tracing.Exporter, cfg.Tracing.Exporter)
	require.Equal(t, defaults.Tracing.OTLPEndpoint, cfg.Tracing.OTLPEndpoint)
	require.InDelta(t, defaults.Tracing.SampleRate, cfg.Tracing.SampleRate, 0.0001)
	require.Empty(t, cfg.Theme.Preset)
	require.Equal(t, defaults.Flags, cfg.Flags)
}
