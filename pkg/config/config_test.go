package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdejongh/dirdiff/pkg/models"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	filter, err := cfg.Filter()
	require.NoError(t, err)
	assert.Equal(t, models.StateDifferent, filter)
	assert.Equal(t, "Text", cfg.Compare.Format)
	assert.Equal(t, "sha256", cfg.Compare.Algorithm)
	assert.False(t, cfg.Output.Progress)
	assert.Empty(t, cfg.Logging.File)
}

func TestParse(t *testing.T) {
	t.Run("FullFile", func(t *testing.T) {
		cfg, err := Parse([]byte(`
compare:
  mode: [Equal, LeftMissing]
  format: json
  algorithm: blake3
performance:
  buffer_size: 8192
  bandwidth_limit: 10M
output:
  progress: true
  file: /tmp/report.json
logging:
  file: /tmp/dirdiff.log
  format: json
  level: debug
exclude:
  - "*.tmp"
  - .git/
`))
		require.NoError(t, err)

		opts, err := cfg.Options("/l", "/r")
		require.NoError(t, err)
		assert.Equal(t, models.StateEqual|models.StateLeftMissing, opts.Filter)
		assert.Equal(t, models.FormatJSON, opts.Format)
		assert.Equal(t, "blake3", opts.Algorithm)
		assert.Equal(t, 8192, opts.BufferSize)
		assert.Equal(t, int64(10*1024*1024), opts.BandwidthLimit)
		assert.Equal(t, []string{"*.tmp", ".git/"}, opts.ExcludePatterns)
		assert.True(t, cfg.Output.Progress)
		assert.Equal(t, "/tmp/report.json", cfg.Output.File)
		assert.Equal(t, "debug", cfg.LoggerConfig().Level)
	})

	t.Run("ScalarMode", func(t *testing.T) {
		cfg, err := Parse([]byte("compare:\n  mode: Missing, Equal\n"))
		require.NoError(t, err)
		filter, err := cfg.Filter()
		require.NoError(t, err)
		assert.Equal(t, models.StateMissing|models.StateEqual, filter)
	})

	t.Run("PartialFileKeepsDefaults", func(t *testing.T) {
		cfg, err := Parse([]byte("logging:\n  level: warn\n"))
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.Equal(t, "text", cfg.Logging.Format)
		assert.Equal(t, 65536, cfg.Performance.BufferSize)
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		_, err := Parse([]byte("compare: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("MappingMode", func(t *testing.T) {
		_, err := Parse([]byte("compare:\n  mode:\n    a: b\n"))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"UnknownMode", func(c *Config) { c.Compare.Mode = ModeList{"Sometimes"} }, "compare.mode"},
		{"UnknownFormat", func(c *Config) { c.Compare.Format = "Xml" }, "compare.format"},
		{"UnknownAlgorithm", func(c *Config) { c.Compare.Algorithm = "md5" }, "compare.algorithm"},
		{"SmallBuffer", func(c *Config) { c.Performance.BufferSize = 512 }, "performance.buffer_size"},
		{"BufferBelowChunkMinimum", func(c *Config) { c.Performance.BufferSize = 2048 }, "performance.buffer_size"},
		{"BadBandwidth", func(c *Config) { c.Performance.BandwidthLimit = "fast" }, "performance.bandwidth_limit"},
		{"BadLogFormat", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"BadLogLevel", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)

			_, err = cfg.Options("/l", "/r")
			assert.Error(t, err)
		})
	}
}

func TestOptionsRequiresPaths(t *testing.T) {
	_, err := Default().Options("", "/r")
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "LeftPath", verr.Field)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Compare.Mode = ModeList{"All"}
	cfg.Exclude = []string{"*.bak"}
	require.NoError(t, SaveToFile(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	cfg.Compare.Format = "Xml"
	assert.Error(t, SaveToFile(cfg, path))
}

func TestLoad(t *testing.T) {
	t.Run("ExplicitMissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("DefaultLocationMissing", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("DefaultLocationPresent", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		path, err := DefaultConfigPath()
		require.NoError(t, err)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("compare:\n  format: Csv\n"), 0644))

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "Csv", cfg.Compare.Format)
	})
}
