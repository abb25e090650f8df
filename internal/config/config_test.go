package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randytsao24/citydistance/internal/pipeline"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg := Load()
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.DirectoryFile)
	assert.Equal(t, "text", cfg.OutputFormat)
	assert.Equal(t, "composed", cfg.PipelineStyle)
	assert.Equal(t, 300*time.Second, cfg.CacheTTL)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CITYDISTANCE_ENV", "production")
	t.Setenv("CITYDISTANCE_LOG_LEVEL", "debug")
	t.Setenv("CITYDISTANCE_DIRECTORY_FILE", "/tmp/places.yaml")
	t.Setenv("CITYDISTANCE_OUTPUT_FORMAT", "json")
	t.Setenv("CITYDISTANCE_PIPELINE_STYLE", "staged")
	t.Setenv("CITYDISTANCE_CACHE_TTL_SECONDS", "30")

	cfg := Load()
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/places.yaml", cfg.DirectoryFile)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	require.NoError(t, cfg.Validate())

	opts, err := cfg.ServiceOptions()
	require.NoError(t, err)
	assert.Equal(t, pipeline.FormatJSON, opts.Format)
	assert.Equal(t, pipeline.StyleStaged, opts.Style)
	assert.Equal(t, 30*time.Second, opts.CacheTTL)
}

func TestValidate_Rejects(t *testing.T) {
	base := Config{OutputFormat: "text", PipelineStyle: "composed", CacheTTL: time.Second}

	cases := map[string]func(c *Config){
		"format": func(c *Config) { c.OutputFormat = "xml" },
		"style":  func(c *Config) { c.PipelineStyle = "parallel" },
		"ttl":    func(c *Config) { c.CacheTTL = 0 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := base
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

func TestServiceOptions_RejectsUnparsedValues(t *testing.T) {
	_, err := (&Config{OutputFormat: "xml", PipelineStyle: "composed"}).ServiceOptions()
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = (&Config{OutputFormat: "text", PipelineStyle: "parallel"}).ServiceOptions()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
