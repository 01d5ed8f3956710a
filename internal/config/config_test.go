package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFrom(t *testing.T, content string) *Config {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	if content != "" {
		path := filepath.Join(t.TempDir(), FileName)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		viper.SetConfigFile(path)
		require.NoError(t, viper.ReadInConfig())
	}

	cfg, err := Load()
	require.NoError(t, err)
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := loadFrom(t, "")

	assert.Equal(t, "datamodel.graphql", cfg.SchemaPath)
	assert.Equal(t, "seed.graphql", cfg.OutputPath)
	assert.Equal(t, "graphql", cfg.Format)
	assert.Equal(t, 10, cfg.Records)
	assert.Equal(t, 1, cfg.ListLength)
	assert.Equal(t, 1, cfg.MaxDepth)
	assert.Equal(t, "postgres", cfg.SQL.Dialect)
	assert.Equal(t, "fixtures", cfg.Go.Package)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	cfg := loadFrom(t, `{
  "schema_path": "schema/app.graphql",
  "output_path": "db/seed.sql",
  "records": 3,
  "types": {"User": 5, "Log": 0},
  "seed": 42,
  "enforce_unique": true,
  "sql": {"dialect": "mysql"}
}`)

	assert.Equal(t, "schema/app.graphql", cfg.SchemaPath)
	assert.Equal(t, "sql", cfg.Format, "format follows the output extension")
	assert.Equal(t, "mysql", cfg.SQL.Dialect)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.EnforceUnique)
	require.NoError(t, cfg.Validate())

	seed := cfg.SeedConfig()
	assert.Equal(t, 5, seed.CountFor("User"))
	assert.Equal(t, 0, seed.CountFor("Log"))
	assert.Equal(t, 3, seed.CountFor("Post"))

	opts := cfg.GeneratorOptions()
	assert.Equal(t, int64(42), opts.Seed)
	assert.True(t, opts.EnforceUnique)
	assert.Equal(t, "mysql", cfg.WriterOptions().Dialect)
}

func TestExplicitZeroRecords(t *testing.T) {
	cfg := loadFrom(t, `{"records": 0}`)
	assert.Equal(t, 0, cfg.Records)
}

func TestExplicitFormatWins(t *testing.T) {
	cfg := loadFrom(t, `{"output_path": "out.txt", "format": "yaml"}`)
	assert.Equal(t, "yaml", cfg.Format)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown format", func(c *Config) { c.Format = "csv" }, "unsupported format"},
		{"unknown dialect", func(c *Config) { c.Format = "sql"; c.SQL.Dialect = "oracle" }, "unsupported SQL dialect"},
		{"dialect ignored outside sql", func(c *Config) { c.SQL.Dialect = "oracle" }, ""},
		{"negative records", func(c *Config) { c.Records = -1 }, "records cannot be negative"},
		{"negative type count", func(c *Config) { c.Types = map[string]int{"User": -2} }, "User"},
		{"negative depth", func(c *Config) { c.MaxDepth = -1 }, "max_depth"},
		{"negative list length", func(c *Config) { c.ListLength = -1 }, "list_length"},
		{"empty schema path", func(c *Config) { c.SchemaPath = "" }, "schema_path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadFrom(t, "")
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestIsInitialized(t *testing.T) {
	chdir(t, t.TempDir())

	assert.False(t, IsInitialized())
	require.NoError(t, os.WriteFile(FileName, []byte("{}"), 0644))
	assert.True(t, IsInitialized())
}
