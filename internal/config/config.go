package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/viper"

	"github.com/Rana718/fakegraph/internal/seeder"
	"github.com/Rana718/fakegraph/internal/writer"
)

// FileName is the config file looked up in the working directory.
const FileName = "fakegraph.config.json"

type Config struct {
	Version       string         `json:"version" mapstructure:"version"`
	SchemaPath    string         `json:"schema_path" mapstructure:"schema_path"`
	OutputPath    string         `json:"output_path" mapstructure:"output_path"`
	Format        string         `json:"format,omitempty" mapstructure:"format"` // inferred from output_path when empty
	Records       int            `json:"records" mapstructure:"records"`
	Types         map[string]int `json:"types,omitempty" mapstructure:"types"`
	Seed          int64          `json:"seed,omitempty" mapstructure:"seed"`
	EnforceUnique bool           `json:"enforce_unique,omitempty" mapstructure:"enforce_unique"`
	ListLength    int            `json:"list_length,omitempty" mapstructure:"list_length"`
	MaxDepth      int            `json:"max_depth,omitempty" mapstructure:"max_depth"`
	SQL           SQL            `json:"sql,omitempty" mapstructure:"sql"`
	Go            Go             `json:"go,omitempty" mapstructure:"go"`
}

type SQL struct {
	Dialect string `json:"dialect,omitempty" mapstructure:"dialect"`
}

type Go struct {
	Package string `json:"package,omitempty" mapstructure:"package"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Version == "" {
		c.Version = "1"
	}
	if c.SchemaPath == "" {
		c.SchemaPath = "datamodel.graphql"
	}
	if c.OutputPath == "" {
		c.OutputPath = "seed.graphql"
	}
	if c.Format == "" {
		c.Format = writer.FormatFromPath(c.OutputPath)
	}
	if c.Format == "" {
		c.Format = writer.FormatGraphQL
	}
	if c.Records == 0 && !viper.IsSet("records") {
		c.Records = 10
	}
	if c.ListLength == 0 {
		c.ListLength = 1
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = 1
	}
	if c.SQL.Dialect == "" {
		c.SQL.Dialect = writer.DialectPostgres
	}
	if c.Go.Package == "" {
		c.Go.Package = "fixtures"
	}
}

func (c *Config) Validate() error {
	if c.SchemaPath == "" {
		return fmt.Errorf("schema_path cannot be empty")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output_path cannot be empty")
	}
	if !slices.Contains(writer.Formats, c.Format) {
		return fmt.Errorf("unsupported format: %s. Supported formats: %v", c.Format, writer.Formats)
	}
	if c.Format == writer.FormatSQL && !slices.Contains(writer.Dialects, c.SQL.Dialect) {
		return fmt.Errorf("unsupported SQL dialect: %s. Supported dialects: %v", c.SQL.Dialect, writer.Dialects)
	}
	if c.Records < 0 {
		return fmt.Errorf("records cannot be negative: %d", c.Records)
	}
	for name, n := range c.Types {
		if n < 0 {
			return fmt.Errorf("record count for %s cannot be negative: %d", name, n)
		}
	}
	if c.ListLength < 0 {
		return fmt.Errorf("list_length cannot be negative: %d", c.ListLength)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth cannot be negative: %d", c.MaxDepth)
	}
	return nil
}

func (c *Config) SeedConfig() seeder.SeedConfig {
	return seeder.SeedConfig{Count: c.Records, Types: c.Types}
}

func (c *Config) GeneratorOptions() seeder.Options {
	return seeder.Options{
		Seed:          c.Seed,
		MaxDepth:      c.MaxDepth,
		ListLength:    c.ListLength,
		EnforceUnique: c.EnforceUnique,
	}
}

func (c *Config) WriterOptions() writer.Options {
	return writer.Options{
		Dialect: c.SQL.Dialect,
		Package: c.Go.Package,
	}
}

// IsInitialized reports whether the working directory already has a config file.
func IsInitialized() bool {
	_, err := os.Stat(FileName)
	return err == nil
}
