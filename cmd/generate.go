package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Rana718/fakegraph/internal/config"
	"github.com/Rana718/fakegraph/internal/gencommon"
	"github.com/Rana718/fakegraph/internal/schema"
	"github.com/Rana718/fakegraph/internal/seeder"
	"github.com/Rana718/fakegraph/internal/watch"
	"github.com/Rana718/fakegraph/internal/writer"
)

var (
	watchFlag bool
	forceFlag bool
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate fake records from the datamodel",
	Long: `
Generate fake records for every type in the datamodel and write them to the
configured output. Required relations are filled with records created inline;
self and mutual required relations are cut off after one level.

Settings come from fakegraph.config.json and can be overridden with flags.
Use --out - to write to stdout.

With a fixed seed, unchanged schema and config are detected through
.fakegraph_cache.json and the output is left alone unless --force is given.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		log := cmd.ErrOrStderr()
		cache := gencommon.NewGenerationCache(".")

		if err := generateCached(cfg, cache, forceFlag, log); err != nil {
			if !watchFlag {
				return err
			}
			color.New(color.FgRed).Fprintf(log, "❌ %v\n", err)
		}

		if !watchFlag {
			return nil
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		color.New(color.FgCyan).Fprintf(log, "👀 Watching %s for changes (Ctrl+C to stop)\n", cfg.SchemaPath)
		w := &watch.Watcher{
			Path: cfg.SchemaPath,
			OnError: func(err error) {
				color.New(color.FgYellow).Fprintf(log, "⚠️  Watch error: %v\n", err)
			},
		}
		return w.Run(ctx, func() {
			if err := generateCached(cfg, cache, false, log); err != nil {
				color.New(color.FgRed).Fprintf(log, "❌ %v\n", err)
			}
		})
	},
}

// generateCached runs generate unless the cache shows the inputs behind the
// current output are unchanged. Only seeded runs are reproducible, so
// unseeded runs always regenerate.
func generateCached(cfg *config.Config, cache *gencommon.GenerationCache, force bool, log io.Writer) error {
	cacheable := cfg.Seed != 0 && cfg.OutputPath != writer.Stdout

	var fingerprint string
	if cacheable {
		fp, err := gencommon.ComputeFingerprint(cfg.SchemaPath, cfg)
		if err != nil {
			return fmt.Errorf("failed to read schema %s: %w", cfg.SchemaPath, err)
		}
		fingerprint = fp

		if !gencommon.ShouldRegenerate(cache, fingerprint, cfg.OutputPath, force) {
			gencommon.PrintSkipMessage(log, cfg.OutputPath)
			return nil
		}
	}

	gencommon.PrintGenerateMessage(log, cfg.OutputPath)
	if err := runGenerate(cfg, log); err != nil {
		return err
	}

	if cacheable {
		cache.Update(fingerprint, cfg.OutputPath)
		if err := cache.Save(); err != nil {
			color.New(color.FgYellow).Fprintf(log, "⚠️  Failed to save generation cache: %v\n", err)
		}
	}
	return nil
}

// runGenerate loads the datamodel and writes a complete output file. A failed
// run leaves any previous output untouched.
func runGenerate(cfg *config.Config, log io.Writer) error {
	model, err := schema.LoadFile(cfg.SchemaPath)
	if err != nil {
		return err
	}

	out, err := writer.Create(cfg.OutputPath)
	if err != nil {
		return err
	}

	sink, err := writer.New(cfg.Format, out, cfg.WriterOptions())
	if err != nil {
		out.Discard()
		return err
	}

	s := seeder.NewSeeder(model, cfg.GeneratorOptions(), sink)
	s.SetLog(log)
	if err := s.Seed(cfg.SeedConfig()); err != nil {
		out.Discard()
		return err
	}

	if err := out.Commit(); err != nil {
		return err
	}

	if cfg.OutputPath != writer.Stdout {
		color.New(color.FgGreen).Fprintf(log, "🎉 Seed data written to %s\n", cfg.OutputPath)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(generateCmd)

	flags := generateCmd.Flags()
	flags.StringP("schema", "s", "", "datamodel file (default datamodel.graphql)")
	flags.StringP("out", "o", "", "output file, - for stdout (default seed.graphql)")
	flags.StringP("format", "f", "", "output format: graphql, sql, yaml or go (default from --out)")
	flags.IntP("records", "n", 0, "records per type (default 10)")
	flags.Int64("seed", 0, "random seed, 0 for a different run every time")
	flags.Bool("unique", false, "keep @unique fields distinct across records")
	flags.String("dialect", "", "SQL dialect: postgres, mysql or sqlite")
	flags.Int("max-depth", 0, "nesting levels of required relations below each root (default 1)")
	flags.Int("list-length", 0, "items generated for list fields (default 1)")
	flags.BoolVarP(&watchFlag, "watch", "w", false, "regenerate when the datamodel changes")
	flags.BoolVar(&forceFlag, "force", false, "regenerate even when schema and config are unchanged")

	viper.BindPFlag("schema_path", flags.Lookup("schema"))
	viper.BindPFlag("output_path", flags.Lookup("out"))
	viper.BindPFlag("format", flags.Lookup("format"))
	viper.BindPFlag("records", flags.Lookup("records"))
	viper.BindPFlag("seed", flags.Lookup("seed"))
	viper.BindPFlag("enforce_unique", flags.Lookup("unique"))
	viper.BindPFlag("sql.dialect", flags.Lookup("dialect"))
	viper.BindPFlag("max_depth", flags.Lookup("max-depth"))
	viper.BindPFlag("list_length", flags.Lookup("list-length"))
}
