package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rana718/fakegraph/internal/config"
	"github.com/Rana718/fakegraph/internal/schema"
	"github.com/Rana718/fakegraph/internal/seeder"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [datamodel]",
	Short: "Show how the datamodel will be generated",
	Long: `
Print the normalized datamodel: every type with its fields and the markers
that drive generation (required, list, unique, defaults, relations), the
enums, and the order in which required relations depend on each other.
Cycles listed at the end are cut off during generation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		path := cfg.SchemaPath
		if len(args) == 1 {
			path = args[0]
		}

		model, err := schema.LoadFile(path)
		if err != nil {
			return err
		}

		printModel(cmd.OutOrStdout(), path, model)
		return nil
	},
}

func printModel(w io.Writer, path string, model *schema.Model) {
	title := color.New(color.FgCyan, color.Bold)
	name := color.New(color.FgGreen, color.Bold)
	dim := color.New(color.FgHiBlack)
	warn := color.New(color.FgYellow)

	title.Fprintf(w, "📄 %s: %d types, %d enums\n", path, len(model.Types), len(model.Enums))

	for _, t := range model.Types {
		fmt.Fprintln(w)
		name.Fprintf(w, "type %s\n", t.Name)
		for _, f := range t.Fields {
			fmt.Fprintf(w, "  %-20s %-16s", f.Name, schema.TypeString(f))
			if notes := fieldNotes(model, f); len(notes) > 0 {
				dim.Fprintf(w, " %s", strings.Join(notes, ", "))
			}
			fmt.Fprintln(w)
		}
	}

	for _, e := range model.Enums {
		fmt.Fprintln(w)
		name.Fprintf(w, "enum %s\n", e.Name)
		fmt.Fprintf(w, "  %s\n", strings.Join(e.Values, " | "))
	}

	graph := seeder.BuildDependencyGraph(model)
	order := graph.BuildOrder()

	fmt.Fprintln(w)
	title.Fprintln(w, "🔗 Dependency order")
	fmt.Fprintf(w, "  %s\n", strings.Join(order, " → "))
	for _, typeName := range order {
		deps := graph.Dependencies(typeName)
		if len(deps) == 0 {
			continue
		}
		targets := make([]string, 0, len(deps))
		for _, e := range deps {
			targets = append(targets, e.Field+" → "+e.To)
		}
		fmt.Fprintf(w, "  %-20s %s\n", typeName, strings.Join(targets, ", "))
	}

	if cycles := graph.Cycles(); len(cycles) > 0 {
		fmt.Fprintln(w)
		warn.Fprintln(w, "♻️  Cycles (cut off after one nested level)")
		for _, e := range cycles {
			fmt.Fprintf(w, "  %s.%s → %s\n", e.From, e.Field, e.To)
		}
	}
}

func fieldNotes(model *schema.Model, f schema.Field) []string {
	var notes []string
	named := schema.NamedType(f)

	switch {
	case seeder.IsReservedField(f):
		notes = append(notes, "skipped")
	case model != nil:
		if _, ok := model.FindType(named); ok {
			if schema.IsRequired(f) {
				notes = append(notes, "nested create")
			} else {
				notes = append(notes, "optional relation, omitted")
			}
		} else if _, ok := model.FindEnum(named); ok {
			notes = append(notes, "enum")
		}
	}

	if schema.IsUnique(f) {
		notes = append(notes, "unique")
	}
	if v, ok := schema.DefaultValue(f); ok {
		notes = append(notes, "default "+v.Raw)
	}
	if v, ok := schema.RelationAlias(f); ok {
		notes = append(notes, "relation "+v.Raw)
	}
	return notes
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
