package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rana718/fakegraph/internal/config"
	"github.com/Rana718/fakegraph/template"
)

var initFormat string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new fakegraph project",
	Long: `Write a starter fakegraph.config.json and an example datamodel.graphql.
Existing files are never overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initializeProject(cmd.OutOrStdout(), initFormat)
	},
}

func initializeProject(w io.Writer, format string) error {
	tmpl := template.NewProjectTemplate(format)

	files := []struct {
		path    string
		content string
		exists  func() bool
	}{
		{config.FileName, tmpl.GetConfig(), config.IsInitialized},
		{"datamodel.graphql", tmpl.GetDatamodel(), fileExists("datamodel.graphql")},
	}

	var created, skipped []string
	for _, f := range files {
		if f.exists() {
			skipped = append(skipped, f.path)
			continue
		}
		if dir := filepath.Dir(f.path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(f.path, []byte(f.content), 0644); err != nil {
			return fmt.Errorf("failed to create file %s: %w", f.path, err)
		}
		created = append(created, f.path)
	}

	green := color.New(color.FgGreen)
	if len(created) > 0 {
		green.Fprintf(w, "✅ Initialized fakegraph project with %s output\n", tmpl.Format)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "📝 Files created:")
		for _, path := range created {
			fmt.Fprintf(w, "   %s\n", path)
		}
	}
	for _, path := range skipped {
		fmt.Fprintf(w, "ℹ️  Skipped %s (already exists)\n", path)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "🚀 Next steps:\n")
	fmt.Fprintf(w, "   fakegraph inspect     # Review the datamodel\n")
	fmt.Fprintf(w, "   fakegraph generate    # Write %s\n", tmpl.OutputPath())
	fmt.Fprintf(w, "   %s\n", tmpl.Hint())

	return nil
}

func fileExists(path string) func() bool {
	return func() bool {
		_, err := os.Stat(path)
		return err == nil
	}
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initFormat, "format", "graphql", "output format for the starter config: graphql, sql, yaml or go")
}
