package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Rana718/fakegraph/internal/config"
)

var (
	cfgFile string
	Version = "0.3.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════════════╗",
		"║    ___      _                               _        ║",
		"║   / __\\__ _| | _____  __ _ _ __ __ _ _ __ | |__     ║",
		"║  / _\\/ _` | |/ / _ \\/ _` | '__/ _` | '_ \\| '_ \\    ║",
		"║ / / | (_| |   <  __/ (_| | | | (_| | |_) | | | |   ║",
		"║ \\/   \\__,_|_|\\_\\___|\\__, |_|  \\__,_| .__/|_| |_|   ║",
		"║                     |___/          |_|              ║",
		"║                                                      ║",
		"║      🌱 Fake seed data from GraphQL datamodels 🌱     ║",
		"╚══════════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("                    ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "fakegraph",
	Short: "Generate fake seed data from a GraphQL datamodel",
	Long: `
fakegraph reads a Prisma-style GraphQL datamodel and writes plausible fake
records for every type, creating required related records inline.

Output formats:
- GraphQL (one mutation with aliased create calls)
- SQL (INSERT statements for PostgreSQL, MySQL or SQLite)
- YAML fixtures
- Go fixtures (a generated Fixtures slice)`,

	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "fakegraph version %s\n", Version)
			return nil
		}

		showBanner()
		fmt.Println()
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.FileName+")")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("fakegraph.config")
	}

	viper.SetEnvPrefix("FAKEGRAPH")
	viper.AutomaticEnv()

	// Without a config file the defaults and flags apply.
	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		color.Yellow("⚠️  Could not read config %s: %v", cfgFile, err)
	}
}
