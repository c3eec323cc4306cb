package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vuetools/svgswap/cmd/initcmd"
	"github.com/vuetools/svgswap/cmd/run"
	"github.com/vuetools/svgswap/cmd/watch"
	"github.com/vuetools/svgswap/logger"
)

// version is set via build-time ldflags
var version = "dev"

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "svgswap",
	Short: "Rewrite inline-SVG img tags in Vue components into imported components",
	Long: `Svgswap rewrites <img ... v-svg-inline ...> tags in Vue single-file
components into self-closing SVG component elements, adding the matching
import statements to each file's script section. Everything else in the
file is preserved byte-for-byte.

Use 'svgswap --help' to see all available commands, or 'svgswap <command> --help'
for detailed information about a specific command.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(run.Cmd)
	rootCmd.AddCommand(watch.Cmd)
	rootCmd.AddCommand(initcmd.Cmd)

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug output")
}
