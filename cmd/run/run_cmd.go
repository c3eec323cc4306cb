package run

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vuetools/svgswap/config"
	"github.com/vuetools/svgswap/logger"
	"github.com/vuetools/svgswap/process"
	"github.com/vuetools/svgswap/scan"
)

var (
	flagDir    string
	flagConfig string
	flagYes    bool
	flagDryRun bool
)

// Cmd represents the run command
var Cmd = &cobra.Command{
	Use:   "run",
	Short: "Rewrite inline-SVG img tags across a directory of component files",
	Long: `Rewrite inline-SVG img tags across a directory of component files.

Scans the directory recursively for component files, rewrites every
<img ... v-svg-inline ...> tag with a static src into an imported SVG
component, and writes the changed files back in place.

Examples:
  svgswap run                    # scan the configured root (default ".")
  svgswap run -d ./pages -y      # scan ./pages, skip the prompt
  svgswap run --dry-run          # report without writing`,
	RunE: runRun,
}

func init() {
	Cmd.Flags().StringVarP(&flagDir, "dir", "d", "", "Directory to scan (overrides the config root)")
	Cmd.Flags().StringVar(&flagConfig, "config", "", "Path to svgswap.yaml")
	Cmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation prompt")
	Cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Report changes without writing files")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	root := cfg.Root
	if flagDir != "" {
		root = flagDir
	}
	dryRun := cfg.DryRun || flagDryRun

	files, err := scan.FindComponentFiles(root, cfg.Extensions, cfg.Exclude)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", root, err)
	}
	if len(files) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No component files found in %s\n", root)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Found %d component files in %s\n", len(files), root)

	if !flagYes && !dryRun && !confirm(cmd) {
		fmt.Fprintln(cmd.OutOrStdout(), "Transformation cancelled.")
		return nil
	}

	changedCount := 0
	for _, file := range files {
		changed, err := process.File(file, dryRun)
		if err != nil {
			// A bad file must not abort the rest of the batch.
			logger.Error("error processing %s: %v", file, err)
			continue
		}
		if changed {
			changedCount++
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nProcessed %d out of %d files\n", changedCount, len(files))
	return nil
}

func confirm(cmd *cobra.Command) bool {
	fmt.Fprint(cmd.OutOrStdout(), "Proceed with the transformation? (y/N): ")

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}
