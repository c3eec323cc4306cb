package watch

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vuetools/svgswap/config"
)

var (
	flagDir    string
	flagConfig string
	flagDryRun bool
)

// Cmd represents the watch command
var Cmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a directory and rewrite inline-SVG img tags as files change",
	Long: `Watch a directory and rewrite inline-SVG img tags as files change.

Every write or create of a component file re-runs the transform on that
file. Already-transformed files contain no candidate tags, so the rewrite
triggered by svgswap's own write is a no-op.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}

		root := cfg.Root
		if flagDir != "" {
			root = flagDir
		}
		dryRun := cfg.DryRun || flagDryRun

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for component changes (ctrl-c to stop)\n", root)
		return watchAndRewrite(ctx, root, cfg, dryRun)
	},
}

func init() {
	Cmd.Flags().StringVarP(&flagDir, "dir", "d", "", "Directory to watch (overrides the config root)")
	Cmd.Flags().StringVar(&flagConfig, "config", "", "Path to svgswap.yaml")
	Cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Report changes without writing files")
}
