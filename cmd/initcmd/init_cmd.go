package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vuetools/svgswap/config"
)

const starterConfig = `# svgswap configuration
root: .
extensions:
  - .vue
exclude: []
dry_run: false
`

var flagForce bool

// Cmd represents the init command
var Cmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter svgswap.yaml in the current directory",
	RunE:  runInit,
}

func init() {
	Cmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultFileName
	if _, err := os.Stat(path); err == nil && !flagForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
