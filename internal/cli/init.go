package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/segaxis/pkg/config"
)

// initCommand writes a sample axis config to get started from.
func (c *CLI) initCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [axis.toml]",
		Short: "Write a sample axis config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "axis.toml"
			if len(args) == 1 {
				path = args[0]
			}
			return runInit(path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func runInit(path string, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if os.IsExist(err) {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err != nil {
		return err
	}
	defer f.Close()

	if err := config.Sample().EncodeTOML(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	printSuccess("Config written")
	printFile(path)
	printNewline()
	printNextStep("Lay out", appName+" layout "+path)
	return nil
}
