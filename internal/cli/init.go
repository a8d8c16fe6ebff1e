package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fingerbox/pkg/box"
	"github.com/matzehuels/fingerbox/pkg/config"
	"github.com/matzehuels/fingerbox/pkg/errors"
)

// initCommand writes a starter parameter file.
func (c *CLI) initCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write a starter parameter file",
		Long: `Write a parameter file for a 100 x 80 x 60 box with a flat lid.

Edit it, then build the box with:

  fingerbox generate -c box.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "box.toml"
			if len(args) == 1 {
				path = args[0]
			}
			return writeStarter(path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// starterParams is the box written by init.
func starterParams() config.File {
	f := defaultParams()
	f.Width, f.Depth, f.Height = 100, 80, 60
	f.Lid = string(box.LidFlat)
	f.Finger = config.Finger{Mode: config.FingerModeWidth, Width: box.DefaultFingerWidth}
	return f
}

func writeStarter(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Configuration("file", "%s already exists (use --force to overwrite)", path)
	}

	var buf bytes.Buffer
	if err := config.Encode(&buf, starterParams()); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	printSuccess("Wrote parameter file")
	printFile(path)
	printNewline()
	printNextStep("Generate", appName+" generate -c "+path)
	return nil
}
