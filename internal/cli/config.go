package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/tempdial/internal/infra/config"
	"github.com/aalvaropc/tempdial/internal/infra/configinit"
	"github.com/aalvaropc/tempdial/internal/ports"
)

func configCmd(flags *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Create or inspect tempdial.yaml",
	}
	c.AddCommand(configInitCmd(flags))
	c.AddCommand(configShowCmd(flags))
	return c
}

func configInitCmd(flags *globalFlags) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a default tempdial.yaml in the config directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := initRoot(flags.configDir)
			if err != nil {
				return err
			}

			dst := filepath.Join(root, config.FileName)
			_, statErr := os.Stat(dst)
			existed := statErr == nil

			var initializer ports.ConfigInitializer = configinit.NewInitializer()
			if err := initializer.Init(root, force); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case existed && !force:
				fmt.Fprintf(out, "Kept existing %s (use --force to overwrite)\n", dst)
			case existed:
				fmt.Fprintf(out, "Overwrote %s\n", dst)
			default:
				fmt.Fprintf(out, "Created %s\n", dst)
			}
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing tempdial.yaml")
	return c
}

func configShowCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadSettings(flags.configDir)
			if err != nil {
				return err
			}

			b, err := config.Marshal(ws.cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if ws.found {
				fmt.Fprintf(out, "# %s\n", ws.path)
			} else {
				fmt.Fprintf(out, "# defaults (no %s found)\n", config.FileName)
			}
			_, err = out.Write(b)
			return err
		},
	}
}

// initRoot is where init writes: the --config directory, or the working directory.
func initRoot(configFlag string) (string, error) {
	c := strings.TrimSpace(configFlag)
	if c == "" {
		c = "."
	}
	abs, err := filepath.Abs(c)
	if err != nil {
		return "", fmt.Errorf("invalid config path: %w", err)
	}
	return abs, nil
}
