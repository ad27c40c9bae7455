package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/tempdial/internal/infra/clock"
	"github.com/aalvaropc/tempdial/internal/infra/logger"
	"github.com/aalvaropc/tempdial/internal/infra/mocksource"
	"github.com/aalvaropc/tempdial/internal/ui/tui"
)

type globalFlags struct {
	debug     bool
	configDir string
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "tempdial",
		Short:        "tempdial: live temperature dial with manual override",
		SilenceUsage: true,
		RunE: func(c *cobra.Command, _ []string) error {
			ws, err := loadSettings(flags.configDir)
			if err != nil {
				return err
			}

			defer setupLogging(c.ErrOrStderr(), ws, flags.debug)()

			log := logger.L()
			if ws.found {
				log.Info("config.loaded", "path", ws.path)
			} else {
				log.Info("config.defaults", "path", ws.path)
			}

			cfg := ws.cfg
			src := mocksource.New(
				mocksource.WithRange(cfg.Range),
				mocksource.WithLatency(cfg.Source.Latency),
				mocksource.WithFailureRate(cfg.Source.FailureRate),
			)

			return tui.Run(tui.Deps{
				Config:     cfg,
				Source:     src,
				Clock:      clock.NewReal(),
				ConfigPath: ws.path,
				Logger:     log,
				LogPath:    logger.Path(),
				Session:    logger.Session(),
				Debug:      flags.debug,
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable verbose logging to .tempdial/logs/tempdial.log")
	cmd.PersistentFlags().StringVar(&flags.configDir, "config", "", "directory holding tempdial.yaml (optional; autodetected if omitted)")

	cmd.AddCommand(versionCmd())
	cmd.AddCommand(configCmd(flags))
	return cmd
}

// setupLogging starts file logging under the config root. When that fails the
// run goes on with logging discarded and a warning on w.
func setupLogging(w io.Writer, ws *settings, debug bool) func() {
	cleanup, err := logger.Setup(logger.Config{
		Root:       ws.root,
		Debug:      debug,
		MaxSizeMB:  ws.cfg.Log.MaxSizeMB,
		MaxBackups: ws.cfg.Log.MaxBackups,
	})
	if err != nil {
		fmt.Fprintf(w, "warning: logging disabled: %v\n", err)
		return func() {}
	}
	return func() { _ = cleanup() }
}
