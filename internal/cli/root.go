package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tokokue.com/admin/internal/app"
	"tokokue.com/admin/internal/config"
)

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"addr":         "addr",
	"log-level":    "log_level",
	"store-driver": "store.driver",
	"store-dir":    "store.local_dir",
	"save-url":     "remote.save_url",
	"data-url":     "remote.data_url",
}

type env struct {
	cfgFile string
	cfg     config.Config
	logger  *slog.Logger
}

func NewRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "storeadmin",
		Short:         "Admin for a small storefront: site text, products and slides",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&e.cfgFile, "config", "", "config file (default ./config.yaml)")
	pf.String("log-level", "", "debug, info, warn or error")
	pf.String("store-driver", "", "local, memory, mysql or s3")
	pf.String("store-dir", "", "directory for the local store driver")
	pf.String("save-url", "", "remote save endpoint")
	pf.String("data-url", "", "remote data.json snapshot")

	root.AddCommand(
		newServeCmd(e),
		newSyncCmd(e),
		newProductsCmd(e),
		newSlidesCmd(e),
		newPasswordCmd(),
	)
	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (e *env) load(cmd *cobra.Command) error {
	flags := make(map[string]*pflag.Flag, len(flagKeys))
	for name, key := range flagKeys {
		flags[key] = cmd.Flags().Lookup(name)
	}

	cfg, err := config.Load(e.cfgFile, flags)
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.logger = app.NewLogger(cmd.ErrOrStderr(), cfg.SlogLevel())
	if cfg.File != "" {
		e.logger.Debug("config_loaded", slog.String("file", cfg.File))
	}
	return nil
}

func (e *env) app(ctx context.Context) (*app.App, error) {
	return app.Build(ctx, e.cfg, e.logger)
}
