package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"loadscreen-export/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dotaPath string
	verbose  bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "dotals",
	Short: "Dota 2 loading screen exporter",
	Long: `dotals reads the Dota 2 game archive, finds every loading screen item and
exports its artwork as an image. Records of what was exported are kept so
later runs only export new or changed loading screens.

Usage: dotals -d <path to dota2> <outdir>`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if dotaPath == "" && len(args) == 0 {
			return cmd.Help()
		}
		return runExport(cmd, args)
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// Use the application's standard logger for error reporting
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dotaPath, "dota-path", "d", "", "Dota 2 installation directory or path to a *_dir.vpk")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output")
	addExportFlags(RootCmd)
}
