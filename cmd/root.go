package cmd

import (
	"os"

	"github.com/nguyentranbao-ct/product-dashboard/internal/app"
	"github.com/nguyentranbao-ct/product-dashboard/internal/server"
	"github.com/nguyentranbao-ct/product-dashboard/pkg/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "product-dashboard",
	Short:         "Serve the product catalog dashboard",
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		defer logger.Sync()
		app.Invoke(
			server.StartServer,
		).Run()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.MustNamed("cmd").Errorw("command failed", "error", err)
		os.Exit(1)
	}
}
