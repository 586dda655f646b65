package cmd

import (
	"os"

	"github.com/jrschumacher/jwtinspect/internal/config"
	"github.com/jrschumacher/jwtinspect/internal/logger"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "jwtinspect",
	Short: "Decode and explain JSON Web Tokens",
	Long: `jwtinspect decodes a JWT without verifying it, names the identity provider
that issued it and describes each claim.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return config.Validate(cfg)
	},
}

func Execute(c *config.Config) {
	cfg = c
	logger.Debug("Starting CLI", "env", cfg.AppEnv)
	if err := rootCmd.Execute(); err != nil {
		logger.Error("CLI error", "error", err)
		os.Exit(1)
	}
}
