package cmd

import (
	"github.com/jrschumacher/jwtinspect/server"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:     "server",
	Aliases: []string{"start"},
	Short:   "Start the inspector web server",
	RunE: func(_ *cobra.Command, _ []string) error {
		return server.Start(cfg)
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
