package cmd

import (
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:          "interactive",
	Short:        "Start an interactive LLM session",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return sess.Interactive(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
