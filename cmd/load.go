package cmd

import (
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:          "load",
	Short:        "Load a dataset and report its shape",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		return sess.Load(file)
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().String("file", "", "path to the data file")
	_ = loadCmd.MarkFlagRequired("file")
}
