package cmd

import (
	"github.com/spf13/cobra"
)

var edaCmd = &cobra.Command{
	Use:          "eda",
	Short:        "Generate and execute an EDA report",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		plot, _ := cmd.Flags().GetString("plot")
		return sess.EDA(cmd.Context(), file, plot)
	},
}

func init() {
	rootCmd.AddCommand(edaCmd)

	edaCmd.Flags().String("file", "", "path to the data file")
	edaCmd.Flags().String("plot", "", "plot types to include (e.g., 'all', 'scatter', 'heatmap')")
	_ = edaCmd.MarkFlagRequired("file")
}
