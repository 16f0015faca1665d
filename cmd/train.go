package cmd

import (
	"github.com/spf13/cobra"
)

var trainCmd = &cobra.Command{
	Use:          "train",
	Short:        "Ask the LLM for model training code and execute it",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		model, _ := cmd.Flags().GetString("model")
		file, _ := cmd.Flags().GetString("file")
		target, _ := cmd.Flags().GetString("target")
		return sess.Train(cmd.Context(), model, file, target)
	},
}

func init() {
	rootCmd.AddCommand(trainCmd)

	trainCmd.Flags().String("model", "", "model name (e.g., random_forest, xgboost)")
	trainCmd.Flags().String("file", "", "path to the data file")
	trainCmd.Flags().String("target", "", "target variable for model training")
	_ = trainCmd.MarkFlagRequired("model")
	_ = trainCmd.MarkFlagRequired("file")
	_ = trainCmd.MarkFlagRequired("target")
}
