package cmd

import (
	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:          "suggest",
	Short:        "LLM suggestions for preprocessing or hyperparameter tuning",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		task, _ := cmd.Flags().GetString("task")
		return sess.Suggest(cmd.Context(), task)
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().String("task", "", "task type: preprocessing or hyperparameter_tuning")
	_ = suggestCmd.MarkFlagRequired("task")
}
