package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sitegen",
	Short: "Generate website sections from a one-line idea",
	Long: `sitegen classifies a short website idea into a bucket (food, portfolio,
commerce or generic), stores the idea with three section suggestions and
serves them over a JSON API.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newClassifyCmd())
}
