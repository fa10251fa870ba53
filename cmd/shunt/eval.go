package main

import (
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] <expression>",
	Short: "Evaluate an arithmetic expression",
	Long:  `Eval lexes an infix expression, converts it to postfix order and folds it to a single number`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	return evalAndPrint(cmd, args[0])
}
