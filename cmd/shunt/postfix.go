package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shunt/internal/diagfmt"
	"shunt/internal/driver"
)

var postfixCmd = &cobra.Command{
	Use:   "postfix [flags] <expression>",
	Short: "Show the postfix form of an expression",
	Long:  `Postfix runs the shunting-yard conversion and prints the reordered token stream`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPostfix,
}

func init() {
	postfixCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runPostfix(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.PostfixExpr(args[0])
	if err != nil {
		printEvalError(cmd, loadSettings(cmd), err)
		return err
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		err := fmt.Errorf("unknown format: %s", format)
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return err
	}
}
