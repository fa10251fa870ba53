package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shunt/internal/diagfmt"
	"shunt/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <expression>",
	Short: "Tokenize an arithmetic expression",
	Long:  `Tokenize breaks down an expression into its constituent tokens in infix order`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.TokenizeExpr(args[0])
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
