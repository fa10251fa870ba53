package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shunt/internal/driver"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] <file>",
	Short: "Evaluate a file of expressions",
	Long:  `Batch evaluates one expression per non-empty line concurrently; lines starting with '#' are skipped`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().Int("jobs", 0, "max concurrent evaluations (0 = GOMAXPROCS)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	st := loadSettings(cmd)

	results, err := driver.EvalFile(cmd.Context(), args[0], jobs)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return err
	}

	failures := 0
	for _, line := range results {
		if line.Err != nil {
			failures++
			fmt.Fprintf(cmd.ErrOrStderr(), "%4d: %s\n", line.Index, line.Expression)
			printEvalError(cmd, st, line.Err)
			continue
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "%4d: %s = %s\n",
				line.Index, line.Expression, st.formatValue(line.Value))
		}
	}

	if failures > 0 {
		err := fmt.Errorf("%d of %d expressions failed", failures, len(results))
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return err
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "evaluated %d expressions\n", len(results))
	}
	return nil
}
