package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"shunt/internal/version"
)

const usageHint = "Please provide an expression to evaluate as one string without spaces. Example: 2*5"

var rootCmd = &cobra.Command{
	Use:   "shunt [expression]",
	Short: "Arithmetic expression calculator",
	Long:  `Shunt evaluates infix arithmetic expressions by shunting-yard conversion to postfix order`,
	Args:  cobra.ArbitraryArgs,
	RunE:  runRoot,
	// команды печатают свои ошибки сами, в формате из контракта CLI
	SilenceErrors: true,
	SilenceUsage:  true,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(postfixCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("precision", -1, "result precision, -1 for shortest round-trip form")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runRoot lets `shunt "2+3"` work without the eval subcommand. Zero or
// multiple arguments print the usage hint and evaluate nothing.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(cmd.OutOrStdout(), usageHint)
		return nil
	}
	return evalAndPrint(cmd, args[0])
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
