package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"shunt/internal/config"
	"shunt/internal/driver"
)

var (
	resultColor = color.New(color.FgGreen, color.Bold)
	errorColor  = color.New(color.FgRed, color.Bold)
)

// settings объединяет конфиг shunt.toml и глобальные флаги; флаги важнее
type settings struct {
	cfg       config.Config
	precision int
	colorMode string
}

func loadSettings(cmd *cobra.Command) settings {
	cfg, _, err := config.Load(".")
	if err != nil {
		// битый конфиг не должен ронять вычисление
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		cfg = config.Default()
	}

	st := settings{cfg: cfg, precision: cfg.Precision(), colorMode: cfg.Output.Color}

	flags := cmd.Root().PersistentFlags()
	if f := flags.Lookup("precision"); f != nil && f.Changed {
		if v, err := flags.GetInt("precision"); err == nil {
			st.precision = v
		}
	}
	if f := flags.Lookup("color"); f != nil && f.Changed {
		st.colorMode = f.Value.String()
	}
	if st.colorMode == "" {
		st.colorMode = "auto"
	}
	return st
}

func (st settings) useColor(f *os.File) bool {
	return st.colorMode == "on" || (st.colorMode == "auto" && isTerminal(f))
}

func (st settings) formatValue(v float64) string {
	return driver.FormatValue(v, st.precision)
}

// evalAndPrint реализует контракт CLI: "Result: <v>" или
// "Error evaluating the expression: <msg>" и ненулевой код выхода
func evalAndPrint(cmd *cobra.Command, expr string) error {
	st := loadSettings(cmd)

	res, err := driver.EvalExpr(expr)
	if err != nil {
		printEvalError(cmd, st, err)
		return err
	}

	value := st.formatValue(res.Value)
	if st.useColor(os.Stdout) {
		value = resultColor.Sprint(value)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Result: %s\n", value)
	return nil
}

func printEvalError(cmd *cobra.Command, st settings, err error) {
	msg := fmt.Sprintf("Error evaluating the expression: %v", err)
	if st.useColor(os.Stderr) {
		msg = errorColor.Sprint(msg)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), msg)
}
