package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"shunt/internal/eval"
	"shunt/internal/history"
	"shunt/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive calculator",
	Long:  `Repl runs an interactive evaluation loop; history persists between sessions`,
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func runRepl(cmd *cobra.Command, _ []string) error {
	st := loadSettings(cmd)

	var store *history.Store
	var past []history.Entry
	if !st.cfg.History.Disabled {
		var err error
		store, err = history.Open("shunt", st.cfg.MaxHistoryEntries())
		if err != nil {
			// без истории жить можно
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: history disabled: %v\n", err)
		} else if past, err = store.Load(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}
	}

	sink := func(e history.Entry) {
		if err := store.Append(e); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: failed to record history: %v\n", err)
		}
	}

	model := ui.NewReplModel(eval.Evaluate, st.formatValue, sink, past)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	if _, err := program.Run(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return err
	}
	return nil
}
