package commands

import (
	"github.com/spf13/cobra"

	"github.com/balkashynov/circuit/internal/prompt"
	"github.com/balkashynov/circuit/internal/timer"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Numbered menu: create, list and run menus",
	Args:    cobra.NoArgs,
	RunE:    runInteractive,
}

func runInteractive(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	loop := &prompt.Loop{
		Prompter:      prompt.New(cmd.InOrStdin(), out),
		Store:         menuStore(),
		Runner:        prompt.NewRunner(out, timer.NewController()),
		Ticks:         prompt.Ticker(cfg.Timer.Tick),
		OnRunFinished: recordRun,
	}
	return loop.Run(cmd.Context())
}
