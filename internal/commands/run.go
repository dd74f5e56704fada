package commands

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/circuit/internal/config"
	"github.com/balkashynov/circuit/internal/models"
	"github.com/balkashynov/circuit/internal/parser"
	"github.com/balkashynov/circuit/internal/prompt"
	"github.com/balkashynov/circuit/internal/timer"
	"github.com/balkashynov/circuit/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run [name]",
	Short: "Run a menu's interval timer",
	Long: `Run the interval timer for a saved menu.

Without a name you pick the menu from a list. The full-screen timer is used
by default; --no-ui (or ui.mode: line) prints progress line by line.

Timer controls:
  space         Pause/resume
  r             Restart from the first set
  s/q/esc       Stop and exit`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		menus, err := menuStore().Load()
		if err != nil {
			return err
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		lineMode := noUI || cfg.UI.Mode == config.UIModeLine

		menu, ok, err := pickMenu(cmd, menus, strings.Join(args, " "), lineMode)
		if err != nil || !ok {
			return err
		}

		engine := timer.NewController()
		var run models.Run
		if lineMode {
			run, err = runLine(cmd, engine, menu)
		} else {
			run, err = tui.RunTimerTUI(engine, menu, cfg.Timer.Tick)
		}
		if err != nil {
			return err
		}

		recordRun(run)
		if !lineMode {
			printRunSummary(cmd, run)
		}
		return nil
	},
}

// pickMenu resolves the menu by name, or asks for one when name is empty
func pickMenu(cmd *cobra.Command, menus map[string]models.Menu, name string, lineMode bool) (models.Menu, bool, error) {
	if name != "" {
		menu, exists := menus[name]
		if !exists {
			return models.Menu{}, false, fmt.Errorf("no menu named %q, see 'circuit menu ls'", name)
		}
		return menu, true, nil
	}

	if len(menus) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No menus found. Use 'circuit menu add' to create your first menu.")
		return models.Menu{}, false, nil
	}

	if lineMode {
		p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
		menu, err := p.ChooseMenu(menus)
		if errors.Is(err, prompt.ErrCancelled) {
			return models.Menu{}, false, nil
		}
		return menu, err == nil, err
	}
	return tui.RunPickerTUI(menus)
}

// runLine runs the line driver until completion or Ctrl+C
func runLine(cmd *cobra.Command, engine timer.Engine, menu models.Menu) (models.Run, error) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	ticks, release := prompt.Ticker(cfg.Timer.Tick)()
	defer release()

	runner := prompt.NewRunner(cmd.OutOrStdout(), engine)
	return runner.Run(ctx, menu, ticks)
}

func printRunSummary(cmd *cobra.Command, run models.Run) {
	out := cmd.OutOrStdout()
	elapsed := parser.FormatClock(run.ElapsedSeconds)
	if run.Completed {
		fmt.Fprintf(out, "✅ Completed %q in %s\n", run.MenuName, elapsed)
		return
	}
	fmt.Fprintf(out, "⏹️  Stopped %q after %s of %s\n", run.MenuName, elapsed, parser.FormatClock(run.TotalSeconds))
}

func init() {
	runCmd.Flags().Bool("no-ui", false, "line-mode output instead of the full-screen timer")
}
