package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Show comprehensive help for circuit",
	Long:  `Display detailed help for all circuit commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if target, _, err := cmd.Root().Find(args); err == nil && target != cmd.Root() {
				_ = target.Help()
				return
			}
		}
		showCustomHelp(cmd.OutOrStdout())
	},
}

func showCustomHelp(w io.Writer) {
	fmt.Fprint(w, `
 ██████╗██╗██████╗  ██████╗██╗   ██╗██╗████████╗
██╔════╝██║██╔══██╗██╔════╝██║   ██║██║╚══██╔══╝
██║     ██║██████╔╝██║     ██║   ██║██║   ██║
██║     ██║██╔══██╗██║     ██║   ██║██║   ██║
╚██████╗██║██║  ██║╚██████╗╚██████╔╝██║   ██║
 ╚═════╝╚═╝╚═╝  ╚═╝ ╚═════╝ ╚═════╝ ╚═╝   ╚═╝

circuit - interval timer for circuit training

COMMANDS:

  menu add [name]         Create or overwrite a menu
    -w, --work            Work time per set (45, 45s, 1.5m)
    -r, --rest            Rest between sets (0 for none)
    -s, --sets            Number of sets
    -f, --force           Overwrite without asking
    --no-ui               Prompt line by line instead of the form

    Example:
      circuit menu add "Leg day" --work 45s --rest 15s --sets 4

  menu ls                 List menus with their total time
  menu show <name>        Show a menu's phases and run stats
  menu rm <name>          Delete a menu

  run [name]              Run the interval timer
    --no-ui               Line-mode output

    Timer controls:
      space         Pause/resume
      r             Restart
      s/q/esc       Stop and exit

  interactive             Numbered menu (default with no command)
  history                 Recent runs
    -n, --limit           Number of runs to show

  version                 Print the version
  help                    Show this help

GLOBAL FLAGS:

  --config                Config file (default ~/.circuit/config.yaml)
  --menus                 Menu file, .json or .yaml
  --history-db            Run history database
  --no-history            Do not record runs
  --ui                    Default run UI: tui|line
  -v, --verbose           Verbose logging

Every setting can also be set with CIRCUIT_ environment variables,
e.g. CIRCUIT_TIMER_TICK=500ms or CIRCUIT_UI_MODE=line.

`)
}
