package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/circuit/internal/db"
	"github.com/balkashynov/circuit/internal/models"
	"github.com/balkashynov/circuit/internal/parser"
	"github.com/balkashynov/circuit/internal/prompt"
	"github.com/balkashynov/circuit/internal/store"
	"github.com/balkashynov/circuit/internal/timer"
	"github.com/balkashynov/circuit/internal/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Manage training menus",
}

var menuAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create or overwrite a menu",
	Long: `Create a menu, or overwrite one with the same name.

Modes:
  Quick: circuit menu add "Leg day" --work 45s --rest 15s --sets 4
  Interactive: circuit menu add (opens a form; --no-ui prompts line by line)

Durations accept plain seconds (45), seconds (45s) or minutes (1.5m).`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := menuStore()
		existing, err := s.Load()
		if err != nil {
			return err
		}

		name := strings.TrimSpace(strings.Join(args, " "))
		work, _ := cmd.Flags().GetString("work")
		rest, _ := cmd.Flags().GetString("rest")
		sets, _ := cmd.Flags().GetString("sets")
		force, _ := cmd.Flags().GetBool("force")
		noUI, _ := cmd.Flags().GetBool("no-ui")

		var menu models.Menu
		if name != "" && work != "" && sets != "" {
			// Direct creation from flags
			menu, err = menuFromFlags(name, work, rest, sets)
			if err != nil {
				return err
			}
			if _, exists := existing[menu.Name]; exists && !force {
				return fmt.Errorf("menu %q already exists, use --force to overwrite", menu.Name)
			}
		} else if noUI {
			p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
			menu, err = p.CreateMenu(existing)
			if err != nil {
				return err
			}
		} else {
			prefilled := map[string]string{"name": name, "work": work, "rest": rest, "sets": sets}
			var ok bool
			menu, ok, err = tui.RunMenuFormTUI(prefilled, existing)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "❌ Menu creation cancelled.")
				return nil
			}
		}

		overwritten, err := s.Put(menu)
		if err != nil {
			return err
		}
		verb := "Saved"
		if overwritten {
			verb = "Overwrote"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ %s menu %q: %d sets, work %s, rest %s\n",
			verb, menu.Name, menu.Sets,
			parser.FormatDuration(menu.WorkSeconds),
			parser.FormatDuration(menu.RestSeconds))
		return nil
	},
}

// menuFromFlags parses the quick-mode flag values
func menuFromFlags(name, work, rest, sets string) (models.Menu, error) {
	workSeconds, err := parser.ParseDuration(work)
	if err != nil {
		return models.Menu{}, fmt.Errorf("--work: %w", err)
	}
	restSeconds := 0
	if rest != "" {
		restSeconds, err = parser.ParseRest(rest)
		if err != nil {
			return models.Menu{}, fmt.Errorf("--rest: %w", err)
		}
	}
	setCount, err := parser.ParseSets(sets)
	if err != nil {
		return models.Menu{}, fmt.Errorf("--sets: %w", err)
	}
	return models.NewMenu(name, workSeconds, restSeconds, setCount)
}

var menuListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List menus",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		menus, err := menuStore().Load()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(menus) == 0 {
			fmt.Fprintln(out, "No menus found. Use 'circuit menu add' to create your first menu.")
			return nil
		}

		fmt.Fprintf(out, "%-24s %-6s %-8s %-8s %s\n", "NAME", "SETS", "WORK", "REST", "TOTAL")
		fmt.Fprintln(out, strings.Repeat("-", 60))
		for _, name := range store.SortedNames(menus) {
			menu := menus[name]
			total := timer.TotalDuration(timer.BuildSequence(menu))
			fmt.Fprintf(out, "%-24s %-6d %-8s %-8s %s\n",
				menu.Name, menu.Sets,
				parser.FormatDuration(menu.WorkSeconds),
				parser.FormatDuration(menu.RestSeconds),
				parser.FormatClock(total))
		}
		return nil
	},
}

var menuShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a menu's phases",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		menu, err := menuStore().Get(strings.Join(args, " "))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n\n", menu.Name)
		fmt.Fprint(out, prompt.Describe(menu))

		if openHistory() {
			stats, err := db.GetMenuStats(menu.Name)
			if err == nil && stats.Runs > 0 {
				fmt.Fprintf(out, "\nRuns: %d (%d completed), time trained: %s\n",
					stats.Runs, stats.CompletedRuns, parser.FormatClock(int(stats.ElapsedSeconds)))
			}
		}
		return nil
	},
}

var menuRemoveCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete a menu",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		if err := menuStore().Delete(name); err != nil {
			if errors.Is(err, models.ErrMenuNotFound) {
				return fmt.Errorf("no menu named %q", name)
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "🗑️  Deleted menu %q\n", name)
		return nil
	},
}

func init() {
	menuAddCmd.Flags().StringP("work", "w", "", "work time per set (45, 45s, 1.5m)")
	menuAddCmd.Flags().StringP("rest", "r", "", "rest time between sets (0 for none)")
	menuAddCmd.Flags().StringP("sets", "s", "", "number of sets")
	menuAddCmd.Flags().BoolP("force", "f", false, "overwrite an existing menu without asking")
	menuAddCmd.Flags().Bool("no-ui", false, "prompt line by line instead of opening the form")

	menuCmd.AddCommand(menuAddCmd)
	menuCmd.AddCommand(menuListCmd)
	menuCmd.AddCommand(menuShowCmd)
	menuCmd.AddCommand(menuRemoveCmd)
}
