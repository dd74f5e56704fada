package commands

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/circuit/internal/db"
	"github.com/balkashynov/circuit/internal/models"
	"github.com/balkashynov/circuit/internal/parser"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent timer runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.History.Enabled {
			return errors.New("history is disabled")
		}
		if err := db.Initialize(cfg.History.Path, cfg.Verbose); err != nil {
			return err
		}

		limit, _ := cmd.Flags().GetInt("limit")
		runs, err := db.RecentRuns(limit)
		if err != nil {
			return fmt.Errorf("failed to fetch history: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(out, "No runs recorded yet. Use 'circuit run <menu>' to start one.")
			return nil
		}

		fmt.Fprintf(out, "%-16s %-24s %-10s %-10s %s\n", "STARTED", "MENU", "ELAPSED", "TOTAL", "STATUS")
		fmt.Fprintln(out, strings.Repeat("-", 72))
		for _, run := range runs {
			status := "stopped"
			if run.Completed {
				status = "done"
			}
			name := run.MenuName
			if len([]rune(name)) > 22 {
				name = string([]rune(name)[:19]) + "..."
			}
			fmt.Fprintf(out, "%-16s %-24s %-10s %-10s %s\n",
				run.StartedAt.Local().Format("2006-01-02 15:04"),
				name,
				parser.FormatClock(run.ElapsedSeconds),
				parser.FormatClock(run.TotalSeconds),
				status)
		}
		return nil
	},
}

// openHistory opens the history database when enabled.
// Failures are logged and disable recording for this invocation.
func openHistory() bool {
	if !cfg.History.Enabled {
		return false
	}
	if db.DB != nil {
		return true
	}
	if err := db.Initialize(cfg.History.Path, cfg.Verbose); err != nil {
		log.Printf("history unavailable: %v", err)
		return false
	}
	return true
}

// recordRun stores run in the history; errors never abort the caller
func recordRun(run models.Run) {
	if !openHistory() {
		return
	}
	if err := db.RecordRun(&run); err != nil {
		log.Printf("could not record run: %v", err)
	}
}

func closeHistory() {
	if err := db.Close(); err != nil {
		log.Printf("close history: %v", err)
	}
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 10, "number of runs to show")
}
