package commands

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/balkashynov/circuit/internal/config"
	"github.com/balkashynov/circuit/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cfgFile string
	v       *viper.Viper
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "circuit",
	Short: "A circuit-training interval timer",
	Long: `circuit is a command-line interval timer for circuit training.
Define menus of work and rest times, then run them set by set in the terminal.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	// No subcommand drops into the numbered line-mode menu
	RunE: runInteractive,
}

// loadConfig binds the persistent flags and reads the configuration
func loadConfig(cmd *cobra.Command, args []string) error {
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFlags(0)
	log.SetPrefix("circuit: ")

	v = config.New()
	flags := cmd.Root().PersistentFlags()
	bindings := map[string]string{
		"menus.file":   "menus",
		"history.path": "history-db",
		"verbose":      "verbose",
		"ui.mode":      "ui",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return err
		}
	}
	if noHistory, _ := flags.GetBool("no-history"); noHistory {
		v.Set("history.enabled", false)
	}

	loaded, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded
	return nil
}

// menuStore returns the store at the configured location
func menuStore() *store.Store {
	return store.New(cfg.Menus.File)
}

// SetVersion sets the version information
func SetVersion(ver, c, d string) {
	version = ver
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	defer closeHistory()
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ~/.circuit/config.yaml)")
	flags.String("menus", "", "menu file (.json or .yaml)")
	flags.String("history-db", "", "run history database path")
	flags.Bool("no-history", false, "do not record runs")
	flags.String("ui", "", "default run UI: tui|line")
	flags.BoolP("verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
