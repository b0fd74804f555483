package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/thesavant42/rickdex/internal/api"
	"github.com/thesavant42/rickdex/internal/config"
	"github.com/thesavant42/rickdex/internal/db"
	"github.com/thesavant42/rickdex/internal/ui"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *log.Logger
)

// Interactive prompts, swapped out in tests
var (
	selectAction  = ui.SelectAction
	promptForName = ui.PromptForName
)

// rootCmd shows the interactive menu
var rootCmd = &cobra.Command{
	Use:   "rickdex",
	Short: "Browse characters, episodes and locations from the Rick and Morty API",
	Long: `rickdex fetches one page of characters, episodes or locations from the
Rick and Morty API, or searches characters by name, and prints the decoded
response. Run without a subcommand to pick from a menu.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initializeApp,
	RunE:              runMenu,
}

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "Fetch the first page of characters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, api.ActionCharacters, "")
	},
}

var episodesCmd = &cobra.Command{
	Use:   "episodes",
	Short: "Fetch the first page of episodes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, api.ActionEpisodes, "")
	},
}

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "Fetch the first page of locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, api.ActionLocations, "")
	},
}

var searchCmd = &cobra.Command{
	Use:   "search [name...]",
	Short: "Search characters by name",
	Long: `Search characters by name. Words are joined with spaces. Without a name
the command prompts for one when attached to a terminal and otherwise sends an
empty name.`,
	RunE: runSearch,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	// Skip config loading for version
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rickdex %s (built %s)\n", version, buildTime)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./rickdex.yaml)")
	flags.String("base-url", api.DefaultBaseURL, "API root URL")
	flags.Bool("lenient", false, "keep unknown status/species/gender values instead of failing")
	flags.Duration("timeout", 0, "request timeout (0 waits indefinitely)")
	flags.String("save", "", "also write the decoded records to this SQLite file")
	flags.Bool("browse", false, "show results in a table and print the chosen record")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(charactersCmd, episodesCmd, locationsCmd, searchCmd, versionCmd)
}

// execute runs the root command and maps the error to an exit code
func execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		ui.PrintError(os.Stderr, err.Error())
	}
	return exitCode(err)
}

// initializeApp loads configuration and sets up the logger
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err = setupLogger(cfg.Logging)
	if err != nil {
		return err
	}
	return nil
}

// setupLogger builds the stderr logger used by the client and store
func setupLogger(lc config.LoggingConfig) (*log.Logger, error) {
	level, err := log.ParseLevel(strings.ToLower(lc.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "rickdex",
	}), nil
}

// runMenu is the interactive flow: menu, optional name prompt, dispatch
func runMenu(cmd *cobra.Command, args []string) error {
	action, err := selectAction()
	if err != nil {
		return err
	}

	ui.PrintSelected(cmd.OutOrStdout(), action.Label())

	var name string
	if action.NeedsName() {
		name, err = promptForName()
		if err != nil {
			return err
		}
	}
	return dispatch(cmd, action, name)
}

func runSearch(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")
	if len(args) == 0 && ui.IsTerminal(os.Stdin) {
		var err error
		name, err = promptForName()
		if err != nil {
			return err
		}
	}
	return dispatch(cmd, api.ActionSearch, name)
}

// dispatch runs one action end to end: fetch, decode, optional save, present
func dispatch(cmd *cobra.Command, action api.Action, name string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	client := api.NewClient(logger,
		api.WithBaseURL(cfg.BaseURL),
		api.WithTimeout(cfg.Timeout),
		api.WithLenientDecoding(cfg.Lenient),
	)

	var res *api.Result
	var fetchErr error
	title := fmt.Sprintf("Fetching %s...", action.Kind())
	if err := ui.RunWithSpinner(ctx, title, func() {
		res, fetchErr = client.Run(ctx, action, name)
	}); err != nil {
		return err
	}
	if fetchErr != nil {
		return fetchErr
	}

	if cfg.Save != "" {
		if err := saveSnapshot(cfg.Save, res.Page); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if cfg.Browse && ui.IsTerminalWriter(out) {
		record, err := ui.Browse(action.Label(), res.Page)
		if err != nil {
			return err
		}
		return ui.Present(out, record)
	}
	return ui.Present(out, res.Page)
}

// saveSnapshot writes the decoded page into the SQLite file at path
func saveSnapshot(path string, page any) error {
	store, err := db.New(path, logger)
	if err != nil {
		return fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer store.Close()

	n, err := store.SavePage(page)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	logger.Info("saved snapshot", "path", path, "records", n)
	return nil
}
