// Package main is the entry point for the whatsup to-do TUI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/hy4ri/whatsup/internal/config"
	"github.com/hy4ri/whatsup/internal/logging"
	"github.com/hy4ri/whatsup/internal/storage"
	"github.com/hy4ri/whatsup/internal/task"
	"github.com/hy4ri/whatsup/internal/tui"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

const longHelp = `whatsup - a small to-do list for the terminal

Tasks live in a key-value store on this machine (a JSON file by default).

KEYBINDINGS:
    j/k         Move down/up
    gg/G        Go to top/bottom
    a           Add a task and start typing
    x / space   Mark done / not done
    e / enter   Edit the subject (enter or esc to stop)
    dd          Remove the task
    y           Copy the subject
    t           Switch light/dark
    tab         Switch between Tasks and About
    ?           Show all keys
    q           Quit

CONFIGURATION:
    Config file: ~/.config/whatsup/config.yaml
    Run 'whatsup init' to create one.`

// options holds the persistent flags. Empty means "use the config file".
type options struct {
	configPath string
	backend    string
	persist    string
	theme      string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "whatsup",
		Short:         "A small to-do list for the terminal",
		Long:          longHelp,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/whatsup/config.yaml)")
	flags.StringVar(&opts.backend, "backend", "", "storage backend: file, sqlite, keyring or memory")
	flags.StringVar(&opts.persist, "persist", "", "persistence mode: every-mutation or add-only")
	flags.StringVar(&opts.theme, "theme", "", "color theme: auto, light or dark")

	root.AddCommand(newInitCmd(opts))
	root.AddCommand(newListCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "whatsup version %s\n", version)
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the stored tasks and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			st, err := storage.Open(cfg)
			if err != nil {
				return fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
			}
			defer st.Close()

			logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "whatsup"})
			store := task.NewStore(task.PersistEveryMutation)
			store.Load(cmd.Context(), st, logger)

			printTasks(cmd.OutOrStdout(), store)
			return nil
		},
	}
}

func printTasks(out io.Writer, store *task.Store) {
	tasks := store.Tasks()
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks yet")
		return
	}

	for _, t := range tasks {
		box := "[ ]"
		if t.Done {
			box = "[x]"
		}
		fmt.Fprintf(out, "%s %s\n", box, t.Subject)
	}

	stats := store.Stats()
	fmt.Fprintf(out, "\n%d of %d done\n", stats.Done, stats.Total)
}

func newInitCmd(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a config file",
		Long:  "Create a config file with the defaults, overridden by any --backend, --persist or --theme flags.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return createConfig(cmd.InOrStdin(), cmd.OutOrStdout(), opts, force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file without asking")

	return cmd
}

// configFile returns the --config path or the default location.
func (o *options) configFile() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	path, err := config.ConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	return path, nil
}

// apply overrides cfg with any flags that were set.
func (o *options) apply(cfg *config.Config) error {
	if o.backend != "" {
		cfg.Storage.Backend = o.backend
	}
	if o.persist != "" {
		cfg.Persistence.Mode = o.persist
	}
	if o.theme != "" {
		cfg.UI.Theme = o.theme
	}
	return cfg.Validate()
}

func loadConfig(opts *options) (*config.Config, error) {
	path, err := opts.configFile()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := opts.apply(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// createConfig writes a config file.
func createConfig(in io.Reader, out io.Writer, opts *options, force bool) error {
	path, err := opts.configFile()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil && !force {
		fmt.Fprintf(out, "Config file already exists: %s\n", path)
		fmt.Fprint(out, "Overwrite? [y/N]: ")

		var response string
		fmt.Fscanln(in, &response)

		if !strings.EqualFold(response, "y") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if err := opts.apply(cfg); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := config.SaveFile(cfg, path); err != nil {
		return err
	}

	fmt.Fprintf(out, "Config file created: %s\n", path)
	return nil
}

// runApp starts the main TUI application.
func runApp(ctx context.Context, opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return fmt.Errorf("failed to get log path: %w", err)
	}
	logOpts := logging.DefaultOptions()
	logOpts.Level = cfg.Log.Level
	logOpts.Path = logPath

	logger, logCloser, err := logging.New(logOpts)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logCloser.Close()

	st, err := storage.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error("failed to close storage", "err", err)
		}
	}()

	policy := task.PersistEveryMutation
	if !cfg.PersistsEveryMutation() {
		policy = task.PersistAddOnly
	}

	logger.Info("starting",
		"version", version,
		"backend", cfg.Storage.Backend,
		"persistence", cfg.Persistence.Mode,
	)

	writer := task.NewWriter(ctx, st, logger)

	zones := zone.New()
	defer zones.Close()

	app := tui.NewApp(ctx, tui.Deps{
		Store:   task.NewStore(policy),
		Storage: st,
		Writer:  writer,
		Config:  cfg,
		Logger:  logger,
		Zones:   zones,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	_, runErr := p.Run()

	// Pending writes land before storage is closed.
	writer.Close()

	if runErr != nil {
		return fmt.Errorf("failed to run TUI: %w", runErr)
	}
	return nil
}
