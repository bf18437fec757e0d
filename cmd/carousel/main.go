package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/andyrewlee/carousel/internal/app"
	"github.com/andyrewlee/carousel/internal/config"
	"github.com/andyrewlee/carousel/internal/deck"
	"github.com/andyrewlee/carousel/internal/logging"
	"github.com/andyrewlee/carousel/internal/validation"
)

// Version info set by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var errNoTerminal = errors.New("carousel needs an interactive terminal; use 'carousel export' to render frames")

// isTerminal reports whether stdin and stdout are both terminals.
var isTerminal = func() bool {
	return term.IsTerminal(os.Stdin.Fd()) && term.IsTerminal(os.Stdout.Fd())
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	home     string
	theme    string
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	root := &cobra.Command{
		Use:   "carousel [deck]",
		Short: "Cycle through slides in the terminal",
		Long: `carousel shows a deck of slides one at a time with autoplay,
keyboard and mouse navigation, and drag-to-swipe.

A deck is a YAML file, a single markdown file with slides separated by
'---' lines, or a directory of .md files. With no deck a demo plays.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, args, g)
		},
	}

	root.PersistentFlags().StringVar(&g.home, "home", "", "State directory (default ~/.carousel)")
	root.PersistentFlags().StringVar(&g.theme, "theme", "", "Color theme (tokyo-night, gruvbox, nord, github-light)")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	root.Flags().Duration("delay", 0, "Autoplay delay (default from config, 3s)")
	root.Flags().Bool("no-autoplay", false, "Start paused")
	root.Flags().Bool("pause-on-hover", true, "Pause autoplay while the mouse is over the carousel")

	root.AddCommand(newExportCmd(&g))
	root.AddCommand(newVersionCmd())
	return root
}

// overridesFrom turns the flags the user actually set into config overrides.
func overridesFrom(cmd *cobra.Command) config.Overrides {
	flags := cmd.Flags()
	var ov config.Overrides
	ov.AutoPlayDelay, _ = flags.GetDuration("delay")
	ov.Theme, _ = flags.GetString("theme")
	if off, _ := flags.GetBool("no-autoplay"); off {
		playing := false
		ov.AutoPlay = &playing
	}
	if flags.Changed("pause-on-hover") {
		v, _ := flags.GetBool("pause-on-hover")
		ov.PauseOnHover = &v
	}
	return ov
}

func loadConfig(home string) (*config.Config, error) {
	var paths *config.Paths
	if home == "" {
		var err error
		if paths, err = config.DefaultPaths(); err != nil {
			return nil, fmt.Errorf("resolve home: %w", err)
		}
	} else {
		paths = config.PathsAt(home)
	}
	cfg, err := config.LoadFrom(paths)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// loadDeck returns nil for no argument; the app falls back to the demo.
func loadDeck(args []string) (*deck.Deck, error) {
	if len(args) == 0 {
		return nil, nil
	}
	path, err := validation.ValidateDeckPath(args[0])
	if err != nil {
		return nil, err
	}
	d, err := deck.Load(path)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func runTUI(cmd *cobra.Command, args []string, g globalFlags) error {
	if err := validation.ValidateTheme(g.theme); err != nil {
		return err
	}
	level, err := logging.ParseLevel(g.logLevel)
	if err != nil {
		return err
	}
	if !isTerminal() {
		return errNoTerminal
	}

	cfg, err := loadConfig(g.home)
	if err != nil {
		return err
	}
	if err := cfg.Paths.EnsureDirectories(); err != nil {
		return fmt.Errorf("create %s: %w", cfg.Paths.Home, err)
	}
	if err := logging.Initialize(cfg.Paths.LogsRoot, level); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not initialize logging: %v\n", err)
	}
	defer logging.Close()

	d, err := loadDeck(args)
	if err != nil {
		return err
	}
	logging.Info("Starting carousel %s", version)

	a := app.New(cfg, d, app.Options{
		Version:   version,
		Overrides: overridesFrom(cmd),
	})
	p := tea.NewProgram(a, tea.WithFilter(mouseEventFilter))
	a.SetMsgSender(p.Send)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if err := a.Watch(ctx); err != nil {
		logging.Warn("File watching disabled: %v", err)
	}

	_, runErr := p.Run()
	a.Shutdown()
	if runErr != nil {
		logging.Error("App exited with error: %v", runErr)
		return fmt.Errorf("run: %w", runErr)
	}
	logging.Info("carousel shutdown complete")
	return nil
}
