package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/abacus-calc/abacus/internal/calc"
	"github.com/abacus-calc/abacus/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags.
var Version = "dev"

type rootOptions struct {
	logPath   string
	noMouse   bool
	altScreen bool
	replay    []string
}

// NewRootCmd builds the abacus command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "abacus",
		Short:         "A keypad calculator for the terminal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.logPath, "log", "", "write debug log to `file`")
	root.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse input")
	root.Flags().BoolVar(&opts.altScreen, "alt-screen", true, "run in the alternate screen buffer")
	root.Flags().StringSliceVar(&opts.replay, "replay", nil, "comma-separated button `ids` to press on start")

	root.AddCommand(newPressCmd(opts), newButtonsCmd())
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "abacus: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(opts *rootOptions) error {
	if _, err := calc.ParseButtons(opts.replay); err != nil {
		return fmt.Errorf("--replay: %w", err)
	}

	logger, closeLog, err := openLogger(opts.logPath, func(path string) (io.WriteCloser, error) {
		return tea.LogToFile(path, "abacus")
	})
	if err != nil {
		return err
	}
	defer closeLog()

	engine := calc.New(calc.WithLogger(logger))
	model := tui.NewRootModel(engine, tui.WithLogger(logger), tui.WithReplay(opts.replay))

	var programOpts []tea.ProgramOption
	if opts.altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if !opts.noMouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	logger.Info("starting", "version", Version, "mouse", !opts.noMouse)
	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	logger.Info("exiting", "display", engine.Display())
	return nil
}

// openLogger returns a debug logger writing to path, tagged with a fresh
// session id. An empty path gives a logger that discards everything.
func openLogger(path string, open func(string) (io.WriteCloser, error)) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	w, err := open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open log %s: %w", path, err)
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(h).With("session", uuid.NewString())
	return logger, func() { _ = w.Close() }, nil
}

func appendLogFile(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
