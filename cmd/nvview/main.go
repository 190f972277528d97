// nvview is a terminal viewer for recorded GPU status dumps.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ijuttt/nvview/internal/color"
	"github.com/ijuttt/nvview/internal/config"
	"github.com/ijuttt/nvview/internal/logging"
	"github.com/ijuttt/nvview/internal/ui/bubbletea"
)

// env is the per-invocation state shared by all commands.
type env struct {
	settings *config.Settings
	log      *slog.Logger
	logClose io.Closer
	color    color.Colorizer
}

func main() {
	e := &env{}
	rootCmd := newRootCmd(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	e.close()

	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(e *env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nvview [dump]",
		Short: "View recorded GPU status dumps",
		Long: `nvview - Browse GPU status dumps (devices, utilization bars, processes)
in an interactive terminal UI, or print them as plain text.

Without a dump argument the newest .json dump in the data paths is opened.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: e.setup,
		RunE:              e.runTUI,
	}
	rootCmd.PersistentFlags().String("color", "", "Colorize output: auto, always or never")
	rootCmd.PersistentFlags().String("log-file", "", "Append JSON logs to this file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("config", "", "Settings file (default "+config.SettingsPath()+")")

	showCmd := &cobra.Command{
		Use:   "show [dump]",
		Short: "Print a dump sample as plain text",
		Args:  cobra.MaximumNArgs(1),
		RunE:  e.runShow,
	}
	showCmd.Flags().Int("sample", 1, "Sample to print (1-based)")
	showCmd.Flags().Int("width", 0, "Bar width in cells (default from settings)")
	showCmd.Flags().Int("name-width", 0, "USER column width (default from settings)")
	showCmd.Flags().Bool("snapshots", false, "Also print the raw device and process snapshots")

	barCmd := &cobra.Command{
		Use:   "bar <prefix> <percent>",
		Short: "Render a percentage bar",
		Args:  cobra.ExactArgs(2),
		RunE:  e.runBar,
	}
	barCmd.Flags().Int("width", 0, "Bar width in cells (default from settings)")

	cutCmd := &cobra.Command{
		Use:   "cut <text> <max-len>",
		Short: "Truncate text to a number of terminal cells",
		Args:  cobra.ExactArgs(2),
		RunE:  e.runCut,
	}
	cutCmd.Flags().String("pad", "...", "Marker written where text was cut")
	cutCmd.Flags().String("align", "left", "Side to keep: left keeps the head, right keeps the tail")

	bytesCmd := &cobra.Command{
		Use:   "bytes <n>...",
		Short: "Format byte counts as B, KiB or MiB",
		Args:  cobra.MinimumNArgs(1),
		RunE:  e.runBytes,
	}

	durationCmd := &cobra.Command{
		Use:   "duration <d>...",
		Short: "Format durations (seconds or Go syntax like 90m)",
		Args:  cobra.MinimumNArgs(1),
		RunE:  e.runDuration,
	}

	pathsCmd := &cobra.Command{
		Use:   "paths",
		Short: "List search paths and discovered dumps",
		Args:  cobra.NoArgs,
		RunE:  e.runPaths,
	}

	rootCmd.AddCommand(showCmd, barCmd, cutCmd, bytesCmd, durationCmd, pathsCmd)
	return rootCmd
}

// setup loads settings, applies flag overrides and opens the logger.
func (e *env) setup(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.SettingsPath()
	}
	settings, err := config.LoadSettings(path)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("color") {
		settings.Color, _ = cmd.Flags().GetString("color")
	}
	if cmd.Flags().Changed("log-file") {
		settings.LogFile, _ = cmd.Flags().GetString("log-file")
	}
	if cmd.Flags().Changed("log-level") {
		settings.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	e.settings = settings

	mode, err := color.ParseMode(settings.Color)
	if err != nil {
		return err
	}
	e.color = color.Detect(os.Stdout, mode)

	level, err := logging.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(settings.LogFile, level)
	if err != nil {
		return err
	}
	e.log, e.logClose = logger, closer
	e.log.Debug("settings loaded", "path", path, "color", settings.Color)
	return nil
}

func (e *env) close() {
	if e.logClose != nil {
		_ = e.logClose.Close()
	}
}

func (e *env) runTUI(cmd *cobra.Command, args []string) error {
	if !isInteractiveTerminal() {
		return e.runShow(cmd, args)
	}

	opts := bubbletea.Options{
		DataPaths: config.GetDataPaths(),
		NameWidth: e.settings.NameWidth,
		Logger:    e.log,
	}
	if len(args) > 0 {
		opts.DumpPath = args[0]
	}

	p := tea.NewProgram(
		bubbletea.NewApp(opts),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

func isInteractiveTerminal() bool {
	return color.IsTerminal(os.Stdin.Fd()) && color.IsTerminal(os.Stdout.Fd())
}
