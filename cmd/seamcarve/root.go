package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/esimov/seamcarve/utils"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version indicates the current build version.
var Version string

const helpBanner = `
┌─┐┌─┐┌─┐┌┬┐┌─┐┌─┐┬─┐┬  ┬┌─┐
└─┐├┤ ├─┤│││├  ├─┤├┬┘└┐┌┘├┤
└─┘└─┘┴ ┴┴ ┴└─┘┴ ┴┴└─ └┘ └─┘

Content aware image resize library through seam carving.
`

// app holds the state shared by the commands.
type app struct {
	cfgPath string
	flags   config // values bound to the command line flags
	cfg     config // effective configuration
	logFile io.Closer
}

func newApp() *app {
	return &app{flags: defaultConfig()}
}

func (a *app) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "seamcarve",
		Short:             "Content aware image resize through seam carving",
		Long:              helpBanner,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "TOML configuration file")
	pf.BoolVarP(&a.flags.Verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&a.flags.LogFile, "log-file", "", "Write the logs into a size rotated file")

	cmd.AddCommand(a.resizeCommand(), a.energyCommand(), a.seamCommand())

	return cmd
}

// setup resolves the effective configuration and attaches the logger to the command context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.cfgPath)
	if err != nil {
		return err
	}
	cfg.merge(cmd, a.flags)
	if err := cfg.validate(); err != nil {
		return err
	}
	a.cfg = cfg

	w := cmd.ErrOrStderr()
	if cfg.LogFile != "" {
		lf := newLogFile(cfg.LogFile)
		a.logFile = lf
		w = lf
	}
	level := log.InfoLevel
	if cfg.Verbose || cfg.Debug {
		level = log.DebugLevel
	}
	cmd.SetContext(withLogger(cmd.Context(), newLogger(w, level)))

	return nil
}

// close releases the log file, if any.
func (a *app) close() error {
	if a.logFile == nil {
		return nil
	}
	return a.logFile.Close()
}

// withSpinner runs fn while showing a progress indicator on the terminal.
// The indicator is disabled when the debug logs are enabled or stderr is not a terminal.
func (a *app) withSpinner(ctx context.Context, msg string, fn func() error) error {
	if a.cfg.Verbose || a.cfg.Debug || !term.IsTerminal(int(os.Stderr.Fd())) {
		return fn()
	}

	s := utils.NewSpinner(os.Stderr, fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ SEAMCARVE", utils.StatusMessage),
		utils.DecorateText("⇢ "+msg, utils.DefaultMessage),
	), 80*time.Millisecond, true)

	return runSpinner(ctx, s, fn)
}

// runSpinner shows s for the duration of fn. The cursor is restored as soon as
// ctx gets canceled, without waiting for fn to return.
func runSpinner(ctx context.Context, s *utils.Spinner, fn func() error) error {
	s.Start()
	stop := context.AfterFunc(ctx, s.RestoreCursor)
	defer stop()

	err := fn()
	if err != nil {
		s.StopMsg = fmt.Sprintf("%s %s %s",
			utils.DecorateText("⚡ SEAMCARVE", utils.StatusMessage),
			utils.DecorateText("processing image failed...", utils.DefaultMessage),
			utils.DecorateText("✘", utils.ErrorMessage),
		)
	} else {
		s.StopMsg = fmt.Sprintf("%s %s %s",
			utils.DecorateText("⚡ SEAMCARVE", utils.StatusMessage),
			utils.DecorateText("⇢", utils.DefaultMessage),
			utils.DecorateText("done ✔", utils.SuccessMessage),
		)
	}
	s.Stop()

	return err
}

// printStatus displays the destination and the execution time of a successful run.
func printStatus(w io.Writer, out string, elapsed time.Duration) {
	if out != pipeName {
		fmt.Fprintf(w, "\nThe image has been saved as: %s %s\n",
			utils.DecorateText(filepath.Base(out), utils.SuccessMessage),
			utils.DefaultColor,
		)
	}
	fmt.Fprintf(w, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(elapsed), utils.SuccessMessage))
}

// exitCode maps the error returned by the commands to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	default:
		return 1
	}
}
