package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/sitelog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. stdout and stderr back the info and
// warning/error sinks respectively.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "sitelog",
		Short: "Emit site diagnostics in the site's log format",
		Long: `sitelog writes prefixed, level-filtered diagnostic lines the same way the
site's scripts do, so build and deploy scripts report errors consistently.

The minimum level comes from --min-level, then LOG_LEVEL, then sitelog.yaml.`,
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(newEmitCmd(), newLevelsCmd())
	return root
}

func newEmitCmd() *cobra.Command {
	var (
		prefix    string
		minLevel  string
		level     string
		cause     string
		configDir string
		workDir   string
	)

	cmd := &cobra.Command{
		Use:   "emit <message...>",
		Short: "Write one message at the given level",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			const op errors.Op = "sitelog.cmd.emit"
			lvl, err := sitelog.ParseLevel(level)
			if err != nil {
				return errors.New(op).Err(err).Msg("Invalid --level value.")
			}

			opts := sitelog.Options{Prefix: prefix}
			if minLevel != "" {
				if opts.MinLevel, err = sitelog.ParseLevel(minLevel); err != nil {
					return errors.New(op).Err(err).Msg("Invalid --min-level value.")
				}
			}

			var paths []string
			if configDir != "" {
				paths = append(paths, configDir)
			}
			settings, err := sitelog.LoadSettings(paths...)
			if err != nil {
				return errors.New(op).Err(err).Msg("Failed to load settings.")
			}

			svc := &sitelog.Service{
				WorkingDir: workDir,
				Settings:   settings,
				Stdout:     cmd.OutOrStdout(),
				Stderr:     cmd.ErrOrStderr(),
			}
			if err := svc.Initialize(); err != nil {
				return errors.New(op).Err(err).Msg("Failed to initialize the logger.")
			}
			defer func() { _ = svc.Close() }()

			emit(svc.New(opts), lvl, strings.Join(args, " "), cause)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&prefix, "prefix", "p", "", "label rendered as [prefix] before the message")
	f.StringVar(&minLevel, "min-level", "", "minimum level to emit (info, warning, error)")
	f.StringVarP(&level, "level", "l", string(sitelog.InfoLevel), "level of this message")
	f.StringVar(&cause, "cause", "", "cause appended to error messages")
	f.StringVar(&configDir, "config", "", "directory holding sitelog.yaml and .env")
	f.StringVar(&workDir, "workdir", "", "base directory for the log file")
	return cmd
}

func emit(l sitelog.Logger, level sitelog.Level, message, cause string) {
	switch level {
	case sitelog.InfoLevel:
		l.Info(message)
	case sitelog.WarningLevel:
		l.Warn(message)
	case sitelog.ErrorLevel:
		var c any
		if cause != "" {
			c = cause
		}
		l.Error(message, c)
	}
}

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List levels, most severe first",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, l := range sitelog.Levels() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), l)
			}
		},
	}
}
