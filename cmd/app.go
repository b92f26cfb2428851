// Package cmd implements the savg command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/stockavg"
	"github.com/etnz/stockavg/config"
	"github.com/etnz/stockavg/export"
	"github.com/etnz/stockavg/notify"
	"github.com/etnz/stockavg/session"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", "", "Path to the configuration file. Defaults to ./savg.yaml when present.")
	Verbose    = flag.Bool("v", false, "Log debug information to stderr.")
)

// stdout and stderr are replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// now is replaced in tests.
var now = time.Now

// Commands lists the savg subcommands.
var Commands = []subcommands.Command{
	&calcCmd{},
	&reportCmd{},
	&chartCmd{},
	&emailCmd{},
	&interactiveCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&calcCmd{}, "calculation")
	c.Register(&chartCmd{}, "calculation")
	c.Register(&interactiveCmd{}, "calculation")

	c.Register(&reportCmd{}, "export")
	c.Register(&emailCmd{}, "export")

	c.Register(&topicCmd{}, "help")
}

// IsCommand reports whether name is a registered savg subcommand.
func IsCommand(name string) bool {
	for _, c := range Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// app is what every subcommand needs: the configuration and a logger.
type app struct {
	cfg *config.Config
	log *zap.Logger
}

// loadApp loads the configuration. With -v the log level is forced to debug.
func loadApp() (*app, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	level := cfg.Log.Level
	if *Verbose {
		level = "debug"
	}
	log, err := config.NewLogger(level)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, log: log}, nil
}

// newSession opens a session on l wired to the configured collaborators.
func (a *app) newSession(l *stockavg.Ledger) *session.Session {
	return session.New(l, session.Options{
		Title:     a.cfg.Report.Title,
		OutputDir: a.cfg.Report.OutputDir,
		Exporter:  export.New(a.log),
		Notifier:  notify.New(a.cfg.Notify.From, nil, a.log),
		Log:       a.log,
		Now:       now,
	})
}

// calculate opens a session on l and calculates it. Failures are reported
// on stderr as the matching notice.
func (a *app) calculate(l *stockavg.Ledger) (*session.Session, subcommands.ExitStatus) {
	s := a.newSession(l)
	if _, n := s.Calculate(); n.Destructive {
		printNotice(n)
		return nil, subcommands.ExitFailure
	}
	return s, subcommands.ExitSuccess
}

func printNotice(n session.Notice) {
	w := stdout
	if n.Destructive {
		w = stderr
	}
	fmt.Fprintln(w, n)
}

// printMarkdown renders md for the terminal, or prints it as is if it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprint(stdout, md)
}
