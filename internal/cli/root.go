package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"

	"github.com/charmbracelet/fang"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fast-create/fast-create/internal/branding"
	"github.com/fast-create/fast-create/internal/config"
	"github.com/fast-create/fast-create/internal/pkgmgr"
)

// app holds build info, global flags and the seams tests replace.
type app struct {
	version string
	commit  string
	date    string

	verbose bool

	newExecutor func(stdout, stderr io.Writer, logger *logrus.Logger) pkgmgr.Executor
	lookPath    func(file string) (string, error)
	configPath  func() string
	getwd       func() (string, error)
}

func newApp(version, commit, date string) *app {
	return &app{
		version: version,
		commit:  commit,
		date:    date,
		newExecutor: func(stdout, stderr io.Writer, logger *logrus.Logger) pkgmgr.Executor {
			return &pkgmgr.ShellExecutor{Stdout: stdout, Stderr: stderr, Logger: logger}
		},
		lookPath:   exec.LookPath,
		configPath: config.FilePath,
		getwd:      os.Getwd,
	}
}

// Execute runs the root command with build info injected via ldflags.
// Interrupts cancel the context handed to external commands.
func Execute(version, commit, date string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp(version, commit, date)
	return fang.Execute(ctx, a.newRootCmd(), fang.WithVersion(a.buildVersion()))
}

// buildVersion returns the version with a short commit and date when known.
func (a *app) buildVersion() string {
	if a.commit == "unknown" && a.date == "unknown" {
		return a.version
	}
	short := a.commit
	if len(short) > 7 {
		short = short[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", a.version, short, a.date)
}

func (a *app) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` scaffolds TypeScript projects: it initializes package.json,
writes compiler, lint, test and commit-lint configuration, and installs
the selected tooling in one step.`,
		Version:       a.buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		a.newCreateCmd(),
		a.newDoctorCmd(),
		a.newConfigCmd(),
		a.newVersionCmd(),
	)
	return cmd
}
