package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fast-create/fast-create/internal/branding"
	"github.com/fast-create/fast-create/internal/config"
	"github.com/fast-create/fast-create/internal/output"
	"github.com/fast-create/fast-create/internal/pkgmgr"
)

// minNodeVersion is the oldest node the generated projects support.
const minNodeVersion = ">= 14.0.0"

func (a *app) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the tools a new project needs are available",
		Long: `Run diagnostic checks: node and git on PATH, a supported node version,
the configured package manager, and a valid settings file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd.ErrOrStderr(), "warn", a.verbose)
			d := &doctor{
				out:      cmd.OutOrStdout(),
				ex:       a.newExecutor(io.Discard, io.Discard, logger),
				lookPath: a.lookPath,
			}

			manager := d.checkConfig(a.configPath())
			fmt.Fprintln(d.out, "Runtime check:")
			d.checkBinary("git")
			d.checkNode(cmd.Context())
			d.checkBinary(manager)

			if d.problems > 0 {
				return output.NewUserError(fmt.Sprintf("%d problem(s) found; fix them before running '%s create'",
					d.problems, branding.CLIName()))
			}
			fmt.Fprintln(d.out, "All checks passed.")
			return nil
		},
	}
}

type doctor struct {
	out      io.Writer
	ex       pkgmgr.Executor
	lookPath func(string) (string, error)
	problems int
}

func (d *doctor) ok(format string, args ...any) {
	fmt.Fprintf(d.out, "  [ OK ] "+format+"\n", args...)
}

func (d *doctor) fail(tag, format string, args ...any) {
	d.problems++
	fmt.Fprintf(d.out, "  ["+tag+"] "+format+"\n", args...)
}

// checkConfig validates the settings file and returns the package manager
// it selects, falling back to the default when it cannot be read.
func (d *doctor) checkConfig(path string) string {
	fmt.Fprintln(d.out, "Config check:")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		d.ok("no config file at %s, using defaults", path)
	} else {
		result, err := config.ValidateFile(path)
		switch {
		case err != nil:
			d.fail("FAIL", "%v", err)
			return pkgmgr.Default
		case !result.Valid:
			for _, issue := range result.Issues {
				d.fail("FAIL", "%s: %s", path, issue)
			}
			return pkgmgr.Default
		default:
			d.ok("%s is valid", path)
		}
	}

	settings, err := config.LoadFile(path)
	if err != nil {
		d.fail("FAIL", "%v", err)
		return pkgmgr.Default
	}
	if !pkgmgr.IsSupported(settings.PackageManager) {
		d.fail("FAIL", "unsupported package manager %q", settings.PackageManager)
		return pkgmgr.Default
	}
	return settings.PackageManager
}

func (d *doctor) checkBinary(name string) bool {
	path, err := d.lookPath(name)
	if err != nil {
		d.fail("MISS", "%s not found", name)
		return false
	}
	d.ok("%s found at %s", name, path)
	return true
}

func (d *doctor) checkNode(ctx context.Context) {
	if !d.checkBinary("node") {
		return
	}
	v, err := pkgmgr.ToolVersion(ctx, d.ex, "node")
	if err != nil {
		d.fail("WARN", "could not determine node version: %v", err)
		return
	}
	ok, err := pkgmgr.SatisfiesVersion(v, minNodeVersion)
	if err != nil {
		d.fail("FAIL", "%v", err)
		return
	}
	if !ok {
		d.fail("FAIL", "node %s does not satisfy %s", v, minNodeVersion)
		return
	}
	d.ok("node %s satisfies %s", v, minNodeVersion)
}
