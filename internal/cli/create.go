package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fast-create/fast-create/internal/branding"
	"github.com/fast-create/fast-create/internal/config"
	"github.com/fast-create/fast-create/internal/output"
	"github.com/fast-create/fast-create/internal/pkgmgr"
	"github.com/fast-create/fast-create/internal/project"
	"github.com/fast-create/fast-create/internal/prompt"
	"github.com/fast-create/fast-create/internal/tooling"
)

func (a *app) newCreateCmd() *cobra.Command {
	var (
		force   bool
		tools   string
		manager string
	)

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new project",
		Long: `Create a new TypeScript project in ./<name>, or in the current directory
when no name or "." is given.

An existing directory is only reused after confirmation, unless --force is
set, in which case its contents are removed first.

Examples:
  ` + branding.CLIName() + ` create myapp
  ` + branding.CLIName() + ` create myapp --tools lint,jest
  ` + branding.CLIName() + ` create . --force --package-manager npm`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}

			settings, err := config.LoadFile(a.configPath())
			if err != nil {
				return output.NewUserErrorWithCause(err.Error(), err)
			}
			if cmd.Flags().Changed("package-manager") {
				settings.PackageManager = manager
			}
			if !pkgmgr.IsSupported(settings.PackageManager) {
				return output.NewUserError(fmt.Sprintf("unsupported package manager %q: use one of %s",
					settings.PackageManager, strings.Join(pkgmgr.Names(), ", ")))
			}

			cwd, err := a.getwd()
			if err != nil {
				return output.NewSystemErrorWithCause("resolving working directory", err)
			}
			opts := project.Options{Name: name, Force: force, Cwd: cwd}
			if cmd.Flags().Changed("tools") {
				sel, err := tooling.Parse(tools)
				if err != nil {
					return output.NewUserErrorWithCause(err.Error(), err)
				}
				opts.Tools = &sel
			}

			logger := newLogger(cmd.ErrOrStderr(), settings.LogLevel, a.verbose)
			printer := output.NewPrinter(cmd.OutOrStdout())
			ex := a.newExecutor(cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)

			res, err := project.Create(cmd.Context(), opts, project.Deps{
				Prompter:       prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()),
				PackageManager: pkgmgr.Dispatch(settings.PackageManager, ex),
				Settings:       settings,
				Logger:         logger,
				Printer:        printer,
			})
			if errors.Is(err, project.ErrAborted) {
				return output.NewUserErrorWithCause("project creation cancelled", err)
			}
			if prompt.IsAnswerError(err) {
				return output.NewUserErrorWithCause(fmt.Sprintf("project creation cancelled: %v", err), err)
			}
			if err != nil {
				return output.NewSystemErrorWithCause(fmt.Sprintf("creating project: %v", err), err)
			}

			printResult(printer, res)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Remove the target directory's contents without asking")
	cmd.Flags().StringVar(&tools, "tools", "", "Comma-separated tooling to configure, skipping the prompt (lint,jest,commitlint,lerna)")
	cmd.Flags().StringVar(&manager, "package-manager", pkgmgr.Default, "Package manager to use: "+strings.Join(pkgmgr.Names(), ", "))
	return cmd
}

func printResult(p *output.Printer, res *project.Result) {
	p.Success("Created project in %s", p.Path(res.Dir))
	p.Line("Tooling: %s", res.Selection)
	p.Line("Files:")
	for _, f := range res.Files {
		p.Item(f)
	}
}
