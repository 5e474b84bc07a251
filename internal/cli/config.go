package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fast-create/fast-create/internal/config"
	"github.com/fast-create/fast-create/internal/output"
)

func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
		Long: `Read and write settings stored at ~/.fast-create/config.yaml.

Keys:
  package_manager   npm, yarn or pnpm (default yarn)
  log_level         logrus level name (default info)
  hooks.merge       combine git hooks from several tools (default true)
  versions.<pkg>    semver constraint used when installing <pkg>`,
	}
	cmd.AddCommand(a.newConfigGetCmd(), a.newConfigSetCmd(), a.newConfigPathCmd())
	return cmd
}

func (a *app) newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := config.Set(a.configPath(), key, value); err != nil {
				return output.NewUserErrorWithCause(fmt.Sprintf("setting config key %q: %v", key, err), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	}
}

func (a *app) newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.Get(a.configPath(), args[0])
			if err != nil {
				return output.NewUserErrorWithCause(err.Error(), err)
			}
			if value == nil {
				return output.NewUserError(fmt.Sprintf("config key %q is not set", args[0]))
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func (a *app) newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), a.configPath())
		},
	}
}
