package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/boolean-maybe/todo/config"
)

func newConfigCommand(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the project configuration file",
	}
	cmd.AddCommand(newConfigInitCommand(env))
	return cmd
}

func newConfigInitCommand(env *Env) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default .todo/config.yaml in the project root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.EnsureDirs(); err != nil {
				return err
			}
			path := config.GetProjectConfigFile()
			if err := config.WriteConfigFile(path, config.DefaultConfig(), force); err != nil {
				return err
			}
			slog.Info("wrote default config", "file", path, "force", force)
			env.Printer.Notice(fmt.Sprintf("Wrote %s", path))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
