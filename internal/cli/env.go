package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/boolean-maybe/todo/config"
	"github.com/boolean-maybe/todo/util/sysinfo"
)

func newEnvCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show config locations and terminal detection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := sysinfo.NewSystemInfo()
			cfg := config.GetConfig()

			var b strings.Builder
			b.WriteString("## Configuration\n\n")
			fmt.Fprintf(&b, "- user config: `%s`\n", config.GetConfigFile())
			fmt.Fprintf(&b, "- project config: `%s`\n", config.GetProjectConfigFile())
			fmt.Fprintf(&b, "- task file: `%s`\n", config.GetStoreFile())
			fmt.Fprintf(&b, "- schema check: %t\n", cfg.Store.SchemaCheck)
			fmt.Fprintf(&b, "- log level: %s\n", cfg.Logging.Level)
			b.WriteString("\n## Terminal\n\n```\n")
			b.WriteString(info.String())
			b.WriteString("```\n")
			return env.Printer.Markdown(b.String())
		},
	}
}
