package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/focusflow/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}
	cmd.AddCommand(newConfigShowCmd(a))
	return cmd
}

func newConfigShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration and where it came from",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.Config
			if cfg == nil {
				return fmt.Errorf("configuration is not loaded")
			}

			source := cfg.Source
			if source == "" {
				source = formatter.Dim("(defaults and environment only)")
			}
			user := cfg.User
			if user == "" {
				user = formatter.Dim("(unset)")
			}

			rows := [][]string{
				{"config file", source},
				{"data_dir", cfg.DataDir},
				{"db_path", cfg.DBPath},
				{"user", user},
				{"default_minutes", strconv.Itoa(cfg.DefaultMinutes)},
				{"notify", strconv.FormatBool(cfg.Notify)},
				{"notify_sound", strconv.FormatBool(cfg.NotifySound)},
				{"log_use_cases", strconv.FormatBool(cfg.LogUseCases)},
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"KEY", "VALUE"}, rows))
			return nil
		},
	}
}
