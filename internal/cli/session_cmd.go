package cli

import (
	"fmt"

	"github.com/alexanderramin/focusflow/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSessionCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect recorded study sessions",
	}

	cmd.AddCommand(
		newSessionListCmd(a),
		newSessionShowCmd(a),
	)

	return cmd
}

func newSessionListCmd(a *App) *cobra.Command {
	var days int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions recorded in the last N days",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := resolveUser(cmd, a)
			if err != nil {
				return err
			}

			now := a.now()
			sessions, err := a.Sessions.ListRecent(cmd.Context(), user, days, now)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), sessions)
			}
			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sessions found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessions(sessions, now))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Number of calendar days to include, today counts as one")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print sessions as JSON")

	return cmd
}

func newSessionShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a single session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := resolveUser(cmd, a)
			if err != nil {
				return err
			}
			s, err := a.Sessions.GetByID(cmd.Context(), user, args[0])
			if err != nil {
				return err
			}

			subject := s.Subject
			if subject == "" {
				subject = formatter.Dim("(none)")
			}
			when := "--"
			if s.HasTimestamp() {
				when = s.Timestamp.In(a.now().Location()).Format("Mon 2006-01-02 15:04")
			}

			rows := [][]string{
				{"ID", s.ID},
				{"User", s.User},
				{"Subject", subject},
				{"Study time", formatter.FormatMinutes(s.StudyTime)},
				{"Recorded", when},
				{"Source", formatter.SourceBadge(s.Source)},
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Session", formatter.RenderTable([]string{"FIELD", "VALUE"}, rows)))
			return nil
		},
	}
}
