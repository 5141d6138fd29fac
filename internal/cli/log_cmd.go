package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/focusflow/internal/app"
	"github.com/alexanderramin/focusflow/internal/cli/formatter"
	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(a *App) *cobra.Command {
	var subject, duration string

	cmd := &cobra.Command{
		Use:   "log [subject]",
		Short: "Log a study session, split into 25-minute cycles",
		Long: "Log a study session. The requested duration is split into 30-minute\n" +
			"cycles and each cycle is recorded as 25 minutes of study.\n" +
			"Blank or invalid durations default to 60 minutes.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := resolveUser(cmd, a)
			if err != nil {
				return err
			}
			if subject == "" && len(args) == 1 {
				subject = args[0]
			}

			minutes := a.defaultMinutes()
			if cmd.Flags().Changed("duration") {
				minutes = domain.ParseRequestedMinutes(duration)
			}

			logSession := a.logSessionUseCase()
			if logSession == nil {
				return fmt.Errorf("log-session use case is not configured")
			}

			req := app.NewLogSessionRequest(user, strings.TrimSpace(subject), minutes)
			now := a.now()
			req.Now = &now

			resp, err := logSession.LogSession(cmd.Context(), req)
			if err != nil {
				var logErr *app.LogSessionError
				if resp != nil && errors.As(err, &logErr) && logErr.Code == app.LogSessionErrStore {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %d of %d cycle(s) were saved before the failure.\n",
						formatter.StyleYellow.Render("!"), len(resp.Sessions), resp.Cycles)
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, flashLogged(req.Subject, len(resp.Sessions)))
			if resp.Cycles == 0 {
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf(
					"%d min is shorter than one %d-minute cycle, nothing was recorded.",
					resp.RequestedMinutes, domain.CycleMinutes)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "What you are studying")
	cmd.Flags().StringVarP(&duration, "duration", "d", "", "Requested duration in minutes (default from config)")

	return cmd
}

func flashLogged(subject string, cycles int) string {
	return fmt.Sprintf("%s Session for '%s' started. Logged %d cycle(s).",
		formatter.StyleGreen.Render("✔"), subject, cycles)
}
