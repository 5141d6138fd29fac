package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/focusflow/internal/app"
	"github.com/alexanderramin/focusflow/internal/cli/formatter"
	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/notify"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTimerCmd(a *App) *cobra.Command {
	var subject, duration string

	cmd := &cobra.Command{
		Use:   "timer [subject]",
		Short: "Run a pomodoro timer and log the cycles you complete",
		Long: "Run a pomodoro timer: 25 minutes of study then a 5 minute break per\n" +
			"cycle. Completed study phases are logged when the timer ends or is\n" +
			"stopped. Without flags on a terminal you are prompted for the details.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := resolveUser(cmd, a)
			if err != nil {
				return err
			}
			if subject == "" && len(args) == 1 {
				subject = args[0]
			}

			if !cmd.Flags().Changed("duration") {
				duration = strconv.Itoa(a.defaultMinutes())
			}
			if subject == "" && a.interactive() {
				if err := timerSetupForm(&subject, &duration).Run(); err != nil {
					return fmt.Errorf("timer setup: %w", err)
				}
			}

			minutes := domain.ParseRequestedMinutes(duration)
			cycles := domain.CycleCount(minutes)
			if cycles == 0 {
				return fmt.Errorf("%d min is shorter than one %d-minute cycle", minutes, domain.CycleMinutes)
			}

			notifier := a.Notifier
			if notifier == nil {
				notifier = notify.Noop{}
			}
			subject = strings.TrimSpace(subject)

			final, err := a.runProgram(cmd, newTimerModel(subject, cycles, notifier))
			if err != nil {
				return fmt.Errorf("running timer: %w", err)
			}
			tm, ok := final.(timerModel)
			if !ok {
				return fmt.Errorf("running timer: unexpected model %T", final)
			}

			out := cmd.OutOrStdout()
			if tm.Completed() == 0 {
				fmt.Fprintln(out, formatter.Dim("No study phase completed, nothing was recorded."))
				return nil
			}

			logSession := a.logSessionUseCase()
			if logSession == nil {
				return fmt.Errorf("log-session use case is not configured")
			}

			req := app.NewLogSessionRequest(user, subject, tm.Completed()*domain.CycleMinutes)
			req.Source = domain.SourceTimer
			now := a.now()
			req.Now = &now

			resp, err := logSession.LogSession(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, flashLogged(subject, len(resp.Sessions)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "What you are studying")
	cmd.Flags().StringVarP(&duration, "duration", "d", "", "Requested duration in minutes (default from config)")

	return cmd
}

func (a *App) runProgram(cmd *cobra.Command, m tea.Model) (tea.Model, error) {
	if a.RunProgram != nil {
		return a.RunProgram(m)
	}
	p := tea.NewProgram(m, tea.WithOutput(cmd.OutOrStdout()), tea.WithAltScreen())
	return p.Run()
}
