package cli

import (
	"errors"
	"time"

	"github.com/alexanderramin/focusflow/internal/app"
	"github.com/alexanderramin/focusflow/internal/config"
	"github.com/alexanderramin/focusflow/internal/notify"
	"github.com/alexanderramin/focusflow/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Sessions service.SessionService
	Stats    service.StatsService
	Config   *config.Config
	Notifier notify.Notifier

	// Optional use-case overrides. When nil the services above are used.
	LogSession app.LogSessionUseCase
	Dashboard  app.DashboardUseCase
	Detail     app.DetailUseCase

	// Now returns the reference time for views. Defaults to time.Now.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal. Prompts are
	// skipped when it is nil or returns false.
	IsInteractive func() bool

	// RunProgram runs a bubbletea model to completion and returns the
	// final model. Defaults to a full-screen tea.Program.
	RunProgram func(m tea.Model) (tea.Model, error)
}

var errNoUser = errors.New("no user: pass --user or set FOCUSFLOW_USER")

// NewRootCmd creates the top-level "focusflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "focusflow",
		Short:         "Study session tracker with daily and weekly stats",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("user", "", "User the sessions belong to (default from config)")

	root.AddCommand(
		newLogCmd(app),
		newDashboardCmd(app),
		newStatsCmd(app),
		newSessionCmd(app),
		newTimerCmd(app),
		newConfigCmd(app),
	)

	return root
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) defaultMinutes() int {
	if a.Config != nil && a.Config.DefaultMinutes > 0 {
		return a.Config.DefaultMinutes
	}
	return 60
}

// resolveUser returns the --user flag, falling back to the configured user.
func resolveUser(cmd *cobra.Command, a *App) (string, error) {
	user, _ := cmd.Flags().GetString("user")
	if user == "" && a.Config != nil {
		user = a.Config.User
	}
	if user == "" {
		return "", errNoUser
	}
	return user, nil
}
