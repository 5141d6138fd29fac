package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/focusflow/internal/app"
	"github.com/alexanderramin/focusflow/internal/cli/formatter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

func newDashboardCmd(a *App) *cobra.Command {
	var asJSON bool
	var date dateFlag

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show today's sessions and the last 7 days by weekday",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := resolveUser(cmd, a)
			if err != nil {
				return err
			}
			now := date.at(a.now())

			uc := a.dashboardUseCase()
			if uc == nil {
				return fmt.Errorf("dashboard use case is not configured")
			}

			req := app.NewDashboardRequest(user)
			req.Now = &now
			resp, err := uc.Dashboard(cmd.Context(), req)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDashboard(resp, a.now()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the view as JSON")
	cmd.Flags().Var(&date, "date", "Reference date (YYYY-MM-DD), default today")

	return cmd
}

func newStatsCmd(a *App) *cobra.Command {
	var asJSON bool
	var date dateFlag

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show every session of the last 7 days with weekday totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := resolveUser(cmd, a)
			if err != nil {
				return err
			}
			now := date.at(a.now())

			uc := a.detailUseCase()
			if uc == nil {
				return fmt.Errorf("detail use case is not configured")
			}

			req := app.NewDetailRequest(user)
			req.Now = &now
			resp, err := uc.Detail(cmd.Context(), req)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDetail(resp, a.now()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the view as JSON")
	cmd.Flags().Var(&date, "date", "Reference date (YYYY-MM-DD), default today")

	return cmd
}

// dateFlag is a YYYY-MM-DD flag value, validated when the flag is parsed.
type dateFlag struct {
	set  bool
	date time.Time
}

var _ pflag.Value = (*dateFlag)(nil)

func (d *dateFlag) String() string {
	if !d.set {
		return ""
	}
	return d.date.Format(dateLayout)
}

func (d *dateFlag) Set(s string) error {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	d.date = t
	d.set = true
	return nil
}

func (d *dateFlag) Type() string { return "date" }

// at returns now, or the flag's date at now's clock time in now's location.
func (d *dateFlag) at(now time.Time) time.Time {
	if !d.set {
		return now
	}
	h, m, s := now.Clock()
	return time.Date(d.date.Year(), d.date.Month(), d.date.Day(), h, m, s, 0, now.Location())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
