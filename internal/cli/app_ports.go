package cli

import "github.com/alexanderramin/focusflow/internal/app"

func (a *App) logSessionUseCase() app.LogSessionUseCase {
	if a.LogSession != nil {
		return a.LogSession
	}
	return a.Sessions
}

func (a *App) dashboardUseCase() app.DashboardUseCase {
	if a.Dashboard != nil {
		return a.Dashboard
	}
	return a.Stats
}

func (a *App) detailUseCase() app.DetailUseCase {
	if a.Detail != nil {
		return a.Detail
	}
	return a.Stats
}
