package dashboard

import (
	"payadmin-backend/internal/dashboard"
	"payadmin-backend/internal/models"
)

type StatsQuery struct {
	Period    string `form:"period"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// Totals are the summary cards above the charts, already formatted.
type Totals struct {
	TotalRequests    string `json:"totalRequests"`
	ApprovedRequests string `json:"approvedRequests"`
	TopUpAmount      string `json:"topUpAmount"`
	WithdrawalAmount string `json:"withdrawalAmount"`
}

type Response struct {
	Period    dashboard.Period       `json:"period"`
	StartDate string                 `json:"startDate,omitempty"`
	EndDate   string                 `json:"endDate,omitempty"`
	Stats     *models.DashboardStats `json:"stats"`
	Charts    dashboard.Charts       `json:"charts"`
	Totals    Totals                 `json:"totals"`
}
