package models

// PlatformVolume holds approved amounts per direction for one platform.
type PlatformVolume struct {
	TopUp      float64 `json:"top_up"`
	Withdrawal float64 `json:"withdrawal"`
}

type DashboardStats struct {
	TotalRequests                 int64                     `json:"totalRequests"`
	ApprovedRequests              int64                     `json:"approvedRequests"`
	TotalApprovedTopUpAmount      float64                   `json:"totalApprovedTopUpAmount"`
	TotalApprovedWithdrawalAmount float64                   `json:"totalApprovedWithdrawalAmount"`
	RequestsByDate                map[string]int64          `json:"requestsByDate"`
	PlatformGraphData             map[string]PlatformVolume `json:"platformGraphData"`
	StatusDistribution            map[string]int64          `json:"statusDistribution"`
	TopUsers                      map[string]int64          `json:"topUsers"`
}
