package dashboard

import (
	"sort"

	"payadmin-backend/internal/models"
)

const defaultStatusColor = "#16213e"

var statusColors = map[models.TransactionStatus]string{
	models.TransactionStatusApproved:       "#53bf9d",
	models.TransactionStatusPending:        "#fca130",
	models.TransactionStatusPendingAdmin:   "#fca130",
	models.TransactionStatusPendingSMS:     "#fca130",
	models.TransactionStatusPendingPayment: "#fca130",
	models.TransactionStatusFailed:         "#ff5c5c",
	models.TransactionStatusCanceled:       "#6c757d",
}

const maxTopUsers = 5

func StatusColor(status string) string {
	if c, ok := statusColors[models.TransactionStatus(status)]; ok {
		return c
	}
	return defaultStatusColor
}

type LineChart struct {
	Labels []string `json:"labels"`
	Data   []int64  `json:"data"`
}

type BarChart struct {
	Labels     []string  `json:"labels"`
	TopUp      []float64 `json:"topUp"`
	Withdrawal []float64 `json:"withdrawal"`
}

type DoughnutChart struct {
	Labels []string `json:"labels"`
	Data   []int64  `json:"data"`
	Colors []string `json:"colors"`
}

type UserCount struct {
	User  string `json:"user"`
	Count int64  `json:"count"`
}

// Charts is the render-ready form of the dashboard aggregates.
type Charts struct {
	RequestsByDate     LineChart     `json:"requestsByDate"`
	PlatformVolumes    BarChart      `json:"platformVolumes"`
	StatusDistribution DoughnutChart `json:"statusDistribution"`
	TopUsers           []UserCount   `json:"topUsers"`
}

func BuildCharts(stats *models.DashboardStats) Charts {
	charts := Charts{
		RequestsByDate:     LineChart{Labels: []string{}, Data: []int64{}},
		PlatformVolumes:    BarChart{Labels: []string{}, TopUp: []float64{}, Withdrawal: []float64{}},
		StatusDistribution: DoughnutChart{Labels: []string{}, Data: []int64{}, Colors: []string{}},
		TopUsers:           []UserCount{},
	}
	if stats == nil {
		return charts
	}

	// ISO dates sort chronologically as strings.
	for _, date := range sortedKeys(stats.RequestsByDate) {
		charts.RequestsByDate.Labels = append(charts.RequestsByDate.Labels, date)
		charts.RequestsByDate.Data = append(charts.RequestsByDate.Data, stats.RequestsByDate[date])
	}

	for _, platform := range sortedKeys(stats.PlatformGraphData) {
		v := stats.PlatformGraphData[platform]
		charts.PlatformVolumes.Labels = append(charts.PlatformVolumes.Labels, platform)
		charts.PlatformVolumes.TopUp = append(charts.PlatformVolumes.TopUp, v.TopUp)
		charts.PlatformVolumes.Withdrawal = append(charts.PlatformVolumes.Withdrawal, v.Withdrawal)
	}

	for _, status := range sortedKeys(stats.StatusDistribution) {
		charts.StatusDistribution.Labels = append(charts.StatusDistribution.Labels, status)
		charts.StatusDistribution.Data = append(charts.StatusDistribution.Data, stats.StatusDistribution[status])
		charts.StatusDistribution.Colors = append(charts.StatusDistribution.Colors, StatusColor(status))
	}

	for user, count := range stats.TopUsers {
		charts.TopUsers = append(charts.TopUsers, UserCount{User: user, Count: count})
	}
	sort.Slice(charts.TopUsers, func(i, j int) bool {
		a, b := charts.TopUsers[i], charts.TopUsers[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.User < b.User
	})
	if len(charts.TopUsers) > maxTopUsers {
		charts.TopUsers = charts.TopUsers[:maxTopUsers]
	}

	return charts
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
