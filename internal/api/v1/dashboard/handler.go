package dashboard

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"payadmin-backend/internal/apperr"
	"payadmin-backend/internal/dashboard"
	"payadmin-backend/internal/format"
	"payadmin-backend/internal/middleware"
	"payadmin-backend/internal/remote"
	"payadmin-backend/internal/utils"
)

type Handler struct {
	api *remote.Client
	now func() time.Time
}

func NewHandler(api *remote.Client) *Handler {
	return &Handler{api: api, now: time.Now}
}

// GetDashboard godoc
// @Summary Get dashboard statistics and chart series
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Param period query string false "7d, 30d, all or custom" default(30d)
// @Param startDate query string false "yyyy-MM-dd, custom period only"
// @Param endDate query string false "yyyy-MM-dd, custom period only"
// @Success 200 {object} utils.Response{data=Response}
// @Failure 400 {object} utils.Response
// @Router /dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	var in StatsQuery
	if err := c.ShouldBindQuery(&in); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid query parameters"))
		return
	}

	period, err := dashboard.ParsePeriod(in.Period)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid period"))
		return
	}
	q, err := period.Query(h.now(), in.StartDate, in.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	stats, err := h.api.DashboardStats(c.Request.Context(), middleware.Credential(c), q.StartDate, q.EndDate)
	if err != nil {
		apperr.Respond(c, err, "Statistikani yuklashda xatolik")
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Dashboard retrieved successfully", Response{
		Period:    period,
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		Stats:     stats,
		Charts:    dashboard.BuildCharts(stats),
		Totals: Totals{
			TotalRequests:    format.Count(stats.TotalRequests),
			ApprovedRequests: format.Count(stats.ApprovedRequests),
			TopUpAmount:      format.Amount(stats.TotalApprovedTopUpAmount),
			WithdrawalAmount: format.Amount(stats.TotalApprovedWithdrawalAmount),
		},
	}))
}
