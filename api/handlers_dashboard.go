package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"policyedge/db"
)

// DashboardStatsHandler summarises the caller's activity.
// @Summary      Dashboard statistics
// @Description  Counts your policies and the analyses run on them, and lists up to three most recent uploads. `avg_compliance_score` is a fixed placeholder.
// @Tags         Dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.DashboardStats
// @Failure      401  {object}  utils.APIError
// @Router       /dashboard/stats [get]
func DashboardStatsHandler(c *gin.Context, database *db.Database) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, database.DashboardStats(user.ID))
}
