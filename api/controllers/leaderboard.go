package controllers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kodendaal/name-voting/api/models"
	"github.com/kodendaal/name-voting/logging"
	"github.com/kodendaal/name-voting/voting"
)

type LeaderboardController struct {
	aggregator *voting.Aggregator
}

func NewLeaderboardController(aggregator *voting.Aggregator) *LeaderboardController {
	return &LeaderboardController{
		aggregator: aggregator,
	}
}

func (c *LeaderboardController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.GET("/leaderboard", c.getLeaderboard)
	group.GET("/leaderboard/chart", c.getLeaderboardChart)
}

// getLeaderboard godoc
// @Summary Current leaderboard
// @Description Names ranked by vote count descending; voted names without a submission appear after submitted ones
// @Tags leaderboard
// @Produce json
// @Success 200 {object} models.LeaderboardResponse
// @Router /api/leaderboard [get]
func (c *LeaderboardController) getLeaderboard(g *gin.Context) {
	rows := c.aggregator.Leaderboard(g.Request.Context())
	g.JSON(http.StatusOK, models.TransformLeaderboard(rows))
}

// getLeaderboardChart godoc
// @Summary Leaderboard bar chart
// @Description Renders the leaderboard as a PNG bar chart, or a placeholder when there is no data
// @Tags leaderboard
// @Produce png
// @Success 200 {string} binary "PNG image"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/leaderboard/chart [get]
func (c *LeaderboardController) getLeaderboardChart(g *gin.Context) {
	rows := c.aggregator.Leaderboard(g.Request.Context())

	var buf bytes.Buffer
	if err := voting.RenderChart(rows, &buf); err != nil {
		logging.Log.Errorf("failed to render leaderboard chart: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not render chart"})
		return
	}

	g.Data(http.StatusOK, "image/png", buf.Bytes())
}
