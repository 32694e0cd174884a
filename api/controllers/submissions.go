package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kodendaal/name-voting/api/models"
	"github.com/kodendaal/name-voting/logging"
	"github.com/kodendaal/name-voting/voting"
)

type SubmissionsController struct {
	registry   *voting.Registry
	aggregator *voting.Aggregator
}

func NewSubmissionsController(registry *voting.Registry, aggregator *voting.Aggregator) *SubmissionsController {
	return &SubmissionsController{
		registry:   registry,
		aggregator: aggregator,
	}
}

func (c *SubmissionsController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.POST("/submissions", c.submitName)
	group.GET("/submissions/names", c.listNameChoices)
}

// submitName godoc
// @Summary Propose a new team name
// @Description Validates the name and tag and appends the submission; duplicate names (case-insensitive) are declined
// @Tags submissions
// @Accept json
// @Produce json
// @Param submission body models.SubmitRequest true "Name proposal"
// @Success 200 {object} models.SubmitResponse
// @Failure 400 {object} models.SubmitResponse "Empty name or tag"
// @Failure 409 {object} models.SubmitResponse "Name already submitted"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/submissions [post]
func (c *SubmissionsController) submitName(g *gin.Context) {
	var req models.SubmitRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	outcome, err := c.registry.Submit(g.Request.Context(), req.Name, req.Tag)
	if err != nil {
		logging.Log.Errorf("failed to store submission: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save submission"})
		return
	}

	status := http.StatusOK
	if !outcome.OK {
		// Missing fields are a bad request, duplicates a conflict.
		if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Tag) == "" {
			status = http.StatusBadRequest
		} else {
			status = http.StatusConflict
		}
	}
	g.JSON(status, models.TransformSubmitOutcome(outcome))
}

// listNameChoices godoc
// @Summary List submitted names for the voting widget
// @Description Returns the distinct submitted names in submission order; the caller should clear its current selection
// @Tags submissions
// @Produce json
// @Success 200 {object} models.NameChoicesResponse
// @Router /api/submissions/names [get]
func (c *SubmissionsController) listNameChoices(g *gin.Context) {
	names := c.aggregator.NameChoices(g.Request.Context())
	g.JSON(http.StatusOK, models.NameChoicesResponse{
		Names:          names,
		ClearSelection: true,
	})
}
