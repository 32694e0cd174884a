package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kodendaal/name-voting/api/transport"
	"github.com/kodendaal/name-voting/logging"
	"github.com/kodendaal/name-voting/storage"
)

type AdminController struct {
	submissionsStorage storage.SubmissionStorage
	votesStorage       storage.VoteStorage
}

func NewAdminController(submissions storage.SubmissionStorage, votes storage.VoteStorage) *AdminController {
	return &AdminController{
		submissionsStorage: submissions,
		votesStorage:       votes,
	}
}

func (c *AdminController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/admin", transport.AdminAuthMiddleware())

	group.GET("/submissions", c.listSubmissions)
	group.DELETE("/submissions", c.resetSubmissions)
	group.DELETE("/votes", c.resetVotes)
}

// @Security AdminToken
// listSubmissions godoc
// @Summary List full submission rows
// @Description Returns every submission with its tag and timestamp
// @Tags admin
// @Produce json
// @Success 200 {array} storage.Submission
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/submissions [get]
func (c *AdminController) listSubmissions(g *gin.Context) {
	submissions, err := c.submissionsStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to list submissions: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logging.Log.Infof("ADMIN: listed %d submissions", len(submissions))
	g.JSON(http.StatusOK, submissions)
}

// @Security AdminToken
// resetSubmissions godoc
// @Summary Delete all submissions
// @Description Clears the submission table for a fresh round
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/submissions [delete]
func (c *AdminController) resetSubmissions(g *gin.Context) {
	if err := c.submissionsStorage.DeleteAll(g.Request.Context()); err != nil {
		logging.Log.Errorf("ADMIN: failed to reset submissions: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logging.Log.Info("ADMIN: reset submissions")
	g.JSON(http.StatusOK, gin.H{"message": "All submissions deleted"})
}

// @Security AdminToken
// resetVotes godoc
// @Summary Delete all votes
// @Description Clears the vote table for a fresh round
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/votes [delete]
func (c *AdminController) resetVotes(g *gin.Context) {
	if err := c.votesStorage.DeleteAll(g.Request.Context()); err != nil {
		logging.Log.Errorf("ADMIN: failed to reset votes: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logging.Log.Info("ADMIN: reset votes")
	g.JSON(http.StatusOK, gin.H{"message": "All votes deleted"})
}
