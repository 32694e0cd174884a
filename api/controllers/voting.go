package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/kodendaal/name-voting/api/models"
	"github.com/kodendaal/name-voting/logging"
	"github.com/kodendaal/name-voting/voting"
)

type VotingController struct {
	ledger *voting.Ledger
}

func NewVotingController(ledger *voting.Ledger) *VotingController {
	return &VotingController{
		ledger: ledger,
	}
}

func (c *VotingController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.GET("/session", c.openSession)
	group.POST("/votes", c.castVotes)
}

// openSession godoc
// @Summary Open a voting session
// @Description Mints a session identifier and the starting vote budget; the client holds and returns the budget on every cast
// @Tags voting
// @Produce json
// @Success 200 {object} models.SessionResponse
// @Router /api/session [get]
func (c *VotingController) openSession(g *gin.Context) {
	sessionID := c.generateSessionID()
	g.JSON(http.StatusOK, models.SessionResponse{
		SessionID:      sessionID,
		VotesRemaining: c.ledger.SessionBudget(),
	})
}

// castVotes godoc
// @Summary Cast votes for selected names
// @Description Records one vote per selected name if voting is open and the selection fits the remaining budget
// @Tags voting
// @Accept json
// @Produce json
// @Param votes body models.CastVotesRequest true "Selected names and remaining budget"
// @Success 200 {object} models.CastVotesResponse
// @Failure 400 {object} models.ErrorResponse "Malformed request"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/votes [post]
func (c *VotingController) castVotes(g *gin.Context) {
	var req models.CastVotesRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.VotesRemaining == nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	newRemaining, result, err := c.ledger.CastVotes(g.Request.Context(), req.Names, *req.VotesRemaining)
	if err != nil {
		logging.Log.Errorf("failed to record votes: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save votes"})
		return
	}

	// Declined casts still answer 200: the widget always needs the surviving
	// budget and the message back.
	g.JSON(http.StatusOK, models.CastVotesResponse{
		Accepted:       result.OK,
		VotesRemaining: newRemaining,
		Message:        result.Message,
	})
}

func (c *VotingController) generateSessionID() string {
	id, err := gonanoid.Generate(models.Alphabet, 8)
	if err != nil {
		logging.Log.Errorf("failed to generate session id: %v", err)
		return "ERROR"
	}
	return id
}
