package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lsgame/roomsvc/internal/domain"
	"github.com/lsgame/roomsvc/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// GameHandler handles HTTP requests for the game lifecycle
type GameHandler struct {
	gameUseCase domain.GameUseCase
	logger      *logger.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameUseCase domain.GameUseCase, logger *logger.Logger) *GameHandler {
	return &GameHandler{
		gameUseCase: gameUseCase,
		logger:      logger,
	}
}

// StartGameRequest represents the start game request body
type StartGameRequest struct {
	Assignments []domain.PlayerAssignment `json:"assignments" binding:"required"`
}

// FinishGameRequest represents the finish game request body
type FinishGameRequest struct {
	Results []domain.PlayerResult `json:"results" binding:"required"`
}

// Start handles starting a game
// @Summary Start a game
// @Description Begin a game in the authenticated host's room with the given cast
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body StartGameRequest true "Player assignments"
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /games/start [post]
func (h *GameHandler) Start(c *gin.Context) {
	hostID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req StartGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid format", 400, err))
		return
	}

	if err := h.gameUseCase.StartGame(hostID, req.Assignments); err != nil {
		h.logger.Error("Start game failed", zap.Int64("host_id", hostID), zap.Int("players", len(req.Assignments)), zap.Error(err))
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Finish handles finishing a game
// @Summary Finish a game
// @Description End the game in the authenticated host's room and record the results
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FinishGameRequest true "Player results"
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /games/finish [post]
func (h *GameHandler) Finish(c *gin.Context) {
	hostID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req FinishGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid format", 400, err))
		return
	}

	if err := h.gameUseCase.FinishGame(hostID, req.Results); err != nil {
		h.logger.Error("Finish game failed", zap.Int64("host_id", hostID), zap.Int("results", len(req.Results)), zap.Error(err))
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
