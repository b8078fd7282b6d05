package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lsgame/roomsvc/internal/domain"
	"github.com/lsgame/roomsvc/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// PlayerHandler handles HTTP requests for in-game player operations
type PlayerHandler struct {
	playerUseCase domain.PlayerUseCase
	logger        *logger.Logger
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerUseCase domain.PlayerUseCase, logger *logger.Logger) *PlayerHandler {
	return &PlayerHandler{
		playerUseCase: playerUseCase,
		logger:        logger,
	}
}

// GetMe handles looking up the caller's own player row
// @Summary Get own player
// @Description Look up the authenticated user's player in the running game
// @Tags players
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Player
// @Failure 404 {object} domain.ErrorResponse
// @Router /players/me [get]
func (h *PlayerHandler) GetMe(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	player, err := h.playerUseCase.GetPlayer(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// UseItem handles consuming the caller's held item
// @Summary Use held item
// @Description Consume the authenticated player's held item
// @Tags players
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Player
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /players/me/use-item [post]
func (h *PlayerHandler) UseItem(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	player, err := h.playerUseCase.UseItem(userID)
	if err != nil {
		h.logger.Error("Use item failed", zap.Int64("user_id", userID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// Eliminate handles marking a player as dead
// @Summary Eliminate a player
// @Description Mark the player in the path as dead
// @Tags players
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "Player user ID"
// @Success 200 {object} domain.Player
// @Failure 404 {object} domain.ErrorResponse
// @Router /players/{user_id}/eliminate [post]
func (h *PlayerHandler) Eliminate(c *gin.Context) {
	if _, ok := getAuthenticatedUserID(c); !ok {
		return
	}
	targetID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	player, err := h.playerUseCase.EliminatePlayer(targetID)
	if err != nil {
		h.logger.Error("Eliminate player failed", zap.Int64("target_id", targetID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}
