package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lsgame/roomsvc/internal/domain"
	"github.com/lsgame/roomsvc/internal/infrastructure/logger"
)

// UserHandler handles HTTP requests for user profiles
type UserHandler struct {
	userUseCase domain.UserUseCase
	logger      *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUseCase domain.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// ProfileResponse represents the profile response body
type ProfileResponse struct {
	UserID     int64 `json:"user_id" example:"34633089486"`
	TotalGames int64 `json:"total_games" example:"12"`
	Wins       int64 `json:"wins" example:"5"`
	XP         int64 `json:"xp" example:"340"`
	InRoom     bool  `json:"in_room" example:"true"`
}

// GetMe handles looking up the caller's own profile
// @Summary Get own profile
// @Description Retrieve the authenticated user's lifetime counters
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	h.respondProfile(c, userID)
}

// Get handles looking up another user's profile
// @Summary Get a profile
// @Description Retrieve the lifetime counters of the user in the path
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "User ID"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} domain.ErrorResponse
// @Router /users/{user_id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	if _, ok := getAuthenticatedUserID(c); !ok {
		return
	}
	targetID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	h.respondProfile(c, targetID)
}

func (h *UserHandler) respondProfile(c *gin.Context, userID int64) {
	user, err := h.userUseCase.GetProfile(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		UserID:     user.ID,
		TotalGames: user.TotalGames,
		Wins:       user.Wins,
		XP:         user.XP,
		InRoom:     user.InRoom(),
	})
}
