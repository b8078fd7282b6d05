package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lsgame/roomsvc/internal/domain"
	"github.com/lsgame/roomsvc/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// RoomHandler handles HTTP requests for room membership operations
type RoomHandler struct {
	roomUseCase domain.RoomUseCase
	logger      *logger.Logger
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomUseCase domain.RoomUseCase, logger *logger.Logger) *RoomHandler {
	return &RoomHandler{
		roomUseCase: roomUseCase,
		logger:      logger,
	}
}

// TransferHostRequest represents the host transfer request body
type TransferHostRequest struct {
	NewHostID int64 `json:"new_host_id" binding:"required,gt=0" example:"34679664254"`
}

// Create handles room creation
// @Summary Create a room
// @Description Open a new room hosted by the authenticated user
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 201 {object} domain.RoomInfo
// @Failure 401 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	info, err := h.roomUseCase.CreateRoom(userID)
	if err != nil {
		h.logger.Error("Create room failed", zap.Int64("user_id", userID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, info)
}

// Join handles joining a room
// @Summary Join a room
// @Description Join the room hosted by the user in the path
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param host_id path int true "Host user ID"
// @Success 200 {object} domain.RoomInfo
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /rooms/{host_id}/join [post]
func (h *RoomHandler) Join(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}
	hostID, ok := parseIDParam(c, "host_id")
	if !ok {
		return
	}

	info, err := h.roomUseCase.JoinRoom(userID, hostID)
	if err != nil {
		h.logger.Error("Join room failed", zap.Int64("user_id", userID), zap.Int64("host_id", hostID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// Leave handles leaving the current room
// @Summary Leave the current room
// @Description Remove the authenticated user from their room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 409 {object} domain.ErrorResponse
// @Router /rooms/leave [post]
func (h *RoomHandler) Leave(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	if err := h.roomUseCase.LeaveRoom(userID); err != nil {
		h.logger.Error("Leave room failed", zap.Int64("user_id", userID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCurrent handles looking up the caller's own room
// @Summary Get the caller's room
// @Description Look up the room the authenticated user currently occupies
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.RoomInfo
// @Failure 404 {object} domain.ErrorResponse
// @Router /rooms/current [get]
func (h *RoomHandler) GetCurrent(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	info, err := h.roomUseCase.GetRoomInfo(userID, nil)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// Get handles looking up a room by host id
// @Summary Get a room by host
// @Description Look up the room hosted by the user in the path
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param host_id path int true "Host user ID"
// @Success 200 {object} domain.RoomInfo
// @Failure 404 {object} domain.ErrorResponse
// @Router /rooms/{host_id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}
	hostID, ok := parseIDParam(c, "host_id")
	if !ok {
		return
	}

	info, err := h.roomUseCase.GetRoomInfo(userID, &hostID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// Transfer handles transferring the host seat
// @Summary Transfer the host seat
// @Description Hand the room over to another member
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TransferHostRequest true "Transfer details"
// @Success 200 {object} domain.RoomInfo
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /rooms/transfer [post]
func (h *RoomHandler) Transfer(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req TransferHostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid format", 400, err))
		return
	}

	info, err := h.roomUseCase.TransferHost(userID, req.NewHostID)
	if err != nil {
		h.logger.Error("Transfer host failed", zap.Int64("user_id", userID), zap.Int64("new_host_id", req.NewHostID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// Delete handles deleting the caller's room
// @Summary Delete the caller's room
// @Description Close the room hosted by the authenticated user
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 409 {object} domain.ErrorResponse
// @Router /rooms [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	if err := h.roomUseCase.DeleteRoom(userID); err != nil {
		h.logger.Error("Delete room failed", zap.Int64("user_id", userID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
