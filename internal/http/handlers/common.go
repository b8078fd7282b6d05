package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lsgame/roomsvc/internal/domain"
)

// getAuthenticatedUserID extracts and validates the authenticated user ID
// from the context. The JWT middleware stores it as the string form of the
// platform's numeric id.
func getAuthenticatedUserID(c *gin.Context) (int64, bool) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, domain.NewUnauthorizedError("User not authenticated"))
		return 0, false
	}

	userID, err := strconv.ParseInt(userIDStr.(string), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid user ID format", 400, err))
		return 0, false
	}

	return userID, true
}

// parseIDParam parses a numeric id path parameter
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid id in path", 400, err))
		return 0, false
	}
	return id, true
}

// respondError writes a usecase error with its own HTTP status
func respondError(c *gin.Context, err error) {
	if appErr, ok := domain.IsAppError(err); ok {
		c.JSON(appErr.HTTPStatus, domain.NewErrorResponse(appErr))
		return
	}
	c.JSON(http.StatusInternalServerError, domain.NewErrorResponse(
		domain.NewInternalError("", err)))
}
