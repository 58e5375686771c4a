package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"art/internal/interfaces/http/middleware"
	"art/internal/shared/constants"
	"art/internal/shared/logger"
	"art/internal/shared/utils"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type currentUser struct {
	UserID  uint        `json:"user_id"`
	Email   string      `json:"email"`
	Role    string      `json:"role"`
	Profile interface{} `json:"profile,omitempty"`
}

// SystemHandler serves the health probe and the caller's identity.
type SystemHandler struct {
	db     Pinger
	users  userUseCase
	logger logger.Interface
}

func NewSystemHandler(db Pinger, users userUseCase, log logger.Interface) *SystemHandler {
	return &SystemHandler{db: db, users: users, logger: log}
}

// HealthCheck handles GET /health
func (h *SystemHandler) HealthCheck(c *gin.Context) {
	if h.db != nil {
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			h.logger.Errorw("health check failed", "error", err)
			utils.ErrorResponse(c, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
}

// Me handles GET /auth/me. Profile is omitted when the token's user id has
// no users row.
func (h *SystemHandler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	out := currentUser{
		UserID: userID,
		Email:  c.GetString(middleware.ContextKeyEmail),
		Role:   c.GetString(constants.ContextKeyUserRole),
	}
	if h.users != nil {
		if profile, err := h.users.Get(c.Request.Context(), userID); err == nil && profile != nil {
			out.Profile = profile
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "", out)
}
