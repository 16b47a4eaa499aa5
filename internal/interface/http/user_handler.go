package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fintrackhq/fintrack/internal/application"
	"github.com/fintrackhq/fintrack/internal/interface/middleware"
	"github.com/fintrackhq/fintrack/pkg/response"
	"github.com/fintrackhq/fintrack/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type updateProfileRequest struct {
	Name        string `json:"name"`
	OldPassword string `json:"old_password" binding:"omitempty,pwd"`
	NewPassword string `json:"new_password" binding:"omitempty,pwd"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

// GetProfile GET /api/user/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u, "profile")
}

// UpdateProfile PUT /api/user/update
// The identity always comes from the session guard, never from the payload.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	_, err := h.Svc.UpdateProfile(c.Request.Context(), uid, application.UpdateProfileInput{
		Name:        req.Name,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"updated": true}, "User updated successfully")
}
