package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/fintrackhq/fintrack/internal/interface/http"
	"github.com/fintrackhq/fintrack/internal/interface/middleware"
	"github.com/fintrackhq/fintrack/pkg/helpers"
)

// UserModule wires the profile endpoints, all behind the session guard.
// Protected: GET /api/user/profile, PUT /api/user/update

type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/user")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/profile", m.Handler.GetProfile)
		auth.PUT("/update", m.Handler.UpdateProfile)
	}
}
