package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/fintrackhq/fintrack/internal/interface/http"
	"github.com/fintrackhq/fintrack/internal/interface/middleware"
	"github.com/fintrackhq/fintrack/pkg/helpers"
)

// AuthModule wires the credential endpoints.
// Public: POST /api/auth/register, POST /api/auth/login
// Protected: POST /api/auth/logout

type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/register", m.Handler.Register)
	rg.POST("/auth/login", m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("/auth/logout", m.Handler.Logout)
	}
}
