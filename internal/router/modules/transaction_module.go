package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/fintrackhq/fintrack/internal/interface/http"
	"github.com/fintrackhq/fintrack/internal/interface/middleware"
	"github.com/fintrackhq/fintrack/pkg/helpers"
)

// TransactionModule wires the ledger endpoints, all behind the session guard.
// Protected: POST|GET /api/transactions, GET|PUT|DELETE /api/transactions/:id

type TransactionModule struct {
	Handler *handlers.TransactionHandler
	JWT     *helpers.JWTManager
}

func NewTransactionModule(h *handlers.TransactionHandler, jwt *helpers.JWTManager) *TransactionModule {
	return &TransactionModule{Handler: h, JWT: jwt}
}

func (m *TransactionModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/transactions")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("", m.Handler.Create)
		auth.GET("", m.Handler.List)
		auth.GET("/:id", m.Handler.Get)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
