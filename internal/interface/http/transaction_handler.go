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

type TransactionHandler struct {
	Svc    *application.TransactionService
	Logger *logrus.Logger
}

func NewTransactionHandler(svc *application.TransactionService, logger *logrus.Logger) *TransactionHandler {
	return &TransactionHandler{Svc: svc, Logger: logger}
}

type createTransactionRequest struct {
	Type        string  `json:"type" binding:"required,oneof=asset liability"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

type updateTransactionRequest struct {
	Type        string  `json:"type" binding:"omitempty,oneof=asset liability"`
	Amount      float64 `json:"amount" binding:"omitempty,gt=0"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

// Create POST /api/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	t, err := h.Svc.Create(c.Request.Context(), uid, application.CreateTransactionInput{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, t, "Transaction created")
}

// List GET /api/transactions
func (h *TransactionHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	list, err := h.Svc.ListMine(c.Request.Context(), uid)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list, "transactions")
}

// Get GET /api/transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	t, err := h.Svc.GetByID(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t, "transaction")
}

// Update PUT /api/transactions/:id
func (h *TransactionHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	t, err := h.Svc.Update(c.Request.Context(), uid, c.Param("id"), application.UpdateTransactionInput{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t, "Transaction updated")
}

// Delete DELETE /api/transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
