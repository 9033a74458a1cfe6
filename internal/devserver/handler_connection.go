package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zanara/internal/config"
	"zanara/internal/logger"
	"zanara/internal/services/dto"
	"zanara/internal/validator"
	"zanara/pkg/apperrors"
)

type ConnectionHandler struct {
	cfg      *config.Config
	store    Store
	validate *validator.Validator
}

func NewConnectionHandler(cfg *config.Config, store Store) *ConnectionHandler {
	return &ConnectionHandler{cfg: cfg, store: store, validate: validator.New()}
}

func (h *ConnectionHandler) Status(c *gin.Context) {
	status, err := h.store.ConnectionStatus(c.GetString(ctxUserID), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ConnectionStatusResponse{Status: string(status)})
}

func (h *ConnectionHandler) Request(c *gin.Context) {
	var req dto.ConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid request body"))
		return
	}
	if err := h.validate.Validate(&req); err != nil {
		respondError(c, err)
		return
	}

	target, err := h.store.ProfileByID(req.ProfileID)
	if err != nil {
		respondError(c, err)
		return
	}
	callerID := c.GetString(ctxUserID)
	if target.UserID == callerID || target.ID == c.GetString(ctxProfileID) {
		respondError(c, apperrors.NewBadRequestError("cannot request a connection with yourself"))
		return
	}

	if err := h.store.CreateConnection(callerID, target.ID); err != nil {
		respondError(c, err)
		return
	}

	logger.Info("connection requested", "from", callerID, "to", target.ID)
	c.JSON(http.StatusCreated, dto.ConnectionStatusResponse{Status: "pending"})
}
