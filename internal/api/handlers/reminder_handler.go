package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/applytrack/server/internal/services"
	"github.com/applytrack/server/internal/utils"
)

type ReminderHandler struct {
	svc services.ReminderService
}

func NewReminderHandler(svc services.ReminderService) *ReminderHandler {
	return &ReminderHandler{svc: svc}
}

func (h *ReminderHandler) List(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	rows, err := h.svc.List(c.Request.Context(), claims.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type createReminderRequest struct {
	AppID        *uint  `json:"appID"`
	ReminderDate string `json:"reminderDate"`
	Message      string `json:"message"`
}

func (h *ReminderHandler) Create(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	var req createReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ReminderHandler.Create", "Missing fields", err))
		return
	}

	id, err := h.svc.Create(c.Request.Context(), claims, req.AppID, req.ReminderDate, req.Message)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reminderID": id})
}

func (h *ReminderHandler) Delete(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), claims, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
