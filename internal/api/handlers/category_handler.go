package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/applytrack/server/internal/services"
	"github.com/applytrack/server/internal/utils"
)

type CategoryHandler struct {
	svc services.CategoryService
}

func NewCategoryHandler(svc services.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type categoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ManagerID   uint    `json:"managerID"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CategoryHandler.Create", "Missing fields", err))
		return
	}

	id, err := h.svc.Create(c.Request.Context(), claims.UserID, req.Name, req.Description, req.ManagerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"categoryID": id})
}

func (h *CategoryHandler) Update(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CategoryHandler.Update", "Missing fields", err))
		return
	}

	if err := h.svc.Update(c.Request.Context(), claims.UserID, id, req.Name, req.Description, req.ManagerID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), claims.UserID, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
