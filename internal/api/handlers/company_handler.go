package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/applytrack/server/internal/services"
	"github.com/applytrack/server/internal/utils"
)

type CompanyHandler struct {
	svc services.CompanyService
}

func NewCompanyHandler(svc services.CompanyService) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

func (h *CompanyHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type createCompanyRequest struct {
	Name     string  `json:"name"`
	Industry *string `json:"industry"`
	Location *string `json:"location"`
}

func (h *CompanyHandler) Create(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	var req createCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CompanyHandler.Create", "Missing fields", err))
		return
	}

	id, err := h.svc.Create(c.Request.Context(), claims.UserID, req.Name, req.Industry, req.Location)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"companyID": id})
}
