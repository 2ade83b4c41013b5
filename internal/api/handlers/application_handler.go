package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/applytrack/server/internal/api/middleware"
	"github.com/applytrack/server/internal/services"
	"github.com/applytrack/server/internal/utils"
)

type ApplicationHandler struct {
	svc services.ApplicationService
}

func NewApplicationHandler(svc services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

func (h *ApplicationHandler) List(c *gin.Context) {
	claims := middleware.Claims(c)
	if claims == nil {
		// Guest preview: unauthenticated visitors get sample data, not
		// an error, and no pagination envelope.
		c.JSON(http.StatusOK, services.GuestApplications())
		return
	}

	params := services.ListParams{
		Status:     queryStr(c, "status"),
		CompanyID:  queryUint(c, "companyID"),
		CategoryID: queryUint(c, "categoryID"),
		Priority:   queryInt(c, "priority"),
		Search:     queryStr(c, "q"),
		Sort:       c.DefaultQuery("sort", "-appliedDate"),
		Global:     c.Query("global"),
		Page:       queryIntDefault(c, "page", 1),
		PageSize:   queryIntDefault(c, "pageSize", 20),
	}

	res, err := h.svc.List(c.Request.Context(), claims, params)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type createApplicationRequest struct {
	CompanyID   *uint   `json:"companyID"`
	Company     *string `json:"company"`
	Position    string  `json:"position"`
	Status      string  `json:"status"`
	Priority    *int    `json:"priority"`
	AppliedDate string  `json:"appliedDate"`
	Deadline    *string `json:"deadline"`
	Notes       *string `json:"notes"`
	CategoryID  *uint   `json:"categoryID"`
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	var req createApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.Create", "Missing fields", err))
		return
	}

	id, err := h.svc.Create(c.Request.Context(), claims, services.CreateApplicationInput{
		CompanyID:   req.CompanyID,
		Company:     req.Company,
		Position:    req.Position,
		Status:      req.Status,
		Priority:    req.Priority,
		AppliedDate: req.AppliedDate,
		Deadline:    req.Deadline,
		Notes:       req.Notes,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appID": id})
}

func (h *ApplicationHandler) Update(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	// The patch must distinguish an absent key from an explicit null, so
	// the body is decoded as a raw map first.
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.Update", "Missing fields", err))
		return
	}

	in := services.UpdateApplicationInput{
		CompanyID:   patchUint(raw, "companyID"),
		Company:     patchStr(raw, "company"),
		Position:    patchRequiredStr(raw, "position"),
		Status:      patchRequiredStr(raw, "status"),
		AppliedDate: patchRequiredStr(raw, "appliedDate"),
		Deadline:    patchStr(raw, "deadline"),
		Notes:       patchStr(raw, "notes"),
		CategoryID:  patchUint(raw, "categoryID"),
		Priority:    patchInt(raw, "priority"),
	}

	if err := h.svc.Update(c.Request.Context(), claims, id, in); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
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

func (h *ApplicationHandler) ExportCSV(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	data, err := h.svc.ExportCSV(c.Request.Context(), claims, c.Query("global"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="applications.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (h *ApplicationHandler) History(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	rows, err := h.svc.History(c.Request.Context(), claims, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type addHistoryRequest struct {
	StatusChange string  `json:"statusChange"`
	Description  string  `json:"description"` // legacy alias for statusChange
	Feedback     *string `json:"feedback"`
}

func (h *ApplicationHandler) AddHistory(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req addHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.AddHistory", "Missing fields", err))
		return
	}

	status := req.StatusChange
	if status == "" {
		status = req.Description
	}

	histID, err := h.svc.AddHistory(c.Request.Context(), claims, id, status, req.Feedback)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"historyID": histID})
}

// patch helpers translate the raw JSON patch into optional fields. A falsy
// value (null, 0, "") on a nullable field clears it, matching the API's
// established patch semantics.

func patchUint(raw map[string]any, key string) services.OptionalUint {
	v, present := raw[key]
	if !present {
		return services.OptionalUint{}
	}
	if n, ok := toUint(v); ok && n != 0 {
		return services.OptionalUint{Set: true, Value: &n}
	}
	return services.OptionalUint{Set: true}
}

func patchStr(raw map[string]any, key string) services.OptionalString {
	v, present := raw[key]
	if !present {
		return services.OptionalString{}
	}
	if s, ok := v.(string); ok && s != "" {
		return services.OptionalString{Set: true, Value: &s}
	}
	return services.OptionalString{Set: true}
}

func patchRequiredStr(raw map[string]any, key string) *string {
	if v, present := raw[key]; present {
		if s, ok := v.(string); ok {
			return &s
		}
	}
	return nil
}

func patchInt(raw map[string]any, key string) *int {
	if v, present := raw[key]; present {
		if f, ok := v.(float64); ok {
			n := int(f)
			return &n
		}
	}
	return nil
}

func toUint(v any) (uint, bool) {
	switch n := v.(type) {
	case float64:
		if n < 0 {
			return 0, false
		}
		return uint(n), true
	default:
		return 0, false
	}
}
