package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/applytrack/server/internal/api/middleware"
	"github.com/applytrack/server/internal/token"
	"github.com/applytrack/server/internal/utils"
)

// writeError renders the uniform {"error": message} body with the status
// derived from the error's code.
func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) && ae.Message != "" {
		c.JSON(status, gin.H{"error": ae.Message})
		return
	}
	c.JSON(status, gin.H{"error": http.StatusText(status)})
}

func requireClaims(c *gin.Context) (*token.Claims, bool) {
	if claims := middleware.Claims(c); claims != nil {
		return claims, true
	}
	writeError(c, utils.E(utils.CodeUnauthorized, "Auth", "Unauthorized", nil))
	return nil, false
}

// idParam parses the :id path segment; an unparsable id behaves like a row
// that does not exist.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, utils.E(utils.CodeNotFound, "", "Not found", nil))
		return 0, false
	}
	return uint(id), true
}

func queryStr(c *gin.Context, key string) *string {
	if v := c.Query(key); v != "" {
		return &v
	}
	return nil
}

func queryUint(c *gin.Context, key string) *uint {
	if v := c.Query(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			u := uint(n)
			return &u
		}
	}
	return nil
}

func queryInt(c *gin.Context, key string) *int {
	if v := c.Query(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return &n
		}
	}
	return nil
}

func queryIntDefault(c *gin.Context, key string, fallback int) int {
	if p := queryInt(c, key); p != nil {
		return *p
	}
	return fallback
}
