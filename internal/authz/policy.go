// Package authz holds every role, capability-tag and visibility decision in
// one place so that list, export and dashboard endpoints cannot drift apart.
package authz

import (
	"strings"

	"github.com/applytrack/server/internal/models"
	"github.com/applytrack/server/internal/token"
)

// ParseTypes splits a comma-separated userTypes value, trimming whitespace
// and dropping empties.
func ParseTypes(s *string) []string {
	if s == nil || *s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(*s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// HasRole reports whether the caller's role is in the allow-list.
func HasRole(c *token.Claims, roles ...models.Role) bool {
	if c == nil {
		return false
	}
	for _, r := range roles {
		if c.Role == r {
			return true
		}
	}
	return false
}

// HasAnyType reports whether the caller carries at least one of the required
// capability tags. Admin and Management bypass tag checks unconditionally.
func HasAnyType(c *token.Claims, types ...string) bool {
	if c == nil {
		return false
	}
	if c.Role == models.RoleAdmin || c.Role == models.RoleManagement {
		return true
	}
	have := ParseTypes(c.UserTypes)
	for _, want := range types {
		for _, got := range have {
			if got == want {
				return true
			}
		}
	}
	return false
}

// CanSeeAll reports whether the caller may read other users' rows at all:
// Admin/Management, or a Regular user tagged Analyst.
func CanSeeAll(c *token.Claims) bool {
	if c == nil {
		return false
	}
	if c.Role == models.RoleAdmin || c.Role == models.RoleManagement {
		return true
	}
	return c.Role == models.RoleRegular && hasType(c, models.TypeAnalyst)
}

// GlobalScope resolves the query's global flag against the caller's rights.
// It returns true only when the request asked for global visibility and the
// caller is allowed it; everything else is scoped to the caller's own rows.
func GlobalScope(c *token.Claims, globalParam string) bool {
	requested := globalParam == "1" || globalParam == "true"
	return requested && CanSeeAll(c)
}

// CanModify reports whether the caller may write a row owned by ownerID:
// the owner themselves, or Admin/Management.
func CanModify(c *token.Claims, ownerID uint) bool {
	if c == nil {
		return false
	}
	if c.UserID == ownerID {
		return true
	}
	return c.Role == models.RoleAdmin || c.Role == models.RoleManagement
}

func hasType(c *token.Claims, t string) bool {
	for _, got := range ParseTypes(c.UserTypes) {
		if got == t {
			return true
		}
	}
	return false
}
