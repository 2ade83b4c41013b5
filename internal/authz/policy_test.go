package authz

import (
	"testing"

	"github.com/applytrack/server/internal/models"
	"github.com/applytrack/server/internal/token"
)

func claims(role models.Role, userTypes string, id uint) *token.Claims {
	c := &token.Claims{UserID: id, Role: role}
	if userTypes != "" {
		c.UserTypes = &userTypes
	}
	return c
}

func TestParseTypes(t *testing.T) {
	s := " JobSeeker, Analyst ,,"
	got := ParseTypes(&s)
	if len(got) != 2 || got[0] != "JobSeeker" || got[1] != "Analyst" {
		t.Fatalf("unexpected parse result: %v", got)
	}
	if ParseTypes(nil) != nil {
		t.Fatalf("expected nil for nil input")
	}
	empty := ""
	if ParseTypes(&empty) != nil {
		t.Fatalf("expected nil for empty input")
	}
}

func TestHasAnyTypeAdminBypass(t *testing.T) {
	if !HasAnyType(claims(models.RoleAdmin, "", 1), models.TypeJobSeeker) {
		t.Fatalf("admin should bypass tag checks")
	}
	if !HasAnyType(claims(models.RoleManagement, "", 1), models.TypeJobSeeker) {
		t.Fatalf("management should bypass tag checks")
	}
	if HasAnyType(claims(models.RoleRegular, "Analyst", 1), models.TypeJobSeeker) {
		t.Fatalf("regular without JobSeeker tag should be denied")
	}
	if !HasAnyType(claims(models.RoleRegular, "JobSeeker,Analyst", 1), models.TypeJobSeeker) {
		t.Fatalf("regular with JobSeeker tag should be allowed")
	}
	if HasAnyType(nil, models.TypeJobSeeker) {
		t.Fatalf("nil claims should be denied")
	}
}

func TestCanSeeAll(t *testing.T) {
	if !CanSeeAll(claims(models.RoleAdmin, "", 1)) {
		t.Fatalf("admin sees all")
	}
	if !CanSeeAll(claims(models.RoleManagement, "", 1)) {
		t.Fatalf("management sees all")
	}
	if !CanSeeAll(claims(models.RoleRegular, "Analyst", 1)) {
		t.Fatalf("regular analyst sees all")
	}
	if CanSeeAll(claims(models.RoleRegular, "JobSeeker", 1)) {
		t.Fatalf("regular non-analyst must not see all")
	}
	// Control carries the Analyst tag but is not Regular; the analyst
	// exception applies to Regular only.
	if CanSeeAll(claims(models.RoleControl, "Analyst", 1)) {
		t.Fatalf("control role must not see all")
	}
}

func TestGlobalScope(t *testing.T) {
	admin := claims(models.RoleAdmin, "", 1)
	regular := claims(models.RoleRegular, "JobSeeker", 2)

	if !GlobalScope(admin, "true") || !GlobalScope(admin, "1") {
		t.Fatalf("admin with global flag should get global scope")
	}
	if GlobalScope(admin, "") || GlobalScope(admin, "0") {
		t.Fatalf("global scope requires the flag even for admins")
	}
	if GlobalScope(regular, "true") {
		t.Fatalf("regular user must stay scoped regardless of the flag")
	}
}

func TestCanModify(t *testing.T) {
	owner := claims(models.RoleRegular, "JobSeeker", 7)
	other := claims(models.RoleRegular, "JobSeeker", 8)
	admin := claims(models.RoleAdmin, "", 1)

	if !CanModify(owner, 7) {
		t.Fatalf("owner can modify own row")
	}
	if CanModify(other, 7) {
		t.Fatalf("non-owner regular cannot modify")
	}
	if !CanModify(admin, 7) {
		t.Fatalf("admin can modify any row")
	}
	if CanModify(nil, 7) {
		t.Fatalf("nil claims cannot modify")
	}
}
