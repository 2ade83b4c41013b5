package sqlite

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/applytrack/server/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	u := models.User{Name: name, Email: name + "@example.com", PasswordHash: "x", Role: models.RoleRegular}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &u
}

func seedApp(t *testing.T, db *gorm.DB, userID uint, position, status string, priority int, appliedDate string) *models.Application {
	t.Helper()
	a := models.Application{
		UserID:      userID,
		Company:     "Acme",
		Position:    position,
		Status:      status,
		Priority:    priority,
		AppliedDate: appliedDate,
	}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("create application: %v", err)
	}
	return &a
}

func TestListScopesToOwner(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepo(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	seedApp(t, db, alice.UserID, "Engineer", models.StatusApplied, 1, "2025-01-01")
	seedApp(t, db, bob.UserID, "Analyst", models.StatusApplied, 1, "2025-01-02")

	items, total, err := repo.List(ctx, ListQuery{OwnerID: &alice.UserID, Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("total=%d len=%d, want 1/1", total, len(items))
	}
	if items[0].UserID != alice.UserID {
		t.Fatalf("leaked another user's row")
	}

	_, total, err = repo.List(ctx, ListQuery{Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("global list: %v", err)
	}
	if total != 2 {
		t.Fatalf("global total=%d, want 2", total)
	}
}

func TestListSortWhitelist(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepo(db)
	ctx := context.Background()

	u := seedUser(t, db, "carol")
	seedApp(t, db, u.UserID, "A", models.StatusApplied, 1, "2025-01-01")
	seedApp(t, db, u.UserID, "B", models.StatusApplied, 3, "2025-01-02")
	seedApp(t, db, u.UserID, "C", models.StatusApplied, 2, "2025-01-03")

	items, _, err := repo.List(ctx, ListQuery{Sort: "-priority", Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i := 1; i < len(items); i++ {
		if items[i].Priority > items[i-1].Priority {
			t.Fatalf("priority not non-increasing: %v then %v", items[i-1].Priority, items[i].Priority)
		}
	}

	// Unknown sort keys are dropped and the default kicks in.
	items, _, err = repo.List(ctx, ListQuery{Sort: "foo,bar", Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("list with bad sort: %v", err)
	}
	if items[0].AppliedDate != "2025-01-03" {
		t.Fatalf("expected appliedDate DESC fallback, got %s first", items[0].AppliedDate)
	}
}

func TestListPagination(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepo(db)
	ctx := context.Background()

	u := seedUser(t, db, "dave")
	for i := 1; i <= 25; i++ {
		seedApp(t, db, u.UserID, fmt.Sprintf("Role %02d", i), models.StatusApplied, 0, fmt.Sprintf("2025-01-%02d", (i%28)+1))
	}

	items, total, err := repo.List(ctx, ListQuery{Sort: "position", Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 25 {
		t.Fatalf("total=%d, want 25", total)
	}
	if len(items) != 10 {
		t.Fatalf("len=%d, want 10", len(items))
	}
	if items[0].Position != "Role 11" || items[9].Position != "Role 20" {
		t.Fatalf("wrong page window: %s .. %s", items[0].Position, items[9].Position)
	}
}

func TestListFilters(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepo(db)
	ctx := context.Background()

	u := seedUser(t, db, "erin")
	seedApp(t, db, u.UserID, "Backend Engineer", models.StatusInterview, 2, "2025-01-01")
	seedApp(t, db, u.UserID, "Designer", models.StatusApplied, 1, "2025-01-02")

	status := models.StatusInterview
	items, total, err := repo.List(ctx, ListQuery{Status: &status, Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || items[0].Status != models.StatusInterview {
		t.Fatalf("status filter failed: total=%d", total)
	}

	q := "Engineer"
	_, total, err = repo.List(ctx, ListQuery{Search: &q, Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 {
		t.Fatalf("search filter total=%d, want 1", total)
	}
}

func TestDeleteCascade(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepo(db)
	ctx := context.Background()

	u := seedUser(t, db, "frank")
	app := seedApp(t, db, u.UserID, "Engineer", models.StatusApplied, 0, "2025-01-01")

	hist := models.ApplicationHistory{AppID: app.AppID, StatusChange: models.StatusApplied, UpdateDate: "2025-01-01"}
	if err := repo.AppendHistory(ctx, &hist); err != nil {
		t.Fatalf("append history: %v", err)
	}
	rem := models.Reminder{UserID: u.UserID, AppID: &app.AppID, Message: "follow up", ReminderDate: "2025-01-05"}
	if err := db.Create(&rem).Error; err != nil {
		t.Fatalf("create reminder: %v", err)
	}

	if err := repo.DeleteCascade(ctx, app.AppID); err != nil {
		t.Fatalf("delete cascade: %v", err)
	}

	var histCount, remCount int64
	db.Model(&models.ApplicationHistory{}).Where("appID = ?", app.AppID).Count(&histCount)
	db.Model(&models.Reminder{}).Where("appID = ?", app.AppID).Count(&remCount)
	if histCount != 0 || remCount != 0 {
		t.Fatalf("cascade left rows: history=%d reminders=%d", histCount, remCount)
	}
	if _, err := repo.GetByID(ctx, app.AppID); err == nil {
		t.Fatalf("application should be gone")
	}
}

func TestStatusBreakdownAndTimeseries(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepo(db)
	ctx := context.Background()

	u := seedUser(t, db, "grace")
	seedApp(t, db, u.UserID, "A", models.StatusApplied, 0, "2025-01-01")
	seedApp(t, db, u.UserID, "B", models.StatusApplied, 0, "2025-01-01")
	seedApp(t, db, u.UserID, "C", models.StatusOffer, 0, "2025-01-02")

	rows, err := repo.StatusBreakdown(ctx, &u.UserID)
	if err != nil {
		t.Fatalf("breakdown: %v", err)
	}
	counts := map[string]int64{}
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	if counts[models.StatusApplied] != 2 || counts[models.StatusOffer] != 1 {
		t.Fatalf("unexpected breakdown: %v", counts)
	}

	ts, err := repo.Timeseries(ctx, &u.UserID, "2025-01-01", "2025-01-01")
	if err != nil {
		t.Fatalf("timeseries: %v", err)
	}
	if len(ts) != 1 || ts[0].Date != "2025-01-01" || ts[0].Count != 2 {
		t.Fatalf("unexpected timeseries: %v", ts)
	}
}
