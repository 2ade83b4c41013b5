package services

import "github.com/applytrack/server/internal/repositories/sqlite"

// Guest preview payloads served to unauthenticated visitors on read-only
// endpoints instead of an auth error. Values are fixed sample data.

type GuestApplication struct {
	AppID       uint   `json:"appID"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Status      string `json:"status"`
	AppliedDate string `json:"appliedDate"`
	Priority    int    `json:"priority"`
}

func GuestApplications() []GuestApplication {
	return []GuestApplication{
		{
			AppID:       0,
			Company:     "Sample Company",
			Position:    "Sample Position",
			Status:      "Interview",
			AppliedDate: "2025-01-12",
			Priority:    2,
		},
	}
}

func GuestSummary() DashboardSummary {
	return DashboardSummary{
		TotalApplications:   24,
		InterviewsScheduled: 5,
		OffersReceived:      2,
		Rejections:          10,
		Scope:               "guest",
	}
}

func GuestStatusBreakdown() []sqlite.StatusCount {
	return []sqlite.StatusCount{
		{Status: "Applied", Count: 12},
		{Status: "Interview", Count: 5},
		{Status: "Offer", Count: 2},
		{Status: "Rejected", Count: 10},
	}
}

func GuestTimeseries() []sqlite.DateCount {
	return []sqlite.DateCount{
		{Date: "2025-01-01", Count: 2},
		{Date: "2025-01-02", Count: 1},
		{Date: "2025-01-05", Count: 3},
		{Date: "2025-01-12", Count: 2},
		{Date: "2025-01-20", Count: 1},
	}
}
