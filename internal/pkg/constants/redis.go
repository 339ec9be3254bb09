package constants

import "time"

// Redis key formats
const (
	// KeyUserBadges holds the user's earned badge set: badges:<user_id>
	KeyUserBadges = "badges:%s"
	// KeyDashboardSummary caches a dashboard summary: dashboard:<user_id>:<month|all>
	KeyDashboardSummary = "dashboard:%s:%s"
	// KeyDashboardPattern matches every cached summary for a user
	KeyDashboardPattern = "dashboard:%s:*"
)

// DashboardCacheTTL bounds staleness of cached dashboard summaries
const DashboardCacheTTL = 5 * time.Minute
