package constants

// NATS subjects
const (
	SubjectPurchaseRecorded = "purchases.recorded"
	SubjectBadgeAwarded     = "badges.awarded"
)
