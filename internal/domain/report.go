package domain

import "time"

const StatusActionCommenced = "SOVEREIGN_ACTION_COMMENCED"

// Report is the outcome of executing one intent.
type Report struct {
	ExecutionID        string
	Intent             Intent
	Status             string
	IntelligenceReport string
	WorldContext       string
	SystemHealth       string
	Researched         bool
	Secured            bool
	CompletedAt        time.Time
}
