package execute

// executeRequest represents a command submitted to the service
type executeRequest struct {
	Intent *string `json:"intent" example:"Secure my laptop and learn about the DHS shutdown"` // Free-text intent
}

// executeResponse represents the report produced for an intent
type executeResponse struct {
	Status             string `json:"status" example:"SOVEREIGN_ACTION_COMMENCED"`                                            // Constant status marker
	IntelligenceReport string `json:"intelligence_report" example:"STRATEGIC EXECUTION COMPLETE for 'deploy'."`               // Strategy text, prefixed by research findings when requested
	WorldContext       string `json:"world_context" example:"2026-02-19: Pakistan Tech & Economy Rising | Global Volatility"` // Constant context line
	SystemHealth       string `json:"system_health" example:"87% Optimal (live host telemetry)"`                              // Host utilisation score
}
