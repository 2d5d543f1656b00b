package models

// Recommendation is one ranked candidate in a recommendation response.
type Recommendation struct {
	UserID                  string   `json:"userId"`
	Score                   float64  `json:"score"`
	Reasons                 []string `json:"reasons"`
	CompatibilityPercentage float64  `json:"compatibilityPercentage"`
	DistanceKm              float64  `json:"distanceKm"`
	CommonInterests         []string `json:"commonInterests"`
	PredictedSuccessRate    float64  `json:"predictedSuccessRate"`
	RiskFactors             []string `json:"riskFactors"`
}

// Risk factor vocabulary
const (
	RiskLowVerification   = "low_verification"
	RiskLowActivity       = "low_recent_activity"
	RiskLowReputation     = "low_reputation"
	RiskIncompleteProfile = "incomplete_profile"
)

// CandidateFilters enumerates the recognized candidate-pool filters.
// Zero values mean "not set"; unknown filter keys are ignored at the edge.
type CandidateFilters struct {
	MinAge            int     `json:"minAge,omitempty"`
	MaxAge            int     `json:"maxAge,omitempty"`
	VerificationLevel string  `json:"verificationLevel,omitempty"`
	MaxDistanceKm     float64 `json:"maxDistanceKm,omitempty"`
}
