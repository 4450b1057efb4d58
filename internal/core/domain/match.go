package domain

const (
	MinMatchScore = 0.7
	MaxMatchScore = 1.0
)

// TherapistMatch pairs a therapist with a recommendation score. It is
// recomputed on every request and never stored.
type TherapistMatch struct {
	TherapistID string  `json:"therapistId"`
	MatchScore  float64 `json:"matchScore"`
	MatchReason string  `json:"matchReason"`
}
