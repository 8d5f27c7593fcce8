package response_models

import "time"

// AnalysisResponse is one saved diagnosis in a user's history.
type AnalysisResponse struct {
	ID                string    `json:"id"`
	SkinType          string    `json:"skin_type"`
	IsSensible        bool      `json:"is_sensible"`
	Concerns          []string  `json:"concerns"`
	PreferredTexture  string    `json:"preferred_texture"`
	AgeRange          string    `json:"age_range"`
	RoutineComplexity string    `json:"routine_complexity"`
	SavedAt           time.Time `json:"saved_at"`
}
