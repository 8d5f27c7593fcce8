package db_models

import "github.com/lib/pq"

// SkinAnalysis is a saved quiz result. The row mirrors the frozen result
// as-is; saving never alters the diagnosis already shown.
type SkinAnalysis struct {
	BaseModel
	UserID            string `gorm:"index"`
	SkinType          string
	IsSensible        bool
	Concerns          pq.StringArray `gorm:"type:text[]"`
	PreferredTexture  string
	AgeRange          string
	RoutineComplexity string
}
