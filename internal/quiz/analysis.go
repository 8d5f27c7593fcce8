package quiz

// Result is the final skin diagnosis. Created once when the last question is
// answered, immutable thereafter, replaced wholesale on retake.
type Result struct {
	SkinType          string   `json:"skin_type"`
	IsSensible        bool     `json:"is_sensible"`
	Concerns          []string `json:"concerns"`
	PreferredTexture  string   `json:"preferred_texture"`
	AgeRange          string   `json:"age_range"`
	RoutineComplexity string   `json:"routine_complexity"`
}

// Analyze runs the full classification pipeline over the answer set:
// scoring, dominance classification and trait extraction. It is synchronous,
// deterministic and re-entrant; the same answers always produce the same
// result.
func Analyze(bank *Bank, answers Answers) Result {
	scores := ScoreAnswers(bank, answers)
	dominant, sensible := Classify(scores)
	traits := ExtractTraits(bank, answers)

	return Result{
		SkinType:          SkinTypeLabel(dominant),
		IsSensible:        sensible,
		Concerns:          traits.Concerns,
		PreferredTexture:  traits.PreferredTexture,
		AgeRange:          traits.AgeRange,
		RoutineComplexity: traits.RoutineComplexity,
	}
}
