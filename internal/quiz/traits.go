package quiz

// Traits are the descriptive fields projected from the non-scoring questions.
type Traits struct {
	Concerns          []string
	PreferredTexture  string
	AgeRange          string
	RoutineComplexity string
}

// ExtractTraits projects the four trait fields from the answers. Unanswered
// questions and unrecognized option ids degrade to defaults ("any" for
// texture/complexity, empty for age range) instead of failing; the wizard's
// completion gate is the only enforcement point.
func ExtractTraits(bank *Bank, answers Answers) Traits {
	return Traits{
		Concerns:          extractConcerns(bank, answers),
		PreferredTexture:  resolveValue(bank, answers, TextureQuestionID, "any"),
		AgeRange:          resolveValue(bank, answers, AgeRangeQuestionID, ""),
		RoutineComplexity: resolveValue(bank, answers, ComplexityQuestionID, "any"),
	}
}

// extractConcerns maps the multi-select concern ids to their value tags in
// selection order. Ids with no matching option or no value are silently
// dropped so empty tags can never appear.
func extractConcerns(bank *Bank, answers Answers) []string {
	question := bank.Question(ConcernsQuestionID)
	if question == nil {
		return []string{}
	}
	sel := answers[ConcernsQuestionID]

	concerns := make([]string, 0, len(sel.Options))
	for _, optionID := range sel.Options {
		option := question.Option(optionID)
		if option == nil || option.Value == "" {
			continue
		}
		concerns = append(concerns, option.Value)
	}
	return concerns
}

func resolveValue(bank *Bank, answers Answers, questionID int, fallback string) string {
	question := bank.Question(questionID)
	if question == nil {
		return fallback
	}
	sel, ok := answers[questionID]
	if !ok || sel.Option == "" {
		return fallback
	}
	option := question.Option(sel.Option)
	if option == nil || option.Value == "" {
		return fallback
	}
	return option.Value
}
