package quiz

// Scores holds the accumulated points per archetype, including the sensible
// trait key. Missing keys read as zero.
type Scores map[Archetype]int

// ScoreAnswers folds the answers to the diagnostic questions into per-archetype
// totals. Unanswered questions and unknown option ids contribute nothing; that
// is a deliberate fail-soft policy, not a validation gate.
func ScoreAnswers(bank *Bank, answers Answers) Scores {
	scores := Scores{
		ArchetypeSeca:     0,
		ArchetypeGrasa:    0,
		ArchetypeMixta:    0,
		ArchetypeNormal:   0,
		ArchetypeSensible: 0,
	}

	for id := 1; id <= DiagnosticQuestionCount; id++ {
		question := bank.Question(id)
		if question == nil {
			continue
		}
		sel, ok := answers[id]
		if !ok || sel.EmptyFor(question.Type) {
			continue
		}
		option := question.Option(sel.Option)
		if option == nil {
			continue
		}
		for archetype, points := range option.Scores {
			scores[archetype] += points
		}
	}

	return scores
}
