package quiz

import "testing"

func TestScoreAnswers_Empty(t *testing.T) {
	scores := ScoreAnswers(DefaultBank(), Answers{})
	for _, a := range PrimaryArchetypes {
		if scores[a] != 0 {
			t.Errorf("score[%s] = %d, want 0", a, scores[a])
		}
	}
	if scores[ArchetypeSensible] != 0 {
		t.Errorf("score[sensible] = %d, want 0", scores[ArchetypeSensible])
	}
}

func TestScoreAnswers_Accumulates(t *testing.T) {
	answers := Answers{
		1: SingleSelection("1a"), // seca 3
		2: SingleSelection("2a"), // seca 3
		3: SingleSelection("3b"), // grasa 3
	}
	scores := ScoreAnswers(DefaultBank(), answers)
	if scores[ArchetypeSeca] != 6 {
		t.Errorf("seca = %d, want 6", scores[ArchetypeSeca])
	}
	if scores[ArchetypeGrasa] != 3 {
		t.Errorf("grasa = %d, want 3", scores[ArchetypeGrasa])
	}
	if scores[ArchetypeMixta] != 0 {
		t.Errorf("mixta = %d, want 0", scores[ArchetypeMixta])
	}
}

func TestScoreAnswers_UnknownOptionIgnored(t *testing.T) {
	answers := Answers{
		1: SingleSelection("zz"), // stale UI state, not in the bank
		2: SingleSelection("2d"), // normal 3
	}
	scores := ScoreAnswers(DefaultBank(), answers)
	if scores[ArchetypeNormal] != 3 {
		t.Errorf("normal = %d, want 3", scores[ArchetypeNormal])
	}
	total := scores[ArchetypeSeca] + scores[ArchetypeGrasa] + scores[ArchetypeMixta]
	if total != 0 {
		t.Errorf("unknown option contributed %d points", total)
	}
}

func TestScoreAnswers_TraitQuestionsDoNotScore(t *testing.T) {
	answers := Answers{
		7:  MultiSelection("7a", "7b"),
		8:  SingleSelection("8a"),
		9:  SingleSelection("9b"),
		10: SingleSelection("10c"),
	}
	scores := ScoreAnswers(DefaultBank(), answers)
	for a, points := range scores {
		if points != 0 {
			t.Errorf("score[%s] = %d from trait questions, want 0", a, points)
		}
	}
}
