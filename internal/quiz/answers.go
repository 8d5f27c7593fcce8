package quiz

// Selection is a recorded answer to one question. For single-select questions
// only Option is meaningful; for multi-select questions only Options is, in
// selection order. The question's declared type decides which side is read,
// so a stale field on the other side can never leak into scoring.
type Selection struct {
	Option  string
	Options []string
}

// SingleSelection wraps one option id.
func SingleSelection(optionID string) Selection {
	return Selection{Option: optionID}
}

// MultiSelection wraps option ids in selection order.
func MultiSelection(optionIDs ...string) Selection {
	return Selection{Options: optionIDs}
}

// EmptyFor reports whether the selection counts as "not answered" for a
// question of the given type. This is the wizard's only advance gate.
func (s Selection) EmptyFor(t QuestionType) bool {
	if t == QuestionTypeMulti {
		return len(s.Options) == 0
	}
	return s.Option == ""
}

// Answers maps 1-based question ids to the latest recorded selection. Keys
// are sparse until answered; a key may be rewritten any number of times
// before the wizard finalizes.
type Answers map[int]Selection

// Clone returns a deep copy so a frozen result can never observe later edits.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for id, sel := range a {
		cp := sel
		if sel.Options != nil {
			cp.Options = append([]string(nil), sel.Options...)
		}
		out[id] = cp
	}
	return out
}
