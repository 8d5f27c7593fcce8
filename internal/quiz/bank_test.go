package quiz

import "testing"

func TestDefaultBank_IdsDenseAndOrdered(t *testing.T) {
	bank := DefaultBank()
	if bank.Size() != 10 {
		t.Fatalf("bank size = %d, want 10", bank.Size())
	}
	for i := 1; i <= bank.Size(); i++ {
		q := bank.Question(i)
		if q == nil {
			t.Fatalf("question %d missing", i)
		}
		if q.ID != i {
			t.Errorf("question at position %d has id %d", i, q.ID)
		}
	}
	if bank.Question(0) != nil || bank.Question(bank.Size()+1) != nil {
		t.Error("out-of-range lookup returned a question")
	}
}

func TestDefaultBank_OptionIdsUniquePerQuestion(t *testing.T) {
	bank := DefaultBank()
	for i := 1; i <= bank.Size(); i++ {
		q := bank.Question(i)
		seen := map[string]bool{}
		for _, opt := range q.Options {
			if opt.ID == "" {
				t.Errorf("question %d has an option with empty id", i)
			}
			if seen[opt.ID] {
				t.Errorf("question %d repeats option id %s", i, opt.ID)
			}
			seen[opt.ID] = true
		}
	}
}

func TestDefaultBank_DiagnosticVsTraitOptions(t *testing.T) {
	bank := DefaultBank()
	for i := 1; i <= DiagnosticQuestionCount; i++ {
		for _, opt := range bank.Question(i).Options {
			if len(opt.Scores) == 0 {
				t.Errorf("diagnostic question %d option %s has no scores", i, opt.ID)
			}
			if opt.Value != "" {
				t.Errorf("diagnostic question %d option %s carries a value", i, opt.ID)
			}
		}
	}
	for i := DiagnosticQuestionCount + 1; i <= bank.Size(); i++ {
		for _, opt := range bank.Question(i).Options {
			if opt.Value == "" {
				t.Errorf("trait question %d option %s has no value", i, opt.ID)
			}
			if len(opt.Scores) != 0 {
				t.Errorf("trait question %d option %s carries scores", i, opt.ID)
			}
		}
	}
}

func TestDefaultBank_OnlyConcernsIsMulti(t *testing.T) {
	bank := DefaultBank()
	for i := 1; i <= bank.Size(); i++ {
		q := bank.Question(i)
		if i == ConcernsQuestionID {
			if q.Type != QuestionTypeMulti {
				t.Errorf("question %d type = %s, want multi", i, q.Type)
			}
			continue
		}
		if q.Type != QuestionTypeSingle {
			t.Errorf("question %d type = %s, want single", i, q.Type)
		}
	}
}
