package mem

import (
	"testing"
	"time"

	"dermia/internal/quiz"
)

func newWizard() *quiz.Wizard {
	return quiz.NewWizard(quiz.DefaultBank(), quiz.WithAutoAdvanceDelay(time.Hour))
}

func TestQuizSessions_PutGet(t *testing.T) {
	store := NewQuizSessions()
	w := newWizard()
	store.Put("s1", w, time.Minute)

	if got := store.Get("s1"); got != w {
		t.Errorf("Get returned %p, want %p", got, w)
	}
	if got := store.Get("unknown"); got != nil {
		t.Errorf("Get for unknown id returned %p, want nil", got)
	}
}

func TestQuizSessions_Expiry(t *testing.T) {
	store := NewQuizSessions()
	store.Put("s1", newWizard(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if got := store.Get("s1"); got != nil {
		t.Error("expired session still retrievable")
	}
}

func TestQuizSessions_GetSlidesExpiry(t *testing.T) {
	store := NewQuizSessions()
	store.Put("s1", newWizard(), 60*time.Millisecond)

	for i := 0; i < 4; i++ {
		time.Sleep(30 * time.Millisecond)
		if store.Get("s1") == nil {
			t.Fatalf("session expired despite access on iteration %d", i)
		}
	}
}

func TestQuizSessions_Delete(t *testing.T) {
	store := NewQuizSessions()
	store.Put("s1", newWizard(), time.Minute)
	store.Delete("s1")
	if store.Get("s1") != nil {
		t.Error("deleted session still retrievable")
	}
	store.Delete("s1") // no-op
}

func TestQuizSessions_Sweep(t *testing.T) {
	store := NewQuizSessions()
	store.Put("old", newWizard(), time.Nanosecond)
	store.Put("live", newWizard(), time.Minute)
	time.Sleep(5 * time.Millisecond)

	if removed := store.Sweep(); removed != 1 {
		t.Errorf("sweep removed %d sessions, want 1", removed)
	}
	if store.Get("live") == nil {
		t.Error("sweep removed a live session")
	}
}
