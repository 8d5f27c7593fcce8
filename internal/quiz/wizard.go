package quiz

import (
	"sync"
	"time"
)

type WizardState string

const (
	StateIntro    WizardState = "intro"
	StateQuestion WizardState = "question"
	StateResult   WizardState = "result"
)

// DefaultAutoAdvanceDelay is the debounce before a single-select answer
// advances the wizard on its own. A UX affordance, not a correctness
// requirement: an explicit Advance works the same.
const DefaultAutoAdvanceDelay = 400 * time.Millisecond

// Wizard walks a user through the question bank one step at a time, collects
// answers and runs the classification pipeline once the last question is
// answered. There is no error state: every transition is gated only on the
// presence of an answer, and the pipeline degrades gracefully on anything
// else.
//
// The mutex is there because the debounce timer re-enters the machine from
// its own goroutine; sessions are never shared beyond that.
type Wizard struct {
	mu sync.Mutex

	bank  *Bank
	delay time.Duration

	state   WizardState
	step    int // current 1-based question id while state == StateQuestion
	answers Answers
	result  *Result

	timer *time.Timer
	seq   uint64 // invalidates stale debounce fires; last answer wins
}

type WizardOption func(*Wizard)

// WithAutoAdvanceDelay overrides the single-select debounce. Zero or negative
// advances synchronously inside Answer.
func WithAutoAdvanceDelay(d time.Duration) WizardOption {
	return func(w *Wizard) { w.delay = d }
}

func NewWizard(bank *Bank, opts ...WizardOption) *Wizard {
	w := &Wizard{
		bank:    bank,
		delay:   DefaultAutoAdvanceDelay,
		state:   StateIntro,
		answers: Answers{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Begin moves Intro → Question(1). Ignored in any other state.
func (w *Wizard) Begin() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateIntro {
		return
	}
	w.state = StateQuestion
	w.step = 1
}

// Answer records a selection for the current question. Answers to other
// questions or outside the question states are dropped, matching the
// fail-soft policy of the rest of the engine. Single-select answers schedule
// the debounced auto-advance; answering again before it fires cancels the
// previous one (last answer wins, no queued re-entrancy).
func (w *Wizard) Answer(questionID int, sel Selection) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateQuestion || questionID != w.step {
		return
	}
	question := w.bank.Question(questionID)
	if question == nil {
		return
	}

	if question.Type == QuestionTypeMulti {
		w.answers[questionID] = Selection{Options: append([]string(nil), sel.Options...)}
		return
	}

	w.answers[questionID] = Selection{Option: sel.Option}
	w.cancelTimerLocked()
	if sel.Option == "" {
		return
	}
	if w.delay <= 0 {
		w.advanceLocked()
		return
	}
	w.seq++
	seq := w.seq
	step := w.step
	w.timer = time.AfterFunc(w.delay, func() {
		w.autoAdvance(seq, step)
	})
}

func (w *Wizard) autoAdvance(seq uint64, step int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	// Stale fire: the user answered again, navigated, or the session moved on.
	if seq != w.seq || w.state != StateQuestion || w.step != step {
		return
	}
	w.advanceLocked()
}

// Advance moves to the next question (or to the result from the last one)
// when the current question has a non-empty answer. Returns whether the
// transition happened.
func (w *Wizard) Advance() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateQuestion {
		return false
	}
	w.cancelTimerLocked()
	return w.advanceLocked()
}

func (w *Wizard) advanceLocked() bool {
	question := w.bank.Question(w.step)
	if question == nil {
		return false
	}
	if w.answers[w.step].EmptyFor(question.Type) {
		return false
	}

	if w.step == w.bank.Size() {
		// Irreversible forward edge: the pipeline runs exactly once here and
		// the result is frozen until retake.
		result := Analyze(w.bank, w.answers.Clone())
		w.result = &result
		w.state = StateResult
		w.step = 0
		return true
	}

	w.step++
	return true
}

// Back steps to the previous question. Only offered from single-select steps
// past the first one; mid multi-select navigation stays forward-only.
func (w *Wizard) Back() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateQuestion || w.step <= 1 {
		return false
	}
	question := w.bank.Question(w.step)
	if question == nil || question.Type != QuestionTypeSingle {
		return false
	}
	w.cancelTimerLocked()
	w.step--
	return true
}

// Retake clears the whole session from the result screen: answers, result and
// position, with no partial carry-over.
func (w *Wizard) Retake() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateResult {
		return false
	}
	w.cancelTimerLocked()
	w.state = StateIntro
	w.step = 0
	w.answers = Answers{}
	w.result = nil
	return true
}

// Close stops the debounce timer and discards the in-progress answers. The
// wizard is not reusable afterwards.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cancelTimerLocked()
	w.answers = Answers{}
	w.result = nil
}

func (w *Wizard) cancelTimerLocked() {
	w.seq++
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

// Snapshot is a render-ready view of the session.
type Snapshot struct {
	State      WizardState
	Step       int
	TotalSteps int
	Question   *Question
	Selected   Selection
	CanAdvance bool
	CanBack    bool
	Result     *Result
}

// Snapshot returns the current state without exposing the wizard's internals.
// The result pointer refers to the frozen result; the selection is copied.
func (w *Wizard) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	snap := Snapshot{
		State:      w.state,
		Step:       w.step,
		TotalSteps: w.bank.Size(),
		Result:     w.result,
	}
	if w.state != StateQuestion {
		return snap
	}

	question := w.bank.Question(w.step)
	snap.Question = question
	sel := w.answers[w.step]
	if sel.Options != nil {
		sel.Options = append([]string(nil), sel.Options...)
	}
	snap.Selected = sel
	if question != nil {
		snap.CanAdvance = !sel.EmptyFor(question.Type)
		snap.CanBack = question.Type == QuestionTypeSingle && w.step > 1
	}
	return snap
}
