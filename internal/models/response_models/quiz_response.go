package response_models

// StartResponse hands the client its session handle and the intro state.
type StartResponse struct {
	SessionID string       `json:"session_id"`
	Step      StepResponse `json:"step"`
}

// StepResponse renders the wizard's current state: the intro screen, one
// question, or the result marker once finalized.
type StepResponse struct {
	State           string        `json:"state"`
	Step            int           `json:"step,omitempty"`
	TotalSteps      int           `json:"total_steps"`
	Question        *QuestionView `json:"question,omitempty"`
	SelectedOption  string        `json:"selected_option,omitempty"`
	SelectedOptions []string      `json:"selected_options,omitempty"`
	CanAdvance      bool          `json:"can_advance"`
	CanBack         bool          `json:"can_back"`
}

type QuestionView struct {
	ID       int          `json:"id"`
	Question string       `json:"question"`
	Type     string       `json:"type"`
	Options  []OptionView `json:"options"`
}

type OptionView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ResultResponse is the finalized diagnosis plus its display copy and the
// recommendations fetched for the classified skin type. Recommendations may
// be empty when the product lookup fails; that is not a classification error.
type ResultResponse struct {
	SkinType          string            `json:"skin_type"`
	IsSensible        bool              `json:"is_sensible"`
	Concerns          []string          `json:"concerns"`
	PreferredTexture  string            `json:"preferred_texture"`
	AgeRange          string            `json:"age_range"`
	RoutineComplexity string            `json:"routine_complexity"`
	Content           SkinTypeContent   `json:"content"`
	Recommendations   []ProductResponse `json:"recommendations"`
}

type SkinTypeContent struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Tip          string   `json:"tip"`
	Advisory     string   `json:"advisory,omitempty"`
	RoutineSteps []string `json:"routine_steps"`
}

type ProductResponse struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Brand  string   `json:"brand"`
	Price  float64  `json:"price"`
	Images []string `json:"images"`
}
