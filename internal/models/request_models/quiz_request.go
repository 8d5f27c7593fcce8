package request_models

// AnswerRequest records a selection for the current question. OptionID is
// read for single-select questions, OptionIDs (in selection order) for the
// multi-select one; the question's declared type decides which.
type AnswerRequest struct {
	QuestionID int      `json:"question_id"`
	OptionID   string   `json:"option_id,omitempty"`
	OptionIDs  []string `json:"option_ids,omitempty"`
}
