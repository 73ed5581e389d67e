package quiz

import "strings"

type QuestionType string

const (
	TypeQCM  QuestionType = "qcm"
	TypeOpen QuestionType = "open"
)

type Question struct {
	ID       string       `json:"id" yaml:"id"`
	Question string       `json:"question" yaml:"question"`
	Type     QuestionType `json:"type" yaml:"type"`
	Choices  []string     `json:"choices,omitempty" yaml:"choices,omitempty"`
	Answer   string       `json:"answer" yaml:"answer"`

	UserAnswer string `json:"user_answer,omitempty" yaml:"-"`
	IsCorrect  bool   `json:"is_correct,omitempty" yaml:"-"`

	answered bool
}

// Answered reports whether a user answer has been recorded for the question.
func (q Question) Answered() bool {
	return q.answered
}

type AnswerRecord struct {
	QuestionID string `json:"question_id"`
	UserAnswer string `json:"user_answer"`
	IsCorrect  bool   `json:"is_correct"`
}

// normalizeAnswer is the comparison form for answers: leading and trailing
// whitespace stripped, lower case.
func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
