package quiz

import (
	"sync"

	"github.com/google/uuid"
)

type State string

const (
	StatePresenting State = "presenting"
	StateAnswered   State = "answered"
	StateCompleted  State = "completed"
)

// Session walks an ordered question list one question at a time. Exactly one
// scored answer is accepted per question; the first answer wins.
type Session struct {
	ID string

	documentID string
	questions  []Question

	current  int
	score    int
	answered bool

	mu sync.Mutex
}

type Outcome struct {
	Correct       bool
	CorrectAnswer string
	Score         int
}

type Snapshot struct {
	State    State
	Index    int
	Total    int
	Score    int
	Question Question
}

// NewSession validates the question list and starts at the first question.
func NewSession(documentID string, questions []Question) (*Session, error) {
	if err := Validate(questions); err != nil {
		return nil, err
	}

	qs := make([]Question, len(questions))
	copy(qs, questions)

	return &Session{
		ID:         uuid.NewString(),
		documentID: documentID,
		questions:  qs,
	}, nil
}

func (s *Session) DocumentID() string { return s.documentID }

func (s *Session) Submit(answer string) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current >= len(s.questions) {
		return Outcome{}, ErrSessionDone
	}
	if s.answered {
		return Outcome{}, ErrAlreadyAnswered
	}

	q := &s.questions[s.current]
	q.UserAnswer = answer
	q.IsCorrect = normalizeAnswer(answer) == normalizeAnswer(q.Answer)
	q.answered = true
	s.answered = true

	if q.IsCorrect {
		s.score++
	}

	return Outcome{
		Correct:       q.IsCorrect,
		CorrectAnswer: q.Answer,
		Score:         s.score,
	}, nil
}

// Advance moves to the next question, or completes the session after the
// last one. The current question must have been answered first.
func (s *Session) Advance() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current >= len(s.questions) {
		return StateCompleted, ErrSessionDone
	}
	if !s.answered {
		return StatePresenting, ErrNotAnswered
	}

	s.current++
	s.answered = false

	if s.current == len(s.questions) {
		return StateCompleted, nil
	}
	return StatePresenting, nil
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State: StatePresenting,
		Index: s.current,
		Total: len(s.questions),
		Score: s.score,
	}

	switch {
	case s.current >= len(s.questions):
		snap.State = StateCompleted
	case s.answered:
		snap.State = StateAnswered
		snap.Question = s.questions[s.current]
	default:
		snap.Question = s.questions[s.current]
	}

	return snap
}

func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

func (s *Session) Total() int {
	return len(s.questions)
}

// AnswerRecords reduces every question to its save payload entry, in original
// question order. Unanswered questions keep the zero defaults.
func (s *Session) AnswerRecords() []AnswerRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]AnswerRecord, 0, len(s.questions))
	for _, q := range s.questions {
		records = append(records, AnswerRecord{
			QuestionID: q.ID,
			UserAnswer: q.UserAnswer,
			IsCorrect:  q.IsCorrect,
		})
	}
	return records
}
