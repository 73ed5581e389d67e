package quiz

import "errors"

var (
	ErrAlreadyAnswered = errors.New("already answered")
	ErrNotAnswered     = errors.New("not answered")
	ErrSessionDone     = errors.New("session done")
	ErrNoQuestions     = errors.New("no questions")
)
