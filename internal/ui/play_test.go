package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/MedAliAdlouni/mcq-generator/internal/client"
	"github.com/MedAliAdlouni/mcq-generator/internal/quiz"
)

type fakeSaveClient struct {
	calls []client.SaveRequest
	resp  client.SaveResponse
	err   error
}

func (f *fakeSaveClient) SaveResults(_ context.Context, req client.SaveRequest) (client.SaveResponse, error) {
	f.calls = append(f.calls, req)
	return f.resp, f.err
}

func newPlayModel(t *testing.T, questions []quiz.Question) (PlayModel, *fakeSaveClient) {
	t.Helper()

	session, err := quiz.NewSession("doc-1", questions)
	require.NoError(t, err)
	api := &fakeSaveClient{resp: client.SaveResponse{QuizSessionID: "sess-1"}}
	return NewPlay(session, api, nil), api
}

func twoQCMQuestions() []quiz.Question {
	return []quiz.Question{
		{ID: "q1", Question: "Capital of France?", Type: quiz.TypeQCM, Choices: []string{"Paris", "Lyon"}, Answer: "Paris"},
		{ID: "q2", Question: "Capital of Italy?", Type: quiz.TypeQCM, Choices: []string{"Rome", "Milan"}, Answer: "Rome"},
	}
}

func press(t *testing.T, m tea.Model, keys ...tea.KeyMsg) (tea.Model, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, key := range keys {
		m, cmd = m.Update(key)
	}
	return m, cmd
}

func enter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func down() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyDown} }

func runes(s string) []tea.KeyMsg {
	msgs := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func TestPlay_QCMRun_SavesOnce(t *testing.T) {
	model, api := newPlayModel(t, twoQCMQuestions())

	// First question: select "Paris" (cursor already on it).
	m, cmd := press(t, model, enter())
	require.Nil(t, cmd)
	require.Contains(t, m.View(), "Correct answer!")

	m, cmd = press(t, m, enter())
	require.Nil(t, cmd)
	require.Contains(t, m.View(), "Question 2 / 2")
	require.Contains(t, m.View(), "Score: 1")

	// Second question: move down to "Milan", which is wrong.
	m, cmd = press(t, m, down(), enter())
	require.Nil(t, cmd)
	require.Contains(t, m.View(), "Wrong answer.")
	require.Contains(t, m.View(), "Rome")

	// Advancing past the last question completes and fires the save command.
	m, cmd = press(t, m, enter())
	require.NotNil(t, cmd)
	require.Contains(t, m.View(), "Quiz Completed")
	require.Contains(t, m.View(), "Final score: 1/2")

	msg := cmd()
	require.Len(t, api.calls, 1)
	req := api.calls[0]
	require.NotNil(t, req.DocumentID)
	require.Equal(t, "doc-1", *req.DocumentID)
	require.Equal(t, 1, req.Score)
	require.Equal(t, []quiz.AnswerRecord{
		{QuestionID: "q1", UserAnswer: "Paris", IsCorrect: true},
		{QuestionID: "q2", UserAnswer: "Milan", IsCorrect: false},
	}, req.Answers)

	// The save outcome never changes the completion screen.
	before := m.View()
	m, cmd = m.Update(msg)
	require.Nil(t, cmd)
	require.Equal(t, before, m.View())

	// Enter on the completion screen leaves, it does not save again.
	_, cmd = press(t, m, enter())
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
	require.Len(t, api.calls, 1)
}

func TestPlay_SaveFailure_KeepsCompletionScreen(t *testing.T) {
	model, api := newPlayModel(t, twoQCMQuestions()[:1])
	api.err = errors.New("connection refused")

	m, cmd := press(t, model, enter(), enter())
	require.NotNil(t, cmd)

	before := m.View()
	m, _ = m.Update(cmd())
	require.Equal(t, before, m.View())
	require.Contains(t, m.View(), "Final score: 1/1")
	require.Len(t, api.calls, 1)
}

func TestPlay_OpenQuestion(t *testing.T) {
	model, _ := newPlayModel(t, []quiz.Question{
		{ID: "q1", Question: "Name the capital of Japan.", Type: quiz.TypeOpen, Answer: "Tokyo"},
	})

	require.Contains(t, model.View(), "press enter to submit")

	m, _ := press(t, model, runes("  tokyo")...)
	m, cmd := press(t, m, enter())
	require.Nil(t, cmd)
	require.Contains(t, m.View(), "Correct answer!")
	require.Contains(t, m.View(), "Score: 1")
}

func TestPlay_OpenQuestion_EmptyAnswerIsWrong(t *testing.T) {
	model, api := newPlayModel(t, []quiz.Question{
		{ID: "q1", Question: "Name the capital of Japan.", Type: quiz.TypeOpen, Answer: "Tokyo"},
	})

	m, _ := press(t, model, enter())
	require.Contains(t, m.View(), "Wrong answer.")

	_, cmd := press(t, m, enter())
	require.NotNil(t, cmd)
	cmd()
	require.Equal(t, []quiz.AnswerRecord{{QuestionID: "q1", UserAnswer: "", IsCorrect: false}}, api.calls[0].Answers)
}

func TestPlay_DuplicateAnswerIgnored(t *testing.T) {
	model, _ := newPlayModel(t, twoQCMQuestions())

	// Answer wrong on purpose, then try to "fix" it with another choice.
	m, _ := press(t, model, down(), enter())
	require.Contains(t, m.View(), "Wrong answer.")
	require.Contains(t, m.View(), "Score: 0")

	snapshot := m.View()
	m, _ = press(t, m, down())
	require.Equal(t, snapshot, m.View())
}
