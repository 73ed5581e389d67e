package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/MedAliAdlouni/mcq-generator/internal/client"
	"github.com/MedAliAdlouni/mcq-generator/internal/quiz"
)

const saveTimeout = 10 * time.Second

// SaveClient persists a completed session's results.
type SaveClient interface {
	SaveResults(ctx context.Context, req client.SaveRequest) (client.SaveResponse, error)
}

// saveDoneMsg reports the outcome of the single save attempt. It only feeds
// the log; the completion screen stays as it is.
type saveDoneMsg struct {
	resp client.SaveResponse
	err  error
}

// PlayModel drives one quiz session in the terminal, one question at a time.
type PlayModel struct {
	session *quiz.Session
	api     SaveClient
	log     *zap.Logger

	cursor int
	input  textinput.Model

	saveStarted bool
}

func NewPlay(session *quiz.Session, api SaveClient, log *zap.Logger) PlayModel {
	if log == nil {
		log = zap.NewNop()
	}

	input := textinput.New()
	input.Placeholder = "Your answer..."
	input.CharLimit = 200

	m := PlayModel{
		session: session,
		api:     api,
		log:     log,
		input:   input,
	}
	if session.Snapshot().Question.Type == quiz.TypeOpen {
		m.input.Focus()
	}
	return m
}

func (m PlayModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case saveDoneMsg:
		if typed.err != nil {
			m.log.Error("saving results failed", zap.Error(typed.err))
		} else {
			m.log.Info("results saved",
				zap.String("quiz_session_id", typed.resp.QuizSessionID),
				zap.Int("score", typed.resp.Score),
			)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
		return m, tea.Quit
	}

	snap := m.session.Snapshot()

	switch snap.State {
	case quiz.StateCompleted:
		switch msg.String() {
		case "enter", "q":
			return m, tea.Quit
		}
		return m, nil

	case quiz.StateAnswered:
		if msg.String() == "enter" {
			return m.advance()
		}
		return m, nil
	}

	// Presenting.
	if snap.Question.Type == quiz.TypeQCM {
		return m.handleChoiceKey(msg, snap.Question)
	}
	return m.handleOpenKey(msg)
}

func (m PlayModel) handleChoiceKey(msg tea.KeyMsg, q quiz.Question) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(q.Choices)-1 {
			m.cursor++
		}
	case "enter":
		m.submit(q.Choices[m.cursor])
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m PlayModel) handleOpenKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		m.submit(strings.TrimSpace(m.input.Value()))
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit records the answer. Duplicate submissions are a silent no-op.
func (m *PlayModel) submit(answer string) {
	if _, err := m.session.Submit(answer); err != nil {
		if !errors.Is(err, quiz.ErrAlreadyAnswered) {
			m.log.Warn("answer rejected", zap.Error(err))
		}
	}
}

func (m PlayModel) advance() (tea.Model, tea.Cmd) {
	state, err := m.session.Advance()
	if err != nil {
		return m, nil
	}

	m.cursor = 0
	m.input.Reset()
	m.input.Blur()

	if state == quiz.StateCompleted {
		// Exactly one save attempt per session, fired on completion.
		if m.saveStarted {
			return m, nil
		}
		m.saveStarted = true
		return m, m.saveCmd()
	}

	if m.session.Snapshot().Question.Type == quiz.TypeOpen {
		m.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m PlayModel) saveCmd() tea.Cmd {
	req := client.SaveRequest{
		Score:   m.session.Score(),
		Answers: m.session.AnswerRecords(),
	}
	if docID := m.session.DocumentID(); docID != "" {
		req.DocumentID = &docID
	}

	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		resp, err := api.SaveResults(ctx, req)
		return saveDoneMsg{resp: resp, err: err}
	}
}

func (m PlayModel) View() string {
	snap := m.session.Snapshot()

	if snap.State == quiz.StateCompleted {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Quiz Completed"),
			fmt.Sprintf("Final score: %d/%d", snap.Score, snap.Total),
			"",
			hintStyle.Render("press enter to leave"),
		) + "\n"
	}

	lines := []string{
		progressStyle.Render(fmt.Sprintf("Question %d / %d", snap.Index+1, snap.Total)),
		scoreStyle.Render(fmt.Sprintf("Score: %d", snap.Score)),
		"",
		questionStyle.Render(snap.Question.Question),
		"",
	}

	if snap.Question.Type == quiz.TypeQCM {
		lines = append(lines, m.choiceLines(snap)...)
	} else {
		lines = append(lines, m.openLines(snap)...)
	}

	if snap.State == quiz.StateAnswered {
		lines = append(lines, "", m.feedbackLine(snap), hintStyle.Render("press enter to continue"))
	}

	return strings.Join(lines, "\n") + "\n"
}

func (m PlayModel) choiceLines(snap quiz.Snapshot) []string {
	lines := make([]string, 0, len(snap.Question.Choices))
	for i, choice := range snap.Question.Choices {
		switch {
		case snap.State == quiz.StateAnswered && choice == snap.Question.UserAnswer && snap.Question.IsCorrect:
			lines = append(lines, correctStyle.Render("  "+choice))
		case snap.State == quiz.StateAnswered && choice == snap.Question.UserAnswer:
			lines = append(lines, wrongStyle.Render("  "+choice))
		case snap.State == quiz.StatePresenting && i == m.cursor:
			lines = append(lines, cursorStyle.Render("> ")+choice)
		default:
			lines = append(lines, choiceStyle.Render(choice))
		}
	}
	return lines
}

func (m PlayModel) openLines(snap quiz.Snapshot) []string {
	if snap.State == quiz.StateAnswered {
		answer := snap.Question.UserAnswer
		if answer == "" {
			answer = "(no answer)"
		}
		if snap.Question.IsCorrect {
			return []string{correctStyle.Render(answer)}
		}
		return []string{wrongStyle.Render(answer)}
	}
	return []string{m.input.View(), "", hintStyle.Render("press enter to submit")}
}

func (m PlayModel) feedbackLine(snap quiz.Snapshot) string {
	if snap.Question.IsCorrect {
		return correctStyle.Render("Correct answer!")
	}
	return wrongStyle.Render("Wrong answer.") + " Correct answer: " + questionStyle.Render(snap.Question.Answer)
}
