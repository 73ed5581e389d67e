package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/MedAliAdlouni/mcq-generator/internal/results"
)

const fetchTimeout = 10 * time.Second

// seriesAppliedMsg reports that the fetch issued under seq has completed and
// been offered to the controller. Stale ones were already discarded there.
type seriesAppliedMsg struct {
	seq int64
}

// ResultsModel is the results page: a document selector driving the chart
// controller. Every selection change supersedes the previous one.
type ResultsModel struct {
	ctrl *results.Controller
	docs []string
	log  *zap.Logger

	selected int
	seq      int64
	loading  bool
}

func NewResults(ctrl *results.Controller, docs []string, log *zap.Logger) ResultsModel {
	if log == nil {
		log = zap.NewNop()
	}
	return ResultsModel{ctrl: ctrl, docs: docs, log: log}
}

// initialLoadMsg triggers the fetch for the document selected at startup.
type initialLoadMsg struct{}

func (m ResultsModel) Init() tea.Cmd {
	if len(m.docs) == 0 {
		return nil
	}
	return func() tea.Msg { return initialLoadMsg{} }
}

func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case initialLoadMsg:
		return m.activate()
	case seriesAppliedMsg:
		if typed.seq == m.seq {
			m.loading = false
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m ResultsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		return m, tea.Quit
	case "left", "h":
		return m.selectDoc(m.selected - 1)
	case "right", "l", "tab":
		return m.selectDoc(m.selected + 1)
	case "r":
		return m.activate()
	}
	return m, nil
}

func (m ResultsModel) selectDoc(i int) (tea.Model, tea.Cmd) {
	if len(m.docs) == 0 {
		return m, nil
	}
	i = (i%len(m.docs) + len(m.docs)) % len(m.docs)
	if i == m.selected {
		return m, nil
	}
	m.selected = i
	return m.activate()
}

// activate begins a new fetch for the current selection. The sequence from
// Begin travels with the command so the controller can drop stale results.
func (m ResultsModel) activate() (tea.Model, tea.Cmd) {
	if len(m.docs) == 0 {
		return m, nil
	}

	doc := m.docs[m.selected]
	seq := m.ctrl.Begin(doc)
	m.seq = seq
	m.loading = true
	m.log.Debug("results selection",
		zap.String("document_id", doc),
		zap.Int64("seq", seq),
	)

	ctrl := m.ctrl
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		ctrl.Fetch(ctx, seq, doc)
		return seriesAppliedMsg{seq: seq}
	}
}

func (m ResultsModel) View() string {
	if len(m.docs) == 0 {
		return emptyStyle.Render("No documents to show results for.") + "\n"
	}

	v := m.ctrl.Snapshot()

	lines := []string{
		titleStyle.Render("Play results"),
		fmt.Sprintf("Document: %s %s",
			cursorStyle.Render("< "+m.docs[m.selected]+" >"),
			progressStyle.Render(fmt.Sprintf("(%d/%d)", m.selected+1, len(m.docs)))),
		"",
	}

	switch {
	case m.loading:
		lines = append(lines, progressStyle.Render("Loading results..."))
	case v.Empty:
		lines = append(lines, emptyStyle.Render("No results for this document yet."))
	case v.Chart != "":
		lines = append(lines, v.Chart)
	}

	lines = append(lines, "", hintStyle.Render("left/right: switch document, r: refresh, q: quit"))
	return strings.Join(lines, "\n") + "\n"
}
