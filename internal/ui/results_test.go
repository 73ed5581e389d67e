package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/MedAliAdlouni/mcq-generator/internal/client"
	"github.com/MedAliAdlouni/mcq-generator/internal/results"
)

type stubChart struct {
	label  string
	closed bool
}

func (c *stubChart) View() string {
	if c.closed {
		return ""
	}
	return c.label
}

func (c *stubChart) Close() { c.closed = true }

type stubRenderer struct{}

func (stubRenderer) Render(points []client.ResultPoint) results.Chart {
	return &stubChart{label: "chart:" + points[0].PlayedAt}
}

type stubFetcher struct {
	series map[string][]client.ResultPoint
}

func (f *stubFetcher) ResultsData(_ context.Context, documentID string) ([]client.ResultPoint, error) {
	return f.series[documentID], nil
}

func newResultsModel(t *testing.T, docs []string, series map[string][]client.ResultPoint) ResultsModel {
	t.Helper()

	ctrl := results.NewController(&stubFetcher{series: series}, stubRenderer{}, nil)
	return NewResults(ctrl, docs, nil)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestResults_InitialLoad(t *testing.T) {
	model := newResultsModel(t, []string{"doc-a"}, map[string][]client.ResultPoint{
		"doc-a": {{PlayedAt: "a1", Score: 7}},
	})

	cmd := model.Init()
	require.NotNil(t, cmd)

	m, fetchCmd := model.Update(cmd())
	require.NotNil(t, fetchCmd)
	require.Contains(t, m.View(), "Loading results...")

	m, _ = m.Update(fetchCmd())
	require.Contains(t, m.View(), "chart:a1")
}

func TestResults_EmptySeriesShowsEmptyState(t *testing.T) {
	model := newResultsModel(t, []string{"doc-a"}, map[string][]client.ResultPoint{})

	cmd := model.Init()
	m, fetchCmd := model.Update(cmd())
	m, _ = m.Update(fetchCmd())

	require.Contains(t, m.View(), "No results for this document yet.")
	require.NotContains(t, m.View(), "chart:")
}

func TestResults_SelectionChange(t *testing.T) {
	model := newResultsModel(t, []string{"doc-a", "doc-b"}, map[string][]client.ResultPoint{
		"doc-a": {{PlayedAt: "a1", Score: 7}},
		"doc-b": {{PlayedAt: "b1", Score: 3}},
	})

	cmd := model.Init()
	m, fetchCmd := model.Update(cmd())
	m, _ = m.Update(fetchCmd())
	require.Contains(t, m.View(), "chart:a1")

	m, fetchCmd = m.Update(key("right"))
	require.NotNil(t, fetchCmd)
	m, _ = m.Update(fetchCmd())
	require.Contains(t, m.View(), "doc-b")
	require.Contains(t, m.View(), "chart:b1")
}

func TestResults_SlowStaleResponseLoses(t *testing.T) {
	model := newResultsModel(t, []string{"doc-a", "doc-b"}, map[string][]client.ResultPoint{
		"doc-a": {{PlayedAt: "a1", Score: 7}},
		"doc-b": {{PlayedAt: "b1", Score: 3}},
	})

	cmd := model.Init()
	m, fetchA := model.Update(cmd())
	m, fetchB := m.Update(key("right"))
	require.NotNil(t, fetchA)
	require.NotNil(t, fetchB)

	// B's fetch resolves first; A's resolves late and must be discarded.
	msgB := fetchB()
	msgA := fetchA()
	m, _ = m.Update(msgB)
	m, _ = m.Update(msgA)

	view := m.View()
	require.Contains(t, view, "chart:b1")
	require.NotContains(t, view, "chart:a1")
	require.NotContains(t, view, "Loading")
}

func TestResults_NoDocuments(t *testing.T) {
	model := newResultsModel(t, nil, nil)

	require.Nil(t, model.Init())
	require.Contains(t, model.View(), "No documents")

	m, cmd := model.Update(key("right"))
	require.Nil(t, cmd)
	require.Contains(t, m.View(), "No documents")
}
