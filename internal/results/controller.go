package results

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/MedAliAdlouni/mcq-generator/internal/client"
)

// Fetcher provides the play-history series for a document.
type Fetcher interface {
	ResultsData(ctx context.Context, documentID string) ([]client.ResultPoint, error)
}

// Chart is one rendered chart instance. Close releases it; a closed chart
// renders nothing.
type Chart interface {
	View() string
	Close()
}

type Renderer interface {
	Render(points []client.ResultPoint) Chart
}

// Controller owns at most one live chart bound to the currently selected
// document. Re-activating replaces prior state, never stacks it: the old
// chart is closed before a new one is installed. Fetches are tagged with a
// sequence so a slow, stale response can never clobber a newer selection.
type Controller struct {
	fetch  Fetcher
	render Renderer
	log    *zap.Logger

	mu         sync.Mutex
	seq        int64
	documentID string
	chart      Chart
	empty      bool
}

// View is a read-only snapshot of the controller for rendering.
type View struct {
	DocumentID string
	Empty      bool
	Chart      string
}

func NewController(fetch Fetcher, render Renderer, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{fetch: fetch, render: render, log: log}
}

// Begin records documentID as the current selection and returns the sequence
// the matching fetch must present to Apply.
func (c *Controller) Begin(documentID string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.documentID = documentID
	return c.seq
}

// Apply installs a fetch completion. A completion whose sequence is not the
// latest is discarded; the reported bool says whether it was applied. An
// error or an empty series tears the current chart down and shows the
// empty state.
func (c *Controller) Apply(seq int64, points []client.ResultPoint, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		c.log.Debug("stale results fetch discarded",
			zap.Int64("seq", seq),
			zap.Int64("current", c.seq),
		)
		return false
	}

	if err != nil {
		c.log.Warn("results fetch failed",
			zap.String("document_id", c.documentID),
			zap.Error(err),
		)
		c.replaceLocked(nil)
		c.empty = true
		return true
	}

	if len(points) == 0 {
		c.replaceLocked(nil)
		c.empty = true
		return true
	}

	c.replaceLocked(c.render.Render(points))
	c.empty = false
	return true
}

// Fetch runs the series fetch for an already-begun selection and applies the
// completion under its sequence.
func (c *Controller) Fetch(ctx context.Context, seq int64, documentID string) bool {
	points, err := c.fetch.ResultsData(ctx, documentID)
	return c.Apply(seq, points, err)
}

// Activate runs one full fetch-and-render cycle synchronously. Event-loop
// callers split it into Begin and Fetch instead.
func (c *Controller) Activate(ctx context.Context, documentID string) {
	c.Fetch(ctx, c.Begin(documentID), documentID)
}

func (c *Controller) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		DocumentID: c.documentID,
		Empty:      c.empty,
	}
	if c.chart != nil {
		v.Chart = c.chart.View()
	}
	return v
}

// replaceLocked closes the prior chart before installing the new one. Never
// two live charts. Callers hold the mutex.
func (c *Controller) replaceLocked(chart Chart) {
	if c.chart != nil {
		c.chart.Close()
	}
	c.chart = chart
}
