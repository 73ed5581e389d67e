package results

import (
	"fmt"
	"strings"
	"sync"

	"github.com/guptarohit/asciigraph"

	"github.com/MedAliAdlouni/mcq-generator/internal/client"
)

const (
	// Scores run 0..10; a ten-row plot gives one row per point of score.
	chartHeight   = 10
	minChartWidth = 20
)

// LineChart renders play-history series as a terminal line chart with the
// fixed 0-10 score axis.
type LineChart struct {
	width int
}

func NewLineChart(width int) LineChart {
	if width < minChartWidth {
		width = minChartWidth
	}
	return LineChart{width: width}
}

func (r LineChart) Render(points []client.ResultPoint) Chart {
	scores := make([]float64, 0, len(points))
	for _, p := range points {
		scores = append(scores, p.Score)
	}

	plot := asciigraph.Plot(scores,
		asciigraph.Height(chartHeight),
		asciigraph.Width(r.width),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(10),
		asciigraph.Precision(0),
		asciigraph.Caption(caption(points)),
	)

	return &textChart{view: plot}
}

func caption(points []client.ResultPoint) string {
	switch len(points) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("1 play, %s", points[0].PlayedAt)
	default:
		return fmt.Sprintf("%d plays, %s to %s",
			len(points), points[0].PlayedAt, points[len(points)-1].PlayedAt)
	}
}

// textChart is a rendered chart snapshot. Close empties it so a stale handle
// can never draw again.
type textChart struct {
	mu     sync.Mutex
	view   string
	closed bool
}

func (c *textChart) View() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ""
	}
	return strings.TrimRight(c.view, "\n")
}

func (c *textChart) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.view = ""
}
