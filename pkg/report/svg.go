// Package report renders a diagnostic Summary as an SVG document: a
// quality histogram and a defect-count table.
package report

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/chazu/meshdiag/pkg/diag"
)

const (
	canvasWidth  = 640
	canvasHeight = 400
	histTop      = 40
	histHeight   = 200
	barWidth     = 50
	barGap       = 10
	tableTop     = 300
)

var histogramOrder = [10]string{
	"0.0-0.1", "0.1-0.2", "0.2-0.3", "0.3-0.4", "0.4-0.5",
	"0.5-0.6", "0.6-0.7", "0.7-0.8", "0.8-0.9", "0.9-1.0",
}

// WriteSVG renders summary's quality histogram and defect counts to w.
func WriteSVG(w io.Writer, summary diag.Summary) error {
	canvas := svg.New(w)
	canvas.Start(canvasWidth, canvasHeight)
	canvas.Title("mesh diagnostics report")

	canvas.Text(20, 25, "Face quality histogram", "font-size:16px;font-family:sans-serif")

	maxCount := 1
	for _, label := range histogramOrder {
		if c := summary.Quality.Stats.Histogram[label]; c > maxCount {
			maxCount = c
		}
	}

	for i, label := range histogramOrder {
		count := summary.Quality.Stats.Histogram[label]
		barHeight := int(float64(count) / float64(maxCount) * histHeight)
		x := 20 + i*(barWidth+barGap)
		y := histTop + histHeight - barHeight
		fill := "fill:steelblue"
		if label == "0.0-0.1" || label == "0.1-0.2" {
			fill = "fill:crimson"
		}
		canvas.Rect(x, y, barWidth, barHeight, fill)
		canvas.Text(x, histTop+histHeight+15, label, "font-size:10px;font-family:sans-serif")
		canvas.Text(x, y-4, fmt.Sprintf("%d", count), "font-size:10px;font-family:sans-serif")
	}

	rows := []struct {
		label string
		count int
	}{
		{"Free edges", len(summary.FreeEdges)},
		{"Overlapping edges", len(summary.OverlappingEdges)},
		{"Non-manifold vertices", len(summary.NonManifold)},
		{"Low-quality faces", summary.Quality.Stats.LowQualityFaces},
		{"Adjacent face pairs", len(summary.Adjacent)},
		{"Pierced faces", piercedCount(summary)},
	}
	for i, row := range rows {
		y := tableTop + i*20
		canvas.Text(20, y, fmt.Sprintf("%s: %d", row.label, row.count), "font-size:14px;font-family:monospace")
	}

	canvas.End()
	return nil
}

func piercedCount(summary diag.Summary) int {
	if summary.Pierced == nil {
		return 0
	}
	return len(summary.Pierced.Faces)
}
