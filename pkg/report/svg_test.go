package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chazu/meshdiag/pkg/diag"
	"github.com/chazu/meshdiag/pkg/pierce"
	"github.com/chazu/meshdiag/pkg/quality"
)

func TestWriteSVGProducesValidDocument(t *testing.T) {
	summary := diag.Summary{
		Quality: diag.QualityReport{
			Stats: quality.Stats{
				TotalFaces:      2,
				LowQualityFaces: 1,
				Histogram: map[string]int{
					"0.0-0.1": 1,
					"0.4-0.5": 1,
				},
			},
		},
		Pierced: &pierce.Result{},
	}

	var buf bytes.Buffer
	if err := WriteSVG(&buf, summary); err != nil {
		t.Fatalf("WriteSVG() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Error("output does not contain an <svg> tag")
	}
	if !strings.Contains(out, "</svg>") {
		t.Error("output is not closed with </svg>")
	}
	if !strings.Contains(out, "Free edges: 0") {
		t.Error("output missing free-edge count row")
	}
}
