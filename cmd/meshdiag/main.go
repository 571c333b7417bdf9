// Command meshdiag loads a triangle mesh and runs the full diagnostic
// suite against it, printing a text report and optionally an SVG one.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/chazu/meshdiag/pkg/diag"
	"github.com/chazu/meshdiag/pkg/meshio"
	"github.com/chazu/meshdiag/pkg/report"
)

func main() {
	qualityThreshold := flag.Float64("quality-threshold", 0.3, "faces below this 2r/R quality are flagged")
	proximityThreshold := flag.Float64("proximity-threshold", 0.5, "centroid-distance/edge-length threshold for adjacency")
	svgPath := flag.String("svg", "", "write an SVG diagnostic report to this path")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: meshdiag [flags] <mesh-file>")
		os.Exit(2)
	}

	mesh, err := meshio.Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("meshdiag: %v", err)
	}

	engine := diag.NewEngine()
	summary := engine.Summarize(mesh.Vertices, mesh.Faces, *qualityThreshold, *proximityThreshold)

	printSummary(mesh, summary)

	if *svgPath != "" {
		f, err := os.Create(*svgPath)
		if err != nil {
			log.Fatalf("meshdiag: %v", err)
		}
		defer f.Close()
		if err := report.WriteSVG(f, summary); err != nil {
			log.Fatalf("meshdiag: %v", err)
		}
		fmt.Printf("wrote SVG report to %s\n", *svgPath)
	}
}

func printSummary(mesh *meshio.Mesh, summary diag.Summary) {
	fmt.Printf("Vertices: %d\n", mesh.VertexCount())
	fmt.Printf("Faces:    %d\n", mesh.FaceCount())
	fmt.Println()
	fmt.Printf("Free edges:            %d\n", len(summary.FreeEdges))
	fmt.Printf("Overlapping edges:     %d\n", len(summary.OverlappingEdges))
	fmt.Printf("Non-manifold vertices: %d\n", len(summary.NonManifold))
	fmt.Printf("Low-quality faces:     %d (of %d, mean=%.4f)\n",
		summary.Quality.Stats.LowQualityFaces, summary.Quality.Stats.TotalFaces, summary.Quality.Stats.Mean)
	fmt.Printf("Adjacent face pairs:   %d\n", len(summary.Adjacent))

	piercedCount := 0
	if summary.Pierced != nil {
		piercedCount = len(summary.Pierced.Faces)
	}
	fmt.Printf("Pierced faces:         %d\n", piercedCount)
}
