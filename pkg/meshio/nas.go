package meshio

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// decodeNAS performs the two-pass parse described by the format: pass 1
// counts GRID*/CTRIA3 records, pass 2 fills preallocated tables. Since Go
// readers are not seekable in general, both passes here read the same
// buffered line slice held in memory, which is equivalent for this
// line-oriented, non-streaming format.
func decodeNAS(r io.Reader, path string) (*Mesh, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Path: path, Err: ErrTruncated}
	}

	nGrid, nTria := countNASRecords(lines)

	mesh := &Mesh{
		Vertices: make([][3]float32, 0, nGrid),
		Faces:    make([][3]int32, 0, nTria),
	}
	nodeIndex := make(map[int]int32, nGrid)

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		switch {
		case strings.HasPrefix(line, "GRID*"):
			fields := strings.Fields(line)
			if len(fields) < 5 {
				return nil, &LoadError{Path: path, Err: ErrTruncated}
			}
			nodeID, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, &LoadError{Path: path, Err: ErrTruncated}
			}
			x := parseNASFloat(fields[3])
			y := parseNASFloat(fields[4])

			i++
			if i >= len(lines) {
				return nil, &LoadError{Path: path, Err: ErrTruncated}
			}
			cont := strings.Fields(strings.TrimSpace(lines[i]))
			if len(cont) < 2 {
				return nil, &LoadError{Path: path, Err: ErrTruncated}
			}
			z := parseNASFloat(cont[1])

			nodeIndex[nodeID] = int32(len(mesh.Vertices))
			mesh.Vertices = append(mesh.Vertices, [3]float32{x, y, z})

		case strings.HasPrefix(line, "CTRIA3"):
			fields := strings.Fields(line)
			if len(fields) < 6 {
				return nil, &LoadError{Path: path, Err: ErrTruncated}
			}
			ids := make([]int, 3)
			ok := true
			for k := 0; k < 3; k++ {
				id, err := strconv.Atoi(fields[3+k])
				if err != nil {
					ok = false
					break
				}
				ids[k] = id
			}
			if !ok {
				continue
			}
			i0, ok0 := nodeIndex[ids[0]]
			i1, ok1 := nodeIndex[ids[1]]
			i2, ok2 := nodeIndex[ids[2]]
			if !ok0 || !ok1 || !ok2 {
				// CTRIA3 references to undefined nodes are silently dropped.
				continue
			}
			mesh.Faces = append(mesh.Faces, [3]int32{i0, i1, i2})
		}
	}

	return mesh, nil
}

func countNASRecords(lines []string) (grid, tria int) {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "GRID*"):
			grid++
		case strings.HasPrefix(trimmed, "CTRIA3"):
			tria++
		}
	}
	return grid, tria
}

func parseNASFloat(s string) float32 {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0
	}
	return float32(v)
}
