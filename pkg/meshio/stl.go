package meshio

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"strconv"
	"strings"
)

const stlHeaderSize = 80

var le = binary.LittleEndian

// decodeSTL reads header bytes to classify the file as binary or ASCII,
// then dispatches to the matching decoder. Classification: binary if any
// header byte is neither printable ASCII nor whitespace.
func decodeSTL(r io.Reader, path string) (*Mesh, error) {
	header := make([]byte, stlHeaderSize)
	n, err := io.ReadFull(r, header)
	if err != nil && n < stlHeaderSize {
		// Too short even for a header; could still be a tiny ASCII file,
		// but the loader treats it as truncated to fail fast rather than
		// silently returning an empty mesh.
		return nil, &LoadError{Path: path, Err: ErrTruncated}
	}

	if isBinarySTLHeader(header) {
		return decodeSTLBinary(r, path)
	}
	return decodeSTLASCII(io.MultiReader(strings.NewReader(string(header)), r), path)
}

func isBinarySTLHeader(header []byte) bool {
	for _, b := range header {
		if b == '\t' || b == '\n' || b == '\r' || b == ' ' {
			continue
		}
		if b < 0x20 || b > 0x7e {
			return true
		}
	}
	return false
}

func decodeSTLBinary(r io.Reader, path string) (*Mesh, error) {
	var count uint32
	if err := binary.Read(r, le, &count); err != nil {
		return nil, &LoadError{Path: path, Err: ErrTruncated}
	}

	mesh := &Mesh{
		Vertices: make([][3]float32, 0, count*3),
		Faces:    make([][3]int32, 0, count),
		Normals:  make([][3]float32, 0, count),
	}

	var rec [50]byte
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, rec[:]); err != nil {
			return nil, &LoadError{Path: path, Err: ErrTruncated}
		}

		var nx, ny, nz float32
		var v [3][3]float32
		buf := rec[:]
		nx = readF32(buf[0:4])
		ny = readF32(buf[4:8])
		nz = readF32(buf[8:12])
		for j := 0; j < 3; j++ {
			off := 12 + j*12
			v[j][0] = readF32(buf[off : off+4])
			v[j][1] = readF32(buf[off+4 : off+8])
			v[j][2] = readF32(buf[off+8 : off+12])
		}
		// remaining 2 bytes are the attribute count; discarded.

		base := int32(len(mesh.Vertices))
		mesh.Vertices = append(mesh.Vertices, v[0], v[1], v[2])
		mesh.Faces = append(mesh.Faces, [3]int32{base, base + 1, base + 2})
		mesh.Normals = append(mesh.Normals, [3]float32{nx, ny, nz})
	}

	return mesh, nil
}

func readF32(b []byte) float32 {
	return math.Float32frombits(le.Uint32(b))
}

// decodeSTLASCII scans "facet normal ...", "outer loop", three "vertex ..."
// lines, "endloop", "endfacet". One vertex row is emitted per appearance
// (no merging), matching the loader's no-dedup contract.
func decodeSTLASCII(r io.Reader, path string) (*Mesh, error) {
	mesh := &Mesh{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var pendingNormal [3]float32
	haveNormal := false

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "facet":
			if len(fields) >= 5 && strings.ToLower(fields[1]) == "normal" {
				pendingNormal = [3]float32{
					parseF32(fields[2]), parseF32(fields[3]), parseF32(fields[4]),
				}
				haveNormal = true
			}
		case "vertex":
			if len(fields) < 4 {
				continue
			}
			mesh.Vertices = append(mesh.Vertices, [3]float32{
				parseF32(fields[1]), parseF32(fields[2]), parseF32(fields[3]),
			})
		case "endfacet":
			n := len(mesh.Vertices)
			if n < 3 {
				continue
			}
			base := int32(n - 3)
			mesh.Faces = append(mesh.Faces, [3]int32{base, base + 1, base + 2})
			if haveNormal {
				mesh.Normals = append(mesh.Normals, pendingNormal)
			} else {
				mesh.Normals = append(mesh.Normals, [3]float32{})
			}
			haveNormal = false
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Path: path, Err: ErrTruncated}
	}

	return mesh, nil
}

func parseF32(s string) float32 {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0
	}
	return float32(v)
}
