// Package fixtures builds test meshes: synthetic solids tessellated via
// marching cubes, and the small hand-built meshes exercising the specific
// topology and intersection scenarios the detectors are validated against.
package fixtures

import (
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/meshdiag/pkg/meshio"
)

// meshCells controls marching cubes tessellation resolution; kept modest
// since fixtures exist to exercise detectors, not to stress performance.
const meshCells = 40

// Box tessellates an axis-aligned box of the given dimensions via marching
// cubes into a closed triangle surface. Vertices are not merged: every
// triangle gets its own three vertex rows and one normal.
func Box(x, y, z float64) (*meshio.Mesh, error) {
	solid, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		return nil, err
	}
	return tessellate(solid)
}

// Sphere tessellates a sphere of the given radius via marching cubes.
func Sphere(radius float64) (*meshio.Mesh, error) {
	solid, err := sdf.Sphere3D(radius)
	if err != nil {
		return nil, err
	}
	return tessellate(solid)
}

func tessellate(solid sdf.SDF3) (*meshio.Mesh, error) {
	renderer := render.NewMarchingCubesUniform(meshCells)
	triangles := render.ToTriangles(solid, renderer)

	mesh := &meshio.Mesh{
		Vertices: make([][3]float32, 0, len(triangles)*3),
		Faces:    make([][3]int32, 0, len(triangles)),
		Normals:  make([][3]float32, 0, len(triangles)),
	}

	for _, tri := range triangles {
		n := tri.Normal()
		base := int32(len(mesh.Vertices))
		for j := 0; j < 3; j++ {
			v := tri[j]
			mesh.Vertices = append(mesh.Vertices, [3]float32{float32(v.X), float32(v.Y), float32(v.Z)})
		}
		mesh.Faces = append(mesh.Faces, [3]int32{base, base + 1, base + 2})
		mesh.Normals = append(mesh.Normals, [3]float32{float32(n.X), float32(n.Y), float32(n.Z)})
	}

	return mesh, nil
}
