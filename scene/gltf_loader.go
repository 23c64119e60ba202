package scene

import (
	"fmt"
	stdmath "math"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"k8s.io/klog/v2"

	"simdmath/core"
	"simdmath/math"
)

// unitTolerance is how far a node rotation's length may stray from 1
// before it is reported.
const unitTolerance = 1e-3

// NodeRotation is the local transform of one glTF node.
type NodeRotation struct {
	Index     int
	Name      string
	Transform core.Transform
	// FromMatrix is set when the node stored a matrix instead of TRS.
	FromMatrix bool
}

// AngleAxis returns the node rotation in canonical angle/axis form.
func (n NodeRotation) AngleAxis() (float64, math.Vec3d) {
	return n.Transform.Rotation.AngleAxis()
}

// GLTFResult holds a decoded .glb / .gltf document and the local transforms
// of its nodes.
type GLTFResult struct {
	Document *gltf.Document
	Nodes    []NodeRotation
	Roots    []int // indices of top-level nodes
}

// LoadGLTF opens a .glb or .gltf file and reads every node's rotation.
func LoadGLTF(path string) (*GLTFResult, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	return &GLTFResult{
		Document: doc,
		Nodes:    NodeRotations(doc),
		Roots:    rootNodes(doc),
	}, nil
}

// NodeRotations decodes the local transform of each node in doc. Matrix
// nodes are decomposed; nil nodes are skipped.
func NodeRotations(doc *gltf.Document) []NodeRotation {
	out := make([]NodeRotation, 0, len(doc.Nodes))
	for i, gn := range doc.Nodes {
		if gn == nil {
			klog.V(2).Infof("gltf: node %d is empty, skipping", i)
			continue
		}
		name := gn.Name
		if name == "" {
			name = fmt.Sprintf("node_%d", i)
		}

		nr := NodeRotation{Index: i, Name: name}
		if m := matrixFromGLTF(gn.MatrixOrDefault()); !m.IsIdentity(0) {
			nr.Transform = core.TransformFromMatrix(m)
			nr.FromMatrix = true
		} else {
			nr.Transform = core.Transform{
				Position: vec3FromGLTF(gn.TranslationOrDefault()),
				Rotation: nodeRotation(i, gn.RotationOrDefault()),
				Scale:    vec3FromGLTF(gn.ScaleOrDefault()),
			}
		}
		out = append(out, nr)
	}
	return out
}

// ApplyTransform writes t to n as translation, rotation and scale, and
// resets n's matrix.
func ApplyTransform(n *gltf.Node, t core.Transform) {
	r := t.Rotation
	n.Translation = [3]float64{t.Position.X, t.Position.Y, t.Position.Z}
	n.Rotation = [4]float64{r.X, r.Y, r.Z, r.W}
	n.Scale = [3]float64{t.Scale.X, t.Scale.Y, t.Scale.Z}
	n.Matrix = matrixToGLTF(math.Mat4Identity[float64]())
}

// SaveGLTF writes doc to path, as binary glTF when path ends in .glb.
func SaveGLTF(doc *gltf.Document, path string) error {
	var err error
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		err = gltf.SaveBinary(doc, path)
	} else {
		err = gltf.Save(doc, path)
	}
	if err != nil {
		return fmt.Errorf("gltf save %q: %w", path, err)
	}
	return nil
}

// nodeRotation reads a [x, y, z, w] rotation, normalizing it if needed.
func nodeRotation(index int, r [4]float64) math.Quaternion {
	q := math.NewQuaternion(r[0], r[1], r[2], r[3])
	if l := q.Length(); stdmath.Abs(l-1) > unitTolerance {
		klog.V(2).Infof("gltf: node %d rotation has length %.4f, normalizing", index, l)
		return q.Normalize()
	}
	return q
}

// glTF matrices are 16 floats in column-major order.
func matrixFromGLTF(a [16]float64) math.Mat4d {
	var m math.Mat4d
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			m[c][r] = a[c*4+r]
		}
	}
	return m
}

func matrixToGLTF(m math.Mat4d) [16]float64 {
	var a [16]float64
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			a[c*4+r] = m[c][r]
		}
	}
	return a
}

func vec3FromGLTF(v [3]float64) math.Vec3d {
	return math.Vec3d{X: v[0], Y: v[1], Z: v[2]}
}

func rootNodes(doc *gltf.Document) []int {
	var roots []int
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		for _, rootIdx := range doc.Scenes[*doc.Scene].Nodes {
			if rootIdx < len(doc.Nodes) && doc.Nodes[rootIdx] != nil {
				roots = append(roots, rootIdx)
			}
		}
		return roots
	}

	// No default scene: collect all parentless nodes
	hasParent := make([]bool, len(doc.Nodes))
	for _, gn := range doc.Nodes {
		if gn == nil {
			continue
		}
		for _, c := range gn.Children {
			if c < len(hasParent) {
				hasParent[c] = true
			}
		}
	}
	for i, gn := range doc.Nodes {
		if gn != nil && !hasParent[i] {
			roots = append(roots, i)
		}
	}
	return roots
}
