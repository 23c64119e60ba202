package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/math/f64"
	"sigs.k8s.io/yaml"

	"simdmath/math"
)

// FormatVersion is written to new rotation files.
const FormatVersion = "1.0"

// rotationTolerance bounds how far an input matrix may be from orthonormal.
// It accepts matrices printed with six decimals.
const rotationTolerance = 1e-5

var (
	ErrNoRepresentation        = errors.New("no rotation given")
	ErrAmbiguousRepresentation = errors.New("more than one rotation given")
	ErrNotRotation             = errors.New("matrix is not a rotation")
	ErrZeroAxis                = errors.New("zero-length vector")
)

// RotationFile is the top-level structure of a rotation batch file (YAML or
// JSON).
type RotationFile struct {
	Version   string          `json:"version"`
	Degrees   bool            `json:"degrees,omitempty"` // axis_angle angles are in degrees
	Rotations []RotationEntry `json:"rotations"`
}

// RotationEntry holds one rotation. Exactly one representation must be set.
type RotationEntry struct {
	Name       string         `json:"name,omitempty"`
	AxisAngle  *AxisAngleData `json:"axis_angle,omitempty"`
	Quaternion *[4]float64    `json:"quaternion,omitempty"` // (x,y,z,w)
	Matrix     *f64.Mat3      `json:"matrix,omitempty"`     // row-major
	FromTo     *FromToData    `json:"from_to,omitempty"`
}

type AxisAngleData struct {
	Angle float64    `json:"angle"`
	Axis  [3]float64 `json:"axis"`
}

type FromToData struct {
	From [3]float64 `json:"from"`
	To   [3]float64 `json:"to"`
}

// RotationResult is one converted rotation in every representation.
type RotationResult struct {
	Name       string     `json:"name,omitempty"`
	Quaternion [4]float64 `json:"quaternion"` // (x,y,z,w)
	Angle      float64    `json:"angle"`
	Axis       [3]float64 `json:"axis"`
	Matrix     f64.Mat3   `json:"matrix"` // row-major
}

// NewRotationResult describes q. The angle is given in degrees when degrees
// is set, in radians otherwise.
func NewRotationResult(name string, q math.Quaternion, degrees bool) RotationResult {
	angle, axis := q.AngleAxis()
	if degrees {
		angle = math.Degrees(angle)
	}
	return RotationResult{
		Name:       name,
		Quaternion: [4]float64{q.X, q.Y, q.Z, q.W},
		Angle:      angle,
		Axis:       [3]float64{axis.X, axis.Y, axis.Z},
		Matrix:     q.Mat3().F64(),
	}
}

func NewRotationFile() *RotationFile {
	return &RotationFile{Version: FormatVersion}
}

func (e RotationEntry) count() int {
	n := 0
	if e.AxisAngle != nil {
		n++
	}
	if e.Quaternion != nil {
		n++
	}
	if e.Matrix != nil {
		n++
	}
	if e.FromTo != nil {
		n++
	}
	return n
}

// Resolve converts the entry to a unit quaternion. conv decides the axis of
// colinear from_to entries; nil means the default converter.
func (e RotationEntry) Resolve(conv *math.RotationConverter, degrees bool) (math.Quaternion, error) {
	switch e.count() {
	case 0:
		return math.Quaternion{}, ErrNoRepresentation
	case 1:
	default:
		return math.Quaternion{}, ErrAmbiguousRepresentation
	}

	switch {
	case e.AxisAngle != nil:
		axis := math.Vec3d{X: e.AxisAngle.Axis[0], Y: e.AxisAngle.Axis[1], Z: e.AxisAngle.Axis[2]}
		if axis.Length() == 0 {
			return math.Quaternion{}, fmt.Errorf("axis_angle: %w", ErrZeroAxis)
		}
		angle := e.AxisAngle.Angle
		if degrees {
			angle = math.Radians(angle)
		}
		return math.QuaternionFromAxisAngle(angle, axis), nil

	case e.Quaternion != nil:
		q := math.NewQuaternion(e.Quaternion[0], e.Quaternion[1], e.Quaternion[2], e.Quaternion[3])
		if q.Length() == 0 {
			return math.Quaternion{}, fmt.Errorf("quaternion: %w", ErrZeroAxis)
		}
		return q.Normalize(), nil

	case e.Matrix != nil:
		m := math.Mat3FromF64[float64](*e.Matrix)
		if !m.IsRotation(rotationTolerance) {
			return math.Quaternion{}, ErrNotRotation
		}
		return math.QuaternionFromMat3(m), nil

	default:
		if conv == nil {
			return math.QuaternionFromTo(vec3(e.FromTo.From), vec3(e.FromTo.To)), nil
		}
		return conv.FromTo(vec3(e.FromTo.From), vec3(e.FromTo.To)), nil
	}
}

func vec3(a [3]float64) math.Vec3d {
	return math.Vec3FromF64[float64](f64.Vec3(a))
}

// Convert resolves every entry of f. With degrees set, axis_angle angles are
// read in degrees and result angles are given in degrees; f.Degrees only
// affects input. The first failing entry stops the conversion.
func Convert(f *RotationFile, conv *math.RotationConverter, degrees bool) ([]RotationResult, error) {
	out := make([]RotationResult, 0, len(f.Rotations))
	for i, e := range f.Rotations {
		q, err := e.Resolve(conv, f.Degrees || degrees)
		if err != nil {
			return nil, fmt.Errorf("rotation %d %q: %w", i, e.Name, err)
		}
		out = append(out, NewRotationResult(e.Name, q, degrees))
	}
	return out, nil
}

// SaveRotations writes f as JSON when path ends in .json and as YAML
// otherwise.
func SaveRotations(path string, f *RotationFile) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(f, "", "  ")
	} else {
		data, err = yaml.Marshal(f)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal rotations: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadRotations reads a YAML or JSON rotation file.
func LoadRotations(path string) (*RotationFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rotation file: %w", err)
	}
	return ParseRotations(data)
}

// ParseRotations decodes YAML or JSON rotation data.
func ParseRotations(data []byte) (*RotationFile, error) {
	f := &RotationFile{}
	if err := yaml.UnmarshalStrict(data, f); err != nil {
		return nil, fmt.Errorf("failed to parse rotation file: %w", err)
	}
	if f.Version == "" {
		f.Version = FormatVersion
	}
	return f, nil
}
