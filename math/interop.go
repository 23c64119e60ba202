package math

import (
	geo "github.com/golang/geo/r3"
	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Conversions to and from the fixed-size types of other math packages.
// f64 matrices are row-major; ours are column-major.

func (v Vec3[T]) F64() f64.Vec3 {
	return f64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

func Vec3FromF64[T Float](v f64.Vec3) Vec3[T] {
	return Vec3[T]{T(v[0]), T(v[1]), T(v[2])}
}

func (v Vec4[T]) F64() f64.Vec4 {
	return f64.Vec4{float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)}
}

func Vec4FromF64[T Float](v f64.Vec4) Vec4[T] {
	return Vec4[T]{T(v[0]), T(v[1]), T(v[2]), T(v[3])}
}

func (m Mat3[T]) F64() f64.Mat3 {
	var out f64.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = float64(m[c][r])
		}
	}
	return out
}

func Mat3FromF64[T Float](a f64.Mat3) Mat3[T] {
	var m Mat3[T]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[c][r] = T(a[r*3+c])
		}
	}
	return m
}

func (m Mat4[T]) F64() f64.Mat4 {
	var out f64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = float64(m[c][r])
		}
	}
	return out
}

func Mat4FromF64[T Float](a f64.Mat4) Mat4[T] {
	var m Mat4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[c][r] = T(a[r*4+c])
		}
	}
	return m
}

func (v Vec3[T]) R3() r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func Vec3FromR3(v r3.Vec) Vec3d {
	return Vec3d{v.X, v.Y, v.Z}
}

func Vec3FromGeo(v geo.Vector) Vec3d {
	return Vec3d{v.X, v.Y, v.Z}
}

// Gonum returns q as a gonum quaternion (Real = W).
func (q Quaternion) Gonum() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

func QuaternionFromGonum(n quat.Number) Quaternion {
	return Quaternion{X: n.Imag, Y: n.Jmag, Z: n.Kmag, W: n.Real}
}
