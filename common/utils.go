package common

import "github.com/go-gl/mathgl/mgl32"

type Vec3 = mgl32.Vec3
type Mat4 = mgl32.Mat4

type IT interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

type IIndex interface {
	~int | ~int8 | ~int16 | ~int32 | ~uint | ~uint8 | ~uint16 | ~uint32
}

// InRange reports whether index addresses one of n elements.
func InRange[T IIndex](index T, n int) bool {
	return int64(index) >= 0 && int64(index) < int64(n)
}

// Mat4FromRowMajor converts 16 row-major floats, translation in the last
// column, into the column-major mgl32 layout.
func Mat4FromRowMajor(m [16]float32) Mat4 {
	return Mat4(m).Transpose()
}
