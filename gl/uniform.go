// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"fmt"
	"unsafe"

	"golang.org/x/image/math/f32"
)

// UniformScalar is a component type accepted by ProgramUniform.
type UniformScalar interface {
	float32 | float64 | int32 | uint32
}

// SetUniform uploads len(v)/n uniform values of n components each,
// starting at loc. The entry point is chosen by the component type. An
// invalid location is reported as ErrNotFound.
func SetUniform[T UniformScalar](f Functions, p Program, loc Uniform, n int, v ...T) error {
	if !loc.Valid() {
		return fmt.Errorf("gl: uniform location %d: %w", loc.V, ErrNotFound)
	}
	if n < 1 || n > 4 {
		return fmt.Errorf("gl: uniform component count %d out of range [1, 4]", n)
	}
	if len(v) == 0 || len(v)%n != 0 {
		return fmt.Errorf("gl: %d uniform values for %d components", len(v), n)
	}
	switch v := any(v).(type) {
	case []float32:
		f.ProgramUniformfv(p, loc, n, v)
	case []float64:
		f.ProgramUniformdv(p, loc, n, v)
	case []int32:
		f.ProgramUniformiv(p, loc, n, v)
	case []uint32:
		f.ProgramUniformuiv(p, loc, n, v)
	}
	return nil
}

// SetUniformMatrix uploads column-major cols x rows matrices. With
// transpose set the values are read in row-major order.
func SetUniformMatrix[T float32 | float64](f Functions, p Program, loc Uniform, cols, rows int, transpose bool, v ...T) error {
	if !loc.Valid() {
		return fmt.Errorf("gl: uniform location %d: %w", loc.V, ErrNotFound)
	}
	if cols < 2 || cols > 4 || rows < 2 || rows > 4 {
		return fmt.Errorf("gl: %dx%d matrix uniform; dimensions must be 2, 3 or 4", cols, rows)
	}
	if len(v) == 0 || len(v)%(cols*rows) != 0 {
		return fmt.Errorf("gl: %d values for %dx%d matrices", len(v), cols, rows)
	}
	switch v := any(v).(type) {
	case []float32:
		f.ProgramUniformMatrixfv(p, loc, cols, rows, transpose, v)
	case []float64:
		f.ProgramUniformMatrixdv(p, loc, cols, rows, transpose, v)
	}
	return nil
}

func (p Program) SetFloat(f Functions, loc Uniform, v ...float32) error {
	return SetUniform(f, p, loc, 1, v...)
}

func (p Program) SetInt(f Functions, loc Uniform, v ...int32) error {
	return SetUniform(f, p, loc, 1, v...)
}

func (p Program) SetUint(f Functions, loc Uniform, v ...uint32) error {
	return SetUniform(f, p, loc, 1, v...)
}

func (p Program) SetVec2(f Functions, loc Uniform, v ...f32.Vec2) error {
	return SetUniform(f, p, loc, 2, floats(v, 2)...)
}

func (p Program) SetVec3(f Functions, loc Uniform, v ...f32.Vec3) error {
	return SetUniform(f, p, loc, 3, floats(v, 3)...)
}

func (p Program) SetVec4(f Functions, loc Uniform, v ...f32.Vec4) error {
	return SetUniform(f, p, loc, 4, floats(v, 4)...)
}

// SetMat3 uploads f32 matrices, which are stored in row-major order.
func (p Program) SetMat3(f Functions, loc Uniform, m ...f32.Mat3) error {
	return SetUniformMatrix(f, p, loc, 3, 3, true, floats(m, 9)...)
}

// SetMat4 uploads f32 matrices, which are stored in row-major order.
func (p Program) SetMat4(f Functions, loc Uniform, m ...f32.Mat4) error {
	return SetUniformMatrix(f, p, loc, 4, 4, true, floats(m, 16)...)
}

// floats reinterprets a slice of n-float32 arrays as its components.
func floats[A any](v []A, n int) []float32 {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&v[0])), len(v)*n)
}
