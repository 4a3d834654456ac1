// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
	"golang.org/x/image/math/f32"
)

// AttribType is the component type of a vertex attribute.
type AttribType Enum

const (
	AttribByte                    AttribType = BYTE
	AttribUnsignedByte            AttribType = UNSIGNED_BYTE
	AttribShort                   AttribType = SHORT
	AttribUnsignedShort           AttribType = UNSIGNED_SHORT
	AttribInt                     AttribType = INT
	AttribUnsignedInt             AttribType = UNSIGNED_INT
	AttribFixed                   AttribType = FIXED
	AttribFloat                   AttribType = FLOAT
	AttribHalfFloat               AttribType = HALF_FLOAT
	AttribDouble                  AttribType = DOUBLE
	AttribInt2101010Rev           AttribType = INT_2_10_10_10_REV
	AttribUnsignedInt2101010Rev   AttribType = UNSIGNED_INT_2_10_10_10_REV
	AttribUnsignedInt10F11F11FRev AttribType = UNSIGNED_INT_10F_11F_11F_REV
)

// Size returns the size in bytes of one component, or one packed value
// for the packed types. It panics for unknown types.
func (t AttribType) Size() int {
	switch t {
	case AttribByte, AttribUnsignedByte:
		return 1
	case AttribShort, AttribUnsignedShort, AttribHalfFloat:
		return 2
	case AttribInt, AttribUnsignedInt, AttribFixed, AttribFloat,
		AttribInt2101010Rev, AttribUnsignedInt2101010Rev, AttribUnsignedInt10F11F11FRev:
		return 4
	case AttribDouble:
		return 8
	default:
		panic(fmt.Errorf("gl: invalid attribute type 0x%x", uint(t)))
	}
}

// AttribSize is the number of components of a vertex attribute.
type AttribSize int

// AttribSizeOf converts a component count to an AttribSize.
func AttribSizeOf(n int) (AttribSize, error) {
	if n < 1 || n > 4 {
		return 0, fmt.Errorf("gl: invalid vertex attribute length %d; must be 1, 2, 3 or 4", n)
	}
	return AttribSize(n), nil
}

// AttribComponent is a Go type with a matching AttribType.
type AttribComponent interface {
	constraints.Float | ~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32
}

// AttribTypeOf returns the attribute type of T.
func AttribTypeOf[T AttribComponent]() AttribType {
	var zero T
	return attribTypeOf(reflect.TypeOf(zero))
}

// Format is the layout of one vertex attribute.
type Format struct {
	Size AttribSize
	Type AttribType
}

// FormatOf returns the attribute format of T, which is either a component
// type or one of the f32 vector types.
func FormatOf[T AttribComponent | f32.Vec2 | f32.Vec3 | f32.Vec4]() Format {
	var zero T
	switch any(zero).(type) {
	case f32.Vec2:
		return Format{Size: 2, Type: AttribFloat}
	case f32.Vec3:
		return Format{Size: 3, Type: AttribFloat}
	case f32.Vec4:
		return Format{Size: 4, Type: AttribFloat}
	}
	return Format{Size: 1, Type: attribTypeOf(reflect.TypeOf(zero))}
}

func attribTypeOf(t reflect.Type) AttribType {
	switch t.Kind() {
	case reflect.Int8:
		return AttribByte
	case reflect.Uint8:
		return AttribUnsignedByte
	case reflect.Int16:
		return AttribShort
	case reflect.Uint16:
		return AttribUnsignedShort
	case reflect.Int32:
		return AttribInt
	case reflect.Uint32:
		return AttribUnsignedInt
	case reflect.Float64:
		return AttribDouble
	default:
		return AttribFloat
	}
}

// Stride returns the size in bytes of one attribute of format fm.
func (fm Format) Stride() int {
	return int(fm.Size) * fm.Type.Size()
}
