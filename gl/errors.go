// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidName is returned when a name does not refer to an object
	// of the expected kind.
	ErrInvalidName = errors.New("gl: invalid object name")
	// ErrNotFound is returned when a named program resource is not active.
	ErrNotFound = errors.New("gl: resource not found")
	// ErrUnmapCorrupted is returned when the driver reports that a mapped
	// buffer's contents became undefined while it was mapped.
	ErrUnmapCorrupted = errors.New("gl: buffer contents corrupted while mapped")
	// ErrWaitFailed is returned when a sync wait reports WAIT_FAILED.
	ErrWaitFailed = errors.New("gl: sync wait failed")
)

// Error is an error code reported by GetError.
type Error struct {
	Op   string
	Code Enum
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("gl: %s", ErrorString(e.Code))
	}
	return fmt.Sprintf("gl: %s: %s", e.Op, ErrorString(e.Code))
}

// CompileError carries the information log of a shader that failed to
// compile.
type CompileError struct {
	Type ShaderType
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Type, e.Log)
}

// LinkError carries the information log of a program that failed to link
// or validate.
type LinkError struct {
	Op  string
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program %s failed: %s", e.Op, e.Log)
}

// CheckError returns the oldest pending driver error, or nil.
func CheckError(f Functions, op string) error {
	if code := f.GetError(); code != NO_ERROR {
		Logger().Debug("driver error", "op", op, "code", ErrorString(code))
		return &Error{Op: op, Code: code}
	}
	return nil
}

// ErrorString returns the symbolic name of a GetError code.
func ErrorString(code Enum) string {
	switch code {
	case NO_ERROR:
		return "NO_ERROR"
	case INVALID_ENUM:
		return "INVALID_ENUM"
	case INVALID_VALUE:
		return "INVALID_VALUE"
	case INVALID_OPERATION:
		return "INVALID_OPERATION"
	case STACK_OVERFLOW:
		return "STACK_OVERFLOW"
	case STACK_UNDERFLOW:
		return "STACK_UNDERFLOW"
	case OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	case INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	case CONTEXT_LOST:
		return "CONTEXT_LOST"
	default:
		return fmt.Sprintf("0x%x", uint(code))
	}
}

// failure returns the pending driver error for op, or a generic error if
// the driver did not report one.
func failure(f Functions, op string) error {
	if err := CheckError(f, op); err != nil {
		return err
	}
	return fmt.Errorf("gl: %s failed", op)
}
