// Package native is the foreign-call boundary to the IWFM engine library.
// The engine is a Fortran binary: every argument travels by reference, text
// travels as fixed-width space-padded character buffers with explicit
// length arguments, and every procedure reports success by writing an
// integer status through its final parameter.
//
// Cells are the host-side representation of those by-reference arguments.
// A Cell owns a fixed-size C-compatible buffer; the engine writes straight
// into it, and typed accessors convert the raw contents back to Go values.
package native

import "unsafe"

// NameWidth is the engine's standard character-slot width for names,
// column headers, and interval labels. Packed name blocks are sized as
// NameWidth times the item count.
const NameWidth = 30

// Cell is one by-reference argument to an engine procedure.
type Cell interface {
	ptr() unsafe.Pointer
}

// Int boxes a single int32 the engine reads or writes through.
type Int int32

// NewInt returns an Int cell holding v.
func NewInt(v int) *Int {
	c := Int(v)
	return &c
}

// Value returns the boxed integer.
func (c *Int) Value() int { return int(*c) }

// Set overwrites the boxed integer.
func (c *Int) Set(v int) { *c = Int(v) }

func (c *Int) ptr() unsafe.Pointer { return unsafe.Pointer(c) }

// Double boxes a single float64.
type Double float64

// NewDouble returns a Double cell holding v.
func NewDouble(v float64) *Double {
	c := Double(v)
	return &c
}

// Value returns the boxed float.
func (c *Double) Value() float64 { return float64(*c) }

func (c *Double) ptr() unsafe.Pointer { return unsafe.Pointer(c) }

// IntArray is a contiguous int32 array the engine reads or fills. Sizes
// come from a prior "get count" call, never from the engine itself.
type IntArray []int32

// NewIntArray allocates a zeroed array of n elements.
func NewIntArray(n int) IntArray { return make(IntArray, n) }

// IntsToArray copies host integers into a new array cell.
func IntsToArray(vs []int) IntArray {
	a := make(IntArray, len(vs))
	for i, v := range vs {
		a[i] = int32(v)
	}
	return a
}

// Ints copies the array out as host integers.
func (a IntArray) Ints() []int {
	out := make([]int, len(a))
	for i, v := range a {
		out[i] = int(v)
	}
	return out
}

func (a IntArray) ptr() unsafe.Pointer {
	if len(a) == 0 {
		return nil
	}
	return unsafe.Pointer(&a[0])
}

// DoubleArray is a contiguous float64 array.
type DoubleArray []float64

// NewDoubleArray allocates a zeroed array of n elements.
func NewDoubleArray(n int) DoubleArray { return make(DoubleArray, n) }

// Floats copies the array out.
func (a DoubleArray) Floats() []float64 {
	out := make([]float64, len(a))
	copy(out, a)
	return out
}

func (a DoubleArray) ptr() unsafe.Pointer {
	if len(a) == 0 {
		return nil
	}
	return unsafe.Pointer(&a[0])
}

// CharBuffer is a fixed-width character buffer. Inputs are space-padded to
// width (and truncated if longer); outputs are trimmed of trailing spaces
// and NULs on the way back out.
type CharBuffer struct {
	b []byte
}

// NewCharBuffer returns a width-sized buffer holding s, space-padded.
func NewCharBuffer(s string, width int) *CharBuffer {
	b := make([]byte, width)
	for i := range b {
		b[i] = ' '
	}
	copy(b, s)
	return &CharBuffer{b: b}
}

// EmptyCharBuffer returns a space-filled output buffer of the given width.
func EmptyCharBuffer(width int) *CharBuffer {
	return NewCharBuffer("", width)
}

// Len returns the buffer width, the value the engine expects as the
// companion length argument.
func (c *CharBuffer) Len() int { return len(c.b) }

// String returns the buffer contents with trailing padding removed.
func (c *CharBuffer) String() string {
	end := len(c.b)
	for end > 0 && (c.b[end-1] == ' ' || c.b[end-1] == 0) {
		end--
	}
	return string(c.b[:end])
}

// Raw returns the backing bytes, padding included. Packed string blocks
// are decoded from this together with their offset arrays.
func (c *CharBuffer) Raw() []byte { return c.b }

func (c *CharBuffer) ptr() unsafe.Pointer {
	if len(c.b) == 0 {
		return nil
	}
	return unsafe.Pointer(&c.b[0])
}
