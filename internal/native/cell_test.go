package native

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharBuffer_Padding(t *testing.T) {
	c := NewCharBuffer("Simulation.in", 30)
	assert.Equal(t, 30, c.Len())
	assert.Equal(t, "Simulation.in"+strings.Repeat(" ", 17), string(c.Raw()))
	assert.Equal(t, "Simulation.in", c.String())
}

func TestCharBuffer_Truncation(t *testing.T) {
	c := NewCharBuffer("abcdefgh", 4)
	assert.Equal(t, "abcd", c.String())
	assert.Equal(t, 4, c.Len())
}

func TestCharBuffer_TrimsNULs(t *testing.T) {
	c := EmptyCharBuffer(8)
	copy(c.Raw(), []byte{'o', 'k', 0, 0, ' ', ' ', ' ', ' '})
	assert.Equal(t, "ok", c.String())
}

func TestIntArray_RoundTrip(t *testing.T) {
	a := IntsToArray([]int{3, 1, 4})
	assert.Equal(t, []int{3, 1, 4}, a.Ints())
	assert.Len(t, NewIntArray(5), 5)
}

func TestScalarCells(t *testing.T) {
	i := NewInt(7)
	i.Set(12)
	assert.Equal(t, 12, i.Value())
	d := NewDouble(2.5)
	assert.Equal(t, 2.5, d.Value())
}

func TestMissingProcError_Text(t *testing.T) {
	err := &MissingProcError{
		Proc:       ProcModelGetNBypasses,
		Symbol:     "IW_Model_GetNBypasses",
		MinVersion: "2015.0.1273",
		LibVersion: "2015.0.1045",
	}
	msg := err.Error()
	assert.Contains(t, msg, "IW_Model_GetNBypasses")
	assert.Contains(t, msg, "2015.0.1273")
	assert.Contains(t, msg, "2015.0.1045")
}

func TestEngineError_Text(t *testing.T) {
	err := &EngineError{Proc: "IW_Budget_GetValues", Status: -1, Message: "file not open"}
	assert.Contains(t, err.Error(), "status -1")
	assert.Contains(t, err.Error(), "file not open")
	bare := &EngineError{Proc: "IW_Model_New", Status: 3}
	assert.Contains(t, bare.Error(), "status 3")
}
