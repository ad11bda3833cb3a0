package strpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_SubregionBlock(t *testing.T) {
	// Packed block as the engine returns subregion names.
	buf := "Region1 (SR1)Region2 (SR2)ENTIRE MODEL AREA"
	got, err := Decode(buf, []int32{1, 14, 27}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Region1 (SR1)", "Region2 (SR2)", "ENTIRE MODEL AREA"}, got)
}

func TestDecode_RoundTrip(t *testing.T) {
	items := []string{"GW HEAD", "STREAM STAGE", "SUBSIDENCE", "X"}
	var buf string
	offsets := make([]int32, len(items))
	pos := int32(1) // one-based
	for i, s := range items {
		offsets[i] = pos
		buf += s
		pos += int32(len(s))
	}
	got, err := Decode(buf, offsets, len(items))
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestDecode_ZeroBasedEquivalence(t *testing.T) {
	buf := "abcdefgh"
	one, err := Decode(buf, []int32{1, 4, 8}, 3)
	require.NoError(t, err)
	zero, err := Decode(buf, []int32{0, 3, 7}, 3)
	require.NoError(t, err)
	assert.Equal(t, one, zero)
	assert.Equal(t, []string{"abc", "defg", "h"}, one)
}

func TestDecode_ValidCountTruncation(t *testing.T) {
	buf := "aaabbbccc"
	// Trailing zeros are allocation padding the caller never filled.
	got, err := Decode(buf, []int32{1, 4, 7, 0, 0, 0}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"aaa", "bbb", "ccc"}, got)

	// With a smaller valid count the last entry runs to end-of-buffer.
	got, err = Decode(buf, []int32{1, 4, 7, 0, 0, 0}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"aaa", "bbbccc"}, got)
}

func TestDecode_TrimsPadding(t *testing.T) {
	// Engine pads each slot with spaces, sometimes NULs.
	buf := []byte("NODE1     NODE22    ")
	got, err := Decode(buf, []int32{1, 11}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"NODE1", "NODE22"}, got)
}

func TestDecode_EmptyCount(t *testing.T) {
	got, err := Decode("anything", []int32{}, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(42, []int32{1}, 1)
	assert.ErrorIs(t, err, ErrBadBuffer)

	_, err = Decode("abc", nil, 1)
	assert.ErrorIs(t, err, ErrBadOffsets)

	_, err = Decode("abc", []int32{1, 2}, 3)
	assert.ErrorIs(t, err, ErrBadOffsets)

	_, err = Decode("abc", []int32{1}, -1)
	assert.ErrorIs(t, err, ErrBadCount)

	_, err = Decode("abc", []int32{0, 99}, 2)
	assert.ErrorIs(t, err, ErrBadOffsets)
}
