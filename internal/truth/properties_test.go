package truth

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperties(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   Properties
	}{
		{"identity", []int{0, 1}, Properties{true, true, true, true, true}},
		{"not", []int{1, 0}, Properties{false, false, true, false, true}},
		{"and", []int{0, 0, 0, 1}, Properties{true, true, false, true, false}},
		{"or", []int{0, 1, 1, 1}, Properties{true, true, false, true, false}},
		{"xor", []int{0, 1, 1, 0}, Properties{true, false, false, false, true}},
		{"nand", []int{1, 1, 1, 0}, Properties{false, false, false, false, false}},
		{"majority", []int{0, 0, 0, 1, 0, 1, 1, 1}, Properties{true, true, true, true, false}},
		{"parity3", []int{0, 1, 1, 0, 1, 0, 0, 1}, Properties{true, true, true, false, true}},
		{"and3", []int{0, 0, 0, 0, 0, 0, 0, 1}, Properties{true, true, false, true, false}},
		{"true", []int{1}, Properties{false, true, true, true, true}},
		{"false1", []int{0, 0}, Properties{true, false, false, true, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab, err := New(tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tab.Properties())
		})
	}
}

func TestProperties_String(t *testing.T) {
	assert.Equal(t, "+ + + + +", Properties{true, true, true, true, true}.String())
	assert.Equal(t, "    +   +", Properties{SelfDual: true, Linear: true}.String())
	assert.Equal(t, "+ +   +  ", Properties{true, true, false, true, false}.String())
	assert.Len(t, Properties{}.String(), len(PropertyHeader))
}

func TestZhegalkin(t *testing.T) {
	tests := []struct {
		values []int
		want   []int
	}{
		{[]int{1, 1, 1, 0}, []int{1, 0, 0, 1}},
		{[]int{0, 1, 1, 0}, []int{0, 1, 1, 0}},
		{[]int{0, 1, 1, 1}, []int{0, 1, 1, 1}},
		{[]int{1}, []int{1}},
	}
	for _, tt := range tests {
		tab, err := New(tt.values)
		require.NoError(t, err)
		assert.Equal(t, tt.want, tab.Zhegalkin(), "%v", tt.values)
	}
}

// Every function of three variables is checked against the definitions
// written out pair by pair.
func TestProperties_AllThreeVariableFunctions(t *testing.T) {
	const n = 3
	affine := make(map[int]bool)
	for c := 0; c < 2; c++ {
		for a := 0; a < 1<<n; a++ {
			f := 0
			for row := 0; row < 1<<n; row++ {
				f |= (c ^ bits.OnesCount(uint(a&row))&1) << row
			}
			affine[f] = true
		}
	}
	require.Len(t, affine, 16)

	for f := 0; f < 1<<(1<<n); f++ {
		values := make([]int, 1<<n)
		for row := range values {
			values[row] = f >> row & 1
		}
		tab, err := New(values)
		require.NoError(t, err)

		monotonic := true
		for i := range values {
			for j := range values {
				if i&j == i && values[i] > values[j] {
					monotonic = false
				}
			}
		}
		assert.Equal(t, monotonic, tab.Monotonic(), "f=%08b", f)
		assert.Equal(t, affine[f], tab.Linear(), "f=%08b", f)
	}
}

func TestComplete(t *testing.T) {
	props := func(values ...int) Properties {
		tab, err := New(values)
		require.NoError(t, err)
		return tab.Properties()
	}
	nand := props(1, 1, 1, 0)
	and := props(0, 0, 0, 1)
	or := props(0, 1, 1, 1)
	not := props(1, 0)
	xor := props(0, 1, 1, 0)

	assert.True(t, Complete([]Properties{nand}))
	assert.True(t, Complete([]Properties{and, not}))
	assert.False(t, Complete([]Properties{and, or}))
	assert.False(t, Complete([]Properties{xor, not}))
	assert.False(t, Complete(nil))
}
