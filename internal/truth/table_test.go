package truth

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pborges/qmin/internal/expr"
)

func TestNew(t *testing.T) {
	tt, err := New([]int{0, 1, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, 2, tt.NumVars())
	assert.Equal(t, 4, tt.Len())
	assert.Equal(t, []int{0, 1, 1, 0}, tt.Outputs())
}

func TestNew_SingleRow(t *testing.T) {
	tt, err := New([]int{1})
	require.NoError(t, err)
	assert.Equal(t, 0, tt.NumVars())
	assert.Equal(t, 1, tt.At(0))
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrLength)

	_, err = New([]int{0, 1, 1})
	assert.ErrorIs(t, err, ErrLength)

	_, err = New([]int{0, 2})
	assert.ErrorIs(t, err, ErrValue)
	assert.Contains(t, err.Error(), "row 1 is 2")
}

func TestNew_CopiesInput(t *testing.T) {
	in := []int{0, 1}
	tt, err := New(in)
	require.NoError(t, err)
	in[0] = 1
	tt.Outputs()[1] = 0
	assert.Equal(t, []int{0, 1}, tt.Outputs())
}

func TestParse(t *testing.T) {
	tt, err := Parse("0011 1100,0111_1100")
	require.NoError(t, err)
	assert.Equal(t, 4, tt.NumVars())
	want := []int{0, 0, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 0, 0}
	if diff := cmp.Diff(want, tt.Outputs()); diff != "" {
		t.Errorf("Parse(): mismatch (-want, +got):\n%s", diff)
	}

	_, err = Parse("01x1")
	assert.ErrorIs(t, err, ErrValue)
}

func TestFromFunc_InputOrder(t *testing.T) {
	// a&b | c&!d with a as bit 0.
	tt, err := FromFunc(4, func(in []bool) bool {
		return (in[0] && in[1]) || (in[2] && !in[3])
	})
	require.NoError(t, err)
	var minterms []int
	for i := 0; i < tt.Len(); i++ {
		if tt.At(i) == 1 {
			minterms = append(minterms, i)
		}
	}
	assert.Equal(t, []int{3, 4, 5, 6, 7, 11, 15}, minterms)
}

func TestFromFunc_TooManyVars(t *testing.T) {
	_, err := FromFunc(MaxVars+1, func([]bool) bool { return true })
	assert.ErrorIs(t, err, ErrTooManyVars)
}

func TestFromExpr(t *testing.T) {
	x, err := expr.Parse("A & B # C & !D")
	require.NoError(t, err)
	got, err := FromExpr(x, nil)
	require.NoError(t, err)
	want, err := FromFunc(4, func(in []bool) bool {
		return (in[0] && in[1]) || (in[2] && !in[3])
	})
	require.NoError(t, err)
	assert.Equal(t, want.Outputs(), got.Outputs())
}

func TestFromExpr_ExplicitOrder(t *testing.T) {
	x, err := expr.Parse("b & !a")
	require.NoError(t, err)
	got, err := FromExpr(x, []string{"b", "a"})
	require.NoError(t, err)
	// b is bit 0, a is bit 1.
	assert.Equal(t, []int{0, 1, 0, 0}, got.Outputs())
}

func TestFromExpr_UndefinedVariable(t *testing.T) {
	x, err := expr.Parse("a & b")
	require.NoError(t, err)
	_, err = FromExpr(x, []string{"a"})
	assert.ErrorContains(t, err, `undefined variable "b"`)
}

func TestFromDIMACS(t *testing.T) {
	f, err := os.Open("testdata/and_or.cnf")
	require.NoError(t, err)
	defer f.Close()

	got, err := FromDIMACS(f)
	require.NoError(t, err)
	want, err := FromFunc(3, func(in []bool) bool {
		return (in[0] || in[1]) && !in[2]
	})
	require.NoError(t, err)
	assert.Equal(t, want.Outputs(), got.Outputs())
}

func TestFromDIMACS_Unsat(t *testing.T) {
	got, err := FromDIMACS(strings.NewReader("p cnf 1 2\n1 0\n-1 0\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, got.Outputs())
}

func TestFromDIMACS_UnusedVariable(t *testing.T) {
	got, err := FromDIMACS(strings.NewReader("p cnf 2 1\n1 0\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0, 1}, got.Outputs())
}

func TestFromDIMACS_TooManyVars(t *testing.T) {
	_, err := FromDIMACS(strings.NewReader("p cnf 64 1\n1 0\n"))
	assert.ErrorContains(t, err, "at most 20 variables")
}

func TestWrite(t *testing.T) {
	tt, err := Parse("0110")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, tt.Write(&buf, nil))
	want := "A | B | F\n" +
		"---------\n" +
		"0 | 0 | 0\n" +
		"1 | 0 | 1\n" +
		"0 | 1 | 1\n" +
		"1 | 1 | 0\n"
	assert.Equal(t, want, buf.String())
}

func TestDefaultName(t *testing.T) {
	assert.Equal(t, "A", DefaultName(0))
	assert.Equal(t, "Z", DefaultName(25))
	assert.Equal(t, "x26", DefaultName(26))
}
