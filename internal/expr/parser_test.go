package expr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Precedence(t *testing.T) {
	got, err := Parse("A & B # C & !D")
	require.NoError(t, err)
	want := Or{
		A: And{A: Ident{Name: "A"}, B: Ident{Name: "B"}},
		B: And{A: Ident{Name: "C"}, B: Not{X: Ident{Name: "D"}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse(): mismatch (-want, +got):\n%s", diff)
	}
}

func TestParse_XorBindsBetweenAndOr(t *testing.T) {
	got, err := Parse("a $ b & c | d")
	require.NoError(t, err)
	want := Or{
		A: Xor{A: Ident{Name: "a"}, B: And{A: Ident{Name: "b"}, B: Ident{Name: "c"}}},
		B: Ident{Name: "d"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse(): mismatch (-want, +got):\n%s", diff)
	}
}

func TestParse_Glyphs(t *testing.T) {
	got, err := Parse("¬x ∧ y ∨ 1")
	require.NoError(t, err)
	want := Or{
		A: And{A: Not{X: Ident{Name: "x"}}, B: Ident{Name: "y"}},
		B: Const{Value: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse(): mismatch (-want, +got):\n%s", diff)
	}
}

func TestParse_Parens(t *testing.T) {
	got, err := Parse("!(a # b)")
	require.NoError(t, err)
	assert.Equal(t, Not{X: Or{A: Ident{Name: "a"}, B: Ident{Name: "b"}}}, got)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"", "col 1: unexpected end of expression"},
		{"a &", "col 4: unexpected end of expression"},
		{"(a", "col 3: expected )"},
		{"a b", `col 3: unexpected token "b"`},
		{"a & 2", `col 5: invalid constant "2"`},
		{"a ? b", `col 3: unexpected token "?"`},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := Parse(tt.src)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestEval(t *testing.T) {
	x, err := Parse("A & B # C & !D")
	require.NoError(t, err)

	v, err := Eval(x, map[string]bool{"A": true, "B": true, "C": false, "D": true})
	require.NoError(t, err)
	assert.True(t, v)

	v, err = Eval(x, map[string]bool{"A": false, "B": true, "C": true, "D": true})
	require.NoError(t, err)
	assert.False(t, v)
}

func TestEval_Xor(t *testing.T) {
	x, err := Parse("a $ b")
	require.NoError(t, err)
	for _, c := range []struct{ a, b, want bool }{
		{false, false, false},
		{true, false, true},
		{false, true, true},
		{true, true, false},
	} {
		v, err := Eval(x, map[string]bool{"a": c.a, "b": c.b})
		require.NoError(t, err)
		assert.Equal(t, c.want, v, "a=%v b=%v", c.a, c.b)
	}
}

func TestEval_Undefined(t *testing.T) {
	x, err := Parse("a & b")
	require.NoError(t, err)
	_, err = Eval(x, map[string]bool{"a": true})
	assert.EqualError(t, err, `undefined variable "b"`)
}

func TestVars(t *testing.T) {
	x, err := Parse("c & !a # (b $ a) # 0")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, Vars(x))
}
