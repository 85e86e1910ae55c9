package pyval_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/pagehostgo/internal/pyval"
)

func TestRepr(t *testing.T) {
	t.Parallel()

	list := pyval.Seq(pyval.Str("A"), pyval.Int(1), pyval.Str("!"))

	cases := []struct {
		name string
		val  pyval.Value
		want string
	}{
		{
			name: "sequence of mixed scalars",
			val:  list,
			want: `['A', 1, '!']`,
		},
		{
			name: "mapping preserves insertion order and nests",
			val: pyval.Mapping(
				pyval.Pair{Key: pyval.Str("B"), Val: pyval.Int(2)},
				pyval.Pair{Key: pyval.Str("List"), Val: list},
			),
			want: `{'B': 2, 'List': ['A', 1, '!']}`,
		},
		{
			name: "tuple",
			val:  pyval.Tuple(pyval.Str("C"), pyval.Int(3), pyval.Str("!")),
			want: `('C', 3, '!')`,
		},
		{
			name: "one element tuple keeps trailing comma",
			val:  pyval.Tuple(pyval.Str("a")),
			want: `('a',)`,
		},
		{
			name: "empty containers",
			val:  pyval.Seq(pyval.Seq(), pyval.Mapping(), pyval.Tuple()),
			want: `[[], {}, ()]`,
		},
		{
			name: "scalars",
			val:  pyval.Seq(pyval.Null(), pyval.Bool(true), pyval.Bool(false), pyval.Int(-7)),
			want: `[null, true, false, -7]`,
		},
		{
			name: "integral float keeps decimal point",
			val:  pyval.Float(2),
			want: `2.0`,
		},
		{
			name: "fractional float",
			val:  pyval.Float(10.125),
			want: `10.125`,
		},
		{
			name: "string escaping",
			val:  pyval.Str("it's\na\tbackslash \\"),
			want: `'it\'s\na\tbackslash \\'`,
		},
		{
			name: "other renders its registered form",
			val:  pyval.Other("<function say_hello>"),
			want: `<function say_hello>`,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.val.Repr())
		})
	}
}

func TestDisplay(t *testing.T) {
	t.Parallel()

	// Top-level strings render verbatim; inside containers they are quoted.
	require.Equal(t, "hello world", pyval.Str("hello world").Display())
	require.Equal(t, `['hello world']`, pyval.Seq(pyval.Str("hello world")).Display())

	// Non-strings display as their repr.
	require.Equal(t, "42", pyval.Int(42).Display())
	require.Equal(t, `('C', 3)`, pyval.Tuple(pyval.Str("C"), pyval.Int(3)).Display())
}

func TestZeroValueIsNull(t *testing.T) {
	t.Parallel()

	var v pyval.Value
	require.Equal(t, pyval.KindNull, v.Kind())
	require.Equal(t, "null", v.Repr())
}
