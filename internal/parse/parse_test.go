package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/pkg/types"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty input", input: "", want: nil},
		{name: "trailing newline dropped", input: "a\nb\n", want: []string{"a", "b"}},
		{name: "no trailing newline", input: "a\nb", want: []string{"a", "b"}},
		{name: "crlf endings", input: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "interior blank kept", input: "a\n\nb", want: []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Lines(tt.input)); diff != "" {
				t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBlocks(t *testing.T) {
	want := [][]string{{"#.", ".#"}, {"##"}, {".."}}
	for name, input := range map[string]string{
		"lf":             "#.\n.#\n\n##\n\n..\n",
		"crlf":           "#.\r\n.#\r\n\r\n##\r\n\r\n..\r\n",
		"repeated blank": "#.\n.#\n\n\n##\n\n..",
	} {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(want, Blocks(input)); diff != "" {
				t.Errorf("Blocks() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInts(t *testing.T) {
	got, err := Ints("  0 3 -6  9 ")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, -6, 9}, got)

	_, err = Ints("1 x 2")
	assert.True(t, errors.Is(err, types.ErrMalformedInput))
}

func TestUint64s(t *testing.T) {
	got, err := Uint64s("3037950000 18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, []uint64{3037950000, 18446744073709551615}, got)

	_, err = Uint64s("-1")
	assert.ErrorIs(t, err, types.ErrMalformedInput)
}

func TestCommaInts(t *testing.T) {
	got, err := CommaInts("1,1,3")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 3}, got)
}

func TestCutLabel(t *testing.T) {
	label, rest, err := CutLabel("Game 7:  3 blue", ":")
	require.NoError(t, err)
	assert.Equal(t, "Game 7", label)
	assert.Equal(t, "3 blue", rest)

	_, _, err = CutLabel("Game 7 3 blue", ":")
	assert.ErrorIs(t, err, types.ErrMalformedInput)
}
