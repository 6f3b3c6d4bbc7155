package puzzle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	cases := map[string]struct {
		input string
		want  []string
	}{
		"Empty": {
			input: "",
			want:  nil,
		},
		"TrailingNewline": {
			input: "a\nb\n",
			want:  []string{"a", "b"},
		},
		"NoTrailingNewline": {
			input: "a\nb",
			want:  []string{"a", "b"},
		},
		"CRLF": {
			input: "a\r\nb\r\n",
			want:  []string{"a", "b"},
		},
		"BlankLine": {
			input: "a\n\nb\n",
			want:  []string{"a", "", "b"},
		},
		"StrayCR": {
			input: "a\r\nb\r\r\nc\r",
			want:  []string{"a", "b", "c"},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, Lines([]byte(tc.input))); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBlocks(t *testing.T) {
	cases := map[string]struct {
		input string
		want  []string
	}{
		"Empty": {
			input: "\n\n",
			want:  nil,
		},
		"Two": {
			input: "seeds: 1 2\n\nmap:\n1 2 3\n",
			want:  []string{"seeds: 1 2", "map:\n1 2 3"},
		},
		"CRLF": {
			input: "a\r\n\r\nb\r\nc\r\n",
			want:  []string{"a", "b\nc"},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, Blocks([]byte(tc.input))); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInts(t *testing.T) {
	got, err := Ints("  79 14\t-55 13 ")
	require.NoError(t, err)
	require.Equal(t, []int64{79, 14, -55, 13}, got)

	got, err = Ints("")
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = Ints("1 2x")
	require.ErrorIs(t, err, ErrParse)
}

func TestSumProduct(t *testing.T) {
	require.Equal(t, 10, Sum(1, 2, 3, 4))
	require.Equal(t, int64(0), Sum[int64]())
	require.Equal(t, 24, Product(1, 2, 3, 4))
	require.Equal(t, 1.5, Product(0.5, 3.0))
}

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "day_05"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day_05", "puzzle.txt"), []byte("seeds: 1 2\n"), 0o644))

	b, err := ReadInput(dir, 5, "puzzle")
	require.NoError(t, err)
	require.Equal(t, "seeds: 1 2\n", string(b))

	_, err = ReadInput(dir, 6, "puzzle")
	require.ErrorIs(t, err, ErrFileNotFound)

	require.Equal(t, filepath.Join("input", "day_12", "sample.txt"), InputPath("input", 12, "sample"))
}
