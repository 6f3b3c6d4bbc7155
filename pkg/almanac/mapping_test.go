package almanac

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/aoc23/pkg/puzzle"
	"github.com/stretchr/testify/assert"
)

func TestMappingMap(t *testing.T) {
	m := Mapping{Source: 98, Dest: 50, Length: 2}

	cases := map[int64]struct {
		want   int64
		mapped bool
	}{
		97:  {want: 97},
		98:  {want: 50, mapped: true},
		99:  {want: 51, mapped: true},
		100: {want: 100},
	}
	for id, tc := range cases {
		got, ok := m.Map(id)
		assert.Equal(t, tc.want, got, "id %d", id)
		assert.Equal(t, tc.mapped, ok, "id %d", id)
	}
	assert.Equal(t, "98-100 (-48)", m.String())
}

func TestParseMapping(t *testing.T) {
	cases := map[string]struct {
		line        string
		want        []int64
		expectedErr bool
	}{
		"Valid": {
			line: "50 98 2",
			want: []int64{50, 98, 2},
		},
		"ExtraSpaces": {
			line: "  0   15 37 ",
			want: []int64{0, 15, 37},
		},
		"TooFew": {
			line:        "50 98",
			expectedErr: true,
		},
		"TooMany": {
			line:        "50 98 2 1",
			expectedErr: true,
		},
		"NotANumber": {
			line:        "50 nine 2",
			expectedErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseMapping(tc.line)
			if tc.expectedErr {
				assert.ErrorIs(t, err, puzzle.ErrParse)
				return
			}
			assert.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildStage(t *testing.T) {
	cases := map[string]struct {
		triples     [][]int64
		want        Stage
		expectedErr bool
	}{
		"SortedBySource": {
			triples: [][]int64{{88, 18, 7}, {18, 25, 70}, {0, 0, 1}},
			want: Stage{
				{Source: 0, Dest: 0, Length: 1},
				{Source: 18, Dest: 88, Length: 7},
				{Source: 25, Dest: 18, Length: 70},
			},
		},
		"Empty": {
			triples: nil,
			want:    Stage{},
		},
		"WrongArity": {
			triples:     [][]int64{{1, 2}},
			expectedErr: true,
		},
		"ZeroLength": {
			triples:     [][]int64{{1, 2, 0}},
			expectedErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := BuildStage(tc.triples)
			if tc.expectedErr {
				assert.ErrorIs(t, err, puzzle.ErrParse)
				return
			}
			assert.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStageMap(t *testing.T) {
	s, err := BuildStage([][]int64{{50, 98, 2}, {52, 50, 48}})
	assert.NoError(t, err)

	for id, want := range map[int64]int64{0: 0, 49: 49, 50: 52, 79: 81, 97: 99, 98: 50, 99: 51, 100: 100} {
		assert.Equal(t, want, s.Map(id), "id %d", id)
	}
}
