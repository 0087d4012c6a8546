package day02_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/day02"
)

const sample = `7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
`

func TestSolveSample(t *testing.T) {
	ans, err := day02.Solve(context.Background(), strings.NewReader(sample))
	require.NoError(t, err)
	assert.EqualValues(t, 2, ans.Part1)
	assert.EqualValues(t, 4, ans.Part2)
}

func TestReport(t *testing.T) {
	tests := []struct {
		name     string
		report   day02.Report
		safe     bool
		dampened bool
	}{
		{"decreasing", day02.Report{7, 6, 4, 2, 1}, true, true},
		{"jump of five", day02.Report{1, 2, 7, 8, 9}, false, false},
		{"drop of four", day02.Report{9, 7, 6, 2, 1}, false, false},
		{"one direction change", day02.Report{1, 3, 2, 4, 5}, false, true},
		{"flat pair", day02.Report{8, 6, 4, 4, 1}, false, true},
		{"increasing", day02.Report{1, 3, 6, 7, 9}, true, true},
		{"bad first level", day02.Report{5, 1, 2, 3, 4}, false, true},
		{"bad second level", day02.Report{1, 9, 2, 3, 4}, false, true},
		{"bad last level", day02.Report{1, 2, 3, 4, 9}, false, true},
		{"single level", day02.Report{4}, false, false},
		{"empty", day02.Report{}, false, false},
		{"two equal", day02.Report{3, 3}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.safe, tt.report.Safe())
			assert.Equal(t, tt.dampened, tt.report.SafeDampened())
		})
	}
}

func TestParse(t *testing.T) {
	reports, err := day02.Parse(strings.NewReader("1 2\r\n\r\n3 4 5\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []day02.Report{{1, 2}, {3, 4, 5}}, reports)

	_, err = day02.Parse(strings.NewReader("1 2\n3 x 5\n"))
	assert.ErrorIs(t, err, day02.ErrMalformedLevel)
	assert.ErrorContains(t, err, "line 2")
}
